package site

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/georgemunganga/shopfront/internal/database"
	"github.com/georgemunganga/shopfront/internal/database/databasetest"
	"github.com/georgemunganga/shopfront/internal/modules/catalog"
	"github.com/georgemunganga/shopfront/internal/modules/settings"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fixture struct {
	dir       string
	products  catalog.Repository
	media     *Media
	assembler *Assembler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := databasetest.NewSeeded(t)
	f := &fixture{
		dir:      t.TempDir(),
		products: catalog.NewSQLRepository(db),
	}
	f.media = NewMedia(f.dir, zap.NewNop())
	f.assembler = NewAssembler(settings.NewSQLRepository(db, zap.NewNop()), f.products, f.media)
	return f
}

func (f *fixture) addProduct(t *testing.T, name string, status catalog.Status, image string) {
	t.Helper()
	require.NoError(t, f.products.Create(context.Background(), &catalog.Product{
		Name: name, Price: "¥500", Category: catalog.CategoryCake, Status: status,
		ImageFit: catalog.FitCover, ImagePosition: catalog.PositionCenter, ImagePath: image,
	}))
}

func TestAssembleLayersDefaultsStoredAndEdits(t *testing.T) {
	f := newFixture(t)
	edits := settings.Settings{"hero_title": "Edited", "show_about": false}

	content, err := f.assembler.Assemble(context.Background(), Publish, edits)
	require.NoError(t, err)

	want := Defaults().Merge(database.SeedSettings).Merge(edits)
	if diff := cmp.Diff(want, content.Values()); diff != "" {
		t.Errorf("merged values mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "Lemon Patisserie", content.Get("shop_name"), "stored beats defaults")
	assert.Equal(t, "Edited", content.Get("hero_title"), "edits beat stored")
	assert.False(t, content.Show(SectionAbout))
	assert.Equal(t, "#fcd34d", content.Theme.Base)
}

func TestAssembleResolvesImagesPerMode(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.media.Save(SlotLogo, pngBytes(t))
	require.NoError(t, err)
	rel, err := f.media.SaveProductImage(1, pngBytes(t))
	require.NoError(t, err)
	f.addProduct(t, "Cheesecake", catalog.StatusActive, rel)

	published, err := f.assembler.Assemble(ctx, Publish, nil)
	require.NoError(t, err)
	assert.EqualValues(t, "uploads/logo.jpg", published.Image(SlotLogo))
	assert.EqualValues(t, "", published.Image(SlotHero))
	require.Len(t, published.Products, 1)
	assert.EqualValues(t, "uploads/product_1.jpg", published.Products[0].Src)

	preview, err := f.assembler.Assemble(ctx, Preview, nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(preview.Image(SlotLogo)), "data:image/jpeg;base64,"))
	assert.True(t, strings.HasPrefix(string(preview.Products[0].Src), "data:image/jpeg;base64,"))

	doc := parseDoc(t, render(t, preview))
	for _, img := range byTag(doc, "img") {
		assert.True(t, strings.HasPrefix(attr(img, "src"), "data:"), attr(img, "src"))
	}
}

func TestPublishWritesSeededPage(t *testing.T) {
	f := newFixture(t)
	f.addProduct(t, "Basque cheesecake", catalog.StatusHot, "")
	f.addProduct(t, "Sold out tart", catalog.StatusSoldOut, "")
	out := filepath.Join(f.dir, "index.html")
	p := NewPublisher(f.assembler, out, zap.NewNop())

	require.NoError(t, p.Publish(context.Background()))

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	doc := parseDoc(t, string(raw))
	assert.True(t, strings.HasPrefix(text(byTag(doc, "title")[0]), "Lemon Patisserie"))
	footer := byID(doc, "footer")
	require.NotNil(t, footer)
	assert.Contains(t, text(footer), "Lemon Patisserie")

	cards := byClass(doc, "product-card")
	require.Len(t, cards, 1)
	assert.Equal(t, "Popular", text(byClass(cards[0], "product-badge")[0]))

	require.NoError(t, p.Publish(context.Background()), "republishing overwrites in place")
}

func TestPublishFailureIsLogged(t *testing.T) {
	f := newFixture(t)
	blocker := filepath.Join(f.dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	core, logs := observer.New(zapcore.InfoLevel)
	p := NewPublisher(f.assembler, filepath.Join(blocker, "index.html"), zap.New(core))

	assert.Error(t, p.Publish(context.Background()))
	entries := logs.FilterMessage("publish failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Zero(t, logs.FilterMessage("site published").Len())
}
