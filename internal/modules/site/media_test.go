package site

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// pngBytes returns a 4x4 PNG whose left half is transparent and right half
// opaque red.
func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 2; x < 4; x++ {
			img.Set(x, y, color.NRGBA{R: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestSaveFlattensOntoWhiteJPEG(t *testing.T) {
	dir := t.TempDir()
	m := NewMedia(dir, zap.NewNop())

	rel, err := m.Save(SlotLogo, pngBytes(t))
	require.NoError(t, err)
	assert.Equal(t, "uploads/logo.jpg", rel)

	f, err := os.Open(filepath.Join(dir, "uploads", "logo.jpg"))
	require.NoError(t, err)
	defer f.Close()
	img, err := jpeg.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 4), img.Bounds())

	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Greater(t, r>>8, uint32(200), "transparent pixels become white")
	assert.Greater(t, g>>8, uint32(200))
	assert.Greater(t, b>>8, uint32(200))
}

func TestSaveRejectsGarbageAndUnknownSlots(t *testing.T) {
	m := NewMedia(t.TempDir(), zap.NewNop())
	_, err := m.Save(SlotHero, []byte("not an image"))
	assert.Error(t, err)
	_, err = m.Save("banner", pngBytes(t))
	assert.ErrorIs(t, err, ErrUnknownSlot)
	assert.ErrorIs(t, m.Remove("banner"), ErrUnknownSlot)
}

func TestPathDataURIAndRemove(t *testing.T) {
	m := NewMedia(t.TempDir(), zap.NewNop())
	assert.Equal(t, "", m.Path(SlotHero))
	assert.Equal(t, "", m.DataURI(SlotHero))

	_, err := m.Save(SlotHero, pngBytes(t))
	require.NoError(t, err)
	assert.Equal(t, "uploads/hero.jpg", m.Path(SlotHero))
	assert.True(t, strings.HasPrefix(m.DataURI(SlotHero), "data:image/jpeg;base64,"))

	require.NoError(t, m.Remove(SlotHero))
	assert.Equal(t, "", m.Path(SlotHero))
	require.NoError(t, m.Remove(SlotHero), "removing twice is fine")
}

func TestProductImagesStayInsideUploads(t *testing.T) {
	dir := t.TempDir()
	m := NewMedia(dir, zap.NewNop())
	rel, err := m.SaveProductImage(7, pngBytes(t))
	require.NoError(t, err)
	assert.Equal(t, "uploads/product_7.jpg", rel)
	assert.NotEmpty(t, m.Inline(rel))

	outside := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(outside, []byte("x"), 0o644))
	assert.Error(t, m.RemoveFile("uploads/../index.html"))
	assert.Equal(t, "", m.Inline("../index.html"))
	assert.FileExists(t, outside)

	require.NoError(t, m.RemoveFile(rel))
	assert.NoFileExists(t, filepath.Join(dir, "uploads", "product_7.jpg"))
}
