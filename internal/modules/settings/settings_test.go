package settings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/georgemunganga/shopfront/internal/database"
	"github.com/georgemunganga/shopfront/internal/database/databasetest"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMergeKeepsAbsentKeys(t *testing.T) {
	db := databasetest.New(t)
	svc := NewService(NewSQLRepository(db, zap.NewNop()))
	ctx := context.Background()

	_, err := svc.Save(ctx, Settings{"shop_name": "Tu&Ran", "brand_color": "#D4A574", "show_hero": true})
	require.NoError(t, err)
	_, err = svc.Save(ctx, Settings{"hero_title": "Fresh", "shop_name": "Tu&Ran Osaka"})
	require.NoError(t, err)

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Tu&Ran Osaka", got.String("shop_name"))
	assert.Equal(t, "#D4A574", got.String("brand_color"))
	assert.Equal(t, "Fresh", got.String("hero_title"))
	assert.True(t, got.Bool("show_hero", false))
}

func TestMergePreservesSeededKeys(t *testing.T) {
	db := databasetest.NewSeeded(t)
	svc := NewService(NewSQLRepository(db, zap.NewNop()))
	ctx := context.Background()

	_, err := svc.Save(ctx, Settings{"unknown_key": "kept"})
	require.NoError(t, err)

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, database.SeedSettings["shop_name"], got["shop_name"])
	assert.Equal(t, "kept", got["unknown_key"])
}

func TestMalformedDocumentReadsEmpty(t *testing.T) {
	db := databasetest.New(t)
	ctx := context.Background()
	_, err := db.Exec(ctx, `INSERT INTO website_settings (id, settings_json) VALUES (?, ?)`, database.SettingsRowID, "{not json")
	require.NoError(t, err)

	repo := NewSQLRepository(db, zap.NewNop())
	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	merged, err := repo.Merge(ctx, Settings{"shop_name": "x"})
	require.NoError(t, err)
	assert.Equal(t, Settings{"shop_name": "x"}, merged)
}

func TestValueConversions(t *testing.T) {
	s := Settings{"n": 4.5, "b": false, "s": "yes", "flag": "false", "one": 1.0}
	assert.Equal(t, "4.5", s.String("n"))
	assert.Equal(t, "false", s.String("b"))
	assert.Equal(t, "", s.String("missing"))
	assert.False(t, s.Bool("flag", true))
	assert.True(t, s.Bool("one", false))
	assert.True(t, s.Bool("s", true))
	assert.True(t, s.Bool("missing", true))
}

func TestHandlerPatch(t *testing.T) {
	db := databasetest.New(t)
	r := chi.NewRouter()
	NewHandler(NewService(NewSQLRepository(db, zap.NewNop()))).RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/settings/", strings.NewReader(`{"shop_name":"Shop"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"shop_name":"Shop"}`, rec.Body.String())

	req = httptest.NewRequest(http.MethodPatch, "/api/v1/settings/", strings.NewReader(`[1,2]`))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
