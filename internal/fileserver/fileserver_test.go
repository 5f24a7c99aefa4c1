package fileserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/georgemunganga/shopfront/internal/httpx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func siteDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>shop</h1>"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "uploads"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "uploads", "logo.jpg"), []byte("jpeg"), 0o644))
	return dir
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestRootServesIndex(t *testing.T) {
	h := New(siteDir(t), zap.NewNop())

	rec := get(h, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<h1>shop</h1>", rec.Body.String())
}

func TestServesUploads(t *testing.T) {
	h := New(siteDir(t), zap.NewNop())

	rec := get(h, "/uploads/logo.jpg")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "jpeg", rec.Body.String())

	assert.Equal(t, http.StatusNotFound, get(h, "/uploads/missing.jpg").Code)
}

func TestEveryResponseDisablesCaching(t *testing.T) {
	h := New(siteDir(t), zap.NewNop())

	for _, path := range []string{"/", "/uploads/logo.jpg"} {
		rec := get(h, path)
		assert.Equal(t, "no-cache, no-store, must-revalidate", rec.Header().Get("Cache-Control"), path)
		assert.Equal(t, "no-cache", rec.Header().Get("Pragma"), path)
		assert.Equal(t, "0", rec.Header().Get("Expires"), path)
		assert.Equal(t, `"cache", "storage", "executionContexts"`, rec.Header().Get("Clear-Site-Data"), path)
	}
}

func TestWarnsWhenNotPublished(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	h := New(t.TempDir(), zap.New(core))

	assert.Equal(t, 1, logs.FilterMessage("index.html does not exist yet, publish the site first").Len())
	assert.Equal(t, http.StatusNotFound, get(h, "/").Code)

	core, logs = observer.New(zapcore.WarnLevel)
	New(siteDir(t), zap.New(core))
	assert.Zero(t, logs.Len())
}

func TestCheckPrivilege(t *testing.T) {
	assert.NoError(t, checkPrivilege(8080, 1000))
	assert.NoError(t, checkPrivilege(80, 0))
	assert.NoError(t, checkPrivilege(1024, 1000))
	assert.ErrorIs(t, checkPrivilege(80, 1000), ErrPrivileged)
	assert.ErrorIs(t, checkPrivilege(1023, 1000), ErrPrivileged)
}

func TestServeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	srv := httpx.NewServer("127.0.0.1:0", New(siteDir(t), zap.NewNop()))

	done := make(chan error, 1)
	go func() { done <- httpx.Serve(ctx, srv, zap.NewNop()) }()
	cancel()
	assert.NoError(t, <-done)
}
