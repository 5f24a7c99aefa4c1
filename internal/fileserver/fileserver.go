// Package fileserver serves the published site directory to the public.
package fileserver

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/georgemunganga/shopfront/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// DefaultPort is the public HTTP port.
const DefaultPort = 80

const indexFile = "index.html"

// ErrPrivileged is returned when a low port is requested without root.
var ErrPrivileged = errors.New("port below 1024 requires root privileges")

// New returns a router serving dir. "/" maps to index.html and every response
// tells the browser not to cache and to drop stored site data.
func New(dir string, logger *zap.Logger) http.Handler {
	if _, err := os.Stat(filepath.Join(dir, indexFile)); errors.Is(err, os.ErrNotExist) {
		logger.Warn("index.html does not exist yet, publish the site first", zap.String("dir", dir))
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(logging.RequestLogger(logger))
	r.Use(NoCache)

	files := http.FileServer(http.Dir(dir))
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(dir, indexFile))
	})
	r.Get("/*", files.ServeHTTP)
	r.Head("/*", files.ServeHTTP)
	return r
}

// NoCache sets the headers that keep browsers from serving a stale site.
func NoCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Cache-Control", "no-cache, no-store, must-revalidate")
		h.Set("Pragma", "no-cache")
		h.Set("Expires", "0")
		h.Set("Clear-Site-Data", `"cache", "storage", "executionContexts"`)
		next.ServeHTTP(w, r)
	})
}

// CheckPrivilege reports whether the process may bind port.
func CheckPrivilege(port int) error {
	return checkPrivilege(port, os.Geteuid())
}

func checkPrivilege(port, euid int) error {
	if port < 1024 && euid != 0 {
		return fmt.Errorf("%w: run as root or use a port such as 8080 (requested %d)", ErrPrivileged, port)
	}
	return nil
}
