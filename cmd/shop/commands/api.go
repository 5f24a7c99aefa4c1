package commands

import (
	"fmt"
	"net/http"

	"github.com/georgemunganga/shopfront/internal/config"
	"github.com/georgemunganga/shopfront/internal/database"
	"github.com/georgemunganga/shopfront/internal/httpx"
	"github.com/georgemunganga/shopfront/internal/logging"
	"github.com/georgemunganga/shopfront/internal/modules/announcement"
	"github.com/georgemunganga/shopfront/internal/modules/auth"
	"github.com/georgemunganga/shopfront/internal/modules/catalog"
	"github.com/georgemunganga/shopfront/internal/modules/inventory"
	"github.com/georgemunganga/shopfront/internal/modules/pos"
	"github.com/georgemunganga/shopfront/internal/modules/settings"
	"github.com/georgemunganga/shopfront/internal/modules/site"
	"github.com/georgemunganga/shopfront/internal/modules/staff"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Serve the admin JSON API",
	Long: `Open the store, create and seed the schema if needed, and serve the admin
API until interrupted.

Examples:
  shop api                      # embedded database, port from APP_PORT
  shop api --port 9000
  DATABASE_URL=postgres://... shop api`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signalContext()
		defer stop()

		db, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		router, err := newAPIRouter(cfg, db, logger)
		if err != nil {
			return err
		}
		return httpx.Serve(ctx, httpx.NewServer(":"+cfg.Port, router), logger)
	},
}

func init() {
	rootCmd.AddCommand(apiCmd)

	apiCmd.Flags().String("port", "", "Admin API port")
	_ = v.BindPFlag(config.KeyPort, apiCmd.Flags().Lookup("port"))
}

// newAPIRouter wires every module onto one router.
func newAPIRouter(cfg config.Config, db *database.DB, logger *zap.Logger) (http.Handler, error) {
	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(logging.RequestLogger(logger))

	// ── Phase 1: Admin Access ───────────────────────────────
	authService, err := auth.NewService(cfg.AdminPassword, cfg.AdminPasswordHash, cfg.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("auth: %w", err)
	}
	if !authService.Enabled() {
		logger.Warn("no admin password configured, the admin API is unauthenticated",
			zap.String("env", config.KeyAdminPassword))
	}
	auth.NewHandler(authService).RegisterRoutes(router)

	router.Group(func(r chi.Router) {
		r.Use(auth.Middleware(authService))

		// ── Phase 2: Settings & Catalog ─────────────────────────
		settingsRepo := settings.NewSQLRepository(db, logger)
		settings.NewHandler(settings.NewService(settingsRepo)).RegisterRoutes(r)

		media := site.NewMedia(cfg.SiteDir, logger)
		catalogRepo := catalog.NewSQLRepository(db)
		catalog.NewHandler(catalog.NewService(catalogRepo, media, logger)).RegisterRoutes(r)

		// ── Phase 3: Staff & Inventory ──────────────────────────
		staff.NewHandler(staff.NewService(staff.NewSQLRepository(db))).RegisterRoutes(r)
		inventory.NewHandler(inventory.NewService(inventory.NewSQLRepository(db))).RegisterRoutes(r)

		// ── Phase 4: POS & Announcements ────────────────────────
		pos.NewHandler(pos.NewService(pos.NewSQLRepository(db), catalogRepo)).RegisterRoutes(r)
		announcement.NewHandler(announcement.NewService(announcement.NewSQLRepository(db))).RegisterRoutes(r)

		// ── Phase 5: Website ────────────────────────────────────
		assembler := site.NewAssembler(settingsRepo, catalogRepo, media)
		publisher := site.NewPublisher(assembler, cfg.OutputFile(), logger)
		site.NewHandler(assembler, publisher, media, logger).RegisterRoutes(r)
	})

	logger.Info("admin api ready",
		zap.String("backend", db.Dialect().Name()),
		zap.String("site_dir", cfg.SiteDir),
		zap.Bool("auth", authService.Enabled()))
	return router, nil
}
