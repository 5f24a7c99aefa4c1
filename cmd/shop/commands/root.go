// Package commands holds the shop command tree.
package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/georgemunganga/shopfront/internal/config"
	"github.com/georgemunganga/shopfront/internal/database"
	"github.com/georgemunganga/shopfront/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	v      = viper.New()
	cfg    config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "shop",
	Short: "Shop back office and static site publisher",
	Long: `shop runs the back office for a small bakery: products, staff attendance,
inventory, point-of-sale records and announcements, plus a one-page website
rendered from the stored settings.

Commands:
  api      serve the admin JSON API
  publish  render the website once into the site directory
  serve    serve the published website to the public`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load(v)
		l, err := logging.New(cfg.LogLevel, cfg.Development())
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("database-url", "", "Postgres connection URL (embedded SQLite when empty)")
	flags.String("db", "", "Embedded database file")
	flags.String("site-dir", "", "Directory holding index.html and uploads/")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")

	_ = v.BindPFlag(config.KeyDatabaseURL, flags.Lookup("database-url"))
	_ = v.BindPFlag(config.KeyDBPath, flags.Lookup("db"))
	_ = v.BindPFlag(config.KeySiteDir, flags.Lookup("site-dir"))
	_ = v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// openStore opens the configured backend, then creates and seeds the schema.
func openStore(ctx context.Context) (*database.DB, error) {
	db, err := database.Open(ctx, cfg.DatabaseURL, cfg.DBPath, logger)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	if err := db.Seed(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("seed: %w", err)
	}
	return db, nil
}
