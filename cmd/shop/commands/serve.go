package commands

import (
	"fmt"
	"strconv"

	"github.com/georgemunganga/shopfront/internal/fileserver"
	"github.com/georgemunganga/shopfront/internal/httpx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve [port]",
	Short: "Serve the published website",
	Long: `Serve index.html and uploads/ from the site directory with caching disabled.
Ports below 1024 need root.

Examples:
  sudo shop serve          # port 80
  shop serve --port 8080
  shop serve 8080`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		port := resolvePort(servePort, args, logger)
		if err := fileserver.CheckPrivilege(port); err != nil {
			return err
		}

		ctx, stop := signalContext()
		defer stop()

		handler := fileserver.New(cfg.SiteDir, logger)
		logger.Info("serving site", zap.String("dir", cfg.SiteDir), zap.Int("port", port))
		return httpx.Serve(ctx, httpx.NewServer(fmt.Sprintf(":%d", port), handler), logger)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVarP(&servePort, "port", "p", fileserver.DefaultPort, "Port to listen on")
}

// resolvePort prefers a positional port over the flag. An unreadable
// positional port falls back to the default with a warning.
func resolvePort(flag int, args []string, logger *zap.Logger) int {
	if len(args) == 0 {
		return flag
	}
	port, err := strconv.Atoi(args[0])
	if err != nil || port <= 0 || port > 65535 {
		logger.Warn("invalid port, using default",
			zap.String("port", args[0]), zap.Int("default", fileserver.DefaultPort))
		return fileserver.DefaultPort
	}
	return port
}
