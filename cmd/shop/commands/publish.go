package commands

import (
	"github.com/georgemunganga/shopfront/internal/modules/catalog"
	"github.com/georgemunganga/shopfront/internal/modules/settings"
	"github.com/georgemunganga/shopfront/internal/modules/site"
	"github.com/spf13/cobra"
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Render the website into the site directory",
	Long: `Render the landing page from the stored settings and products and overwrite
<site-dir>/index.html. Images are referenced by relative path so the directory
can be served as is.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signalContext()
		defer stop()

		db, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		assembler := site.NewAssembler(
			settings.NewSQLRepository(db, logger),
			catalog.NewSQLRepository(db),
			site.NewMedia(cfg.SiteDir, logger),
		)
		return site.NewPublisher(assembler, cfg.OutputFile(), logger).Publish(ctx)
	},
}

func init() {
	rootCmd.AddCommand(publishCmd)
}
