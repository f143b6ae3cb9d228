// Package cli implements catalogctl, the offline catalog maintenance tool.
package cli

import (
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/noah-isme/pack-scheduler-api/internal/repository"
	"github.com/noah-isme/pack-scheduler-api/internal/service"
	"github.com/noah-isme/pack-scheduler-api/pkg/config"
	"github.com/noah-isme/pack-scheduler-api/pkg/logger"
)

type app struct {
	v      *viper.Viper
	cfg    *config.Config
	logger *zap.Logger
	now    func() time.Time
}

// NewRootCommand builds catalogctl. Output goes to out.
func NewRootCommand(out io.Writer) *cobra.Command {
	a := &app{v: viper.New(), now: time.Now}

	root := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Inspect and maintain the course catalog snapshot",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.SetOut(out)
	root.SetErr(out)

	flags := root.PersistentFlags()
	flags.String("catalog", "", "catalog CSV file (default from CATALOG_FILE)")
	flags.String("export-dir", "", "directory for rendered exports (default from EXPORT_DIR)")
	_ = a.v.BindPFlag("catalog", flags.Lookup("catalog"))
	_ = a.v.BindPFlag("export_dir", flags.Lookup("export-dir"))

	root.AddCommand(
		newListCommand(a),
		newValidateCommand(a),
		newImportCommand(a),
		newExportCommand(a),
		newPruneCommand(a),
	)
	return root
}

func (a *app) setup() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if path := a.v.GetString("catalog"); path != "" {
		cfg.Storage.CatalogFile = path
	}
	if dir := a.v.GetString("export_dir"); dir != "" {
		cfg.Storage.ExportDir = dir
	}
	cfg.Log.Format = "console"
	if cfg.Log.Level == "" || cfg.Log.Level == "info" {
		cfg.Log.Level = "warn"
	}
	logr, err := logger.New(cfg)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logr
	return nil
}

func (a *app) catalog() *service.Catalog {
	return service.NewCatalog(repository.NewCourseRecordRepository(a.cfg.Storage.CatalogFile), a.logger)
}
