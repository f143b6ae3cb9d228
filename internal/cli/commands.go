package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"

	"github.com/noah-isme/pack-scheduler-api/internal/models"
	"github.com/noah-isme/pack-scheduler-api/internal/service"
	"github.com/noah-isme/pack-scheduler-api/pkg/storage"
)

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := a.catalog()
			if _, err := catalog.Load(cmd.Context()); err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSECTION\tTITLE\tMEETING\tOPEN")
			for _, row := range catalog.Rows() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", row.Name, row.Section, row.Title, row.Meeting, row.OpenSeats)
			}
			return w.Flush()
		},
	}
}

func newValidateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that every catalog row loads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := a.catalog()
			skipped, err := catalog.Load(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d courses loaded, %d skipped\n", catalog.Len(), skipped)
			if skipped > 0 {
				return fmt.Errorf("%d invalid catalog rows", skipped)
			}
			return nil
		},
	}
}

func newImportCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <seed.json>",
		Short: "Merge courses from a JSON seed file into the catalog",
		Long: `Merge courses from a JSON array of objects into the catalog.

Numeric fields may be given as strings. Rows that are invalid or already in
the catalog are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := readSeed(args[0])
			if err != nil {
				return err
			}
			catalog := a.catalog()
			if _, err := catalog.Load(cmd.Context()); err != nil {
				return err
			}
			skipped := catalog.Merge(records)
			if err := catalog.Save(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d imported, %d skipped, %d in catalog\n", len(records)-skipped, skipped, catalog.Len())
			return nil
		},
	}
}

func newExportCommand(a *app) *cobra.Command {
	var format, out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the catalog as CSV or PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := a.catalog()
			if _, err := catalog.Load(cmd.Context()); err != nil {
				return err
			}
			exporter := service.NewExportService(a.logger)
			file, err := exporter.Catalog(catalog.Rows(), format)
			if err != nil {
				return err
			}
			dir, err := storage.NewExportDir(a.cfg.Storage.ExportDir)
			if err != nil {
				return err
			}
			name := out
			if name == "" {
				name = file.Filename
			}
			path, err := dir.Write(name, file.Data)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "csv", "csv or pdf")
	cmd.Flags().StringVarP(&out, "out", "o", "", "file name inside the export directory")
	return cmd
}

func newPruneCommand(a *app) *cobra.Command {
	var olderThan time.Duration
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Remove old exports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := storage.NewExportDir(a.cfg.Storage.ExportDir)
			if err != nil {
				return err
			}
			removed, err := dir.Prune(olderThan, a.now())
			for _, name := range removed {
				fmt.Fprintln(cmd.OutOrStdout(), "removed", name)
			}
			return err
		},
	}
	cmd.Flags().DurationVar(&olderThan, "older-than", 24*time.Hour, "minimum age of removed exports")
	return cmd
}

func readSeed(path string) ([]models.CourseRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	var rows []map[string]interface{}
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	records := make([]models.CourseRecord, 0, len(rows))
	for i, row := range rows {
		var record models.CourseRecord
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			TagName:          "mapstructure",
			Result:           &record,
		})
		if err != nil {
			return nil, err
		}
		if err := decoder.Decode(row); err != nil {
			return nil, fmt.Errorf("seed row %d: %w", i+1, err)
		}
		records = append(records, record)
	}
	return records, nil
}
