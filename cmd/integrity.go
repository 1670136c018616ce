package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"catalog-sync/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var integrityJSON bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the catalog",
	Long: `Checks the catalog schema against the models, counts malformed configurations
and, when snapshot archiving is enabled, verifies the archive bucket.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, logg, err := loadRuntime()
		if err != nil {
			return err
		}
		defer logg.Sync()

		store, err := openCatalog(cfg)
		if err != nil {
			return err
		}

		objects, err := openArchive(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		svc := integrity.NewService(store, objects, cfg.Storage.Bucket, cfg.Sync.ArchivePrefix, logg)

		logg.Info("Checking catalog integrity...", zap.String("driver", cfg.Database.Driver))
		report := svc.RunAll(ctx)
		logIntegrityReport(logg, report)

		if integrityJSON {
			filename := fmt.Sprintf("integrity_catalog_%d.json", time.Now().Unix())
			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			if err := os.WriteFile(filename, data, 0644); err != nil {
				return fmt.Errorf("failed to save JSON file: %w", err)
			}
			logg.Info("Integrity report saved", zap.String("file", filename))
		}

		if !report.Healthy() {
			return errors.New("integrity checks found problems")
		}
		return nil
	},
}

func logIntegrityReport(logg *zap.Logger, report *integrity.Report) {
	if report.SchemaError != "" {
		logg.Error("Schema check failed", zap.String("error", report.SchemaError))
	} else if report.Schema.Matched {
		logg.Info("Catalog schema matches models.", zap.String("driver", report.Schema.Driver))
	} else {
		logg.Warn("Catalog schema mismatches found", zap.String("driver", report.Schema.Driver))
		for table, tbl := range report.Schema.Tables {
			if tbl.Status == "ok" {
				continue
			}
			if len(tbl.MissingColumns) > 0 {
				logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tbl.MissingColumns))
			}
			if len(tbl.TypeMismatches) > 0 {
				logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tbl.TypeMismatches))
			}
		}
		for _, e := range report.Schema.Errors {
			logg.Error("Inspection Error", zap.String("error", e))
		}
	}

	if report.CatalogError != "" {
		logg.Error("Catalog check failed", zap.String("error", report.CatalogError))
	} else {
		logg.Info("Catalog Integrity Report",
			zap.Int64("Offers", report.Catalog.Offers),
			zap.Int64("Available", report.Catalog.Available),
			zap.Int64("Configurations", report.Catalog.Configurations),
			zap.Int64("Malformed", report.Catalog.Malformed),
			zap.String("Status", report.Catalog.Status),
		)
	}

	switch {
	case report.StorageError == integrity.ErrStorageDisabled.Error():
		logg.Info("Snapshot archive disabled, skipping storage check.")
	case report.StorageError != "":
		logg.Error("Storage check failed", zap.String("error", report.StorageError))
	case !report.Storage.Exists:
		logg.Warn("Snapshot bucket missing", zap.String("bucket", report.Storage.Bucket))
	default:
		logg.Info("Snapshot archive present",
			zap.String("bucket", report.Storage.Bucket),
			zap.Int("snapshots", report.Storage.Snapshots),
		)
	}
}

func init() {
	integrityCmd.Flags().BoolVar(&integrityJSON, "json", false, "Save the detailed report to a JSON file")
	RootCmd.AddCommand(integrityCmd)
}
