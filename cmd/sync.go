package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var syncDryRun bool

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one catalog sync cycle",
	Long: `Fetches the live feed, inserts new listings and reconciles availability once, then exits.
Use --dry-run to compute the plan without writing to the catalog.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadRuntime()
		if err != nil {
			return err
		}
		defer logg.Sync()

		if syncDryRun {
			cfg.Sync.DryRun = true
		}

		store, err := openCatalog(cfg)
		if err != nil {
			return err
		}

		objects, err := openArchive(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize snapshot storage: %w", err)
		}

		svc := newSyncService(cfg, store, objects, logg)
		report, err := svc.RunOnce(cmd.Context())
		if report != nil {
			data, marshalErr := json.MarshalIndent(report, "", "  ")
			if marshalErr != nil {
				return fmt.Errorf("failed to marshal report: %w", marshalErr)
			}
			fmt.Println(string(data))
		}
		if err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}

		logg.Info("Sync complete",
			zap.String("status", report.Status),
			zap.Int("added", report.Added.Inserted),
			zap.Int("to_available", report.Available.ToAvailable),
			zap.Int("to_sold_out", report.Available.ToSoldOut),
		)
		return nil
	},
}

func init() {
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Compute changes without writing to the catalog")
	RootCmd.AddCommand(syncCmd)
}
