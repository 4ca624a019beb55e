package cmd

import (
	"fmt"

	"bucket-provisioner/core/metrics"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// provisionCmd runs the whole provisioning pipeline
var provisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "Create the bucket, its access policies, upload images and write the URL helper",
	Long: `Ensures the configured bucket exists, enables row level security with the
public access policies, uploads every jpg, jpeg, png and gif file from the
assets directory and regenerates the URL helper.

Policy and upload failures are reported but do not fail the command.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadRuntime(true)
		if err != nil {
			return err
		}
		defer logg.Sync()

		if dir, _ := cmd.Flags().GetString("assets-dir"); dir != "" {
			cfg.Assets.Dir = dir
		}
		if file, _ := cmd.Flags().GetString("metrics-file"); file != "" {
			cfg.Metrics.File = file
		}

		rec := metrics.New()
		p, err := newProvisioner(cfg, logg, rec)
		if err != nil {
			return err
		}

		report, runErr := p.Run(cmd.Context())

		if cfg.Metrics.File != "" {
			if err := rec.WriteTextfile(cfg.Metrics.File); err != nil {
				logg.Warn("Failed to write metrics", zap.String("file", cfg.Metrics.File), zap.Error(err))
			}
		}

		if runErr != nil {
			return fmt.Errorf("provisioning failed: %w", runErr)
		}

		fmt.Println("\n=== Provisioning Summary ===")
		fmt.Printf("Bucket: %s (created: %t)\n", cfg.Bucket.Name, report.BucketCreated)
		fmt.Printf("Policies: %d created, %d existing, %d failed\n",
			report.Rules.Created, report.Rules.Existing, report.Rules.Failed)
		fmt.Printf("Uploads: %d uploaded, %d failed, %d skipped\n",
			len(report.Uploads.Uploaded), len(report.Uploads.Failed), len(report.Uploads.Skipped))
		fmt.Printf("Helper: %s\n", report.HelperPath)
		return nil
	},
}

func init() {
	provisionCmd.Flags().String("assets-dir", "", "Override the local images directory (ASSETS_DIR)")
	provisionCmd.Flags().String("metrics-file", "", "Write run metrics in Prometheus text format (METRICS_FILE)")
	RootCmd.AddCommand(provisionCmd)
}
