package cmd

import (
	"fmt"

	"bucket-provisioner/feature/provision"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkCmd compares local images with the bucket contents
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "List local images that are missing from the bucket",
	Long: `Lists the bucket contents with the anonymous key and reports every local
image that has not been uploaded yet. Nothing is modified.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadRuntime(true)
		if err != nil {
			return err
		}
		defer logg.Sync()

		store, api, err := newStorage(cfg, cfg.Supabase.AnonKey, logg)
		if err != nil {
			return err
		}

		opts := options(cfg)
		opts.BaseURL = api.BaseURL()
		p := provision.New(store, nil, opts, logg, nil)

		missing, err := p.CheckAssets(cmd.Context())
		if err != nil {
			return fmt.Errorf("asset check failed: %w", err)
		}

		if len(missing) == 0 {
			logg.Info("All local images are present in the bucket", zap.String("bucket", cfg.Bucket.Name))
			return nil
		}

		for _, name := range missing {
			logg.Warn("Image missing from bucket",
				zap.String("file", name),
				zap.String("url", p.PublicURL(name)),
			)
		}
		logg.Warn("Asset check found missing images", zap.Int("missing", len(missing)))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)
}
