package cmd

import (
	"fmt"

	"bucket-provisioner/feature/provision"

	"github.com/spf13/cobra"
)

// helperCmd regenerates the URL helper without touching remote state
var helperCmd = &cobra.Command{
	Use:   "helper",
	Short: "Regenerate the image URL helper only",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadRuntime(false)
		if err != nil {
			return err
		}
		defer logg.Sync()

		if lang, _ := cmd.Flags().GetString("language"); lang != "" {
			cfg.Helper.Language = lang
		}

		p := provision.New(nil, nil, options(cfg), logg, nil)
		path, err := p.WriteHelper()
		if err != nil {
			return err
		}

		fmt.Println(path)
		return nil
	},
}

func init() {
	helperCmd.Flags().String("language", "", "Helper language: go or ts (HELPER_LANGUAGE)")
	RootCmd.AddCommand(helperCmd)
}
