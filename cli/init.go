package cli

import (
	"errors"
	"fmt"

	"github.com/binhbb2204/Translation-Hub/cli/config"
	"github.com/spf13/cobra"
)

var forceInit bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	Long:  `Create ~/.translatehub/config.yaml with default server, stats and AWS settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.Load(); err == nil && !forceInit {
			printInfo("Configuration already exists (use --force to overwrite)")
			return nil
		} else if err != nil && !errors.Is(err, config.ErrNotInitialized) && !forceInit {
			return err
		}

		if err := config.Init(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		path, _ := config.GetConfigPath()
		printSuccess(fmt.Sprintf("Configuration written to %s", path))
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&forceInit, "force", false, "overwrite an existing configuration")
}
