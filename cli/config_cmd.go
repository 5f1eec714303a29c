package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/binhbb2204/Translation-Hub/cli/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `View and modify Translation Hub CLI configuration.`,
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 4 {
		return "****"
	}
	return strings.Repeat("*", len(secret)-4) + secret[len(secret)-4:]
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the current configuration values. Secrets are masked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			printError("Configuration not initialized")
			fmt.Println("Run: translatehub init")
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Current Configuration:")
		fmt.Fprintln(out, "----------------------")
		fmt.Fprintln(out, "[server]")
		fmt.Fprintf(out, "  host: %s\n", cfg.Server.Host)
		fmt.Fprintf(out, "  http_port: %d\n", cfg.Server.HTTPPort)
		fmt.Fprintln(out, "[stats]")
		fmt.Fprintf(out, "  granularity: %s\n", cfg.Stats.Granularity)
		fmt.Fprintln(out, "[aws]")
		fmt.Fprintf(out, "  region: %s\n", cfg.AWS.Region)
		fmt.Fprintf(out, "  use_profile: %t\n", cfg.AWS.UseProfile)
		fmt.Fprintf(out, "  profile: %s\n", cfg.AWS.Profile)
		fmt.Fprintf(out, "  access_key_id: %s\n", mask(cfg.AWS.AccessKeyID))
		fmt.Fprintf(out, "  secret_access_key: %s\n", mask(cfg.AWS.SecretAccessKey))
		fmt.Fprintln(out, "[logging]")
		fmt.Fprintf(out, "  level: %s\n", cfg.Logging.Level)
		fmt.Fprintf(out, "  path: %s\n", cfg.Logging.Path)
		return nil
	},
}

// applySetting updates one "section.key" value in cfg.
func applySetting(cfg *config.Config, key, value string) error {
	parts := strings.Split(key, ".")
	if len(parts) != 2 {
		return fmt.Errorf("invalid key format. Use 'section.key'")
	}

	section := strings.ToLower(parts[0])
	k := strings.ToLower(parts[1])

	switch section + "." + k {
	case "server.host":
		cfg.Server.Host = value
	case "server.http_port":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for http_port")
		}
		cfg.Server.HTTPPort = v
	case "stats.granularity":
		if value != "day" && value != "hour" {
			return fmt.Errorf("granularity must be day or hour")
		}
		cfg.Stats.Granularity = value
	case "aws.region":
		cfg.AWS.Region = value
	case "aws.profile":
		cfg.AWS.Profile = value
	case "aws.use_profile":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for use_profile")
		}
		cfg.AWS.UseProfile = v
	case "logging.level":
		cfg.Logging.Level = value
	case "logging.path":
		cfg.Logging.Path = value
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}
	return nil
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long:  `Set a configuration value. Key should be in format 'section.key' (e.g., stats.granularity).`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		cfg, err := config.Load()
		if err != nil {
			printError("Configuration not initialized")
			return err
		}

		if err := applySetting(cfg, key, value); err != nil {
			return err
		}

		if err := config.Save(cfg); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		printSuccess(fmt.Sprintf("Updated %s to %s", key, value))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
