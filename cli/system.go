package cli

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/binhbb2204/Translation-Hub/cli/config"
	"github.com/spf13/cobra"
)

var systemCmd = &cobra.Command{
	Use:   "system",
	Short: "System information",
	Long:  `Display system information and diagnostics.`,
}

var systemInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show system info",
	Long:  `Display OS, architecture, configuration and server readiness.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "System Information:")
		fmt.Fprintln(out, "-------------------")
		fmt.Fprintf(out, "OS: %s\n", runtime.GOOS)
		fmt.Fprintf(out, "Architecture: %s\n", runtime.GOARCH)
		fmt.Fprintf(out, "Go Version: %s\n", runtime.Version())
		fmt.Fprintf(out, "CPUs: %d\n", runtime.NumCPU())

		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintln(out, "\nConfiguration: Not initialized")
		} else {
			path, _ := config.GetConfigPath()
			fmt.Fprintln(out, "\nConfiguration:")
			fmt.Fprintf(out, "  Config Path: %s\n", path)
			fmt.Fprintf(out, "  Server: %s\n", cfg.ServerURL())
			fmt.Fprintf(out, "  Granularity: %s\n", cfg.Stats.Granularity)
			fmt.Fprintf(out, "  AWS Profile: %t\n", cfg.AWS.UseProfile)
		}

		fmt.Fprintln(out, "\nServer Connectivity:")
		base := serverOverride
		if base == "" && cfg != nil {
			base = cfg.ServerURL()
		}
		if base == "" {
			fmt.Fprintln(out, "  Status: Unknown (Config error)")
			return nil
		}

		client := http.Client{Timeout: 2 * time.Second}
		resp, err := client.Get(base + "/readyz")
		if err != nil {
			fmt.Fprintf(out, "  Status: ✗ Unreachable (%s)\n", err.Error())
			return nil
		}
		defer resp.Body.Close()

		var ready struct {
			Status      string `json:"status"`
			Reason      string `json:"reason"`
			Subscribers *int   `json:"event_subscribers"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&ready)

		if resp.StatusCode == http.StatusOK {
			fmt.Fprintf(out, "  Status: ✓ Online (HTTP %d)\n", resp.StatusCode)
		} else {
			fmt.Fprintf(out, "  Status: ⚠ Issues (HTTP %d) %s\n", resp.StatusCode, ready.Reason)
		}
		if ready.Subscribers != nil {
			fmt.Fprintf(out, "  Event subscribers: %d\n", *ready.Subscribers)
		}
		return nil
	},
}

func init() {
	systemCmd.AddCommand(systemInfoCmd)
}
