package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/binhbb2204/Translation-Hub/cli/config"
	"github.com/spf13/cobra"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Manage logs",
	Long:  `View, search, and manage Translation Hub CLI logs.`,
}

func logDir() (string, error) {
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	return cfg.Logging.Path, nil
}

func logFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read log directory: %w", err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".log") {
			files = append(files, e.Name())
		}
	}
	return files, nil
}

// grepLogs prints every line of every log file in dir that match accepts.
func grepLogs(w io.Writer, dir string, match func(line string) bool) (int, error) {
	files, err := logFiles(dir)
	if err != nil {
		return 0, err
	}

	found := 0
	for _, name := range files {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		scanner := bufio.NewScanner(f)
		lineNum := 0
		for scanner.Scan() {
			lineNum++
			if line := scanner.Text(); match(line) {
				fmt.Fprintf(w, "[%s:%d] %s\n", name, lineNum, line)
				found++
			}
		}
		f.Close()
	}
	return found, nil
}

var logsErrorsCmd = &cobra.Command{
	Use:   "errors",
	Short: "Show error logs",
	Long:  `Display error entries from the log files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := logDir()
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Error Logs:")
		fmt.Fprintln(cmd.OutOrStdout(), "-----------")
		found, err := grepLogs(cmd.OutOrStdout(), dir, func(line string) bool {
			return strings.Contains(line, "level=error") || strings.Contains(line, `"level":"error"`)
		})
		if err != nil {
			return err
		}
		if found == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No errors found in logs.")
		}
		return nil
	},
}

var logsSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search logs",
	Long:  `Search for a specific string in the log files.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.ToLower(args[0])
		dir, err := logDir()
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Searching for \"%s\" in logs...\n", query)
		found, err := grepLogs(cmd.OutOrStdout(), dir, func(line string) bool {
			return strings.Contains(strings.ToLower(line), query)
		})
		if err != nil {
			return err
		}
		if found == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No matches found.")
		}
		return nil
	},
}

var logsCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean old logs",
	Long:  `Delete all log files in the log directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := logDir()
		if err != nil {
			return err
		}
		files, err := logFiles(dir)
		if err != nil {
			return err
		}

		count := 0
		for _, name := range files {
			if err := os.Remove(filepath.Join(dir, name)); err == nil {
				count++
			}
		}

		printSuccess(fmt.Sprintf("Deleted %d log files", count))
		return nil
	},
}

var logsRotateCmd = &cobra.Command{
	Use:   "rotate",
	Short: "Rotate logs",
	Long:  `Archive current logs and start fresh.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := logDir()
		if err != nil {
			return err
		}
		files, err := logFiles(dir)
		if err != nil {
			return err
		}

		timestamp := time.Now().Format("20060102-150405")
		count := 0
		for _, name := range files {
			if strings.Contains(name, "archive") {
				continue
			}
			newName := fmt.Sprintf("%s.archive.%s.log", strings.TrimSuffix(name, ".log"), timestamp)
			if err := os.Rename(filepath.Join(dir, name), filepath.Join(dir, newName)); err == nil {
				count++
			}
		}

		printSuccess(fmt.Sprintf("Rotated %d log files", count))
		return nil
	},
}

func init() {
	logsCmd.AddCommand(logsErrorsCmd)
	logsCmd.AddCommand(logsSearchCmd)
	logsCmd.AddCommand(logsCleanCmd)
	logsCmd.AddCommand(logsRotateCmd)
}
