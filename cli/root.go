package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/binhbb2204/Translation-Hub/cli/config"
	"github.com/binhbb2204/Translation-Hub/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	serverOverride string
	verbose        bool
	logFile        io.Closer
)

var rootCmd = &cobra.Command{
	Use:           "translatehub",
	Short:         "Translation Hub rating client",
	Long:          `Rate translations and browse rating statistics from a Translation Hub server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logFile != nil {
			logFile.Close()
		}
	},
}

// setupLogging writes CLI logs to <logging.path>/cli.log once the config exists.
func setupLogging() {
	level := logger.INFO
	if verbose {
		level = logger.DEBUG
	}

	cfg, err := config.Load()
	if err != nil {
		if verbose {
			logger.Init(level, false, os.Stderr)
		} else {
			logger.Init(level, false, nil)
		}
		return
	}
	if cfg.Logging.Level != "" && !verbose {
		level = logger.LogLevel(cfg.Logging.Level)
	}

	var w io.Writer = io.Discard
	if cfg.Logging.Path != "" {
		if err := os.MkdirAll(cfg.Logging.Path, 0o755); err == nil {
			f, err := os.OpenFile(filepath.Join(cfg.Logging.Path, "cli.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err == nil {
				logFile = f
				w = f
			}
		}
	}
	if verbose {
		w = io.MultiWriter(w, os.Stderr)
	}
	logger.Init(level, false, w)
}

// serverURL honours --server before the config file.
func serverURL() (string, error) {
	if serverOverride != "" {
		return serverOverride, nil
	}
	url, err := config.GetServerURL()
	if err != nil {
		printError("Configuration not initialized")
		fmt.Println("Run: translatehub init")
		return "", err
	}
	return url, nil
}

func printSuccess(msg string) {
	fmt.Printf("✓ %s\n", msg)
}

func printError(msg string) {
	fmt.Fprintf(os.Stderr, "✗ %s\n", msg)
}

func printInfo(msg string) {
	fmt.Printf("ℹ %s\n", msg)
}

// reportedError marks a failure the command already showed to the user.
type reportedError struct{ err error }

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

func Execute() error {
	err := rootCmd.Execute()
	var reported reportedError
	if err != nil && !errors.As(err, &reported) {
		printError(err.Error())
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverOverride, "server", "", "server base URL (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(rateCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(credentialsCmd)
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(systemCmd)
}
