package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/binhbb2204/Translation-Hub/cli/config"
	"github.com/binhbb2204/Translation-Hub/internal/ratingui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var useProfile bool

var credentialsCmd = &cobra.Command{
	Use:   "credentials",
	Short: "Choose how AWS credentials are supplied",
	Long: `Use the local AWS profile (--use-profile) or enter an access key pair.
The key inputs are only asked for when the profile is not used.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.Load(); err != nil {
			printError("Configuration not initialized")
			fmt.Println("Run: translatehub init")
			return err
		}

		state := ratingui.ToggleCredentials(ratingui.InitialState(), useProfile)

		in := bufio.NewReader(cmd.InOrStdin())
		var accessKey, secretKey string
		if state.AccessKeyEnabled {
			var err error
			if accessKey, err = prompt(in, "AWS access key ID: "); err != nil {
				return err
			}
		}
		if state.SecretKeyEnabled {
			var err error
			if secretKey, err = readSecret(in, "AWS secret access key: "); err != nil {
				return err
			}
		}
		if !state.UseProfile && (accessKey == "" || secretKey == "") {
			return fmt.Errorf("both access key ID and secret access key are required")
		}

		if err := config.SetCredentials(state.UseProfile, accessKey, secretKey); err != nil {
			return fmt.Errorf("failed to save credentials: %w", err)
		}

		if state.UseProfile {
			printSuccess("Using the local AWS profile")
		} else {
			printSuccess("Access key saved")
		}
		return nil
	},
}

func prompt(in *bufio.Reader, label string) (string, error) {
	fmt.Print(label)
	line, err := in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// readSecret hides input on a terminal and falls back to a plain line otherwise.
func readSecret(in *bufio.Reader, label string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return prompt(in, label)
	}
	fmt.Print(label)
	secret, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read secret: %w", err)
	}
	return strings.TrimSpace(string(secret)), nil
}

func init() {
	credentialsCmd.Flags().BoolVar(&useProfile, "use-profile", false, "use the local AWS profile instead of explicit keys")
}
