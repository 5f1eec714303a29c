package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/binhbb2204/Translation-Hub/internal/ratingui"
	"github.com/binhbb2204/Translation-Hub/pkg/logger"
	"github.com/binhbb2204/Translation-Hub/pkg/modelcatalog"
	"github.com/spf13/cobra"
)

var (
	rateStars          string
	rateForm           ratingui.Form
	rateTimeout        time.Duration
	rateShowStatsAfter bool
)

var rateCmd = &cobra.Command{
	Use:   "rate",
	Short: "Rate a translation",
	Long:  `Submit a 1-5 star rating for a translation produced by a Bedrock model.`,
	Example: `  translatehub rate --stars 4 --source-text Hello --translated-text Bonjour \
    --source-language en --target-language fr --model-id anthropic.claude-3-haiku-20240307-v1:0`,
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := serverURL()
		if err != nil {
			return err
		}

		form := rateForm
		if resolved, switched, ok := modelcatalog.ResolveModel(form.ModelID); switched {
			printInfo(fmt.Sprintf("%s requires an inference profile, rating %s", form.ModelID, modelcatalog.DisplayName(resolved)))
			form.ModelID = resolved
		} else if !ok {
			printInfo(fmt.Sprintf("%s requires an inference profile and none is configured", form.ModelID))
		}

		opts := []ratingui.Option{
			ratingui.WithNotifier(terminalNotifier{}),
			ratingui.WithLogger(logger.WithContext("component", "cli_rate")),
		}
		if rateShowStatsAfter {
			opts = append(opts, ratingui.WithRenderer(terminalRenderer{w: cmd.OutOrStdout()}))
		}
		ctrl := ratingui.NewController(ratingui.NewHTTPClient(base, nil), form, opts...)

		rank, err := ratingui.ParseRank(rateStars)
		if err != nil {
			return fmt.Errorf("--stars must be between %d and %d", ratingui.MinRank, ratingui.MaxRank)
		}
		if err := ctrl.ClickStar(rank); err != nil {
			return err
		}
		state := ctrl.State()
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", state.StarRow(), state.Label)

		ctx, cancel := context.WithTimeout(cmd.Context(), rateTimeout)
		defer cancel()
		// Outcomes are already printed by the notifier.
		if err := ctrl.SubmitRating(ctx); err != nil {
			return reportedError{err}
		}
		return nil
	},
}

func init() {
	rateCmd.Flags().StringVarP(&rateStars, "stars", "s", "", "rating from 1 to 5")
	rateCmd.Flags().StringVar(&rateForm.OriginalText, "source-text", "", "original text")
	rateCmd.Flags().StringVar(&rateForm.TranslatedText, "translated-text", "", "translated text")
	rateCmd.Flags().StringVar(&rateForm.SourceLanguage, "source-language", "", "source language code")
	rateCmd.Flags().StringVar(&rateForm.TargetLanguage, "target-language", "", "target language code")
	rateCmd.Flags().StringVar(&rateForm.ModelID, "model-id", "", "model id or inference profile ARN")
	rateCmd.Flags().DurationVar(&rateTimeout, "timeout", 10*time.Second, "request timeout")
	rateCmd.Flags().BoolVar(&rateShowStatsAfter, "show-stats", false, "print refreshed statistics after submitting")
	rateCmd.MarkFlagRequired("stars")
}
