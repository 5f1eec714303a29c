package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/binhbb2204/Translation-Hub/cli/config"
	"github.com/binhbb2204/Translation-Hub/internal/events"
	"github.com/binhbb2204/Translation-Hub/internal/ratingui"
	"github.com/binhbb2204/Translation-Hub/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	statsGranularity string
	statsFollow      bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show rating statistics",
	Long:  `Show rating trends, distribution, language pairs, models and insights for the last 7 days.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := serverURL()
		if err != nil {
			return err
		}

		granularity := statsGranularity
		if granularity == "" {
			if cfg, err := config.Load(); err == nil {
				granularity = cfg.Stats.Granularity
			}
		}

		log := logger.WithContext("component", "cli_stats")
		ctrl := ratingui.NewController(ratingui.NewHTTPClient(base, nil), ratingui.Form{},
			ratingui.WithRenderer(terminalRenderer{w: cmd.OutOrStdout()}),
			ratingui.WithGranularitySource(ratingui.FixedGranularity(granularity)),
			ratingui.WithNotifier(terminalNotifier{}),
			ratingui.WithLogger(log),
		)

		if !statsFollow {
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()
			return ctrl.LoadRatingStats(ctx)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		queue := make(chan ratingui.Event, 8)
		done := make(chan struct{})
		go func() {
			defer close(done)
			ctrl.Run(ctx, queue)
		}()

		queue <- ratingui.RefreshClicked()
		printInfo("Following rating events, Ctrl+C to stop")
		err = followEvents(ctx, base, func(ev events.Event) {
			if ev.Type != events.TypeRatingSubmitted {
				return
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n[%s] %s\n", time.Unix(ev.Timestamp, 0).Format(time.Kitchen), ev.Message)
			select {
			case queue <- ratingui.RefreshClicked():
			default:
				log.Debug("refresh_dropped")
			}
		})
		close(queue)
		<-done
		return err
	},
}

func init() {
	statsCmd.Flags().StringVarP(&statsGranularity, "granularity", "g", "", "trend bucket: day or hour (default from config)")
	statsCmd.Flags().BoolVarP(&statsFollow, "follow", "f", false, "re-render whenever a rating is submitted")
}
