package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/binhbb2204/Translation-Hub/internal/ratingui"
	"github.com/binhbb2204/Translation-Hub/pkg/modelcatalog"
	"github.com/binhbb2204/Translation-Hub/pkg/models"
	"github.com/guptarohit/asciigraph"
)

const barWidth = 30

// terminalRenderer draws the stats panels as text.
type terminalRenderer struct {
	w io.Writer
}

var _ ratingui.ChartRenderer = terminalRenderer{}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n%s\n", title, strings.Repeat("-", len(title)))
}

func (r terminalRenderer) RenderTrend(raw json.RawMessage, granularity string) error {
	var points []models.TimeSeriesPoint
	if err := json.Unmarshal(raw, &points); err != nil {
		return fmt.Errorf("decode time series: %w", err)
	}

	section(r.w, fmt.Sprintf("Average rating by %s", granularity))
	switch len(points) {
	case 0:
		fmt.Fprintln(r.w, "No ratings in this period")
		return nil
	case 1:
		p := points[0]
		fmt.Fprintf(r.w, "%s  %.2f (%d ratings)\n", p.TimePeriod, p.AvgRating, p.Count)
		return nil
	}

	series := make([]float64, len(points))
	for i, p := range points {
		series[i] = p.AvgRating
	}
	graph := asciigraph.Plot(series,
		asciigraph.Height(8),
		asciigraph.Precision(1),
		asciigraph.Caption(fmt.Sprintf("%s .. %s", points[0].TimePeriod, points[len(points)-1].TimePeriod)),
	)
	fmt.Fprintln(r.w, graph)
	return nil
}

func (r terminalRenderer) RenderDistribution(raw json.RawMessage) error {
	var buckets []models.RatingBucket
	if err := json.Unmarshal(raw, &buckets); err != nil {
		return fmt.Errorf("decode distribution: %w", err)
	}

	counts := make(map[int]int, len(buckets))
	most := 0
	for _, b := range buckets {
		counts[b.Rating] = b.Count
		if b.Count > most {
			most = b.Count
		}
	}

	section(r.w, "Rating distribution")
	for star := models.MaxRating; star >= models.MinRating; star-- {
		n := counts[star]
		width := 0
		if most > 0 {
			width = n * barWidth / most
		}
		fmt.Fprintf(r.w, "%d★ %-*s %d\n", star, barWidth, strings.Repeat("█", width), n)
	}
	return nil
}

func (r terminalRenderer) RenderLanguagePairs(raw json.RawMessage) error {
	var pairs []models.LanguagePairStats
	if err := json.Unmarshal(raw, &pairs); err != nil {
		return fmt.Errorf("decode language pairs: %w", err)
	}

	section(r.w, "Language pairs")
	if len(pairs) == 0 {
		fmt.Fprintln(r.w, "No data")
		return nil
	}
	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PAIR\tAVG\tCOUNT")
	for _, p := range pairs {
		fmt.Fprintf(tw, "%s\t%.2f\t%d\n", p.LanguagePair, p.AvgRating, p.Count)
	}
	return tw.Flush()
}

func (r terminalRenderer) RenderModels(raw json.RawMessage) error {
	var stats []models.ModelStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return fmt.Errorf("decode models: %w", err)
	}

	section(r.w, "Models")
	if len(stats) == 0 {
		fmt.Fprintln(r.w, "No data")
		return nil
	}
	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MODEL\tAVG\tCOUNT")
	for _, m := range stats {
		fmt.Fprintf(tw, "%s\t%.2f\t%d\n", modelcatalog.DisplayName(m.ModelID), m.AvgRating, m.Count)
	}
	return tw.Flush()
}

func (r terminalRenderer) RenderInsights(raw json.RawMessage) error {
	var insights []string
	if err := json.Unmarshal(raw, &insights); err != nil {
		return fmt.Errorf("decode insights: %w", err)
	}

	section(r.w, "Insights")
	for _, line := range insights {
		fmt.Fprintf(r.w, "• %s\n", line)
	}
	return nil
}

// terminalNotifier stands in for the page's blocking alert.
type terminalNotifier struct{}

func (terminalNotifier) Success(message string) { printSuccess(message) }
func (terminalNotifier) Failure(message string) { printError(message) }
