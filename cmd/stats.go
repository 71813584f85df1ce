package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/temps-vecu/internal/chart"
	"github.com/Tiliavir/temps-vecu/internal/report"
	"github.com/Tiliavir/temps-vecu/internal/stats"
	"github.com/Tiliavir/temps-vecu/internal/timecalc"
)

var (
	statsRange   string
	statsGroup   string
	statsPercent bool
	statsHide    []string
	statsChart   string
	statsOut     string
	statsWidth   float64
	statsRatio   float64
	statsJSON    bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show where the time went over a range",
	Long: `Print the KPIs, the share of each theme or category, a calendar heatmap
and the mood summary. With --chart, write an SVG chart instead.
Ranges: a number of days (default 30), this-month or all.`,
	Args: cobra.NoArgs,
	RunE: withApp(runStats),
}

func init() {
	f := statsCmd.Flags()
	f.StringVar(&statsRange, "range", "30", "Days to cover: N, this-month or all")
	f.StringVar(&statsGroup, "group", "theme", "Group by theme or category")
	f.BoolVar(&statsPercent, "percent", false, "Scale stacked bars to 100%")
	f.StringSliceVar(&statsHide, "hide", nil, "Group keys to leave out")
	f.StringVar(&statsChart, "chart", "", "Render a chart: donut, bars, weekday, heat, mood, moodweek")
	f.StringVar(&statsOut, "out", "", "SVG output file (default <chart>.svg, - for stdout)")
	f.Float64Var(&statsWidth, "width", 0, "Chart container width in px")
	f.Float64Var(&statsRatio, "ratio", 1, "Device pixel ratio of the chart")
	f.BoolVar(&statsJSON, "json", false, "Print the aggregated report as JSON")
}

func runStats(cmd *cobra.Command, a *app, args []string) error {
	sel, err := timecalc.ParseSelector(statsRange)
	if err != nil {
		return err
	}
	g, err := stats.GroupingFor(statsGroup)
	if err != nil {
		return err
	}
	rep := stats.Build(a.sess.Snapshot(), sel, g, time.Now())
	hidden := stats.NewHidden(statsHide...)

	switch {
	case statsJSON:
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case statsChart != "":
		return writeChart(cmd, a, rep, hidden)
	}
	fmt.Fprintln(cmd.OutOrStdout(), report.New(cmd.OutOrStdout()).Stats(rep, hidden))
	return nil
}

func writeChart(cmd *cobra.Command, a *app, rep stats.Report, hidden stats.Hidden) error {
	kind, err := chart.ParseKind(statsChart)
	if err != nil {
		return err
	}
	o := chart.OptionsFrom(a.sess.Settings())
	o.Percent = statsPercent
	o.Hidden = hidden
	svg, err := chart.Render(kind, rep, o, statsWidth, statsRatio)
	if err != nil {
		return err
	}

	out := statsOut
	if out == "" {
		out = string(kind) + ".svg"
	}
	if out == "-" {
		_, err := svg.WriteTo(cmd.OutOrStdout())
		return err
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}
	if _, err := svg.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s chart to %s\n", kind, out)
	return nil
}
