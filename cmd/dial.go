package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/temps-vecu/internal/canvas"
	"github.com/Tiliavir/temps-vecu/internal/dial"
	"github.com/Tiliavir/temps-vecu/internal/stats"
	"github.com/Tiliavir/temps-vecu/internal/timecalc"
)

var (
	dialDate  string
	dialSize  float64
	dialRatio float64
	dialOut   string
	dialDrag  string
)

var dialCmd = &cobra.Command{
	Use:   "dial <theme>",
	Short: "Render a theme's dial for a day as SVG",
	Long: `Write the dial of one theme as an SVG file. --drag replays a pointer
gesture over the dial (points "x,y" separated by ";", in px from the top-left
corner) and stores the value it lands on, exactly like dragging the handle.`,
	Args: cobra.ExactArgs(1),
	RunE: withApp(runDial),
}

func init() {
	f := dialCmd.Flags()
	f.StringVar(&dialDate, "date", "", "Day (YYYY-MM-DD, today, yesterday); defaults to today")
	f.Float64Var(&dialSize, "size", 160, "Dial size in px")
	f.Float64Var(&dialRatio, "ratio", 1, "Device pixel ratio")
	f.StringVar(&dialOut, "out", "", "SVG output file (default dial.svg, - for stdout)")
	f.StringVar(&dialDrag, "drag", "", `Pointer gesture to replay, e.g. "80,10;150,80"`)
}

func runDial(cmd *cobra.Command, a *app, args []string) error {
	date, err := resolveDate(dialDate, time.Now())
	if err != nil {
		return err
	}
	theme, err := a.sess.FindTheme(args[0])
	if err != nil {
		return err
	}
	vp := canvas.Viewport{Width: dialSize, Height: dialSize, PixelRatio: dialRatio}
	scale := a.scale()

	if dialDrag != "" {
		points, err := parsePoints(dialDrag)
		if err != nil {
			return err
		}
		var setErr error
		tracker := dial.NewTracker(scale, vp, func(minutes int) {
			if _, err := a.sess.SetThemeTotal(date, theme.ID, float64(minutes)); err != nil {
				setErr = err
			}
		})
		for i, p := range points {
			phase := dial.Move
			if i == 0 {
				phase = dial.Down
			}
			tracker.Handle(dial.Event{Phase: phase, Source: dial.Mouse, X: p[0], Y: p[1]})
		}
		tracker.Handle(dial.Event{Phase: dial.Up, Source: dial.Mouse})
		if setErr != nil {
			return setErr
		}
	}

	entry, err := a.sess.Entry(date)
	if err != nil {
		return err
	}
	minutes := stats.TotalsByTheme(a.sess.Themes(), &entry)[theme.ID]
	layout := scale.Layout(vp, minutes, theme.Color, dial.StyleFrom(a.sess.Settings()))
	svg := canvas.NewSVG(vp)
	dial.Render(svg, layout)

	out := dialOut
	if out == "" {
		out = "dial.svg"
	}
	if out == "-" {
		_, err := svg.WriteTo(cmd.OutOrStdout())
		return err
	}
	if err := os.WriteFile(out, []byte(svg.String()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s → %s\n", date, theme.Name, timecalc.FormatBucket(minutes), out)
	return nil
}

// parsePoints reads "x,y;x,y;...".
func parsePoints(s string) ([][2]float64, error) {
	var out [][2]float64
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		xs, ys, ok := strings.Cut(part, ",")
		if !ok {
			return nil, fmt.Errorf("invalid point %q: want x,y", part)
		}
		x, xerr := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		y, yerr := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if xerr != nil || yerr != nil {
			return nil, fmt.Errorf("invalid point %q: want x,y", part)
		}
		out = append(out, [2]float64{x, y})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty gesture")
	}
	return out, nil
}
