package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	settingsThickness float64
	settingsHandle    float64
	settingsTray      string
	settingsChip      string
	settingsSizes     []int
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change appearance and unit settings",
	Long: `Without flags, print the current settings. Each flag changes one setting;
a zero or empty value resets it to the default.`,
	Args: cobra.NoArgs,
	RunE: withApp(runSettings),
}

func init() {
	f := settingsCmd.Flags()
	f.Float64Var(&settingsThickness, "thickness", 0, "Ring thickness of the dial and donut, in px")
	f.Float64Var(&settingsHandle, "handle", 0, "Dial handle diameter, in px")
	f.StringVar(&settingsTray, "tray", "", "Pebble tray color (#rrggbb)")
	f.StringVar(&settingsChip, "chip", "", "Pebble chip color (#rrggbb)")
	f.IntSliceVar(&settingsSizes, "sizes", nil, "Pebble sizes in minutes, e.g. 30,60")
}

func runSettings(cmd *cobra.Command, a *app, args []string) error {
	f := cmd.Flags()
	if f.Changed("thickness") {
		a.sess.SetRingThickness(settingsThickness)
	}
	if f.Changed("handle") {
		a.sess.SetHandleDiameter(settingsHandle)
	}
	if f.Changed("tray") || f.Changed("chip") {
		current := a.sess.Settings()
		tray, chip := current.PebbleColorTray, current.PebbleColorChip
		if f.Changed("tray") {
			tray = settingsTray
		}
		if f.Changed("chip") {
			chip = settingsChip
		}
		a.sess.SetPebbleColors(tray, chip)
	}
	if f.Changed("sizes") {
		if err := a.sess.SetSizes(settingsSizes); err != nil {
			return err
		}
	}

	data, err := yaml.Marshal(a.sess.Settings())
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "policy: %v\n%s", a.sess.Policy(), data)
	return nil
}
