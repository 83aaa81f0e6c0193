package main

import (
	_ "embed"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"serialui/screen"
	"serialui/terminal"
)

//go:embed logo.txt
var logoArt string

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Draw the dashboard screen and animate its temperature gauge",
	RunE:  runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	sink := buildSink()
	defer sink.Close()

	d := terminal.NewDriver(sink, terminal.PaletteExtended)
	if err := d.Begin(baudRate); err != nil {
		return err
	}
	defer d.End()
	log.Debug("sink ready", "baud", baudRate)

	screen.Dashboard().Draw(d)
	d.DrawFreehand(terminal.Freehand{
		X:     56,
		Y:     16,
		Rows:  strings.Split(strings.TrimRight(logoArt, "\n"), "\n"),
		Color: terminal.BrightCyan,
	})

	// Sweep the gauge up and flag an over-temperature condition near
	// the top, the way a sensor loop on the target would.
	for t := 0.0; t <= 100; t += 2.5 {
		screen.UpdateDashboard(d, t, t <= 80)
		time.Sleep(100 * time.Millisecond)
	}
	time.Sleep(time.Second)

	d.MoveCursor(0, 24)
	return nil
}
