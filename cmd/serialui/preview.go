package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"serialui/emu"
	"serialui/screen"
	"serialui/terminal"
)

var (
	previewScreen string
	previewWidth  int
	previewHeight int
)

var previewCmd = &cobra.Command{
	Use:   "preview <layout.toml>",
	Short: "Render a layout file into a headless screen and print the grid",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().StringVar(&previewScreen, "screen", "", "screen name to render (default: first in file)")
	previewCmd.Flags().IntVar(&previewWidth, "width", 80, "preview grid width")
	previewCmd.Flags().IntVar(&previewHeight, "height", 24, "preview grid height")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	screens, err := screen.Load(args[0])
	if err != nil {
		return err
	}
	if len(screens) == 0 {
		return fmt.Errorf("no screens defined in %s", args[0])
	}

	target := screens[0]
	if previewScreen != "" {
		found := false
		for _, s := range screens {
			if s.Name == previewScreen {
				target, found = s, true
				break
			}
		}
		if !found {
			return fmt.Errorf("screen %q not found in %s", previewScreen, args[0])
		}
	}
	log.Debug("rendering preview", "screen", target.Name,
		"elements", len(target.Elements))

	grid := emu.New(previewWidth, previewHeight)
	d := terminal.NewDriver(terminal.NewWriterSink(grid), terminal.PaletteExtended)
	if err := d.Begin(baudRate); err != nil {
		return err
	}
	target.Draw(d)

	out := cmd.OutOrStdout()
	for y := 0; y < grid.Height(); y++ {
		fmt.Fprintln(out, grid.Row(y))
	}
	return nil
}
