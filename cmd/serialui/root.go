package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"serialui/terminal"
)

var (
	portName string
	baudRate int
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "serialui",
	Short: "ANSI status-display renderer for serial terminals",
	Long: `serialui draws boxes, text, lines, sprites and progress bars as raw
ANSI escape sequences, either on the local console or over a serial
link to an attached character terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&portName, "port", "", "serial port to draw to (default: stdout)")
	rootCmd.PersistentFlags().IntVar(&baudRate, "baud", 115200, "serial baud rate")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cobra.OnInitialize(func() {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	})
}

// buildSink picks the output channel from the flags: a serial port when
// --port is set, the local console otherwise.
func buildSink() terminal.Sink {
	if portName != "" {
		log.Debug("using serial sink", "port", portName, "baud", baudRate)
		return terminal.NewSerialSink(portName)
	}
	log.Debug("using console sink")
	return terminal.NewConsoleSink()
}
