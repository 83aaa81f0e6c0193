// Package terminal renders shape descriptions as direct ANSI escape
// sequences over a one-way byte sink, typically a serial link to a
// character terminal.
//
// Features:
//   - Box, text, line, freehand sprite and progress bar primitives
//   - Simple (7-color) and extended (32-variant) SGR palettes
//   - Integer Bresenham line rasterization
//   - Pluggable sinks: real serial port, local console, any io.Writer
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI
// sequences. Output is fire-and-forget: no acknowledgement is awaited and
// no model of the remote screen is kept. Target receivers: VT100/xterm
// compatible terminals attached over a serial line.
package terminal
