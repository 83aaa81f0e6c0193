package terminal

import (
	"bufio"
)

// Pre-allocated ANSI sequence fragments (avoid allocations during draw)
var (
	// CSI sequences
	csi      = []byte("\x1b[")
	csiReset = []byte("\x1b[0m")
	csiClear = []byte("\x1b[2J\x1b[H")

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")
	csiCursorPos  = []byte("\x1b[") // followed by row;colH

	// SGR prefixes
	sgrNormal = []byte("\x1b[0;") // followed by code, 'm'
	sgrBold   = []byte("\x1b[1;") // followed by code, 'm'
)

// writeInt writes an integer without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		w.WriteByte('-')
		n = -n
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	// Fallback for >999 (rare)
	var buf [10]byte
	i := 9
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	w.Write(buf[i+1:])
}

// writeCursorPos writes cursor positioning sequence (0-indexed input,
// 1-based on the wire). Out-of-viewport coordinates are passed through
// uninterpreted; the receiving terminal decides what they mean.
func writeCursorPos(w *bufio.Writer, x, y int) {
	w.Write(csiCursorPos)
	writeInt(w, y+1)
	w.WriteByte(';')
	writeInt(w, x+1)
	w.WriteByte('H')
}
