package terminal

import (
	"bufio"
	"fmt"
	"time"
)

// printfBufSize bounds formatted label output. Longer results are
// truncated, matching the fixed on-target buffer.
const printfBufSize = 128

// readyPollInterval is the sleep between sink readiness checks in Begin.
const readyPollInterval = 10 * time.Millisecond

// Driver translates shape descriptors into ANSI output on a Sink. It is
// stateless apart from the write buffer: every operation is a finite,
// synchronous byte emission with no model of what is already on screen.
// Draw operations have no error channel; malformed input degrades to
// garbled output, never a reported failure.
//
// A Driver assumes a single caller. Interleaving draw calls from
// multiple goroutines corrupts the shared cursor/attribute state of the
// receiving terminal.
type Driver struct {
	sink    Sink
	w       *bufio.Writer
	palette Palette
}

// NewDriver creates a driver over the given sink. The sink is expected
// to be opened via Begin before any drawing.
func NewDriver(sink Sink, palette Palette) *Driver {
	return &Driver{
		sink:    sink,
		w:       bufio.NewWriterSize(sink, 4096),
		palette: palette,
	}
}

// Begin opens the sink at the given baud rate, waits for it to report
// ready, hides the cursor and clears the screen. It polls readiness
// every 10ms with no timeout; a sink that never becomes ready blocks
// forever. Call exactly once before drawing.
func (d *Driver) Begin(baud int) error {
	if err := d.sink.Open(baud); err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	for !d.sink.Ready() {
		time.Sleep(readyPollInterval)
	}
	d.w.Write(csiCursorHide)
	d.w.Write(csiClear)
	d.w.Flush()
	return nil
}

// End restores the cursor and attributes. The sink stays open; callers
// close it when done.
func (d *Driver) End() {
	d.w.Write(csiCursorShow)
	d.w.Write(csiReset)
	d.w.Flush()
}

// ClearScreen erases the display and homes the cursor.
func (d *Driver) ClearScreen() {
	d.w.Write(csiClear)
	d.w.Flush()
}

// MoveCursor positions the cursor at zero-based (x, y). Coordinates are
// converted to the terminal's 1-based addressing at emission; nothing
// is clamped or validated.
func (d *Driver) MoveCursor(x, y int) {
	writeCursorPos(d.w, x, y)
	d.w.Flush()
}

// SetColor applies the SGR attributes for c under the driver's palette.
func (d *Driver) SetColor(c Color) {
	writeColor(d.w, d.palette, c)
	d.w.Flush()
}

// ResetAttr clears all SGR attributes.
func (d *Driver) ResetAttr() {
	d.w.Write(csiReset)
	d.w.Flush()
}

// Draw renders any shape descriptor.
func (d *Driver) Draw(s Shape) {
	s.drawOn(d)
}

// DrawText renders a text label verbatim. No wrapping, no clipping.
func (d *Driver) DrawText(t Text) {
	d.DrawTextAt(t.X, t.Y, t.Content, t.Color)
}

// DrawTextAt renders s at zero-based (x, y) in the given color.
func (d *Driver) DrawTextAt(x, y int, s string, c Color) {
	writeColor(d.w, d.palette, c)
	writeCursorPos(d.w, x, y)
	d.w.WriteString(s)
	d.w.Write(csiReset)
	d.w.Flush()
}

// Printf formats args using t.Content as the template, truncates the
// result to the fixed label buffer size and draws it at t's slot. Used
// to push dynamic values (a temperature reading, a counter) into an
// otherwise static layout.
func (d *Driver) Printf(t Text, args ...any) {
	s := fmt.Sprintf(t.Content, args...)
	if len(s) > printfBufSize {
		s = s[:printfBufSize]
	}
	d.DrawTextAt(t.X, t.Y, s, t.Color)
}

// DrawBox renders a rectangular outline one cell at a time: dashes for
// the horizontal edges, pipes for the vertical edges, then the four
// plus corners. Corners are drawn last so edges never obscure them.
// Cost is O(w+h) cursor repositions; no run-length batching.
func (d *Driver) DrawBox(b Box) {
	writeColor(d.w, d.palette, b.Color)
	for i := 0; i < b.W; i++ {
		writeCursorPos(d.w, b.X+i, b.Y)
		d.w.WriteByte('-')
		writeCursorPos(d.w, b.X+i, b.Y+b.H-1)
		d.w.WriteByte('-')
	}
	for i := 0; i < b.H; i++ {
		writeCursorPos(d.w, b.X, b.Y+i)
		d.w.WriteByte('|')
		writeCursorPos(d.w, b.X+b.W-1, b.Y+i)
		d.w.WriteByte('|')
	}
	writeCursorPos(d.w, b.X, b.Y)
	d.w.WriteByte('+')
	writeCursorPos(d.w, b.X+b.W-1, b.Y)
	d.w.WriteByte('+')
	writeCursorPos(d.w, b.X, b.Y+b.H-1)
	d.w.WriteByte('+')
	writeCursorPos(d.w, b.X+b.W-1, b.Y+b.H-1)
	d.w.WriteByte('+')
	d.w.Write(csiReset)
	d.w.Flush()
}

// DrawLine rasterizes the segment with the integer error-accumulator
// form of Bresenham's algorithm, painting '#' at every visited cell,
// both endpoints inclusive.
func (d *Driver) DrawLine(l Line) {
	writeColor(d.w, d.palette, l.Color)
	dx, sx := abs(l.X2-l.X1), 1
	if l.X1 >= l.X2 {
		sx = -1
	}
	dy, sy := -abs(l.Y2-l.Y1), 1
	if l.Y1 >= l.Y2 {
		sy = -1
	}
	err := dx + dy
	x, y := l.X1, l.Y1
	for {
		writeCursorPos(d.w, x, y)
		d.w.WriteByte('#')
		if x == l.X2 && y == l.Y2 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
	d.w.Write(csiReset)
	d.w.Flush()
}

// DrawFreehand renders each sprite row verbatim at an incrementing y
// offset from the anchor. Rows may be any length; nothing is clipped.
func (d *Driver) DrawFreehand(f Freehand) {
	writeColor(d.w, d.palette, f.Color)
	for i, row := range f.Rows {
		writeCursorPos(d.w, f.X, f.Y+i)
		d.w.WriteString(row)
	}
	d.w.Write(csiReset)
	d.w.Flush()
}

// FillRect paints a w-by-h rectangle with the given glyph, cell by cell.
// Non-positive dimensions emit nothing.
func (d *Driver) FillRect(x, y, w, h int, glyph byte, c Color) {
	writeColor(d.w, d.palette, c)
	for i := 0; i < h; i++ {
		writeCursorPos(d.w, x, y+i)
		for j := 0; j < w; j++ {
			d.w.WriteByte(glyph)
		}
	}
	d.w.Write(csiReset)
	d.w.Flush()
}

// DrawProgressBar repaints the interior of b as a percentage gauge:
// solid '#' columns for the filled portion, spaces for the rest, inset
// one cell from the border so the box outline is left undisturbed.
// Percent is clamped to [0,100]; the fill width rounds down. Every call
// is a full interior repaint, there is no diffing against the previous
// level.
func (d *Driver) DrawProgressBar(b Box, percent float64, c Color) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	innerWidth := b.W - 2
	fillWidth := int(percent / 100 * float64(innerWidth))
	d.FillRect(b.X+1, b.Y+1, fillWidth, b.H-2, '#', c)
	d.FillRect(b.X+1+fillWidth, b.Y+1, innerWidth-fillWidth, b.H-2, ' ', c)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
