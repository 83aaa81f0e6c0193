// Package emu is a headless screen for the renderer's output. It
// interprets the exact escape-sequence subset the terminal driver
// emits (clear, cursor positioning, SGR color, cursor visibility) into
// a fixed-size cell grid, so tests and previews can assert what a real
// terminal would display without one being attached.
//
// It is deliberately not a terminal emulator: no scrolling, no wrap,
// no charsets. Writes outside the grid are dropped, which mirrors how
// the status displays treat their fixed viewport.
package emu

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Cell is one character cell with the SGR state it was written under.
// Fg and Bg hold raw SGR codes (30-37/90-97 and 40-47/100-107), zero
// meaning default.
type Cell struct {
	Rune rune
	Fg   int
	Bg   int
	Bold bool
}

// Screen is a w-by-h cell grid fed through io.Writer.
type Screen struct {
	width, height int
	cells         []Cell

	curX, curY    int
	pen           Cell // current attributes; Rune unused
	cursorVisible bool

	pending []byte // incomplete escape tail held between writes
}

// New creates a cleared screen of the given dimensions.
func New(width, height int) *Screen {
	s := &Screen{
		width:         width,
		height:        height,
		cells:         make([]Cell, width*height),
		cursorVisible: true,
	}
	s.clear()
	return s
}

// Width returns the grid width in cells.
func (s *Screen) Width() int { return s.width }

// Height returns the grid height in cells.
func (s *Screen) Height() int { return s.height }

// CursorVisible reports the last cursor visibility request seen.
func (s *Screen) CursorVisible() bool { return s.cursorVisible }

// Cell returns the cell at zero-based (x, y). The second result is
// false outside the grid.
func (s *Screen) Cell(x, y int) (Cell, bool) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return Cell{}, false
	}
	return s.cells[y*s.width+x], true
}

// Row returns the characters of row y as a string, spaces included.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return ""
	}
	var b strings.Builder
	b.Grow(s.width)
	for x := 0; x < s.width; x++ {
		b.WriteRune(s.cells[y*s.width+x].Rune)
	}
	return b.String()
}

// String renders the whole grid, one line per row.
func (s *Screen) String() string {
	var b strings.Builder
	for y := 0; y < s.height; y++ {
		b.WriteString(s.Row(y))
		if y < s.height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Write consumes a chunk of driver output. It never fails; bytes the
// screen does not understand are silently discarded, like a terminal
// ignoring sequences it does not implement. An escape sequence split
// across writes is held back until the rest arrives.
func (s *Screen) Write(p []byte) (int, error) {
	b := p
	if len(s.pending) > 0 {
		b = append(s.pending, p...)
		s.pending = nil
	}
	if i := lastIncompleteEscape(b); i >= 0 {
		s.pending = append([]byte(nil), b[i:]...)
		b = b[:i]
	}
	for len(b) > 0 {
		seq, _, n, _ := ansi.DecodeSequence(b, 0, nil)
		if n == 0 {
			break
		}
		s.consume(seq)
		b = b[n:]
	}
	return len(p), nil
}

// lastIncompleteEscape returns the index of a trailing escape sequence
// that has no final byte yet, or -1 when the buffer ends on a complete
// item. Only the last escape needs checking; everything before it was
// terminated by definition.
func lastIncompleteEscape(b []byte) int {
	for j := len(b) - 1; j >= 0 && j >= len(b)-64; j-- {
		if b[j] != 0x1b {
			continue
		}
		if j == len(b)-1 {
			return j
		}
		if b[j+1] != '[' {
			return -1
		}
		for k := j + 2; k < len(b); k++ {
			if b[k] >= 0x40 && b[k] <= 0x7e {
				return -1
			}
		}
		return j
	}
	return -1
}

// WriteString is a convenience wrapper over Write.
func (s *Screen) WriteString(str string) (int, error) {
	return s.Write([]byte(str))
}

func (s *Screen) consume(seq []byte) {
	if ansi.HasCsiPrefix(seq) {
		s.handleCSI(seq)
		return
	}
	if len(seq) > 0 && seq[0] == 0x1b {
		// Non-CSI escape; the driver never emits these
		return
	}
	switch {
	case len(seq) == 1 && seq[0] == '\r':
		s.curX = 0
	case len(seq) == 1 && seq[0] == '\n':
		s.curY++
	case len(seq) == 1 && seq[0] < 0x20:
		// Other control bytes ignored
	default:
		s.put(seq)
	}
}

// put writes one grapheme at the cursor and advances by display width.
func (s *Screen) put(seq []byte) {
	r := []rune(string(seq))[0]
	w := runewidth.StringWidth(string(seq))
	if w < 1 {
		return
	}
	if s.curX >= 0 && s.curX < s.width && s.curY >= 0 && s.curY < s.height {
		c := s.pen
		c.Rune = r
		s.cells[s.curY*s.width+s.curX] = c
	}
	s.curX += w
}

func (s *Screen) handleCSI(seq []byte) {
	if len(seq) < 3 {
		return
	}
	final := seq[len(seq)-1]
	body := string(seq[2 : len(seq)-1])

	switch final {
	case 'H':
		// 1-based row;col, defaulting to home
		row, col := 1, 1
		params := splitParams(body)
		if len(params) > 0 {
			row = paramOr(params[0], 1)
		}
		if len(params) > 1 {
			col = paramOr(params[1], 1)
		}
		s.curY = row - 1
		s.curX = col - 1
	case 'J':
		// The driver only ever clears the full display
		if paramOr(body, 0) == 2 {
			s.clear()
		}
	case 'm':
		for _, p := range splitParams(body) {
			s.applySGR(paramOr(p, 0))
		}
		if body == "" {
			s.applySGR(0)
		}
	case 'l':
		if body == "?25" {
			s.cursorVisible = false
		}
	case 'h':
		if body == "?25" {
			s.cursorVisible = true
		}
	}
}

func (s *Screen) applySGR(code int) {
	switch {
	case code == 0:
		s.pen = Cell{}
	case code == 1:
		s.pen.Bold = true
	case code >= 30 && code <= 37, code >= 90 && code <= 97:
		s.pen.Fg = code
	case code >= 40 && code <= 47, code >= 100 && code <= 107:
		s.pen.Bg = code
	}
}

func (s *Screen) clear() {
	for i := range s.cells {
		s.cells[i] = Cell{Rune: ' '}
	}
	s.curX, s.curY = 0, 0
}

func splitParams(body string) []string {
	if body == "" {
		return nil
	}
	return strings.Split(body, ";")
}

func paramOr(p string, def int) int {
	if p == "" {
		return def
	}
	n := 0
	neg := false
	for i := 0; i < len(p); i++ {
		c := p[i]
		if i == 0 && c == '-' {
			neg = true
			continue
		}
		if c < '0' || c > '9' {
			return def
		}
		n = n*10 + int(c-'0')
	}
	if neg {
		return -n
	}
	return n
}
