package terminal

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// recordSink captures driver output and becomes ready after a
// configurable number of polls, to exercise the Begin wait loop.
type recordSink struct {
	buf        bytes.Buffer
	opened     bool
	openErr    error
	readyAfter int
	polls      int
}

func (r *recordSink) Open(baud int) error {
	if r.openErr != nil {
		return r.openErr
	}
	r.opened = true
	return nil
}

func (r *recordSink) Ready() bool {
	r.polls++
	return r.opened && r.polls > r.readyAfter
}

func (r *recordSink) Write(p []byte) (int, error) { return r.buf.Write(p) }
func (r *recordSink) Close() error                { return nil }

func newTestDriver(p Palette) (*Driver, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewDriver(NewWriterSink(&buf), p), &buf
}

func TestSetColorSequences(t *testing.T) {
	tests := []struct {
		name    string
		palette Palette
		color   Color
		want    string
	}{
		{"Simple white", PaletteSimple, White, "\x1b[0;37m"},
		{"Simple red", PaletteSimple, Red, "\x1b[0;31m"},
		{"Simple rejects black", PaletteSimple, Black, "\x1b[0m"},
		{"Simple rejects bold", PaletteSimple, BrightRed, "\x1b[0m"},
		{"Simple rejects background", PaletteSimple, BgBlue, "\x1b[0m"},
		{"Extended black", PaletteExtended, Black, "\x1b[0;30m"},
		{"Extended white", PaletteExtended, White, "\x1b[0;37m"},
		{"Extended bold red", PaletteExtended, BrightRed, "\x1b[1;31m"},
		{"Extended bold white", PaletteExtended, BrightWhite, "\x1b[1;37m"},
		{"Extended background blue", PaletteExtended, BgBlue, "\x1b[44m"},
		{"Extended bold background cyan", PaletteExtended, BgBrightCyan, "\x1b[1;46m"},
		{"Extended out of range resets", PaletteExtended, Color(5), "\x1b[0m"},
		{"Extended gap resets", PaletteExtended, Color(60), "\x1b[0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, buf := newTestDriver(tt.palette)
			d.SetColor(tt.color)
			if got := buf.String(); got != tt.want {
				t.Errorf("SetColor(%d) = %q, want %q", tt.color, got, tt.want)
			}
		})
	}
}

func TestResetAttr(t *testing.T) {
	d, buf := newTestDriver(PaletteExtended)
	d.ResetAttr()
	if got := buf.String(); got != "\x1b[0m" {
		t.Errorf("ResetAttr() = %q, want ESC[0m", got)
	}
}

func TestMoveCursorOneBasedConversion(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want string
	}{
		{"Origin", 0, 0, "\x1b[1;1H"},
		{"Interior", 4, 2, "\x1b[3;5H"},
		{"Three digit", 120, 45, "\x1b[46;121H"},
		{"Negative passed through", -5, -3, "\x1b[-2;-4H"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, buf := newTestDriver(PaletteExtended)
			d.MoveCursor(tt.x, tt.y)
			if got := buf.String(); got != tt.want {
				t.Errorf("MoveCursor(%d, %d) = %q, want %q", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestClearScreen(t *testing.T) {
	d, buf := newTestDriver(PaletteExtended)
	d.ClearScreen()
	if got := buf.String(); got != "\x1b[2J\x1b[H" {
		t.Errorf("ClearScreen() = %q", got)
	}
}

func TestDrawTextSequence(t *testing.T) {
	d, buf := newTestDriver(PaletteExtended)
	d.DrawText(Text{X: 3, Y: 1, Content: "HELLO", Color: Cyan})
	want := "\x1b[0;36m\x1b[2;4HHELLO\x1b[0m"
	if got := buf.String(); got != want {
		t.Errorf("DrawText() = %q, want %q", got, want)
	}
}

func TestPrintfFormatsIntoSlot(t *testing.T) {
	d, buf := newTestDriver(PaletteExtended)
	d.Printf(Text{X: 23, Y: 3, Content: "%0.1f C", Color: Yellow}, 42.5)
	want := "\x1b[0;33m\x1b[4;24H42.5 C\x1b[0m"
	if got := buf.String(); got != want {
		t.Errorf("Printf() = %q, want %q", got, want)
	}
}

func TestPrintfTruncatesOversizedOutput(t *testing.T) {
	d, buf := newTestDriver(PaletteExtended)
	d.Printf(Text{Content: "%s", Color: White}, strings.Repeat("A", 500))

	got := buf.String()
	if n := strings.Count(got, "A"); n != printfBufSize {
		t.Errorf("expected %d glyphs after truncation, got %d", printfBufSize, n)
	}
}

func TestDrawIdempotent(t *testing.T) {
	shapes := []struct {
		name  string
		shape Shape
	}{
		{"Box", Box{X: 1, Y: 1, W: 6, H: 4, Color: White}},
		{"Text", Text{X: 0, Y: 0, Content: "STATUS", Color: Green}},
		{"Line", Line{X1: 0, Y1: 0, X2: 7, Y2: 3, Color: Red}},
		{"Freehand", Freehand{X: 2, Y: 2, Rows: []string{"/\\", "\\/"}, Color: Blue}},
	}

	for _, tt := range shapes {
		t.Run(tt.name, func(t *testing.T) {
			d, buf := newTestDriver(PaletteExtended)
			d.Draw(tt.shape)
			first := buf.String()
			buf.Reset()
			d.Draw(tt.shape)
			if second := buf.String(); second != first {
				t.Errorf("second draw differs from first:\n%q\n%q", first, second)
			}
		})
	}
}

func TestBeginWaitsForReadySink(t *testing.T) {
	sink := &recordSink{readyAfter: 3}
	d := NewDriver(sink, PaletteExtended)
	if err := d.Begin(115200); err != nil {
		t.Fatalf("Begin() error: %v", err)
	}

	if sink.polls <= 3 {
		t.Errorf("expected more than 3 readiness polls, got %d", sink.polls)
	}
	want := "\x1b[?25l\x1b[2J\x1b[H"
	if got := sink.buf.String(); got != want {
		t.Errorf("Begin() emitted %q, want hide cursor + clear", got)
	}
}

func TestBeginPropagatesOpenError(t *testing.T) {
	openErr := errors.New("no such device")
	sink := &recordSink{openErr: openErr}
	d := NewDriver(sink, PaletteExtended)

	err := d.Begin(9600)
	if err == nil {
		t.Fatal("Begin() succeeded with failing sink")
	}
	if !errors.Is(err, openErr) {
		t.Errorf("Begin() error %v does not wrap sink error", err)
	}
}

func TestEndRestoresCursor(t *testing.T) {
	d, buf := newTestDriver(PaletteExtended)
	d.End()
	if got := buf.String(); got != "\x1b[?25h\x1b[0m" {
		t.Errorf("End() = %q", got)
	}
}

func TestWriteToUnopenedSinks(t *testing.T) {
	sinks := []struct {
		name string
		sink Sink
	}{
		{"Serial", NewSerialSink("/dev/null")},
		{"Console closed", func() Sink {
			c := NewConsoleSink()
			c.Open(0)
			c.Close()
			return c
		}()},
	}

	for _, tt := range sinks {
		t.Run(tt.name, func(t *testing.T) {
			if tt.sink.Ready() {
				t.Error("sink reports ready before open")
			}
			if _, err := tt.sink.Write([]byte("x")); !errors.Is(err, ErrSinkNotOpen) {
				t.Errorf("expected ErrSinkNotOpen, got %v", err)
			}
		})
	}
}
