package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.bug.st/serial"
	"golang.org/x/term"
)

// ErrSinkNotOpen is returned when writing to a sink before Open.
var ErrSinkNotOpen = errors.New("terminal: sink not open")

// Sink is the byte channel a Driver emits into. Implementations are
// one-directional; nothing is ever read back from the terminal.
type Sink interface {
	// Open establishes the channel at the given baud rate. Rate is
	// advisory for sinks that have no line speed (console, writers).
	Open(baud int) error

	// Ready reports whether the channel accepts writes. Begin polls
	// this after Open; a sink that never becomes ready blocks Begin
	// forever.
	Ready() bool

	io.Writer

	Close() error
}

// SerialSink writes to a physical serial port (8N1 framing).
type SerialSink struct {
	name string
	port serial.Port
}

// NewSerialSink creates a sink for the named port, e.g. /dev/ttyUSB0.
// The port is not opened until Open.
func NewSerialSink(name string) *SerialSink {
	return &SerialSink{name: name}
}

func (s *SerialSink) Open(baud int) error {
	port, err := serial.Open(s.name, &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return fmt.Errorf("open serial port %s: %w", s.name, err)
	}
	s.port = port
	return nil
}

func (s *SerialSink) Ready() bool {
	return s.port != nil
}

func (s *SerialSink) Write(p []byte) (int, error) {
	if s.port == nil {
		return 0, ErrSinkNotOpen
	}
	return s.port.Write(p)
}

func (s *SerialSink) Close() error {
	if s.port == nil {
		return nil
	}
	err := s.port.Close()
	s.port = nil
	return err
}

// ConsoleSink writes to stdout for off-target development. When stdout
// is a live terminal the sink records its dimensions at Open time.
type ConsoleSink struct {
	out    *os.File
	opened bool
	tty    bool
	w, h   int
}

func NewConsoleSink() *ConsoleSink {
	return &ConsoleSink{out: os.Stdout}
}

func (c *ConsoleSink) Open(baud int) error {
	fd := int(c.out.Fd())
	if term.IsTerminal(fd) {
		c.tty = true
		if w, h, err := term.GetSize(fd); err == nil {
			c.w, c.h = w, h
		}
	}
	c.opened = true
	return nil
}

func (c *ConsoleSink) Ready() bool {
	return c.opened
}

func (c *ConsoleSink) Write(p []byte) (int, error) {
	if !c.opened {
		return 0, ErrSinkNotOpen
	}
	return c.out.Write(p)
}

func (c *ConsoleSink) Close() error {
	c.opened = false
	return nil
}

// IsTerminal reports whether the console is a live terminal rather than
// a pipe or file.
func (c *ConsoleSink) IsTerminal() bool {
	return c.tty
}

// Size returns the console dimensions recorded at Open, or zeros when
// stdout is not a terminal.
func (c *ConsoleSink) Size() (width, height int) {
	return c.w, c.h
}

// WriterSink adapts any io.Writer into an always-ready sink. Useful for
// capturing output in tests or feeding a screen emulator.
type WriterSink struct {
	w io.Writer
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Open(baud int) error { return nil }

func (s *WriterSink) Ready() bool { return s.w != nil }

func (s *WriterSink) Write(p []byte) (int, error) { return s.w.Write(p) }

func (s *WriterSink) Close() error { return nil }
