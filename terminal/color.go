package terminal

import (
	"bufio"
	"strings"
)

// Color is a raw SGR parameter code. The recognized ranges are 30-37
// (foreground), 90-97 (bold foreground), 40-47 (background) and 100-107
// (bold background). Anything else renders as a plain attribute reset.
type Color uint8

// Foreground colors
const (
	Black   Color = 30
	Red     Color = 31
	Green   Color = 32
	Yellow  Color = 33
	Blue    Color = 34
	Magenta Color = 35
	Cyan    Color = 36
	White   Color = 37
)

// Bold foreground colors
const (
	BrightBlack   Color = 90
	BrightRed     Color = 91
	BrightGreen   Color = 92
	BrightYellow  Color = 93
	BrightBlue    Color = 94
	BrightMagenta Color = 95
	BrightCyan    Color = 96
	BrightWhite   Color = 97
)

// Background colors
const (
	BgBlack   Color = 40
	BgRed     Color = 41
	BgGreen   Color = 42
	BgYellow  Color = 43
	BgBlue    Color = 44
	BgMagenta Color = 45
	BgCyan    Color = 46
	BgWhite   Color = 47
)

// Bold background colors
const (
	BgBrightBlack   Color = 100
	BgBrightRed     Color = 101
	BgBrightGreen   Color = 102
	BgBrightYellow  Color = 103
	BgBrightBlue    Color = 104
	BgBrightMagenta Color = 105
	BgBrightCyan    Color = 106
	BgBrightWhite   Color = 107
)

// Palette selects which SGR encoding tier a Driver emits. Small targets
// keep the simple 7-color tier; anything modern handles the extended one.
type Palette uint8

const (
	// PaletteSimple recognizes foreground codes 31-37 only, always
	// emitted as reset-plus-set. Every other code resets attributes.
	PaletteSimple Palette = iota

	// PaletteExtended adds bold foreground, background and bold
	// background variants.
	PaletteExtended
)

// writeColor emits the SGR sequence for c under the given palette tier.
// Unrecognized codes degrade to a bare attribute reset rather than
// emitting a sequence the receiver might misinterpret.
func writeColor(w *bufio.Writer, p Palette, c Color) {
	code := int(c)
	switch p {
	case PaletteSimple:
		if code >= 31 && code <= 37 {
			w.Write(sgrNormal)
			writeInt(w, code)
			w.WriteByte('m')
			return
		}
	case PaletteExtended:
		switch {
		case code >= 30 && code <= 37:
			w.Write(sgrNormal)
			writeInt(w, code)
			w.WriteByte('m')
			return
		case code >= 90 && code <= 97:
			// Bold prefix reuses the normal code points
			w.Write(sgrBold)
			writeInt(w, code-60)
			w.WriteByte('m')
			return
		case code >= 40 && code <= 47:
			w.Write(csi)
			writeInt(w, code)
			w.WriteByte('m')
			return
		case code >= 100 && code <= 107:
			w.Write(sgrBold)
			writeInt(w, code-60)
			w.WriteByte('m')
			return
		}
	}
	w.Write(csiReset)
}

// colorNames maps layout-file color names to codes. The naming follows
// the layout designer convention: B_ for bold, BG_ for background.
var colorNames = map[string]Color{
	"BLACK": Black, "RED": Red, "GREEN": Green, "YELLOW": Yellow,
	"BLUE": Blue, "MAGENTA": Magenta, "CYAN": Cyan, "WHITE": White,

	"B_BLACK": BrightBlack, "B_RED": BrightRed, "B_GREEN": BrightGreen,
	"B_YELLOW": BrightYellow, "B_BLUE": BrightBlue, "B_MAGENTA": BrightMagenta,
	"B_CYAN": BrightCyan, "B_WHITE": BrightWhite,

	"BG_BLACK": BgBlack, "BG_RED": BgRed, "BG_GREEN": BgGreen,
	"BG_YELLOW": BgYellow, "BG_BLUE": BgBlue, "BG_MAGENTA": BgMagenta,
	"BG_CYAN": BgCyan, "BG_WHITE": BgWhite,

	"BG_B_BLACK": BgBrightBlack, "BG_B_RED": BgBrightRed,
	"BG_B_GREEN": BgBrightGreen, "BG_B_YELLOW": BgBrightYellow,
	"BG_B_BLUE": BgBrightBlue, "BG_B_MAGENTA": BgBrightMagenta,
	"BG_B_CYAN": BgBrightCyan, "BG_B_WHITE": BgBrightWhite,
}

// ColorNamed resolves a layout-file color name, case-insensitively.
// Unknown names report false; callers decide the fallback.
func ColorNamed(name string) (Color, bool) {
	c, ok := colorNames[strings.ToUpper(name)]
	return c, ok
}
