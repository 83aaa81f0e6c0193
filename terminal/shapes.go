package terminal

// Shape is any drawable primitive. Shapes are immutable value records;
// the driver never retains them after a draw call returns.
type Shape interface {
	drawOn(d *Driver)
}

// Box is a rectangular outline. A well-formed outline needs W and H of
// at least 2 (corners plus one edge cell per side); smaller values
// produce degenerate overlapping output and are not guarded against.
type Box struct {
	X, Y  int
	W, H  int
	Color Color
}

// Text is a label at a fixed position. Content may carry a fmt template
// for later interpolation through Driver.Printf.
type Text struct {
	X, Y    int
	Content string
	Color   Color
}

// Line is a single-glyph-wide segment between two endpoints, inclusive.
type Line struct {
	X1, Y1 int
	X2, Y2 int
	Color  Color
}

// Freehand is a multi-row sprite anchored at its top-left corner. Row i
// renders at (X, Y+i); rows may have any length, nothing is clipped.
type Freehand struct {
	X, Y  int
	Rows  []string
	Color Color
}

func (b Box) drawOn(d *Driver)      { d.DrawBox(b) }
func (t Text) drawOn(d *Driver)     { d.DrawText(t) }
func (l Line) drawOn(d *Driver)     { d.DrawLine(l) }
func (f Freehand) drawOn(d *Driver) { d.DrawFreehand(f) }
