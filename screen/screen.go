// Package screen holds named layout definitions: ordered shape
// instances grouped by logical screen, drawn through the terminal
// driver one element at a time. Screens are immutable after
// construction; redrawing one replays the same fixed call sequence.
package screen

import (
	"sort"

	"serialui/terminal"
)

// Element is one named shape within a screen. Layer controls paint
// order (lower layers first); elements on the same layer keep their
// declaration order.
type Element struct {
	Name  string
	Layer int
	Shape terminal.Shape
}

// Screen is a named, ordered collection of elements.
type Screen struct {
	Name     string
	Elements []Element
}

// Draw paints every element in layer order through d. One driver call
// per element, no batching.
func (s Screen) Draw(d *terminal.Driver) {
	els := make([]Element, len(s.Elements))
	copy(els, s.Elements)
	sort.SliceStable(els, func(i, j int) bool {
		return els[i].Layer < els[j].Layer
	})
	for _, e := range els {
		d.Draw(e.Shape)
	}
}

// Find returns the named element, or false if the screen has none.
func (s Screen) Find(name string) (Element, bool) {
	for _, e := range s.Elements {
		if e.Name == name {
			return e, true
		}
	}
	return Element{}, false
}
