// Package composite demonstrates the Composite pattern: part-whole
// hierarchies where clients treat single objects and groups of objects the
// same way.
//
// Button and Scroll are leaves. Page is a composite that holds any Graphic,
// including other pages, and forwards Print to each child. Client code only
// ever sees Graphic.
package composite

import (
	"fmt"
	"io"
	"strings"
)

// Graphic is the common component interface.
type Graphic interface {
	// Print writes the graphic indented by depth levels.
	Print(w io.Writer, depth int)
}

func indent(depth int) string { return strings.Repeat("  ", depth) }

// Button is a leaf.
type Button struct{}

// Print implements Graphic.
func (Button) Print(w io.Writer, depth int) { fmt.Fprintf(w, "%sButton\n", indent(depth)) }

// Scroll is a leaf.
type Scroll struct{}

// Print implements Graphic.
func (Scroll) Print(w io.Writer, depth int) { fmt.Fprintf(w, "%sScroll\n", indent(depth)) }

// Page is a composite of graphics.
type Page struct {
	name     string
	children []Graphic
}

// NewPage returns an empty page.
func NewPage(name string) *Page { return &Page{name: name} }

// Add appends graphics to the page. Nil entries are dropped.
func (p *Page) Add(gs ...Graphic) {
	for _, g := range gs {
		if g != nil {
			p.children = append(p.children, g)
		}
	}
}

// Print implements Graphic: the page header, then every child one level
// deeper.
func (p *Page) Print(w io.Writer, depth int) {
	fmt.Fprintf(w, "%sPage %s, children:\n", indent(depth), p.name)
	for _, g := range p.children {
		g.Print(w, depth+1)
	}
}

// Count returns the number of leaves beneath p, at any depth.
func (p *Page) Count() int {
	n := 0
	for _, g := range p.children {
		if sub, ok := g.(*Page); ok {
			n += sub.Count()
			continue
		}
		n++
	}
	return n
}
