package composite_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/patterns/composite"
)

func TestPage_Count(t *testing.T) {
	inner := composite.NewPage("inner")
	inner.Add(composite.Button{}, composite.Scroll{})

	outer := composite.NewPage("outer")
	outer.Add(composite.Button{}, inner, nil, composite.NewPage("empty"))

	assert.Equal(t, 3, outer.Count())
	assert.Equal(t, 0, composite.NewPage("x").Count())
}

func TestPage_PrintUniform(t *testing.T) {
	var leaf, page bytes.Buffer
	composite.Button{}.Print(&leaf, 0)

	p := composite.NewPage("p")
	p.Add(composite.Button{})
	p.Print(&page, 0)

	assert.Equal(t, "Button\n", leaf.String())
	assert.Equal(t, "Page p, children:\n  Button\n", page.String())
}
