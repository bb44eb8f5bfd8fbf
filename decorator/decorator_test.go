package decorator_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/patterns/decorator"
)

func TestDecorators_Stack(t *testing.T) {
	w := decorator.WithVerticalScroll(decorator.WithHorizontalScroll(decorator.BasicWindow{}))
	assert.Equal(t, "Basic window without any extra features + horizontal scroll + vertical scroll", w.Description())

	var buf bytes.Buffer
	w.Draw(&buf)
	assert.Equal(t, "Drawing basic window\nDrawing horizontal scroll bar\nDrawing vertical scroll bar\n", buf.String())
}

func TestDecorators_Repeat(t *testing.T) {
	w := decorator.WithVerticalScroll(decorator.WithVerticalScroll(decorator.BasicWindow{}))
	assert.Equal(t, "Basic window without any extra features + vertical scroll + vertical scroll", w.Description())
}
