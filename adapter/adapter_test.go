package adapter_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/patterns/adapter"
)

func TestAdapter_Delegates(t *testing.T) {
	var buf bytes.Buffer
	a := adapter.Adapt(adapter.Sphere{})

	a.Draw(&buf)
	a.Resize(&buf, 5)
	assert.Equal(t, "Converting and drawing 3D shape into 2D\nDrawing 3D sphere\nConverting and resizing 3D shape\nResizing sphere\n", buf.String())
}

func TestAdapter_Area(t *testing.T) {
	assert.Equal(t, 25, adapter.Adapt(adapter.Sphere{}).Area())
	assert.Equal(t, 16, adapter.Adapt(adapter.Pyramid{}).Area())
}

func TestAdapter_SatisfiesInterface(t *testing.T) {
	var shapes []adapter.TwoDimensionalShape
	shapes = append(shapes, adapter.Triangle{}, adapter.Rectangle{}, adapter.Adapt(adapter.Pyramid{}))
	assert.Len(t, shapes, 3)
	assert.Equal(t, 11, shapes[0].Area())
	assert.Equal(t, 120, shapes[1].Area())
}
