package bridge_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/patterns/bridge"
)

func TestVehicles_RunActionsInOrder(t *testing.T) {
	var got []string
	record := func(name string) bridge.Action {
		return bridge.ActionFunc(func(io.Writer) { got = append(got, name) })
	}

	bridge.NewOrdinaryCar(record("a"), record("b")).Build(io.Discard)
	assert.Equal(t, []string{"a", "b"}, got)

	got = nil
	bus := bridge.NewBus(record("x"))
	bus.Stages = 3
	bus.Build(io.Discard)
	assert.Equal(t, []string{"x", "x", "x"}, got)
}

func TestBus_DoubleDecker(t *testing.T) {
	var buf bytes.Buffer
	bus := bridge.NewBus(bridge.Assemble{})
	bus.Stages = 2
	bus.Build(&buf)
	assert.Equal(t, "Deck 1:\nAssembling\nDeck 2:\nAssembling\n", buf.String())
}

func TestVehicle_NoActions(t *testing.T) {
	var buf bytes.Buffer
	var v bridge.Vehicle = bridge.NewOrdinaryCar()
	v.Build(&buf)
	assert.Empty(t, buf.String())
}
