// Package facade demonstrates the Facade pattern: one simple front for a
// subsystem of cooperating parts.
//
// Booting needs the CPU, the disk and memory to be driven in a precise
// order. Computer.Start hides that sequence; clients that only want a
// running machine never touch the parts.
package facade

import (
	"bytes"
	"fmt"
	"io"
)

// Boot constants.
const (
	BootAddress = 0x7c00
	BootSector  = 0
	SectorSize  = 512
)

// CPU is a subsystem part.
type CPU struct{ out io.Writer }

func (c CPU) Freeze()           { fmt.Fprintln(c.out, "Freezing...") }
func (c CPU) Jump(position int) { fmt.Fprintf(c.out, "Jumping to %#x...\n", position) }
func (c CPU) Execute(instruction int) {
	fmt.Fprintf(c.out, "Executing instruction id %d\n", instruction)
}

// HardDrive is a subsystem part backed by an in-memory image.
type HardDrive struct {
	out   io.Writer
	image []byte
}

// Read returns a copy of size bytes starting at sector lba, fewer at the
// end of the image. A negative lba or a non-positive size reads nothing.
func (h HardDrive) Read(lba, size int) []byte {
	fmt.Fprintln(h.out, "Reading...")
	if lba < 0 || size <= 0 || lba > len(h.image)/SectorSize {
		return nil
	}
	start := lba * SectorSize
	if start >= len(h.image) {
		return nil
	}
	end := min(start+size, len(h.image))
	return bytes.Clone(h.image[start:end])
}

// Memory is a subsystem part.
type Memory struct {
	out    io.Writer
	loaded map[int][]byte
}

// Load places data at position.
func (m *Memory) Load(position int, data []byte) {
	fmt.Fprintf(m.out, "Loading %d bytes into memory\n", len(data))
	if m.loaded == nil {
		m.loaded = make(map[int][]byte)
	}
	m.loaded[position] = bytes.Clone(data)
}

// At returns what was loaded at position.
func (m *Memory) At(position int) []byte { return m.loaded[position] }

// Computer is the facade.
type Computer struct {
	CPU       CPU
	HardDrive HardDrive
	Memory    *Memory
}

// NewComputer wires the subsystem parts around a disk image, all reporting
// to out.
func NewComputer(out io.Writer, image []byte) *Computer {
	if out == nil {
		out = io.Discard
	}
	return &Computer{
		CPU:       CPU{out: out},
		HardDrive: HardDrive{out: out, image: image},
		Memory:    &Memory{out: out},
	}
}

// Start boots the machine.
func (c *Computer) Start() {
	c.CPU.Freeze()
	c.Memory.Load(BootAddress, c.HardDrive.Read(BootSector, SectorSize))
	c.CPU.Jump(BootAddress)
	c.CPU.Execute(1)
}
