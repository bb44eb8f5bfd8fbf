package abstractfactory

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors.
var (
	ErrUnknownPlatform   = errors.New("abstractfactory: unknown platform")
	ErrUnsupportedButton = errors.New("abstractfactory: unsupported button type")
)

// ButtonType selects a product within a family.
type ButtonType int

// Button types.
const (
	Close ButtonType = iota
	Send
	Reject
)

// String returns the lower-case name of t.
func (t ButtonType) String() string {
	switch t {
	case Close:
		return "close"
	case Send:
		return "send"
	case Reject:
		return "reject"
	default:
		return fmt.Sprintf("ButtonType(%d)", int(t))
	}
}

// Button is the abstract product.
type Button interface {
	Click(w io.Writer)
}

// Factory creates the buttons of one platform.
type Factory interface {
	CreateButton(t ButtonType) (Button, error)
}

// platformButton is the product shared by both families; only its label
// differs.
type platformButton struct {
	platform string
	kind     ButtonType
}

func (b platformButton) Click(w io.Writer) {
	fmt.Fprintf(w, "%s %s button clicked\n", b.platform, b.kind)
}

// WindowsFactory creates Windows buttons.
type WindowsFactory struct{}

// CreateButton implements Factory.
func (WindowsFactory) CreateButton(t ButtonType) (Button, error) {
	return newButton("Windows", t)
}

// LinuxFactory creates Linux buttons.
type LinuxFactory struct{}

// CreateButton implements Factory.
func (LinuxFactory) CreateButton(t ButtonType) (Button, error) {
	return newButton("Linux", t)
}

func newButton(platform string, t ButtonType) (Button, error) {
	switch t {
	case Close, Send, Reject:
		return platformButton{platform: platform, kind: t}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedButton, t)
	}
}

// ForPlatform returns the factory for "windows" or "linux" (case-insensitive).
func ForPlatform(name string) (Factory, error) {
	switch strings.ToLower(name) {
	case "windows":
		return WindowsFactory{}, nil
	case "linux":
		return LinuxFactory{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlatform, name)
	}
}
