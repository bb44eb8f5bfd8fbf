package command

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Sentinel errors for the invoker.
var (
	// ErrUnknownCommand indicates no command is registered under the name.
	ErrUnknownCommand = errors.New("command: no such command")

	// ErrInvalidCommand indicates an empty name or a nil command.
	ErrInvalidCommand = errors.New("command: invalid registration")
)

// Command is a request packaged as a value.
type Command interface {
	Execute(ctx context.Context) error
}

// CommandFunc adapts a function to Command.
type CommandFunc func(ctx context.Context) error

// Execute calls f(ctx).
func (f CommandFunc) Execute(ctx context.Context) error { return f(ctx) }

// Invoker runs registered commands by name. The zero value is not usable;
// call NewInvoker. Safe for concurrent use.
type Invoker struct {
	mu       sync.RWMutex
	commands map[string]Command
}

// NewInvoker returns an empty Invoker.
func NewInvoker() *Invoker {
	return &Invoker{commands: make(map[string]Command)}
}

// Register stores cmd under name, replacing any previous command.
func (inv *Invoker) Register(name string, cmd Command) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidCommand)
	}
	if cmd == nil {
		return fmt.Errorf("%w: nil command for %q", ErrInvalidCommand, name)
	}
	inv.mu.Lock()
	inv.commands[name] = cmd
	inv.mu.Unlock()

	return nil
}

// Execute runs the command registered under name.
func (inv *Invoker) Execute(ctx context.Context, name string) error {
	inv.mu.RLock()
	cmd, ok := inv.commands[name]
	inv.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}

	return cmd.Execute(ctx)
}

// Names returns the registered names in lexical order.
func (inv *Invoker) Names() []string {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	names := make([]string, 0, len(inv.commands))
	for n := range inv.commands {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}
