package observer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"sync"
)

// Observer is notified with the subject's new data.
type Observer interface {
	Update(data string)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(data string)

// Update calls f(data).
func (f ObserverFunc) Update(data string) { f(data) }

// Subject maintains observers and notifies them of changes.
type Subject interface {
	Register(o Observer)
	Notify(data string)
}

// InputReader is a Subject that reads lines from an io.Reader.
type InputReader struct {
	in *bufio.Reader

	mu        sync.RWMutex
	observers []Observer
}

// NewInputReader returns a reader over in.
func NewInputReader(in io.Reader) *InputReader {
	return &InputReader{in: bufio.NewReader(in)}
}

// Register implements Subject. Nil observers are ignored.
func (r *InputReader) Register(o Observer) {
	if o == nil {
		return
	}
	r.mu.Lock()
	r.observers = append(r.observers, o)
	r.mu.Unlock()
}

// Notify implements Subject: observers are called in registration order.
func (r *InputReader) Notify(data string) {
	r.mu.RLock()
	observers := append([]Observer(nil), r.observers...)
	r.mu.RUnlock()

	for _, o := range observers {
		o.Update(data)
	}
}

// Read consumes one line and notifies observers with it. It returns io.EOF
// when there is nothing left to read.
func (r *InputReader) Read() error {
	line, err := r.in.ReadString('\n')
	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		if line == "" {
			return io.EOF
		}
	default:
		return fmt.Errorf("observer: read input: %w", err)
	}
	r.Notify(strings.TrimRight(line, "\r\n"))
	return nil
}

// KeywordObserver reports lines containing the word "keyword".
type KeywordObserver struct {
	Out io.Writer
}

// Update implements Observer.
func (o KeywordObserver) Update(data string) {
	for _, f := range strings.Fields(data) {
		if f == "keyword" {
			fmt.Fprintln(o.Out, "Keyword encountered")
			return
		}
	}
}

var digit = regexp.MustCompile(`[0-9]`)

// NumberObserver reports lines containing a digit.
type NumberObserver struct {
	Out io.Writer
}

// Update implements Observer.
func (o NumberObserver) Update(data string) {
	if digit.MatchString(data) {
		fmt.Fprintln(o.Out, "Number encountered")
	}
}
