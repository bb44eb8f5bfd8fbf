// Package singleton demonstrates the Singleton pattern: exactly one Shop
// exists for the lifetime of the process and every caller reaches it
// through Instance.
//
// Instance is lazy and safe for concurrent use; sync.Once guarantees the
// constructor runs once even when many goroutines race for the first call.
package singleton

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
)

// Shop is the single shared instance. Callers reach it through Instance;
// a Shop built any other way is simply a different shop.
type Shop struct {
	calls atomic.Int64
}

var (
	once     sync.Once
	instance *Shop
)

func newShop() *Shop { return &Shop{} }

// Instance returns the process-wide Shop.
func Instance() *Shop {
	once.Do(func() {
		instance = newShop()
	})
	return instance
}

// PrintSomething writes a greeting to w and counts the call.
func (s *Shop) PrintSomething(w io.Writer) {
	n := s.calls.Add(1)
	fmt.Fprintf(w, "DO STH (call %d)\n", n)
}

// Calls is how many times PrintSomething has run.
func (s *Shop) Calls() int64 { return s.calls.Load() }
