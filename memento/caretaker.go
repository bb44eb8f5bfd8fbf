package memento

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// Caretaker is a LIFO history of mementos. Not safe for concurrent use.
type Caretaker struct {
	history []Memento
}

// Push records m as the most recent snapshot.
func (c *Caretaker) Push(m Memento) { c.history = append(c.history, m) }

// Pop removes and returns the most recent snapshot.
func (c *Caretaker) Pop() (Memento, error) {
	if len(c.history) == 0 {
		return Memento{}, ErrNoHistory
	}
	m := c.history[len(c.history)-1]
	c.history = c.history[:len(c.history)-1]
	return m, nil
}

// Len is the number of stored snapshots.
func (c *Caretaker) Len() int { return len(c.history) }

// MarshalJSON encodes the history, oldest first.
func (c *Caretaker) MarshalJSON() ([]byte, error) {
	if c.history == nil {
		return []byte("[]"), nil
	}
	return jsoniter.ConfigFastest.Marshal(c.history)
}

// UnmarshalJSON replaces the history with the decoded one.
func (c *Caretaker) UnmarshalJSON(data []byte) error {
	if !jsoniter.ConfigFastest.Valid(data) {
		return ErrInvalidSnapshot
	}
	var history []Memento
	if err := jsoniter.ConfigFastest.Unmarshal(data, &history); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	c.history = history
	return nil
}
