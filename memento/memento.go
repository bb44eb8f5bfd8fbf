package memento

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

// Sentinel errors.
var (
	ErrNoHistory       = errors.New("memento: no saved state")
	ErrForeignMemento  = errors.New("memento: memento belongs to another originator")
	ErrInvalidSnapshot = errors.New("memento: snapshot json is not valid")
)

// Memento is an opaque snapshot of an Originator.
type Memento struct {
	id        uuid.UUID
	owner     uuid.UUID
	createdAt time.Time
	state     string
}

// ID identifies the snapshot.
func (m Memento) ID() uuid.UUID { return m.id }

// CreatedAt is when the snapshot was taken.
func (m Memento) CreatedAt() time.Time { return m.createdAt }

type mementoJSON struct {
	ID        uuid.UUID `json:"id"`
	Owner     uuid.UUID `json:"owner"`
	CreatedAt time.Time `json:"created_at"`
	State     string    `json:"state"`
}

// MarshalJSON implements json.Marshaler.
func (m Memento) MarshalJSON() ([]byte, error) {
	return jsoniter.ConfigFastest.Marshal(mementoJSON{
		ID: m.id, Owner: m.owner, CreatedAt: m.createdAt, State: m.state,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Memento) UnmarshalJSON(data []byte) error {
	if !jsoniter.ConfigFastest.Valid(data) {
		return ErrInvalidSnapshot
	}
	var v mementoJSON
	if err := jsoniter.ConfigFastest.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	*m = Memento{id: v.ID, owner: v.Owner, createdAt: v.CreatedAt, state: v.State}
	return nil
}

// Originator holds the state being saved and restored.
type Originator struct {
	id    uuid.UUID
	state string
	out   io.Writer
	now   func() time.Time
}

// NewOriginator returns an Originator in state, announcing each state change
// on out (nil discards).
func NewOriginator(state string, out io.Writer) *Originator {
	if out == nil {
		out = io.Discard
	}
	o := &Originator{id: uuid.New(), out: out, now: time.Now}
	o.SetState(state)
	return o
}

// State returns the current state.
func (o *Originator) State() string { return o.state }

// SetState replaces the current state.
func (o *Originator) SetState(state string) {
	fmt.Fprintf(o.out, "Setting state to %s\n", state)
	o.state = state
}

// Save captures the current state.
func (o *Originator) Save() Memento {
	return Memento{id: uuid.New(), owner: o.id, createdAt: o.now(), state: o.state}
}

// Restore rolls back to m. Mementos taken from another Originator are
// rejected with ErrForeignMemento.
func (o *Originator) Restore(m Memento) error {
	if m.owner != o.id {
		return fmt.Errorf("%w: %s", ErrForeignMemento, m.id)
	}
	o.SetState(m.state)
	return nil
}
