// Package memento demonstrates the Memento pattern: saving and restoring the
// internal state of an object without breaking its encapsulation.
//
// Roles:
//
//   - Originator owns the state. It alone can write a Memento and read one
//     back.
//   - Memento is an opaque snapshot. Callers see its ID and creation time,
//     never the state.
//   - Caretaker keeps mementos for later rollback. It can persist its
//     history as JSON without understanding what it stores.
//
// Errors:
//
//   - ErrNoHistory: Pop on an empty Caretaker.
//   - ErrForeignMemento: a Memento was handed to an Originator that did not
//     create it.
//   - ErrInvalidSnapshot: persisted history is not valid JSON.
package memento
