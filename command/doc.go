// Package command demonstrates the Command pattern.
//
// A receiver (LogReader) knows how to perform the work. Commands wrap a
// receiver and a single action behind the Command interface. The Invoker
// keeps commands by name and runs them on request without knowing what they
// do or which receiver they touch.
//
// Errors:
//
//   - ErrUnknownCommand: Execute was asked for a name that was never registered.
//   - ErrInvalidCommand: Register was given an empty name or a nil command.
package command
