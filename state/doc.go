// Package state demonstrates the State pattern: an object changes its
// behavior when its internal state changes, without conditionals on a mode
// field.
//
// Context delegates Handle to its current State. LowerCaseState prints a
// value in lower case and hands over to UpperCaseState; UpperCaseState
// prints UpperCaseLimit values in upper case and hands back. Each state
// decides the transition itself, so adding a state does not touch the
// existing ones.
//
// Case mapping uses golang.org/x/text/cases and is Unicode aware.
package state
