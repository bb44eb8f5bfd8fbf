// Package observer demonstrates the Observer pattern.
//
// A subject keeps a list of dependents and notifies all of them whenever it
// changes, so one object can update any number of others without knowing
// what they are. Here the subject is an InputReader that reads a line of
// text; observers react to keywords and numbers in that line.
package observer
