// Package mediator demonstrates the Mediator pattern.
//
// Named storages hold values; observers want to react when a particular
// storage changes. Neither side knows the other: a storage reports its change
// to the Mediator, and the Mediator calls the observers subscribed to that
// name. Removing the direct links keeps the participants loosely coupled.
//
// Observers run synchronously, in subscription order, after the mediator has
// released its lock, so they may read or write through the same mediator.
package mediator
