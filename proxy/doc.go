// Package proxy demonstrates the Proxy pattern: a stand-in that implements
// the same interface as the real object and controls access to it.
//
// RealImage loads its file as soon as it is constructed. ProxyImage holds
// only the file name and builds the RealImage on the first Display, so an
// image that is never shown is never loaded. Clients hold an Image and
// cannot tell which of the two they have.
//
// Loading goes through a Loader. ProxyImage retries a failing Loader with
// retry-go, logging each failed attempt, and returns ErrLoad when every
// attempt fails. A failed load is not remembered; the next Display tries
// again. Once a load succeeds it is never repeated, however many
// goroutines call Display.
package proxy
