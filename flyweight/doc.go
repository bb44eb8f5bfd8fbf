// Package flyweight demonstrates the Flyweight pattern: sharing immutable
// values so that many users can refer to one instance instead of each
// holding a copy.
//
// # Roles
//
//   - ReusableObject is the flyweight. It carries only intrinsic state (its
//     name) and is never mutated after creation, so any number of
//     goroutines may hold it.
//   - Cache interns flyweights by name. The first Intern for a name creates
//     the object; every later Intern returns the same pointer. The
//     canonical example is string interning.
//   - Handler is the client. Extrinsic state (the size) is passed to Create
//     on each call and never stored in the flyweight.
//
// # Concurrency
//
// Cache is safe for concurrent use. Pool is a small fixed-size worker pool
// built on errgroup that the example drives the handlers from:
//
//	pool, _ := flyweight.NewPool(ctx, flyweight.WithWorkers(5))
//	pool.Submit(func(ctx context.Context) error { ... })
//	err := pool.Shutdown(ctx)
//
// Submit blocks while every worker is busy; a concurrent Shutdown releases
// it with ErrPoolClosed. Shutdown waits up to the graceful timeout, then cancels the context
// handed to tasks and waits the same amount again. Tasks that still have
// not returned are abandoned and Shutdown reports ErrPoolTimeout.
//
// # Retention
//
// The name of each flyweight is canonicalized with unique.Make, so equal
// names across caches share one handle and the runtime reclaims the string
// once no handle is left. Interned objects themselves are held strongly
// for the lifetime of the Cache. A cache per unit of work, dropped when the
// work ends, bounds memory.
//
// # Errors
//
//   - ErrOptionViolation: a pool option received an invalid argument.
//   - ErrPoolClosed: Submit after Shutdown.
//   - ErrPoolTimeout: tasks did not finish after cancellation.
package flyweight
