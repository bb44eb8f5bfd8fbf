// Package patterns is a catalog of the twenty-three classic object-oriented
// design patterns, each written as a small, independent Go package with a
// runnable example.
//
// What is in here?
//
//	Behavioral: how objects share work and talk to each other
//		chain        handlers that each see every message and act on their levels
//		command      named requests executed by an Invoker
//		interpreter  a tiny SELECT ... FROM ... WHERE grammar over in-memory tables
//		iterator     sequential access to log lines, with iter.Seq support
//		mediator     named values whose observers are notified on change
//		memento      snapshots of an Originator held by a Caretaker
//		observer     an input reader broadcasting each line
//		state        a name printer that flips case every few calls
//		strategy     swappable pricing in a bar
//		template     a fixed game loop with per-game steps
//		visitor      post-order walks over a tree of nodes and leaves
//
//	Creational: how objects are made
//		abstractfactory  platform button families
//		builder          a heavy value assembled step by step or with options
//		factory          cars chosen by type
//		prototype        trees cloned with fresh identities
//		singleton        one lazily created shop per process
//
//	Structural: how objects are composed
//		adapter    3D shapes used where 2D shapes are expected
//		bridge     vehicles decoupled from the work done to build them
//		composite  pages of buttons, scrolls and other pages
//		decorator  windows wrapped with scroll bars
//		facade     one Start call over CPU, disk and memory
//		flyweight  interned objects shared across a worker pool
//		proxy      images loaded on first display, with retries
//
// Every pattern package stands alone; none imports another. Packages that
// print write to an io.Writer passed in by the caller, so examples print to
// stdout and tests print to a buffer.
//
// Supporting packages:
//
//	logging/       zap loggers for diagnostics (retries, pool shutdown)
//	config/        PATTERNS_* environment settings
//	cmd/patterns/  the CLI: `patterns list`, `patterns run <name>`
//
//	go install github.com/katalvlaran/patterns/cmd/patterns@latest
package patterns
