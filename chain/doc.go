// Package chain demonstrates the Chain of Responsibility pattern with a
// chain of log sinks.
//
// Use it when:
//
//   - the sender of a request should not know which receiver handles it;
//   - several receivers, chosen at runtime, are candidates for a request;
//   - handlers should be composed without naming them in the calling code.
//
// Every Handler in a chain receives every message and decides on its own,
// from the Level, whether to act. Chains are built with Then or Chain:
//
//	h := chain.Chain(
//	    chain.NewConsoleHandler(os.Stdout, chain.AllLevels()...),
//	    chain.NewEmailHandler(os.Stdout, chain.Error),
//	    chain.NewFileHandler(os.Stdout, chain.Info),
//	)
//	h.Handle("disk almost full", chain.Error)
//
// ZapHandler plugs a *zap.Logger into the same chain.
package chain
