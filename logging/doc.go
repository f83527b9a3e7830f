// Package logging provides the Logger capability used for demonstration output
// and its console implementation.
//
// ConsoleLogger renders every record as
//
//	[<name>] [<LEVEL>] <message>
//
// Info records go to the normal output channel (os.Stdout by default),
// Warn and Error records go to the error channel (os.Stderr by default).
//
// Usage:
//
//	logger := logging.NewConsoleLogger("cmder")
//	logger.Info("started")             // [cmder] [INFO] started
//	logger.Warn("slow", "ms", 250)     // [cmder] [WARN] slow ms=250
package logging
