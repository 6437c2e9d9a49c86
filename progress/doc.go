// Package progress carries progress reporting and cooperative cancellation
// through the long-running stages of the engine.
//
// A Communicator receives the number of steps and the current record and is
// asked whether the caller wants to stop. A Poller rate-limits those calls to
// a wall-clock interval and turns a positive answer into ErrCancelled, which
// every stage returns unchanged.
package progress
