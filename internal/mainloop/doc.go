// Package mainloop implements the cooperative, level-triggered readiness loop
// the daemon's I/O sources run on.
//
// Sources register descriptor interest into a Context each iteration; the
// loop resolves readiness with select(2) and dispatches Process on every
// source. The loop is single-threaded: sources never need locking for state
// touched only from UpdateFdSet and Process.
//
// A source signals an unrecoverable fault by returning a *FatalError, which
// stops the loop and propagates to the caller; any other error is logged and
// the loop continues.
package mainloop
