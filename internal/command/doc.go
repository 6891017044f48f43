// Package command implements the consumer side of the control socket: a
// line-oriented interpreter satisfying clidaemon.Dependencies.
//
// Input arrives in arbitrary chunks; the interpreter assembles complete lines,
// dispatches the leading verb to a registered handler, and writes responses
// back through the configured writer using the OpenThread CLI convention:
// handler output first, then "Done" on success or "Error <code>: <name>" on
// failure.
package command
