// Package clidaemon exposes the daemon's command-line control endpoint: a
// Unix domain stream socket at /run/openthread-<ifname>.sock guarded by an
// exclusive lock file so only one daemon instance serves a given interface.
//
// The endpoint carries at most one client session at a time; a new connection
// supersedes the old one. Received bytes are forwarded verbatim to the
// configured Dependencies consumer, and the Daemon itself is an io.Writer
// targeting the active session so the consumer can send responses back.
//
// All I/O is driven by the mainloop package: the daemon registers its listen
// and session descriptors each iteration and reacts to the resolved
// readiness. Nothing in this package starts goroutines.
package clidaemon
