// Package ipc ships the client side of the daemon's control socket.
//
// The wire protocol is the daemon's raw line protocol: the client writes one
// command line and collects response lines until the Done/Error terminator.
// CLI commands decorate calls with deadlines so they fail fast when the
// daemon is offline.
package ipc
