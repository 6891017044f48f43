//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package clidaemon

import "golang.org/x/sys/unix"

const sendFlags = 0

// setNoSigpipe suppresses SIGPIPE at the socket level. Platforms with
// neither MSG_NOSIGNAL nor SO_NOSIGPIPE are not supported.
func setNoSigpipe(fd int) error {
	return unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_NOSIGPIPE, 1)
}
