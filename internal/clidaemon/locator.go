package clidaemon

import (
	"fmt"
	"path/filepath"

	"golang.org/x/sys/unix"
)

const (
	// DefaultInterfaceName is used when no interface name is configured.
	DefaultInterfaceName = "wpan0"

	// DefaultSocketDir is where control sockets and lock files live.
	DefaultSocketDir = "/run"

	socketBaseName = "openthread-"
	socketSuffix   = ".sock"
	lockSuffix     = ".lock"
)

// maxSocketPathLength is the longest path a sockaddr_un can address, minus
// one byte reserved for the terminator.
const maxSocketPathLength = len(unix.RawSockaddrUnix{}.Path) - 1

// Locator derives the filesystem endpoints for a logical interface name.
// The zero value uses DefaultSocketDir.
type Locator struct {
	// Dir overrides the directory the socket and lock file are placed in.
	Dir string
}

// SocketPath returns the control socket path for the interface.
func (l Locator) SocketPath(interfaceName string) (string, error) {
	return l.path(interfaceName, socketSuffix)
}

// LockPath returns the lock file path for the interface.
func (l Locator) LockPath(interfaceName string) (string, error) {
	return l.path(interfaceName, lockSuffix)
}

// path validates the derived path against the sockaddr_un limit before any
// syscall gets a chance to truncate it silently.
func (l Locator) path(interfaceName, suffix string) (string, error) {
	if interfaceName == "" {
		interfaceName = DefaultInterfaceName
	}
	dir := l.Dir
	if dir == "" {
		dir = DefaultSocketDir
	}

	path := filepath.Join(dir, socketBaseName+interfaceName+suffix)
	if len(path) > maxSocketPathLength {
		return "", fmt.Errorf("%w: %s (%d bytes, limit %d)", ErrPathTooLong, path, len(path), maxSocketPathLength)
	}
	return path, nil
}
