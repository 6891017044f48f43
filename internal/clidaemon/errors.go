package clidaemon

import "errors"

var (
	// ErrAlreadyInitialized is returned by Init when a listen endpoint
	// already exists. It indicates a caller logic error, not an OS fault,
	// and has no side effects.
	ErrAlreadyInitialized = errors.New("cli daemon already initialized")

	// ErrLockHeld is returned when another process holds the interface's
	// lock file, meaning a second daemon instance was started.
	ErrLockHeld = errors.New("control socket lock held by another process")

	// ErrPathTooLong is returned when a derived socket or lock path cannot
	// fit a sockaddr_un address. This is a configuration error raised
	// before any socket syscall.
	ErrPathTooLong = errors.New("socket path exceeds sockaddr_un capacity")
)
