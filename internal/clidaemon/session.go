package clidaemon

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sys/unix"

	"otcli/internal/logging"
)

// initializeSessionSocket accepts a pending connection and adopts it as the
// session. Invoked only when the listen descriptor is readable. Whatever the
// outcome, any prior session is cleared: a new connection supersedes the old
// one even when its own setup fails.
func (d *Daemon) initializeSessionSocket() {
	fd, _, err := unix.Accept(d.listenFd)
	if err != nil {
		d.logger.Warn("failed to initialize session socket", logging.Error(err))
		d.Clear()
		return
	}

	if err := configureSessionSocket(fd); err != nil {
		_ = unix.Close(fd)
		d.logger.Warn("failed to initialize session socket", logging.Error(err))
		d.Clear()
		return
	}

	// Close the old session before adopting the new descriptor so at most
	// one session is ever open.
	d.Clear()
	d.sessionFd = fd
	d.sessionID = uuid.NewString()
	d.logger.Info("session socket is ready",
		logging.String(logging.FieldSessionID, d.sessionID))
}

// configureSessionSocket marks the accepted descriptor close-on-exec and
// suppresses SIGPIPE delivery where the platform supports it.
func configureSessionSocket(fd int) error {
	flags, err := unix.FcntlInt(uintptr(fd), unix.F_GETFD, 0)
	if err != nil {
		return fmt.Errorf("get descriptor flags: %w", err)
	}
	if _, err := unix.FcntlInt(uintptr(fd), unix.F_SETFD, flags|unix.FD_CLOEXEC); err != nil {
		return fmt.Errorf("set close-on-exec: %w", err)
	}
	if err := setNoSigpipe(fd); err != nil {
		return fmt.Errorf("suppress sigpipe: %w", err)
	}
	return nil
}
