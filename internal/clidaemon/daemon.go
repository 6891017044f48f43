package clidaemon

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/gofrs/flock"
	"golang.org/x/sys/unix"

	"otcli/internal/logging"
	"otcli/internal/mainloop"
)

// MaxCommandLineLength bounds how many bytes a single readiness cycle reads
// from the session. Larger client writes arrive as separate chunks; the
// consumer is responsible for line reassembly.
const MaxCommandLineLength = 640

// Dependencies is the boundary to the command consumer. InputCommandLine
// receives exactly the bytes of one read, in order, with no buffering or
// reassembly on this side. A returned error is logged and the session stays
// open.
type Dependencies interface {
	InputCommandLine(buf []byte) error
}

// Daemon owns the listening endpoint and the single client session. It is a
// mainloop.Source and must only be driven from the loop goroutine.
type Daemon struct {
	deps    Dependencies
	logger  *slog.Logger
	locator Locator

	listenFd   int
	sessionFd  int
	sessionID  string
	lock       *flock.Flock
	socketPath string
}

// Option adjusts daemon construction.
type Option func(*Daemon)

// WithSocketDir places the socket and lock file under dir instead of
// DefaultSocketDir.
func WithSocketDir(dir string) Option {
	return func(d *Daemon) {
		d.locator.Dir = dir
	}
}

// New constructs a daemon forwarding received bytes to deps.
func New(deps Dependencies, logger *slog.Logger, opts ...Option) *Daemon {
	d := &Daemon{
		deps:      deps,
		logger:    logging.NewComponentLogger(logger, "cli-daemon"),
		listenFd:  -1,
		sessionFd: -1,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Init creates the listening endpoint for the interface. It fails with
// ErrAlreadyInitialized if an endpoint exists, ErrPathTooLong before any
// syscall if the derived paths do not fit a sockaddr_un, and ErrLockHeld if
// another instance owns the interface.
func (d *Daemon) Init(interfaceName string) error {
	if d.listenFd != -1 {
		return ErrAlreadyInitialized
	}

	if err := d.createListenSocket(interfaceName); err != nil {
		return err
	}

	// Only one session is ever served, so one pending connection is all the
	// backlog that is meaningful.
	if err := unix.Listen(d.listenFd, 1); err != nil {
		return fmt.Errorf("listen on %s: %w", d.socketPath, err)
	}

	d.logger.Info("cli socket listening",
		logging.String("socket", d.socketPath),
		logging.String("interface", interfaceName))
	return nil
}

// createListenSocket derives and validates the endpoint paths, acquires the
// instance lock, and binds the listen socket. Resources acquired before a
// failing step are released on the way out.
func (d *Daemon) createListenSocket(interfaceName string) error {
	socketPath, err := d.locator.SocketPath(interfaceName)
	if err != nil {
		return err
	}
	lockPath, err := d.locator.LockPath(interfaceName)
	if err != nil {
		return err
	}

	fd, err := unix.Socket(unix.AF_UNIX, unix.SOCK_STREAM|unix.SOCK_NONBLOCK|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		return fmt.Errorf("create listen socket: %w", err)
	}

	lock := flock.New(lockPath)
	held, err := lock.TryLock()
	if err != nil {
		_ = unix.Close(fd)
		return fmt.Errorf("acquire lock %s: %w", lockPath, err)
	}
	if !held {
		_ = unix.Close(fd)
		return fmt.Errorf("%w: %s", ErrLockHeld, lockPath)
	}

	// A stale socket file is expected after a crash; the lock already
	// guarantees no live instance owns it.
	_ = os.Remove(socketPath)

	if err := unix.Bind(fd, &unix.SockaddrUnix{Name: socketPath}); err != nil {
		_ = lock.Unlock()
		_ = unix.Close(fd)
		return fmt.Errorf("bind %s: %w", socketPath, err)
	}

	d.listenFd = fd
	d.lock = lock
	d.socketPath = socketPath
	return nil
}

// Clear closes the active session, if any. Idempotent.
func (d *Daemon) Clear() {
	if d.sessionFd == -1 {
		return
	}
	_ = unix.Close(d.sessionFd)
	d.sessionFd = -1
	d.sessionID = ""
}

// Deinit tears down the active session. The listen socket and the instance
// lock are process-lifetime resources and stay held; use Close to release
// everything.
func (d *Daemon) Deinit() {
	d.Clear()
}

// Close releases the session, the listen socket, the instance lock, and the
// socket file. After Close the daemon may be initialized again.
func (d *Daemon) Close() error {
	d.Clear()

	var errs []error
	if d.listenFd != -1 {
		if err := unix.Close(d.listenFd); err != nil {
			errs = append(errs, fmt.Errorf("close listen socket: %w", err))
		}
		d.listenFd = -1
	}
	if d.lock != nil {
		if err := d.lock.Unlock(); err != nil {
			errs = append(errs, fmt.Errorf("release lock: %w", err))
		}
		d.lock = nil
	}
	if d.socketPath != "" {
		if err := os.Remove(d.socketPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, fmt.Errorf("remove socket file: %w", err))
		}
		d.socketPath = ""
	}
	return errors.Join(errs...)
}

// UpdateFdSet registers the listen and session descriptors for read and
// error readiness. Pure registration, no I/O.
func (d *Daemon) UpdateFdSet(mctx *mainloop.Context) {
	if d.listenFd != -1 {
		mctx.AddFd(d.listenFd, mainloop.EventRead|mainloop.EventError)
	}
	if d.sessionFd != -1 {
		mctx.AddFd(d.sessionFd, mainloop.EventRead|mainloop.EventError)
	}
}

// Process reacts to this iteration's readiness. The listen descriptor is
// always evaluated before the session descriptor, so a connection accepted
// here is not read from until the next iteration.
func (d *Daemon) Process(mctx *mainloop.Context) error {
	if d.listenFd == -1 {
		return nil
	}

	if mctx.HasError(d.listenFd) {
		return mainloop.Fatal("cli listen socket", errors.New("descriptor in error state"))
	}

	if mctx.CanRead(d.listenFd) {
		d.initializeSessionSocket()
	}

	if d.sessionFd == -1 {
		return nil
	}

	if mctx.HasError(d.sessionFd) {
		d.logger.Warn("session socket error, dropping session",
			logging.String(logging.FieldSessionID, d.sessionID))
		d.Clear()
		return nil
	}

	if !mctx.CanRead(d.sessionFd) {
		return nil
	}

	buf := make([]byte, MaxCommandLineLength)
	n, err := unix.Read(d.sessionFd, buf)
	if err != nil {
		return mainloop.Fatal("read session socket", err)
	}
	if n == 0 {
		d.logger.Info("session socket closed by peer",
			logging.String(logging.FieldSessionID, d.sessionID))
		d.Clear()
		return nil
	}

	if err := d.deps.InputCommandLine(buf[:n]); err != nil {
		d.logger.Warn("input command line failed",
			logging.Error(err),
			logging.String(logging.FieldSessionID, d.sessionID))
	}
	return nil
}

// Write sends p to the active session. Output with no session, or to a peer
// that has gone away mid-write, is dropped; a vanished peer also clears the
// session so the endpoint is immediately ready for the next client.
func (d *Daemon) Write(p []byte) (int, error) {
	if d.sessionFd == -1 {
		return len(p), nil
	}

	total := 0
	for total < len(p) {
		n, err := unix.SendmsgN(d.sessionFd, p[total:], nil, nil, sendFlags)
		if err != nil {
			d.logger.Warn("session write failed, dropping session",
				logging.Error(err),
				logging.String(logging.FieldSessionID, d.sessionID))
			d.Clear()
			return len(p), nil
		}
		total += n
	}
	return total, nil
}

// HasSession reports whether a client session is active.
func (d *Daemon) HasSession() bool {
	return d.sessionFd != -1
}

// SocketPath returns the bound socket path, or "" before Init.
func (d *Daemon) SocketPath() string {
	return d.socketPath
}
