package mainloop

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

// Events selects which readiness conditions a descriptor is registered for.
type Events uint8

const (
	// EventRead registers interest in read readiness.
	EventRead Events = 1 << iota
	// EventError registers interest in exceptional descriptor conditions.
	EventError
)

// Context carries descriptor interest into select(2) and the resolved
// readiness back out. The same sets serve both roles: before Wait they hold
// registrations, after Wait only the descriptors that are actually ready
// remain set. The loop owns the Context; sources only register and query.
type Context struct {
	readFds  unix.FdSet
	errorFds unix.FdSet
	maxFd    int
}

// NewContext returns an empty readiness context.
func NewContext() *Context {
	c := &Context{}
	c.Reset()
	return c
}

// Reset clears all registrations and results.
func (c *Context) Reset() {
	c.readFds.Zero()
	c.errorFds.Zero()
	c.maxFd = -1
}

// AddFd registers a descriptor for the given events.
func (c *Context) AddFd(fd int, events Events) {
	if fd < 0 {
		return
	}
	if events&EventRead != 0 {
		c.readFds.Set(fd)
	}
	if events&EventError != 0 {
		c.errorFds.Set(fd)
	}
	if fd > c.maxFd {
		c.maxFd = fd
	}
}

// CanRead reports whether the descriptor is marked readable.
func (c *Context) CanRead(fd int) bool {
	return fd >= 0 && c.readFds.IsSet(fd)
}

// HasError reports whether the descriptor is marked as erroring.
func (c *Context) HasError(fd int) bool {
	return fd >= 0 && c.errorFds.IsSet(fd)
}

// Wait blocks until a registered descriptor becomes ready or the timeout
// elapses, replacing the interest sets with the resolved readiness. Error
// interest maps onto the select except set. EINTR is returned to the caller,
// which retries with freshly built sets.
func (c *Context) Wait(timeout time.Duration) (int, error) {
	tv := unix.NsecToTimeval(timeout.Nanoseconds())
	n, err := unix.Select(c.maxFd+1, &c.readFds, nil, &c.errorFds, &tv)
	if err != nil {
		return 0, fmt.Errorf("select: %w", err)
	}
	if n == 0 {
		// Timeout: the kernel may leave the sets untouched, so clear them
		// explicitly to keep the level-triggered contract honest.
		c.readFds.Zero()
		c.errorFds.Zero()
	}
	return n, nil
}
