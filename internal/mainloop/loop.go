package mainloop

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sys/unix"

	"otcli/internal/logging"
)

// Source is an I/O participant driven by the loop. UpdateFdSet registers
// descriptor interest; Process handles whatever readiness the iteration
// resolved. Both run on the loop goroutine.
type Source interface {
	UpdateFdSet(*Context)
	Process(*Context) error
}

const defaultPollInterval = time.Second

// Loop drives registered sources until cancellation or a fatal source error.
type Loop struct {
	logger       *slog.Logger
	sources      []Source
	pollInterval time.Duration
}

// NewLoop constructs an empty loop.
func NewLoop(logger *slog.Logger) *Loop {
	return &Loop{
		logger:       logging.NewComponentLogger(logger, "mainloop"),
		pollInterval: defaultPollInterval,
	}
}

// Register adds a source. Not safe to call once Run has started.
func (l *Loop) Register(s Source) {
	if s != nil {
		l.sources = append(l.sources, s)
	}
}

// Run iterates until ctx is canceled (returning ctx.Err()) or a source
// returns a *FatalError (returned as-is). Non-fatal source errors are logged
// and the loop continues. The select timeout bounds how long cancellation
// can go unnoticed.
func (l *Loop) Run(ctx context.Context) error {
	mctx := NewContext()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		mctx.Reset()
		for _, s := range l.sources {
			s.UpdateFdSet(mctx)
		}

		if _, err := mctx.Wait(l.pollInterval); err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return Fatal("mainloop wait", err)
		}

		for _, s := range l.sources {
			if err := s.Process(mctx); err != nil {
				if IsFatal(err) {
					return err
				}
				l.logger.Warn("source process failed", logging.Error(err))
			}
		}
	}
}
