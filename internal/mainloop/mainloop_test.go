package mainloop

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/sys/unix"
)

func TestContextReadReadiness(t *testing.T) {
	fds := make([]int, 2)
	if err := unix.Pipe(fds); err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer unix.Close(fds[0])
	defer unix.Close(fds[1])

	mctx := NewContext()
	mctx.AddFd(fds[0], EventRead|EventError)

	n, err := mctx.Wait(50 * time.Millisecond)
	if err != nil {
		t.Fatalf("wait: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected timeout, got %d ready", n)
	}
	if mctx.CanRead(fds[0]) {
		t.Error("pipe should not be readable before write")
	}

	if _, err := unix.Write(fds[1], []byte("x")); err != nil {
		t.Fatalf("write: %v", err)
	}

	mctx.Reset()
	mctx.AddFd(fds[0], EventRead|EventError)
	n, err = mctx.Wait(time.Second)
	if err != nil {
		t.Fatalf("wait: %v", err)
	}
	if n == 0 {
		t.Fatal("expected readiness after write")
	}
	if !mctx.CanRead(fds[0]) {
		t.Error("pipe should be readable after write")
	}
	if mctx.HasError(fds[0]) {
		t.Error("pipe should not be erroring")
	}
}

func TestContextIgnoresNegativeFd(t *testing.T) {
	mctx := NewContext()
	mctx.AddFd(-1, EventRead)
	if mctx.CanRead(-1) || mctx.HasError(-1) {
		t.Error("negative descriptors must never report ready")
	}
}

type stubSource struct {
	processed int
	err       error
}

func (s *stubSource) UpdateFdSet(*Context) {}

func (s *stubSource) Process(*Context) error {
	s.processed++
	return s.err
}

func TestLoopStopsOnFatal(t *testing.T) {
	src := &stubSource{err: Fatal("stub", errors.New("boom"))}
	loop := NewLoop(nil)
	loop.pollInterval = 10 * time.Millisecond
	loop.Register(src)

	err := loop.Run(context.Background())
	if !IsFatal(err) {
		t.Fatalf("expected fatal error, got %v", err)
	}
	if src.processed != 1 {
		t.Errorf("expected exactly one Process call, got %d", src.processed)
	}
}

func TestLoopContinuesOnNonFatal(t *testing.T) {
	src := &stubSource{err: errors.New("transient")}
	loop := NewLoop(nil)
	loop.pollInterval = 10 * time.Millisecond
	loop.Register(src)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := loop.Run(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
	if src.processed < 2 {
		t.Errorf("expected loop to keep running past non-fatal errors, got %d iterations", src.processed)
	}
}

func TestLoopReturnsOnCancel(t *testing.T) {
	loop := NewLoop(nil)
	loop.pollInterval = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := loop.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestFatalErrorWrapping(t *testing.T) {
	base := errors.New("read failed")
	err := Fatal("session socket", base)
	if !errors.Is(err, base) {
		t.Error("FatalError should unwrap to its cause")
	}
	if !IsFatal(err) {
		t.Error("IsFatal should detect a FatalError")
	}
	if IsFatal(base) {
		t.Error("plain errors are not fatal")
	}
}
