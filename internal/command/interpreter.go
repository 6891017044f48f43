package command

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	"otcli/internal/logging"
)

// maxPendingLine bounds how much input may accumulate without a newline
// before the pending buffer is discarded.
const maxPendingLine = 4096

// Handler executes one command. Output lines go to out; the interpreter
// appends the Done/Error status line based on the returned error.
type Handler func(args []string, out io.Writer) error

// Info supplies the daemon facts the built-in commands report.
type Info struct {
	Version       string
	InterfaceName string
	StartTime     time.Time
}

// Interpreter assembles command lines from the raw byte stream and
// dispatches them. It is driven from the mainloop goroutine and needs no
// locking.
type Interpreter struct {
	info     Info
	logger   *slog.Logger
	out      io.Writer
	pending  []byte
	handlers map[string]Handler
}

// New constructs an interpreter with the built-in command set. Output is
// discarded until SetOutput is called.
func New(info Info, logger *slog.Logger) *Interpreter {
	it := &Interpreter{
		info:     info,
		logger:   logging.NewComponentLogger(logger, "command"),
		out:      io.Discard,
		handlers: make(map[string]Handler),
	}
	it.registerBuiltins()
	return it
}

// SetOutput directs responses at w, typically the daemon's session writer.
func (it *Interpreter) SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	it.out = w
}

// Register adds or replaces a command handler.
func (it *Interpreter) Register(name string, h Handler) {
	if name == "" || h == nil {
		return
	}
	it.handlers[name] = h
}

// Commands returns the registered command names, sorted.
func (it *Interpreter) Commands() []string {
	names := make([]string, 0, len(it.handlers))
	for name := range it.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// InputCommandLine consumes one received chunk. Complete lines are
// dispatched immediately; a trailing partial line is buffered for the next
// chunk. Implements clidaemon.Dependencies.
func (it *Interpreter) InputCommandLine(buf []byte) error {
	it.pending = append(it.pending, buf...)

	for {
		idx := bytes.IndexByte(it.pending, '\n')
		if idx < 0 {
			if len(it.pending) > maxPendingLine {
				it.pending = it.pending[:0]
				fmt.Fprint(it.out, statusLine(fmt.Errorf("%w: command line too long", ErrParse)))
				return fmt.Errorf("%w: command line exceeds %d bytes", ErrParse, maxPendingLine)
			}
			return nil
		}

		line := strings.TrimSpace(string(it.pending[:idx]))
		it.pending = it.pending[idx+1:]
		if line == "" {
			continue
		}
		it.dispatch(line)
	}
}

func (it *Interpreter) dispatch(line string) {
	fields := strings.Fields(line)
	verb := fields[0]

	handler, ok := it.handlers[verb]
	if !ok {
		it.logger.Debug("unknown command", logging.String("verb", verb))
		fmt.Fprint(it.out, statusLine(ErrInvalidCommand))
		return
	}

	err := handler(fields[1:], it.out)
	if err != nil {
		it.logger.Debug("command failed",
			logging.String("verb", verb),
			logging.Error(err))
	}
	fmt.Fprint(it.out, statusLine(err))
}
