package command

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"
)

func newTestInterpreter() (*Interpreter, *bytes.Buffer) {
	var out bytes.Buffer
	it := New(Info{
		Version:       "0.3.0",
		InterfaceName: "wpan0",
		StartTime:     time.Now(),
	}, nil)
	it.SetOutput(&out)
	return it, &out
}

func TestDispatchComplete(t *testing.T) {
	it, out := newTestInterpreter()

	if err := it.InputCommandLine([]byte("version\n")); err != nil {
		t.Fatalf("InputCommandLine: %v", err)
	}
	if got := out.String(); got != "0.3.0\r\nDone\r\n" {
		t.Errorf("output = %q", got)
	}
}

func TestChunkedLineReassembly(t *testing.T) {
	it, out := newTestInterpreter()

	for _, chunk := range []string{"ver", "sio", "n\nifn", "ame\n"} {
		if err := it.InputCommandLine([]byte(chunk)); err != nil {
			t.Fatalf("InputCommandLine(%q): %v", chunk, err)
		}
	}

	want := "0.3.0\r\nDone\r\nwpan0\r\nDone\r\n"
	if got := out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestUnknownCommand(t *testing.T) {
	it, out := newTestInterpreter()

	if err := it.InputCommandLine([]byte("frobnicate\n")); err != nil {
		t.Fatalf("InputCommandLine: %v", err)
	}
	if got := out.String(); got != "Error 35: InvalidCommand\r\n" {
		t.Errorf("output = %q", got)
	}
}

func TestInvalidArgs(t *testing.T) {
	it, out := newTestInterpreter()

	if err := it.InputCommandLine([]byte("version extra\n")); err != nil {
		t.Fatalf("InputCommandLine: %v", err)
	}
	if got := out.String(); got != "Error 7: InvalidArgs\r\n" {
		t.Errorf("output = %q", got)
	}
}

func TestBlankLinesIgnored(t *testing.T) {
	it, out := newTestInterpreter()

	if err := it.InputCommandLine([]byte("\n  \nifname\n")); err != nil {
		t.Fatalf("InputCommandLine: %v", err)
	}
	if got := out.String(); got != "wpan0\r\nDone\r\n" {
		t.Errorf("output = %q", got)
	}
}

func TestOversizedPendingLineDiscarded(t *testing.T) {
	it, out := newTestInterpreter()

	if err := it.InputCommandLine(bytes.Repeat([]byte("a"), maxPendingLine+1)); err == nil {
		t.Fatal("expected error for oversized pending line")
	}
	if !strings.HasPrefix(out.String(), "Error 6:") {
		t.Errorf("output = %q, want parse error", out.String())
	}

	// The buffer was reset; normal input works again.
	out.Reset()
	if err := it.InputCommandLine([]byte("ifname\n")); err != nil {
		t.Fatalf("InputCommandLine after reset: %v", err)
	}
	if got := out.String(); got != "wpan0\r\nDone\r\n" {
		t.Errorf("output after reset = %q", got)
	}
}

func TestCommandsListsBuiltins(t *testing.T) {
	it, out := newTestInterpreter()

	if err := it.InputCommandLine([]byte("commands\n")); err != nil {
		t.Fatalf("InputCommandLine: %v", err)
	}

	for _, name := range []string{"commands", "help", "ifname", "uptime", "version"} {
		if !strings.Contains(out.String(), name+"\r\n") {
			t.Errorf("commands output missing %q: %q", name, out.String())
		}
	}
	if !strings.HasSuffix(out.String(), "Done\r\n") {
		t.Errorf("commands output missing terminator: %q", out.String())
	}
}

func TestRegisterCustomHandler(t *testing.T) {
	it, out := newTestInterpreter()

	it.Register("echo", func(args []string, w io.Writer) error {
		fmt.Fprintf(w, "%s\r\n", strings.Join(args, " "))
		return nil
	})

	if err := it.InputCommandLine([]byte("echo hello world\n")); err != nil {
		t.Fatalf("InputCommandLine: %v", err)
	}
	if got := out.String(); got != "hello world\r\nDone\r\n" {
		t.Errorf("output = %q", got)
	}
}

func TestFormatUptime(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00:00.000"},
		{38*time.Second + 320*time.Millisecond, "00:00:38.320"},
		{2*time.Hour + 3*time.Minute + 4*time.Second, "02:03:04.000"},
		{-time.Second, "00:00:00.000"},
	}
	for _, tc := range cases {
		if got := formatUptime(tc.d); got != tc.want {
			t.Errorf("formatUptime(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}
