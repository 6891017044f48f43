package main

import (
	"strings"
	"testing"
)

func TestRootCommandWiring(t *testing.T) {
	root := newRootCommand()

	want := map[string]bool{"send": false, "status": false, "commands": false}
	for _, cmd := range root.Commands() {
		name := strings.Fields(cmd.Use)[0]
		if _, ok := want[name]; ok {
			want[name] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}

	if root.PersistentFlags().Lookup("socket") == nil {
		t.Error("missing --socket flag")
	}
	if root.PersistentFlags().Lookup("config") == nil {
		t.Error("missing --config flag")
	}
}

func TestSocketPathHonorsFlag(t *testing.T) {
	socket := "/tmp/override.sock"
	config := ""
	ctx := newCommandContext(&socket, &config)

	path, err := ctx.socketPath()
	if err != nil {
		t.Fatalf("socketPath: %v", err)
	}
	if path != socket {
		t.Errorf("path = %q, want %q", path, socket)
	}
}

func TestRenderTable(t *testing.T) {
	out := renderTable(
		[]string{"Field", "Value"},
		[][]string{{"Version", "0.3.0"}, {"Interface", "wpan0"}},
		nil,
	)
	for _, want := range []string{"Field", "Version", "0.3.0", "wpan0"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderTableEmptyHeaders(t *testing.T) {
	if out := renderTable(nil, nil, nil); out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}
