package clidaemon

import (
	"errors"
	"strings"
	"testing"
)

func TestLocatorDerivesPaths(t *testing.T) {
	loc := Locator{}

	socket, err := loc.SocketPath("wpan0")
	if err != nil {
		t.Fatalf("SocketPath: %v", err)
	}
	if socket != "/run/openthread-wpan0.sock" {
		t.Errorf("socket path = %q", socket)
	}

	lock, err := loc.LockPath("wpan0")
	if err != nil {
		t.Fatalf("LockPath: %v", err)
	}
	if lock != "/run/openthread-wpan0.lock" {
		t.Errorf("lock path = %q", lock)
	}
}

func TestLocatorDefaultsInterfaceName(t *testing.T) {
	loc := Locator{}
	socket, err := loc.SocketPath("")
	if err != nil {
		t.Fatalf("SocketPath: %v", err)
	}
	if socket != "/run/openthread-wpan0.sock" {
		t.Errorf("socket path = %q, want default interface name", socket)
	}
}

func TestLocatorHonorsDirOverride(t *testing.T) {
	loc := Locator{Dir: "/tmp/ctl"}
	socket, err := loc.SocketPath("eth0")
	if err != nil {
		t.Fatalf("SocketPath: %v", err)
	}
	if socket != "/tmp/ctl/openthread-eth0.sock" {
		t.Errorf("socket path = %q", socket)
	}
}

func TestLocatorRejectsOverlongPath(t *testing.T) {
	loc := Locator{}
	name := strings.Repeat("x", maxSocketPathLength)

	if _, err := loc.SocketPath(name); !errors.Is(err, ErrPathTooLong) {
		t.Errorf("SocketPath error = %v, want ErrPathTooLong", err)
	}
	if _, err := loc.LockPath(name); !errors.Is(err, ErrPathTooLong) {
		t.Errorf("LockPath error = %v, want ErrPathTooLong", err)
	}
}

func TestLocatorBoundaryLength(t *testing.T) {
	loc := Locator{Dir: "/run"}
	// Longest name that still fits: dir + "/" + base + name + suffix.
	overhead := len("/run/") + len(socketBaseName) + len(socketSuffix)
	name := strings.Repeat("a", maxSocketPathLength-overhead)

	if _, err := loc.SocketPath(name); err != nil {
		t.Errorf("path at the limit should be accepted: %v", err)
	}
	if _, err := loc.SocketPath(name + "a"); !errors.Is(err, ErrPathTooLong) {
		t.Error("path one byte over the limit should be rejected")
	}
}
