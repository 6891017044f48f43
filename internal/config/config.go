package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Daemon configures the control socket endpoint.
type Daemon struct {
	InterfaceName  string `toml:"interface_name"`
	SocketDir      string `toml:"socket_dir"`
	NetlinkMonitor bool   `toml:"netlink_monitor"`
}

// Logging configures log output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	LogDir string `toml:"log_dir"`
}

// Config centralizes every knob the daemon and CLI need.
type Config struct {
	Daemon  Daemon  `toml:"daemon"`
	Logging Logging `toml:"logging"`
}

// Sample returns the annotated sample configuration file.
func Sample() string {
	return sampleConfig
}

// DefaultConfigPath returns the per-user config file location.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "otcli", "config.toml"), nil
}

// Load reads the config at path, falling back to DefaultConfigPath when path
// is empty. A missing file yields the defaults. The resolved path is
// returned alongside the config.
func Load(path string) (*Config, string, error) {
	resolved := path
	if resolved == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return nil, "", err
		}
		resolved = defaultPath
	}
	resolved = ExpandPath(resolved)

	cfg := Default()

	data, err := os.ReadFile(resolved)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Defaults apply when no file exists.
	case err != nil:
		return nil, resolved, fmt.Errorf("read config %s: %w", resolved, err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, resolved, fmt.Errorf("parse config %s: %w", resolved, err)
		}
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, resolved, err
	}
	return &cfg, resolved, nil
}

// ExpandPath resolves a leading tilde against the user's home directory.
func ExpandPath(path string) string {
	if path == "~" || len(path) >= 2 && path[0] == '~' && path[1] == os.PathSeparator {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}

func (c *Config) normalize() {
	if c.Daemon.InterfaceName == "" {
		c.Daemon.InterfaceName = defaultInterfaceName
	}
	if c.Daemon.SocketDir == "" {
		c.Daemon.SocketDir = defaultSocketDir
	}
	c.Daemon.SocketDir = ExpandPath(c.Daemon.SocketDir)
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.LogDir = ExpandPath(c.Logging.LogDir)
}
