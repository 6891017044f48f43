package config

import (
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateDaemon(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateDaemon() error {
	if strings.ContainsAny(c.Daemon.InterfaceName, "/ ") {
		return fmt.Errorf("daemon.interface_name %q must not contain slashes or spaces", c.Daemon.InterfaceName)
	}
	if !strings.HasPrefix(c.Daemon.SocketDir, "/") {
		return fmt.Errorf("daemon.socket_dir %q must be an absolute path", c.Daemon.SocketDir)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format %q is not one of console, json", c.Logging.Format)
	}
	return nil
}
