package main

import (
	"otcli/internal/clidaemon"
	"otcli/internal/config"
	"otcli/internal/ipc"
)

// commandContext resolves the control socket shared by every subcommand.
type commandContext struct {
	socketFlag *string
	configFlag *string
}

func newCommandContext(socketFlag, configFlag *string) *commandContext {
	return &commandContext{socketFlag: socketFlag, configFlag: configFlag}
}

// socketPath honors an explicit --socket, otherwise derives the path from
// config the same way the daemon does.
func (c *commandContext) socketPath() (string, error) {
	if c.socketFlag != nil && *c.socketFlag != "" {
		return *c.socketFlag, nil
	}

	var configPath string
	if c.configFlag != nil {
		configPath = *c.configFlag
	}
	cfg, _, err := config.Load(configPath)
	if err != nil {
		return "", err
	}

	locator := clidaemon.Locator{Dir: cfg.Daemon.SocketDir}
	return locator.SocketPath(cfg.Daemon.InterfaceName)
}

func (c *commandContext) dial() (*ipc.Client, error) {
	path, err := c.socketPath()
	if err != nil {
		return nil, err
	}
	return ipc.Dial(path)
}
