package config

const (
	defaultInterfaceName  = "wpan0"
	defaultSocketDir      = "/run"
	defaultNetlinkMonitor = true
	defaultLogLevel       = "info"
	defaultLogFormat      = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Daemon: Daemon{
			InterfaceName:  defaultInterfaceName,
			SocketDir:      defaultSocketDir,
			NetlinkMonitor: defaultNetlinkMonitor,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
