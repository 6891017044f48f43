// Command otclid runs the control-plane daemon: it binds the interface's
// control socket and serves CLI commands from a single operator session.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"otcli/internal/clidaemon"
	"otcli/internal/command"
	"otcli/internal/config"
	"otcli/internal/logging"
	"otcli/internal/mainloop"
	"otcli/internal/netmon"
)

const version = "0.3.0"

func main() {
	configFlag := flag.String("config", "", "configuration file path")
	ifaceFlag := flag.String("ifname", "", "managed interface name (overrides config)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, _, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *ifaceFlag != "" {
		cfg.Daemon.InterfaceName = *ifaceFlag
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	interp := command.New(command.Info{
		Version:       version,
		InterfaceName: cfg.Daemon.InterfaceName,
		StartTime:     time.Now(),
	}, logger)

	daemon := clidaemon.New(interp, logger, clidaemon.WithSocketDir(cfg.Daemon.SocketDir))
	interp.SetOutput(daemon)

	if err := daemon.Init(cfg.Daemon.InterfaceName); err != nil {
		logger.Error("initialize cli socket", logging.Args(logging.Error(err))...)
		os.Exit(1)
	}
	defer daemon.Close()

	if cfg.Daemon.NetlinkMonitor {
		monitor := netmon.New(cfg.Daemon.InterfaceName, logger, nil)
		if err := monitor.Start(ctx); err != nil {
			logger.Warn("start netlink monitor", logging.Args(logging.Error(err))...)
		}
		defer monitor.Stop()
	}

	loop := mainloop.NewLoop(logger)
	loop.Register(daemon)

	err = loop.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("mainloop stopped", logging.Args(logging.Error(err))...)
		os.Exit(1)
	}
	logger.Info("otclid shutting down")
}
