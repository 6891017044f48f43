package netmon

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/pilebones/go-udev/netlink"

	"otcli/internal/logging"
)

// Monitor listens for udev netlink events concerning one network interface.
type Monitor struct {
	iface   string
	logger  *slog.Logger
	handler func(action, iface string)

	mu      sync.Mutex
	conn    *netlink.UEventConn
	quit    chan struct{}
	running bool
}

// New creates a monitor for the named interface. Returns nil when iface is
// empty; a nil monitor is safe to Start and Stop. The handler may be nil.
func New(iface string, logger *slog.Logger, handler func(action, iface string)) *Monitor {
	iface = strings.TrimSpace(iface)
	if iface == "" {
		return nil
	}
	return &Monitor{
		iface:   iface,
		logger:  logging.NewComponentLogger(logger, "netmon"),
		handler: handler,
	}
}

// Start begins listening for netlink events.
func (m *Monitor) Start(ctx context.Context) error {
	if m == nil {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return nil
	}

	conn := new(netlink.UEventConn)
	if err := conn.Connect(netlink.UdevEvent); err != nil {
		m.logger.Warn("failed to connect to netlink socket; interface tracking disabled",
			logging.Error(err),
			logging.String(logging.FieldEventType, "netlink_connect_failed"))
		return nil
	}

	m.conn = conn
	m.quit = make(chan struct{})
	m.running = true

	quit := m.quit
	go m.monitorLoop(ctx, quit)

	m.logger.Info("netlink monitor started",
		logging.String("interface", m.iface))
	return nil
}

// Stop shuts down the monitor. Idempotent.
func (m *Monitor) Stop() {
	if m == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return
	}

	if m.quit != nil {
		close(m.quit)
		m.quit = nil
	}
	if m.conn != nil {
		_ = m.conn.Close()
		m.conn = nil
	}
	m.running = false

	m.logger.Info("netlink monitor stopped")
}

// Running reports whether the monitor is active.
func (m *Monitor) Running() bool {
	if m == nil {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

func (m *Monitor) monitorLoop(ctx context.Context, quit <-chan struct{}) {
	queue := make(chan netlink.UEvent)
	errs := make(chan error)

	m.mu.Lock()
	conn := m.conn
	m.mu.Unlock()
	if conn == nil {
		return
	}

	monitorQuit := conn.Monitor(queue, errs, m.buildMatcher())

	for {
		select {
		case <-ctx.Done():
			close(monitorQuit)
			return
		case <-quit:
			close(monitorQuit)
			return
		case uevent := <-queue:
			m.handleEvent(uevent)
		case err := <-errs:
			m.logger.Warn("netlink monitor error", logging.Error(err))
		}
	}
}

// buildMatcher selects add/remove events on the net subsystem for the
// monitored interface.
func (m *Monitor) buildMatcher() netlink.Matcher {
	action := "add|remove"
	rules := &netlink.RuleDefinitions{}
	rules.AddRule(netlink.RuleDefinition{
		Action: &action,
		Env: map[string]string{
			"SUBSYSTEM": "net",
			"INTERFACE": m.iface,
		},
	})
	return rules
}

func (m *Monitor) handleEvent(uevent netlink.UEvent) {
	action := string(uevent.Action)
	m.logger.Info("managed interface state changed",
		logging.String("interface", m.iface),
		logging.String("action", action))
	if m.handler != nil {
		m.handler(action, m.iface)
	}
}
