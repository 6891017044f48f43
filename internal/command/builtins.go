package command

import (
	"fmt"
	"io"
	"time"
)

func (it *Interpreter) registerBuiltins() {
	it.Register("version", it.versionCommand)
	it.Register("ifname", it.ifnameCommand)
	it.Register("uptime", it.uptimeCommand)
	it.Register("commands", it.commandsCommand)
	it.Register("help", it.commandsCommand)
}

func (it *Interpreter) versionCommand(args []string, out io.Writer) error {
	if len(args) != 0 {
		return ErrInvalidArgs
	}
	fmt.Fprintf(out, "%s\r\n", it.info.Version)
	return nil
}

func (it *Interpreter) ifnameCommand(args []string, out io.Writer) error {
	if len(args) != 0 {
		return ErrInvalidArgs
	}
	fmt.Fprintf(out, "%s\r\n", it.info.InterfaceName)
	return nil
}

func (it *Interpreter) uptimeCommand(args []string, out io.Writer) error {
	if len(args) != 0 {
		return ErrInvalidArgs
	}
	fmt.Fprintf(out, "%s\r\n", formatUptime(time.Since(it.info.StartTime)))
	return nil
}

func (it *Interpreter) commandsCommand(args []string, out io.Writer) error {
	if len(args) != 0 {
		return ErrInvalidArgs
	}
	for _, name := range it.Commands() {
		fmt.Fprintf(out, "%s\r\n", name)
	}
	return nil
}

// formatUptime renders hh:mm:ss.mmm, the format the OpenThread CLI uses.
func formatUptime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d / time.Second
	millis := (d - seconds*time.Second) / time.Millisecond
	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}
