package ipc

import (
	"bufio"
	"fmt"
	"net"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	dialTimeout    = 2 * time.Second
	defaultTimeout = 5 * time.Second
)

// CommandError is a non-success status reported by the daemon.
type CommandError struct {
	Code int
	Name string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("daemon error %d: %s", e.Code, e.Name)
}

var errorLine = regexp.MustCompile(`^Error (\d+): (.*)$`)

// Client provides line-protocol access to the daemon's control socket. A
// client carries one session; it is not safe for concurrent use.
type Client struct {
	conn    net.Conn
	reader  *bufio.Reader
	timeout time.Duration
}

// Dial connects to the control socket at the given path.
func Dial(path string) (*Client, error) {
	conn, err := net.DialTimeout("unix", path, dialTimeout)
	if err != nil {
		return nil, fmt.Errorf("connect to daemon at %s: %w", path, err)
	}
	return &Client{
		conn:    conn,
		reader:  bufio.NewReader(conn),
		timeout: defaultTimeout,
	}, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// Send writes one command line and returns the response lines up to, but not
// including, the Done terminator. An Error terminator is returned as a
// *CommandError alongside the lines preceding it.
func (c *Client) Send(command string) ([]string, error) {
	command = strings.TrimSpace(command)
	if command == "" {
		return nil, fmt.Errorf("empty command")
	}

	deadline := time.Now().Add(c.timeout)
	if err := c.conn.SetDeadline(deadline); err != nil {
		return nil, fmt.Errorf("set deadline: %w", err)
	}

	if _, err := c.conn.Write([]byte(command + "\n")); err != nil {
		return nil, fmt.Errorf("send command: %w", err)
	}

	var lines []string
	for {
		raw, err := c.reader.ReadString('\n')
		if err != nil {
			return lines, fmt.Errorf("read response: %w", err)
		}
		line := strings.TrimRight(raw, "\r\n")

		if line == "Done" {
			return lines, nil
		}
		if match := errorLine.FindStringSubmatch(line); match != nil {
			code, convErr := strconv.Atoi(match[1])
			if convErr != nil {
				code = -1
			}
			return lines, &CommandError{Code: code, Name: match[2]}
		}
		lines = append(lines, line)
	}
}
