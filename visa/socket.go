package visa

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"strings"
	"time"
)

// DefaultSocketPort is the raw instrument socket port of the LAN interface.
const DefaultSocketPort = 5025

// SocketTransport talks to the instrument over the LAN instrument socket.
// Requests and responses are single lines terminated by DefaultTerminator.
type SocketTransport struct {
	conn    net.Conn
	reader  *bufio.Reader
	timeout time.Duration
	metrics Metrics
	closed  bool
}

var _ Transport = (*SocketTransport)(nil)

// SocketOption is a functional option for configuring a SocketTransport.
type SocketOption interface {
	apply(*SocketTransport) error
}

type socketOptFunc func(*SocketTransport) error

func (f socketOptFunc) apply(t *SocketTransport) error { return f(t) }

// WithTimeout sets the initial exchange timeout. The default is
// DefaultTimeout.
func WithTimeout(d time.Duration) SocketOption {
	return socketOptFunc(func(t *SocketTransport) error {
		if d <= 0 {
			return fmt.Errorf("visa: timeout %v is not positive", d)
		}
		t.timeout = d
		return nil
	})
}

// DialSocket connects to the instrument socket at addr ("host:port").
func DialSocket(ctx context.Context, addr string, opts ...SocketOption) (*SocketTransport, error) {
	t := &SocketTransport{timeout: DefaultTimeout}
	for _, opt := range opts {
		if err := opt.apply(t); err != nil {
			return nil, err
		}
	}

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("visa: dial %s: %w", addr, err)
	}
	t.attach(conn)

	return t, nil
}

// NewSocketTransport wraps an already established connection. It is mainly
// useful for tests that drive the transport over an in-memory pipe.
func NewSocketTransport(conn net.Conn, opts ...SocketOption) (*SocketTransport, error) {
	t := &SocketTransport{timeout: DefaultTimeout}
	for _, opt := range opts {
		if err := opt.apply(t); err != nil {
			return nil, err
		}
	}
	t.attach(conn)

	return t, nil
}

func (t *SocketTransport) attach(conn net.Conn) {
	t.conn = conn
	t.reader = bufio.NewReader(conn)
}

// Metrics returns the exchange counters of the transport.
func (t *SocketTransport) Metrics() *Metrics {
	return &t.metrics
}

// Timeout returns the timeout currently bounding an exchange.
func (t *SocketTransport) Timeout() time.Duration {
	return t.timeout
}

// SetTimeout installs a new exchange timeout and returns a function that
// restores the previous value.
func (t *SocketTransport) SetTimeout(d time.Duration) (restore func()) {
	prev := t.timeout
	t.timeout = d
	return func() {
		t.timeout = prev
	}
}

// Write sends a command that expects no response.
func (t *SocketTransport) Write(ctx context.Context, cmd string) error {
	t.metrics.incWriteCount()
	if err := t.send(ctx, cmd); err != nil {
		t.metrics.incErrCount()
		return err
	}
	return nil
}

// Ask sends a command and reads the single-line response, with the
// terminator stripped.
func (t *SocketTransport) Ask(ctx context.Context, cmd string) (string, error) {
	t.metrics.incAskCount()

	response, err := t.ask(ctx, cmd)
	if err != nil {
		t.metrics.incErrCount()
		return "", err
	}

	return response, nil
}

func (t *SocketTransport) ask(ctx context.Context, cmd string) (string, error) {
	if err := t.send(ctx, cmd); err != nil {
		return "", err
	}

	line, err := t.reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("visa: read response to %q: %w", cmd, err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (t *SocketTransport) send(ctx context.Context, cmd string) error {
	if t.closed {
		return ErrTransportClosed
	}
	if cmd == "" {
		return ErrEmptyCommand
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	deadline := time.Now().Add(t.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := t.conn.SetDeadline(deadline); err != nil {
		return fmt.Errorf("visa: set deadline: %w", err)
	}

	if _, err := t.conn.Write([]byte(cmd + DefaultTerminator)); err != nil {
		return fmt.Errorf("visa: write %q: %w", cmd, err)
	}

	return nil
}

// Close releases the connection. The transport must not be used afterwards.
func (t *SocketTransport) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	return t.conn.Close()
}
