package visa

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"time"

	"go.bug.st/serial"
)

// DefaultBaudRate is the factory setting of the instrument's serial
// interface.
const DefaultBaudRate = 9600

// SerialTransport talks to the instrument over an RS-232 attachment.
// Requests and responses are single lines terminated by DefaultTerminator.
type SerialTransport struct {
	port    serial.Port
	reader  *bufio.Reader
	timeout time.Duration
	metrics Metrics
	closed  bool
}

var _ Transport = (*SerialTransport)(nil)

// SerialOption is a functional option for configuring a SerialTransport.
type SerialOption interface {
	apply(*serialConfig) error
}

type serialConfig struct {
	mode    serial.Mode
	timeout time.Duration
}

type serialOptFunc func(*serialConfig) error

func (f serialOptFunc) apply(cfg *serialConfig) error { return f(cfg) }

// WithBaudRate sets the serial baud rate. The default is DefaultBaudRate.
func WithBaudRate(baud int) SerialOption {
	return serialOptFunc(func(cfg *serialConfig) error {
		if baud <= 0 {
			return fmt.Errorf("visa: baud rate %d is not positive", baud)
		}
		cfg.mode.BaudRate = baud
		return nil
	})
}

// WithSerialTimeout sets the initial exchange timeout. The default is
// DefaultTimeout.
func WithSerialTimeout(d time.Duration) SerialOption {
	return serialOptFunc(func(cfg *serialConfig) error {
		if d <= 0 {
			return fmt.Errorf("visa: timeout %v is not positive", d)
		}
		cfg.timeout = d
		return nil
	})
}

// OpenSerial opens the serial port (e.g. "/dev/ttyUSB0" or "COM3") and
// returns a transport bound to it.
func OpenSerial(portName string, opts ...SerialOption) (*SerialTransport, error) {
	cfg := serialConfig{
		mode:    serial.Mode{BaudRate: DefaultBaudRate, DataBits: 8, Parity: serial.NoParity, StopBits: serial.OneStopBit},
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		if err := opt.apply(&cfg); err != nil {
			return nil, err
		}
	}

	port, err := serial.Open(portName, &cfg.mode)
	if err != nil {
		return nil, fmt.Errorf("visa: open serial port %s: %w", portName, err)
	}

	t := &SerialTransport{
		port:    port,
		reader:  bufio.NewReader(port),
		timeout: cfg.timeout,
	}
	if err := port.SetReadTimeout(t.timeout); err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("visa: set read timeout: %w", err)
	}

	return t, nil
}

// Metrics returns the exchange counters of the transport.
func (t *SerialTransport) Metrics() *Metrics {
	return &t.metrics
}

// Timeout returns the timeout currently bounding an exchange.
func (t *SerialTransport) Timeout() time.Duration {
	return t.timeout
}

// SetTimeout installs a new exchange timeout and returns a function that
// restores the previous value.
func (t *SerialTransport) SetTimeout(d time.Duration) (restore func()) {
	prev := t.timeout
	t.timeout = d
	_ = t.port.SetReadTimeout(d)
	return func() {
		t.timeout = prev
		_ = t.port.SetReadTimeout(prev)
	}
}

// Write sends a command that expects no response.
func (t *SerialTransport) Write(ctx context.Context, cmd string) error {
	t.metrics.incWriteCount()
	if err := t.send(ctx, cmd); err != nil {
		t.metrics.incErrCount()
		return err
	}
	return nil
}

// Ask sends a command and reads the single-line response, with the
// terminator stripped.
func (t *SerialTransport) Ask(ctx context.Context, cmd string) (string, error) {
	t.metrics.incAskCount()

	if err := t.send(ctx, cmd); err != nil {
		t.metrics.incErrCount()
		return "", err
	}

	line, err := t.reader.ReadString('\n')
	if err != nil {
		t.metrics.incErrCount()
		return "", fmt.Errorf("visa: read response to %q: %w", cmd, err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (t *SerialTransport) send(ctx context.Context, cmd string) error {
	if t.closed {
		return ErrTransportClosed
	}
	if cmd == "" {
		return ErrEmptyCommand
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := t.port.Write([]byte(cmd + DefaultTerminator)); err != nil {
		return fmt.Errorf("visa: write %q: %w", cmd, err)
	}

	return nil
}

// Close releases the serial port. The transport must not be used afterwards.
func (t *SerialTransport) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	return t.port.Close()
}
