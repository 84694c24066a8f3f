package visa

import (
	"context"
	"errors"
	"sync/atomic"
	"time"
)

// Default transport settings.
const (
	// DefaultTimeout bounds an ordinary command/response exchange.
	DefaultTimeout = 5 * time.Second

	// DefaultTerminator is the line terminator of the instrument protocol.
	DefaultTerminator = "\r\n"
)

var (
	// ErrTransportClosed indicates that the transport has been closed.
	ErrTransportClosed = errors.New("transport closed")

	// ErrEmptyCommand indicates that an empty command string was given.
	ErrEmptyCommand = errors.New("empty command")
)

// Transport is a synchronous line-based connection to the instrument.
//
// Implementations do not need to be safe for concurrent use; the driver
// issues one exchange at a time.
type Transport interface {
	// Write sends a command that expects no response.
	Write(ctx context.Context, cmd string) error

	// Ask sends a command and returns the raw single-line response with the
	// terminator stripped.
	Ask(ctx context.Context, cmd string) (string, error)

	// Timeout returns the timeout currently bounding an exchange.
	Timeout() time.Duration

	// SetTimeout installs a new exchange timeout and returns a function
	// that restores the previous value. The restore function must run on
	// every exit path, including failures.
	SetTimeout(d time.Duration) (restore func())

	// Close releases the underlying connection.
	Close() error
}

// Metrics contains atomic counters for a transport. Counters can be used
// as the value of a prometheus CounterFunc.
type Metrics struct {
	// WriteCount indicates the number of commands sent without a response.
	WriteCount atomic.Uint64
	// AskCount indicates the number of command/response exchanges.
	AskCount atomic.Uint64
	// ErrCount indicates the number of failed exchanges.
	ErrCount atomic.Uint64
}

func (m *Metrics) incWriteCount() {
	m.WriteCount.Add(1)
}

func (m *Metrics) incAskCount() {
	m.AskCount.Add(1)
}

func (m *Metrics) incErrCount() {
	m.ErrCount.Add(1)
}
