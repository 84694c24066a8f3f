package visa

import (
	"context"
	"fmt"
	"time"
)

// MockTransport is a scripted in-memory transport for driver tests. Ask
// replies are looked up by the exact command string; unscripted commands
// fail. Every sent command is recorded, along with the timeout in effect
// at the start of each exchange, so tests can assert on the wire traffic
// and on scoped timeout handling.
type MockTransport struct {
	// Replies maps a command string to the scripted response.
	Replies map[string]string
	// AskErrs maps a command string to a forced exchange error.
	AskErrs map[string]error

	// Writes records the commands sent without a response, in order.
	Writes []string
	// Asks records the query commands sent, in order.
	Asks []string
	// TimeoutLog records the timeout in effect at the start of each Ask.
	TimeoutLog []time.Duration

	timeout time.Duration
	closed  bool
}

var _ Transport = (*MockTransport)(nil)

// NewMockTransport creates a mock transport answering the scripted replies,
// with the timeout initialized to DefaultTimeout.
func NewMockTransport(replies map[string]string) *MockTransport {
	return &MockTransport{
		Replies: replies,
		AskErrs: make(map[string]error),
		timeout: DefaultTimeout,
	}
}

// Write records the command.
func (t *MockTransport) Write(_ context.Context, cmd string) error {
	if t.closed {
		return ErrTransportClosed
	}
	t.Writes = append(t.Writes, cmd)
	return nil
}

// Ask records the command and returns the scripted reply or forced error.
func (t *MockTransport) Ask(_ context.Context, cmd string) (string, error) {
	if t.closed {
		return "", ErrTransportClosed
	}
	t.Asks = append(t.Asks, cmd)
	t.TimeoutLog = append(t.TimeoutLog, t.timeout)

	if err, ok := t.AskErrs[cmd]; ok {
		return "", err
	}
	reply, ok := t.Replies[cmd]
	if !ok {
		return "", fmt.Errorf("unscripted command %q", cmd)
	}
	return reply, nil
}

// Timeout returns the timeout currently bounding an exchange.
func (t *MockTransport) Timeout() time.Duration {
	return t.timeout
}

// SetTimeout installs a new exchange timeout and returns a function that
// restores the previous value.
func (t *MockTransport) SetTimeout(d time.Duration) (restore func()) {
	prev := t.timeout
	t.timeout = d
	return func() {
		t.timeout = prev
	}
}

// Close marks the transport closed; later exchanges fail.
func (t *MockTransport) Close() error {
	t.closed = true
	return nil
}
