// Package visa provides the line-based transport used to exchange FLEX
// commands with the instrument.
//
// The Transport interface models the synchronous request/reply discipline
// of the instrument: Write sends a command that expects no response, Ask
// sends a command and blocks until the single-line response arrives. There
// is no pipelining; every exchange is bounded by the transport timeout and
// the caller's context.
//
// SetTimeout follows a scoped acquire/release discipline: it returns a
// restore function that puts the previous timeout back in place, so a
// temporarily extended window (e.g. for self-calibration) never leaks into
// subsequent commands:
//
//	restore := tr.SetTimeout(60 * time.Second)
//	defer restore()
//
// Two implementations are provided: SocketTransport for the LAN instrument
// socket and SerialTransport for an RS-232 attachment.
package visa
