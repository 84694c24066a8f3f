// Package flex implements the FLEX command grammar of the B1500 semiconductor
// parameter analyzer: building outgoing command strings and decoding the
// structured responses the instrument returns.
//
// The package has two halves:
//
// Encoding:
// A Builder accumulates commands in the order they are added and renders the
// final wire string with Message(). Every command method validates its
// arguments against the documented grammar before anything is rendered; an
// out-of-range coefficient or channel number surfaces as ErrInvalidArgument
// and the builder refuses to produce a message. Commands are pure values:
// identical arguments always render identical strings.
//
// Decoding:
// Responses are fixed-grammar delimited text (segments split on ';', fields
// split on ','). The expected shape of each response is kept as data in a
// per-context grammar table, so a reply that does not match its shape fails
// with ErrMalformedResponse carrying the context and the raw text. Decoding
// never produces partial records.
//
// Mode readback carries one warning-class condition: when the instrument
// reports a different ADC mode than the caller assumed, the decoded record is
// still valid and is returned together with ErrUnexpectedMode so the caller
// can decide whether to proceed.
package flex
