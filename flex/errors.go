package flex

import "errors"

var (
	// ErrInvalidArgument indicates that a caller-supplied value violates the
	// documented range or enumeration of a command argument. It is raised
	// during command building, before any I/O takes place, and is always
	// recoverable by retrying with a corrected value.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMalformedResponse indicates that the instrument returned a string
	// that does not match the expected field shape of the response grammar.
	// The wrapped message carries the decode context and the raw text so the
	// failure can be reproduced offline.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrUnexpectedMode is a warning-class condition: a response decoded
	// successfully but reports a different operating mode than the caller
	// assumed. The decoded record returned alongside this error is valid;
	// the caller decides whether to proceed.
	ErrUnexpectedMode = errors.New("unexpected mode")

	// ErrUnsupportedModule indicates that module discovery encountered a
	// model identifier outside the set of supported modules. It is fatal for
	// the affected slot but does not abort discovery of other slots.
	ErrUnsupportedModule = errors.New("unsupported module")
)
