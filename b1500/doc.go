// Package b1500 provides the mainframe driver for the B1500 semiconductor
// parameter analyzer.
//
// A Mainframe is created with Open, which discovers the installed modules
// through the module inventory query and resolves each reported model name
// to a concrete module variant via a closed dispatch table. The resulting
// registry (lookup by slot, by channel, and by module kind) is frozen after
// discovery and safe for concurrent readers for the rest of the session.
//
// All instrument operations are synchronous request/reply exchanges over a
// single visa.Transport; commands are built and responses decoded by the
// flex package. Self-calibration temporarily widens the transport timeout
// and always restores the previous value when it returns, even on failure.
package b1500
