package spinor

import "errors"

var (
	// ErrTimeout means a wait-idle budget expired before the chip and host
	// were observed idle. The chip may still be busy; retry with a larger
	// timeout.
	ErrTimeout = errors.New("timeout waiting for flash idle")

	// ErrUnsupportedChip means the manufacturer id read from the chip could
	// not be trusted, so size detection was abandoned.
	ErrUnsupportedChip = errors.New("unsupported flash chip")

	// ErrUnsupportedHost means the operation is not available on this host
	// or driver combination (e.g. encrypted writes on the generic driver).
	ErrUnsupportedHost = errors.New("operation not supported on this host")

	// ErrNotInitialized means required chip state was missing, such as a
	// read mode that was never configured, or a nil chip with no default
	// registered.
	ErrNotInitialized = errors.New("chip not initialized")
)
