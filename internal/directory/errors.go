package directory

import "errors"

var (
	// ErrDisabled indicates a lookup was attempted while the directory is
	// turned off in configuration.
	ErrDisabled = errors.New("directory lookup disabled")

	// ErrUnavailable indicates the directory server could not be reached.
	ErrUnavailable = errors.New("directory server unavailable")

	// ErrQueryTooShort indicates the query is below the configured minimum
	// length; callers should keep collecting input instead of searching.
	ErrQueryTooShort = errors.New("query below minimum length")
)
