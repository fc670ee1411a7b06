package voovan

import (
	"errors"
)

var (
	// ErrBodyReleased reports that the storage backing a body or the session
	// behind a sink was already torn down by another actor. Transmission
	// treats it as an expected race: it aborts silently instead of logging.
	ErrBodyReleased = errors.New("underlying resource already released")

	// ErrAlreadySent is returned by Send when the response was transmitted
	// before. The body resources of a sent response are gone, so a second
	// send can never produce a valid wire image.
	ErrAlreadySent = errors.New("response already sent")
)

// HeadAssemblyError reports that the head block could not be produced.
// No bytes have been written to the sink when it is returned.
type HeadAssemblyError struct {
	error
}

func (e *HeadAssemblyError) Unwrap() error { return e.error }

// isReleaseRace reports whether err is the benign concurrent-teardown case
// that must abort transmission without logging.
func isReleaseRace(err error) bool {
	return errors.Is(err, ErrBodyReleased)
}
