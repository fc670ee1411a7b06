package voovan

import (
	"github.com/puzpuzpuz/xsync/v3"
)

var (
	sentCounter    = xsync.NewCounter()
	abortedCounter = xsync.NewCounter()
	wireBytes      = xsync.NewCounter()
)

// Stats is a snapshot of package-wide transmission counters.
type Stats struct {
	// Sent counts responses transmitted completely.
	Sent int64
	// Aborted counts transmissions that ended on a failure path.
	Aborted int64
	// WireBytes counts bytes accepted by transport sinks, framing included.
	WireBytes int64
}

// ReadStats returns a snapshot of the transmission counters.
func ReadStats() Stats {
	return Stats{
		Sent:      sentCounter.Value(),
		Aborted:   abortedCounter.Value(),
		WireBytes: wireBytes.Value(),
	}
}
