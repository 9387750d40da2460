// Package id generates the monotonic, process-wide, never-recycled
// identifiers used for buffers, windows, and cursors.
package id

import "sync/atomic"

// ID is a monotonically increasing identifier, unique within a
// process and never reused once issued.
type ID uint64

var counter uint64

// Next returns a new, previously unissued ID. Safe for concurrent use,
// though the editor core itself is single-threaded.
func Next() ID {
	return ID(atomic.AddUint64(&counter, 1))
}
