package gridgraph

import (
	"runtime"
	"strings"
)

// IsAllocationPanic reports whether r, a value recovered from a panic, is
// the runtime's way of signaling an allocation failure rather than a
// programming error. Go has no catchable error from make/append on true
// out-of-memory (the runtime calls throw, which is unrecoverable); what a
// kernel's entry point can actually recover is a runtime.Error raised when
// a requested allocation size is invalid or too large to satisfy, such as
// "makeslice: len out of range" or "out of memory".
//
// Every kernel's public entry point uses this to decide whether a
// recovered panic should be reported as ErrOutOfMemory or re-panicked: an
// index-out-of-range or nil-dereference bug in the search logic must
// propagate as a real panic, not be silently swallowed as the documented
// allocation-failure outcome.
func IsAllocationPanic(r any) bool {
	rerr, ok := r.(runtime.Error)
	if !ok {
		return false
	}

	msg := rerr.Error()

	return strings.Contains(msg, "out of memory") ||
		strings.Contains(msg, "makeslice") ||
		strings.Contains(msg, "makemap") ||
		strings.Contains(msg, "makechan")
}
