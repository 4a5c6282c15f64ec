package tracer

import (
	"github.com/gostrace/mstrace/internal/argvalue"
	"github.com/gostrace/mstrace/internal/catalog"
)

// Event is one completed syscall: entry paired with its exit, or an
// entry-only event when the return address could not be recovered (spec
// §4.8 step 5's "emit now with return ?" path).
type Event struct {
	Syscall   string
	Category  catalog.Category
	Args      []argvalue.Value
	Return    int64
	ReturnStr string
	HasReturn bool
	PID       int
	ThreadID  uint64
	Timestamp float64
}

// Sink receives one completed Event at a time, in the order handle_stop
// produces them. Implementations must not block the caller indefinitely;
// per spec §5, writes to a file sink are flushed before Emit returns.
type Sink interface {
	Emit(Event) error
}
