package tracer

import (
	"time"

	"github.com/gostrace/mstrace/internal/argvalue"
	"github.com/gostrace/mstrace/internal/catalog"
	"github.com/gostrace/mstrace/internal/decode"
)

// pendingKey identifies one in-flight syscall: the thread that entered it
// and the return address its one-shot exit breakpoint sits at. Two
// threads mid-syscall never collide because each carries its own key
// (spec §5: thread identity is part of the pending-event key).
type pendingKey struct {
	ThreadID uint64
	Addr     uint64
}

// pendingEvent carries everything an exit needs that only existed at
// entry: the decoded IN arguments, the raw register values (read-only
// from here on — OUT decoders at exit must use these, never re-read
// registers, per spec §8 property 3), and this invocation's scratch cache.
type pendingEvent struct {
	def     *catalog.Def
	args    []argvalue.Value
	rawArgs []uint64
	cache   decode.Cache
	start   time.Time
}
