// Package decode implements the parameter-decoder framework (C4): one
// decoder per argument kind, run twice per syscall (once at entry for IN
// parameters, once at exit for OUT parameters) against a shared Context.
package decode

import (
	"github.com/gostrace/mstrace/internal/argvalue"
	"github.com/gostrace/mstrace/internal/memory"
)

// Cache is the per-pending-event scratch map C8 owns and decoders read and
// write for cross-parameter coordination (the sysctl MIB and sysctlbyname
// caches). It is never global: each pending event gets its own.
type Cache map[string]any

// Context is everything a decoder needs to produce a value for one
// argument of one syscall invocation, at either entry or exit.
type Context struct {
	Reader   memory.Reader
	NoAbbrev bool

	Raw     uint64   // this argument's raw 64-bit value
	RawArgs []uint64  // every argument's raw value, fixed at entry

	Return    int64
	HasReturn bool // false at entry, true at exit

	AtEntry bool
	Cache   Cache
}

// Signed reinterprets Raw as a signed 64-bit value.
func (c *Context) Signed() int64 { return int64(c.Raw) }

// Decoder produces an argvalue.Value for one argument. ok is false to mean
// "nothing to report at this phase" (an IN decoder at exit produces
// ok=false with a zero Value). An OUT decoder at entry returns a Pointer
// placeholder with ok=true and is decoded for real at exit.
type Decoder interface {
	Decode(ctx *Context) (argvalue.Value, bool)
}

// DecoderFunc adapts a plain function to the Decoder interface.
type DecoderFunc func(ctx *Context) (argvalue.Value, bool)

func (f DecoderFunc) Decode(ctx *Context) (argvalue.Value, bool) { return f(ctx) }
