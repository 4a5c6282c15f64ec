package decode

import (
	"fmt"
	"strings"

	"github.com/gostrace/mstrace/internal/argvalue"
	"github.com/gostrace/mstrace/internal/structs"
)

// Struct reads and decodes one fixed-layout struct at the address in this
// argument's raw value.
func Struct(layout structs.Layout, dir Direction) Decoder {
	return DecoderFunc(func(ctx *Context) (argvalue.Value, bool) {
		if !dir.runsNow(ctx.AtEntry) {
			if dir == Out && ctx.AtEntry {
				return argvalue.Pointer(ctx.Raw), true
			}
			return argvalue.Value{}, false
		}
		raw, err := ctx.Reader.ReadMemory(ctx.Raw, layout.Size)
		if err != nil {
			return argvalue.BufferFailed(ctx.Raw), true
		}
		return argvalue.StructVal(layout.Decode(raw)), true
	})
}

// StructArray decodes raw_args[countIdx] fixed-size structs starting at
// this argument's raw value; at exit the count may be clamped to the
// non-negative return value.
func StructArray(layout structs.Layout, countIdx int, dir Direction) Decoder {
	return DecoderFunc(func(ctx *Context) (argvalue.Value, bool) {
		if !dir.runsNow(ctx.AtEntry) {
			if dir == Out && ctx.AtEntry {
				return argvalue.Pointer(ctx.Raw), true
			}
			return argvalue.Value{}, false
		}
		if countIdx < 0 || countIdx >= len(ctx.RawArgs) {
			return argvalue.StructArray(nil), true
		}
		n := int(int64(ctx.RawArgs[countIdx]))
		if dir == Out && ctx.HasReturn && ctx.Return >= 0 && int(ctx.Return) < n {
			n = int(ctx.Return)
		}
		var out []*argvalue.Struct
		for i := 0; i < n; i++ {
			raw, err := ctx.Reader.ReadMemory(ctx.Raw+uint64(i*layout.Size), layout.Size)
			if err != nil {
				break
			}
			out = append(out, layout.Decode(raw))
		}
		return argvalue.StructArray(out), true
	})
}

// Timespec reads {i64 tv_sec, i64 tv_nsec} at this argument's address. It
// is an IN decoder by default (e.g. nanosleep's requested-duration
// argument); TimespecDir gives the OUT variant (clock_gettime's result).
var Timespec Decoder = TimespecDir(In)

// TimespecDir returns a Timespec decoder for the given direction.
func TimespecDir(dir Direction) Decoder {
	return DecoderFunc(func(ctx *Context) (argvalue.Value, bool) {
		if !dir.runsNow(ctx.AtEntry) {
			if dir == Out && ctx.AtEntry {
				return argvalue.Pointer(ctx.Raw), true
			}
			return argvalue.Value{}, false
		}
		raw, err := ctx.Reader.ReadMemory(ctx.Raw, structs.Timespec.Size)
		if err != nil {
			return argvalue.BufferFailed(ctx.Raw), true
		}
		return argvalue.StructVal(structs.Timespec.Decode(raw)), true
	})
}

// Uuid reads 16 bytes at exit and renders the canonical uppercase form; at
// entry it yields a placeholder pointer, like any other OUT decoder.
var Uuid Decoder = DecoderFunc(func(ctx *Context) (argvalue.Value, bool) {
	if ctx.AtEntry {
		return argvalue.Pointer(ctx.Raw), true
	}
	raw, err := ctx.Reader.ReadMemory(ctx.Raw, 16)
	if err != nil {
		return argvalue.BufferFailed(ctx.Raw), true
	}
	return argvalue.UUID(formatUUID(raw)), true
})

func formatUUID(b []byte) string {
	var sb strings.Builder
	groups := [5]int{4, 2, 2, 2, 6}
	pos := 0
	for i, n := range groups {
		if i > 0 {
			sb.WriteByte('-')
		}
		for j := 0; j < n; j++ {
			fmt.Fprintf(&sb, "%02X", b[pos+j])
		}
		pos += n
	}
	return sb.String()
}
