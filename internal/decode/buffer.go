package decode

import (
	"encoding/binary"
	"fmt"

	"github.com/gostrace/mstrace/internal/argvalue"
	"github.com/gostrace/mstrace/internal/memory"
)

// Buffer reads raw_args[sizeIdx] bytes from the address in this argument's
// raw value, capped at memory's buffer cap (or the wider no_abbrev cap).
func Buffer(sizeIdx int, dir Direction) Decoder {
	return DecoderFunc(func(ctx *Context) (argvalue.Value, bool) {
		if !dir.runsNow(ctx.AtEntry) {
			if dir == Out && ctx.AtEntry {
				return argvalue.Pointer(ctx.Raw), true
			}
			return argvalue.Value{}, false
		}
		if sizeIdx < 0 || sizeIdx >= len(ctx.RawArgs) {
			return argvalue.BufferFailed(ctx.Raw), true
		}
		requested := int(int64(ctx.RawArgs[sizeIdx]))
		if dir == Out && ctx.HasReturn && ctx.Return >= 0 && int(ctx.Return) < requested {
			requested = int(ctx.Return)
		}
		data, truncated, err := memory.ReadBuffer(ctx.Reader, ctx.Raw, requested, ctx.NoAbbrev)
		if err != nil {
			return argvalue.BufferFailed(ctx.Raw), true
		}
		return argvalue.Buffer(data, ctx.Raw, truncated), true
	})
}

// Iovec reads raw_args[countIdx] iovec entries from the address in this
// argument's raw value, dereferencing each base with a preview cap.
func Iovec(countIdx int, dir Direction) Decoder {
	return DecoderFunc(func(ctx *Context) (argvalue.Value, bool) {
		if !dir.runsNow(ctx.AtEntry) {
			if dir == Out && ctx.AtEntry {
				return argvalue.Pointer(ctx.Raw), true
			}
			return argvalue.Value{}, false
		}
		if countIdx < 0 || countIdx >= len(ctx.RawArgs) {
			return argvalue.IovecArray(nil), true
		}
		count := int(int64(ctx.RawArgs[countIdx]))
		var out []argvalue.Iovec
		for i := 0; i < count; i++ {
			entry, err := ctx.Reader.ReadMemory(ctx.Raw+uint64(i*16), 16)
			if err != nil {
				out = append(out, argvalue.Iovec{})
				continue
			}
			base := binary.LittleEndian.Uint64(entry[0:8])
			length := binary.LittleEndian.Uint64(entry[8:16])
			n := int(length)
			if n > 32 {
				n = 32
			}
			preview, truncated, err := memory.ReadBuffer(ctx.Reader, base, n, ctx.NoAbbrev)
			if err != nil {
				out = append(out, argvalue.Iovec{Len: length})
				continue
			}
			_ = truncated
			out = append(out, argvalue.Iovec{Base: preview, Len: length})
		}
		return argvalue.IovecArray(out), true
	})
}

// IntPtr reads one C int from the address in this argument's raw value,
// formatting it as a single-element array (the IntPtr(direction) decoder).
func IntPtr(dir Direction) Decoder {
	return DecoderFunc(func(ctx *Context) (argvalue.Value, bool) {
		if !dir.runsNow(ctx.AtEntry) {
			if dir == Out && ctx.AtEntry {
				return argvalue.Pointer(ctx.Raw), true
			}
			return argvalue.Value{}, false
		}
		raw, err := ctx.Reader.ReadMemory(ctx.Raw, 4)
		if err != nil {
			return argvalue.Pointer(ctx.Raw), true
		}
		return argvalue.IntPtr(int64(int32(binary.LittleEndian.Uint32(raw)))), true
	})
}

// IntArray reads n (or raw_args[countIdx], clamped to a non-negative
// return value at exit per getgroups semantics) int32 values and renders
// them as a bracketed list.
func IntArray(count int, countIdx int, dir Direction) Decoder {
	return DecoderFunc(func(ctx *Context) (argvalue.Value, bool) {
		if !dir.runsNow(ctx.AtEntry) {
			if dir == Out && ctx.AtEntry {
				return argvalue.Pointer(ctx.Raw), true
			}
			return argvalue.Value{}, false
		}
		n := count
		if countIdx >= 0 && countIdx < len(ctx.RawArgs) {
			n = int(int64(ctx.RawArgs[countIdx]))
			if dir == Out && ctx.HasReturn && ctx.Return >= 0 && int(ctx.Return) < n {
				n = int(ctx.Return)
			}
		}
		vals, err := memory.ReadInt32Array(ctx.Reader, ctx.Raw, n)
		if err != nil {
			return argvalue.Pointer(ctx.Raw), true
		}
		s := "["
		for i, v := range vals {
			if i > 0 {
				s += ", "
			}
			s += fmt.Sprintf("%d", v)
		}
		s += "]"
		return argvalue.Raw(s), true
	})
}
