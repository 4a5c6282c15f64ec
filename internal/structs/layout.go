// Package structs implements the fixed macOS ABI layouts of spec §4.5: one
// generic field-table skeleton (resolving spec §9 Open Question (a), which
// named two parallel struct-decoding pipelines in the original source) plus
// the handful of structs whose decoding needs more than a flat field table
// (sockaddr's family dispatch, msghdr/iovec's pointer dereferencing).
package structs

import (
	"encoding/binary"

	"github.com/gostrace/mstrace/internal/argvalue"
)

// FieldFormat renders one field's raw bytes into the scalar or nested
// value that ends up in the output Struct.
type FieldFormat func(raw []byte) any

// Field describes one member of a fixed C layout: its byte offset and
// size within the struct, and how to format it. A Field with Excluded set
// is read (its bytes affect nothing else) but dropped from the output, for
// the padding/reserved/nanosecond-half fields spec §4.5 says to exclude
// uniformly.
type Field struct {
	Name     string
	Offset   int
	Size     int
	Format   FieldFormat
	Excluded bool
}

// Layout is the generic struct-decoding skeleton every fixed-size struct
// decoder in this package builds on: declare the C offsets once, read the
// whole struct in one memory access, then walk the field table in
// declaration order.
type Layout struct {
	Size   int
	Fields []Field
}

// Decode turns one already-read struct buffer into an ordered Struct
// value, in field declaration order, dropping excluded fields.
func (l Layout) Decode(raw []byte) *argvalue.Struct {
	out := &argvalue.Struct{}
	for _, f := range l.Fields {
		if f.Excluded {
			continue
		}
		if f.Offset+f.Size > len(raw) {
			continue
		}
		field := raw[f.Offset : f.Offset+f.Size]
		var value any
		if f.Format != nil {
			value = f.Format(field)
		} else {
			value = defaultFormat(field)
		}
		out.Set(f.Name, value)
	}
	return out
}

func defaultFormat(raw []byte) any {
	switch len(raw) {
	case 1:
		return int64(int8(raw[0]))
	case 2:
		return int64(int16(binary.LittleEndian.Uint16(raw)))
	case 4:
		return int64(int32(binary.LittleEndian.Uint32(raw)))
	case 8:
		return int64(binary.LittleEndian.Uint64(raw))
	default:
		return trimNulBytes(raw)
	}
}

// Unsigned field formatters, used where the C field is unsigned and a
// negative rendering would be wrong (uids, gids, flags, ...).
func U8(raw []byte) any  { return int64(raw[0]) }
func U16(raw []byte) any { return int64(binary.LittleEndian.Uint16(raw)) }
func U32(raw []byte) any { return int64(binary.LittleEndian.Uint32(raw)) }
func U64(raw []byte) any { return binary.LittleEndian.Uint64(raw) }

func I8(raw []byte) any  { return int64(int8(raw[0])) }
func I16(raw []byte) any { return int64(int16(binary.LittleEndian.Uint16(raw))) }
func I32(raw []byte) any { return int64(int32(binary.LittleEndian.Uint32(raw))) }
func I64(raw []byte) any { return int64(binary.LittleEndian.Uint64(raw)) }

// CString formats a fixed-size byte array field as a string, stripping
// trailing NULs, per spec §4.5's statfs entry.
func CString(raw []byte) any { return trimNulBytes(raw) }

func trimNulBytes(raw []byte) string {
	n := len(raw)
	for n > 0 && raw[n-1] == 0 {
		n--
	}
	return string(raw[:n])
}

// Flags32 wraps a symbols.FlagMap-shaped decode function into a FieldFormat
// over a 4-byte field.
func Flags32(decode func(uint64) string) FieldFormat {
	return func(raw []byte) any {
		return decode(uint64(binary.LittleEndian.Uint32(raw)))
	}
}

func Flags64(decode func(uint64) string) FieldFormat {
	return func(raw []byte) any {
		return decode(binary.LittleEndian.Uint64(raw))
	}
}

func Const32(lookup func(int64) (string, bool)) FieldFormat {
	return func(raw []byte) any {
		v := int64(int32(binary.LittleEndian.Uint32(raw)))
		if name, ok := lookup(v); ok {
			return name
		}
		return v
	}
}
