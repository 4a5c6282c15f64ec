package structs

import (
	"encoding/binary"

	"github.com/gostrace/mstrace/internal/symbols"
)

// Kevent is struct kevent: {ident uintptr, filter int16, flags uint16,
// fflags uint32, data intptr, udata ptr}, 48 bytes aligned.
var Kevent = Layout{
	Size: 48,
	Fields: []Field{
		{Name: "ident", Offset: 0, Size: 8, Format: U64},
		{Name: "filter", Offset: 8, Size: 2, Format: keventFilterField},
		{Name: "flags", Offset: 10, Size: 2, Format: Flags32From16(symbols.EVFlags)},
		{Name: "fflags", Offset: 12, Size: 4, Format: keventFflagsField},
		{Name: "data", Offset: 16, Size: 8, Format: I64},
		{Name: "udata", Offset: 24, Size: 8, Format: ptrField},
	},
}

// Kevent64 is struct kevent64_s: the same fields plus two uint64 "ext"
// slots and no pointer-width-dependent layout, 72 bytes.
var Kevent64 = Layout{
	Size: 72,
	Fields: []Field{
		{Name: "ident", Offset: 0, Size: 8, Format: U64},
		{Name: "filter", Offset: 8, Size: 2, Format: keventFilterField},
		{Name: "flags", Offset: 10, Size: 2, Format: Flags32From16(symbols.EVFlags)},
		{Name: "fflags", Offset: 12, Size: 4, Format: keventFflagsField},
		{Name: "data", Offset: 16, Size: 8, Format: I64},
		{Name: "udata", Offset: 24, Size: 8, Format: ptrField},
		{Name: "ext0", Offset: 32, Size: 8, Format: U64},
		{Name: "ext1", Offset: 40, Size: 8, Format: U64},
	},
}

func keventFilterField(raw []byte) any {
	v := int64(int16(binary.LittleEndian.Uint16(raw)))
	if name, ok := symbols.EVFILTFilter.Lookup(v); ok {
		return name
	}
	return v
}

// keventFflagsField can't decode fflags on its own: the meaning of the bits
// depends on the sibling filter field. It renders the raw hex value, and
// Kevent/Kevent64's Decode outputs that hex value as is; the fflags field
// is not re-decoded against the filter (DecodeFflags below does that
// decoding when given both values, and Layout.Decode does not call it).
func keventFflagsField(raw []byte) any {
	v := uint64(binary.LittleEndian.Uint32(raw))
	return "0x" + hex64(v)
}

// DecodeFflags re-decodes a kevent's fflags field once the filter value is
// known, since NOTE_* bit meaning is filter-specific (spec §4.5).
func DecodeFflags(filter int16, fflags uint32) string {
	return symbols.FflagsTable(filter).Decode(uint64(fflags))
}
