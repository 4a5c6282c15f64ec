package structs

import "github.com/gostrace/mstrace/internal/symbols"

// Pollfd is {fd int32, events int16, revents int16}, 8 bytes.
var Pollfd = Layout{
	Size: 8,
	Fields: []Field{
		{Name: "fd", Offset: 0, Size: 4, Format: I32},
		{Name: "events", Offset: 4, Size: 2, Format: Flags32From16(symbols.PollEvents)},
		{Name: "revents", Offset: 6, Size: 2, Format: Flags32From16(symbols.PollEvents)},
	},
}

// Flags32From16 adapts a FlagMap-decoding FieldFormat to a 2-byte field.
func Flags32From16(m symbols.FlagMap) FieldFormat {
	return func(raw []byte) any {
		v := uint64(uint16(raw[0]) | uint16(raw[1])<<8)
		return m.Decode(v)
	}
}
