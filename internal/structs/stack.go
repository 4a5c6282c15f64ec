package structs

import "github.com/gostrace/mstrace/internal/symbols"

// StackT is sigaltstack's stack_t: {ss_sp ptr, ss_size size_t, ss_flags
// int32}, 24 bytes once padded to 8-byte alignment for the trailing field.
var StackT = Layout{
	Size: 24,
	Fields: []Field{
		{Name: "ss_sp", Offset: 0, Size: 8, Format: ptrField},
		{Name: "ss_size", Offset: 8, Size: 8, Format: U64},
		{Name: "ss_flags", Offset: 16, Size: 4, Format: Flags32(symbols.StackFlags.Decode)},
	},
}
