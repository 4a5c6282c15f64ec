package structs

import (
	"encoding/binary"

	"github.com/gostrace/mstrace/internal/symbols"
)

// Rlimit is {rlim_cur uint64, rlim_max uint64}, 16 bytes.
var Rlimit = Layout{
	Size: 16,
	Fields: []Field{
		{Name: "rlim_cur", Offset: 0, Size: 8, Format: rlimField},
		{Name: "rlim_max", Offset: 8, Size: 8, Format: rlimField},
	},
}

func rlimField(raw []byte) any {
	return symbols.DecodeRlim(binary.LittleEndian.Uint64(raw))
}
