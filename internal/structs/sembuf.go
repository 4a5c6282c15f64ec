package structs

import "github.com/gostrace/mstrace/internal/symbols"

// Sembuf is {sem_num uint16, sem_op int16, sem_flg int16}, 6 bytes.
var Sembuf = Layout{
	Size: 6,
	Fields: []Field{
		{Name: "sem_num", Offset: 0, Size: 2, Format: U16},
		{Name: "sem_op", Offset: 2, Size: 2, Format: I16},
		{Name: "sem_flg", Offset: 4, Size: 2, Format: Flags32From16(symbols.SemFlags)},
	},
}
