package structs

import (
	"encoding/binary"

	"github.com/gostrace/mstrace/internal/symbols"
)

// Sigaction is {handler ptr, mask uint32, flags int32}, 16 bytes: an
// 8-byte handler pointer plus two 4-byte fields.
var Sigaction = Layout{
	Size: 16,
	Fields: []Field{
		{Name: "sa_handler", Offset: 0, Size: 8, Format: sigHandlerField},
		{Name: "sa_mask", Offset: 8, Size: 4, Format: sigMaskField},
		{Name: "sa_flags", Offset: 12, Size: 4, Format: Flags32(symbols.SigactionFlags.Decode)},
	},
}

func sigHandlerField(raw []byte) any {
	v := binary.LittleEndian.Uint64(raw)
	switch v {
	case symbols.SigDfl:
		return "SIG_DFL"
	case symbols.SigIgn:
		return "SIG_IGN"
	default:
		return "0x" + hex64(v)
	}
}

func sigMaskField(raw []byte) any {
	return symbols.SignalMaskFlags(binary.LittleEndian.Uint32(raw))
}

func hex64(v uint64) string {
	const digits = "0123456789abcdef"
	if v == 0 {
		return "0"
	}
	var buf [16]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = digits[v&0xf]
		v >>= 4
	}
	return string(buf[i:])
}
