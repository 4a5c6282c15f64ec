package structs

import "encoding/binary"

// Iovec is {iov_base ptr, iov_len size_t}, 16 bytes. Tracer code reads the
// array itself (decode.Iovec and msghdr.go's decodeIovecPreview read the
// base/len pairs); this Layout exists for the rarer case a struct field
// embeds one directly.
var Iovec = Layout{
	Size: 16,
	Fields: []Field{
		{Name: "iov_base", Offset: 0, Size: 8, Format: ptrField},
		{Name: "iov_len", Offset: 8, Size: 8, Format: U64},
	},
}

func ptrField(raw []byte) any {
	return "0x" + hex64(binary.LittleEndian.Uint64(raw))
}
