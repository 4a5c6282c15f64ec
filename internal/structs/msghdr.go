package structs

import (
	"encoding/binary"

	"github.com/gostrace/mstrace/internal/argvalue"
	"github.com/gostrace/mstrace/internal/memory"
)

const msghdrPreviewCap = 32

// DecodeMsghdr reads struct msghdr at addr ({name ptr, namelen uint32,
// iov ptr, iovlen int32, control ptr, controllen uint32, flags int32},
// 48 bytes) and returns it as an ordered Struct, previewing the first
// msghdrPreviewCap bytes of each iovec entry rather than the whole
// buffer, same as every other struct decoder in this package.
func DecodeMsghdr(r memory.Reader, addr uint64) (*argvalue.Struct, error) {
	raw, err := r.ReadMemory(addr, 48)
	if err != nil {
		return nil, err
	}
	nameAddr := binary.LittleEndian.Uint64(raw[0:8])
	namelen := binary.LittleEndian.Uint32(raw[8:12])
	iovAddr := binary.LittleEndian.Uint64(raw[16:24])
	iovlen := int32(binary.LittleEndian.Uint32(raw[24:28]))
	controllen := binary.LittleEndian.Uint32(raw[40:44])
	flags := int32(binary.LittleEndian.Uint32(raw[44:48]))

	s := &argvalue.Struct{}
	s.Set("msg_namelen", uint64(namelen))
	if nameAddr != 0 && namelen > 0 {
		if name, err := DecodeSockaddr(r, nameAddr); err == nil {
			s.Set("msg_name", name)
		}
	}
	s.Set("msg_iov", decodeIovecPreview(r, iovAddr, int(iovlen)))
	s.Set("msg_controllen", uint64(controllen))
	s.Set("msg_flags", int64(flags))
	return s, nil
}

func decodeIovecPreview(r memory.Reader, addr uint64, count int) []any {
	if count <= 0 {
		return []any{}
	}
	out := make([]any, 0, count)
	for i := 0; i < count; i++ {
		entry, err := r.ReadMemory(addr+uint64(i*16), 16)
		if err != nil {
			out = append(out, "?")
			continue
		}
		base := binary.LittleEndian.Uint64(entry[0:8])
		length := binary.LittleEndian.Uint64(entry[8:16])
		n := int(length)
		if n > msghdrPreviewCap {
			n = msghdrPreviewCap
		}
		entryStruct := &argvalue.Struct{}
		data, err := r.ReadMemory(base, n)
		if err != nil {
			entryStruct.Set("iov_len", length)
			out = append(out, entryStruct)
			continue
		}
		suffix := ""
		if uint64(n) < length {
			suffix = "..."
		}
		entryStruct.Set("iov_base", memory.Escape(data)+suffix)
		entryStruct.Set("iov_len", length)
		out = append(out, entryStruct)
	}
	return out
}
