package structs

import (
	"encoding/binary"
	"fmt"

	"github.com/gostrace/mstrace/internal/argvalue"
	"github.com/gostrace/mstrace/internal/memory"
	"github.com/gostrace/mstrace/internal/symbols"
)

const (
	afUnix  = 1
	afInet  = 2
	afInet6 = 30
)

// DecodeSockaddr dispatches on the first two bytes of a sockaddr
// (sa_len, sa_family) and re-reads at the struct's own length, since a
// flat Layout can't express the family-dependent tail. addr is the
// pointer that was passed to the traced call; r is used to re-read once
// sa_len is known. The result is an ordered Struct, same as every other
// struct decoder in this package, so it serializes through the JSON
// sink's {"output": ...} schema instead of a pre-rendered string.
func DecodeSockaddr(r memory.Reader, addr uint64) (*argvalue.Struct, error) {
	head, err := r.ReadMemory(addr, 2)
	if err != nil {
		return nil, err
	}
	saLen := int(head[0])
	family := int64(head[1])
	if saLen < 2 {
		saLen = 16
	}
	raw, err := r.ReadMemory(addr, saLen)
	if err != nil {
		return nil, err
	}
	switch family {
	case afInet:
		return decodeSockaddrIn(raw), nil
	case afInet6:
		return decodeSockaddrIn6(raw), nil
	case afUnix:
		return decodeSockaddrUn(raw), nil
	default:
		name, ok := symbols.AddressFamily.Lookup(family)
		if !ok {
			name = fmt.Sprintf("%d", family)
		}
		s := &argvalue.Struct{}
		s.Set("sa_family", name)
		return s, nil
	}
}

// struct sockaddr_in: len(1) family(1) port(2) addr(4) zero(8).
func decodeSockaddrIn(raw []byte) *argvalue.Struct {
	s := &argvalue.Struct{}
	s.Set("sa_family", "AF_INET")
	if len(raw) < 8 {
		return s
	}
	port := binary.BigEndian.Uint16(raw[2:4])
	ip := raw[4:8]
	s.Set("sin_port", fmt.Sprintf("htons(%d)", port))
	s.Set("sin_addr", fmt.Sprintf("inet_addr(\"%d.%d.%d.%d\")", ip[0], ip[1], ip[2], ip[3]))
	return s
}

// struct sockaddr_in6: len(1) family(1) port(2) flowinfo(4) addr(16) scope_id(4).
func decodeSockaddrIn6(raw []byte) *argvalue.Struct {
	s := &argvalue.Struct{}
	s.Set("sa_family", "AF_INET6")
	if len(raw) < 24 {
		return s
	}
	port := binary.BigEndian.Uint16(raw[2:4])
	ip := raw[8:24]
	s.Set("sin6_port", fmt.Sprintf("htons(%d)", port))
	s.Set("sin6_addr", formatIPv6(ip))
	return s
}

func formatIPv6(ip []byte) string {
	out := ""
	for i := 0; i < 16; i += 2 {
		if i > 0 {
			out += ":"
		}
		out += fmt.Sprintf("%x", uint16(ip[i])<<8|uint16(ip[i+1]))
	}
	return out
}

// struct sockaddr_un: len(1) family(1) path(up to 104, NUL-terminated).
func decodeSockaddrUn(raw []byte) *argvalue.Struct {
	s := &argvalue.Struct{}
	s.Set("sa_family", "AF_UNIX")
	if len(raw) < 3 {
		return s
	}
	s.Set("sun_path", string(trimNulBytes(raw[2:])))
	return s
}
