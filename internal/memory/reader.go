// Package memory implements the cross-process memory readers decoders use
// to turn a raw pointer argument into bytes, and the string-escaping rules
// applied before those bytes reach a formatter.
package memory

import "encoding/binary"

const (
	stringChunkSize = 256
	stringCap       = 4096
	bufferCap       = 4096
	bufferCapNoAbbr = 65536
	ptrArrayCap     = 1024
)

// Reader is the subset of the debugger's process handle the memory package
// needs: a raw byte read at an address in the target's address space.
// internal/debugger.Process satisfies this structurally.
type Reader interface {
	ReadMemory(addr uint64, size int) ([]byte, error)
}

// ReadCString reads a NUL-terminated string starting at addr, in 256-byte
// chunks up to a 4096-byte cap, per spec §4.3 rule 1. ok is false only when
// the very first chunk could not be read at all.
func ReadCString(r Reader, addr uint64) (data []byte, ok bool) {
	var out []byte
	for total := 0; total < stringCap; total += stringChunkSize {
		chunk, err := r.ReadMemory(addr+uint64(total), stringChunkSize)
		if err != nil {
			if total == 0 {
				return nil, false
			}
			return out, true
		}
		if idx := indexByte(chunk, 0); idx >= 0 {
			out = append(out, chunk[:idx]...)
			return out, true
		}
		out = append(out, chunk...)
	}
	return out, true
}

func indexByte(b []byte, c byte) int {
	for i, v := range b {
		if v == c {
			return i
		}
	}
	return -1
}

// ReadBuffer reads a sized buffer, capping the request at 4096 bytes (or
// 65536 under --no-abbrev), per spec §4.3 rule 2. truncated reports
// whether the cap was applied.
func ReadBuffer(r Reader, addr uint64, requested int, noAbbrev bool) (data []byte, truncated bool, err error) {
	cap := bufferCap
	if noAbbrev {
		cap = bufferCapNoAbbr
	}
	n := requested
	truncated = false
	if n > cap {
		n = cap
		truncated = true
	}
	if n < 0 {
		n = 0
	}
	data, err = r.ReadMemory(addr, n)
	return data, truncated, err
}

// ReadStruct reads exactly size bytes for a fixed-layout struct, per spec
// §4.3 rule 3.
func ReadStruct(r Reader, addr uint64, size int) ([]byte, error) {
	return r.ReadMemory(addr, size)
}

// ReadPointerArray reads NULL-terminated 8-byte pointers starting at addr
// (argv/envp style), dereferencing each into a NUL-terminated string, per
// spec §4.3 rule 4.
func ReadPointerArray(r Reader, addr uint64) [][]byte {
	var out [][]byte
	for i := 0; i < ptrArrayCap; i++ {
		raw, err := r.ReadMemory(addr+uint64(i*8), 8)
		if err != nil {
			break
		}
		ptr := binary.LittleEndian.Uint64(raw)
		if ptr == 0 {
			break
		}
		s, ok := ReadCString(r, ptr)
		if !ok {
			break
		}
		out = append(out, s)
	}
	return out
}

// ReadInt32Array reads n little-endian signed int32 values, per spec §4.3
// rule 5 (used for sysctl MIB arrays and socketpair results).
func ReadInt32Array(r Reader, addr uint64, n int) ([]int32, error) {
	if n <= 0 {
		return nil, nil
	}
	raw, err := r.ReadMemory(addr, n*4)
	if err != nil {
		return nil, err
	}
	out := make([]int32, n)
	for i := 0; i < n; i++ {
		out[i] = int32(binary.LittleEndian.Uint32(raw[i*4:]))
	}
	return out, nil
}
