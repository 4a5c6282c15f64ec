// Package symbols holds the pure, read-only lookup tables the decoders
// consult: flag maps (bits OR-combine), constant maps (exact value lookup),
// and the errno/ioctl/fcntl tables layered on top of them. Nothing here
// reads target memory or touches a debugger; it is data and the two
// decoding policies spec §4.1 describes.
package symbols

import (
	"sort"
	"strconv"
	"strings"
)

// FlagMap decodes a bitmask into symbolic names that OR back to the
// original value. Entries are bit -> name; a bit not present in the map
// is never invented.
type FlagMap map[uint64]string

// Decode implements the flag-map policy from spec §4.1: if v is zero and
// the map has a name for zero, use it; otherwise zero decodes as "0".
// Known bits are named and removed; any remainder is reported as hex so
// no bit is silently dropped.
func (m FlagMap) Decode(v uint64) string {
	if v == 0 {
		if name, ok := m[0]; ok {
			return name
		}
		return "0"
	}
	var names []string
	remaining := v
	// Iterate bits in a stable, increasing order so output is deterministic.
	keys := make([]uint64, 0, len(m))
	for k := range m {
		if k != 0 {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, k := range keys {
		if remaining&k == k && k != 0 {
			names = append(names, m[k])
			remaining &^= k
		}
	}
	if remaining != 0 {
		names = append(names, "0x"+strconv.FormatUint(remaining, 16))
	}
	if len(names) == 0 {
		return "0x" + strconv.FormatUint(v, 16)
	}
	return strings.Join(names, "|")
}

// DecodeBitfield masks out a multi-bit field (e.g. O_ACCMODE), decodes it
// first via fieldMap, then decodes the remaining single bits via bitMap and
// appends them. Used for file-open access-mode bits per spec §4.1.
func DecodeBitfield(v uint64, mask uint64, fieldMap FlagMap, bitMap FlagMap) string {
	field := v & mask
	rest := v &^ mask
	parts := []string{}
	if name, ok := fieldMap[field]; ok {
		parts = append(parts, name)
	} else {
		parts = append(parts, "0x"+strconv.FormatUint(field, 16))
	}
	if rest != 0 {
		restStr := bitMap.Decode(rest)
		if restStr != "0" {
			parts = append(parts, restStr)
		}
	}
	return strings.Join(parts, "|")
}

// ConstMap looks a single value up by exact match; no value not present is
// ever invented (spec §4.1).
type ConstMap map[int64]string

func (m ConstMap) Lookup(v int64) (string, bool) {
	name, ok := m[v]
	return name, ok
}

// UConstMap is ConstMap keyed by unsigned value, for request/command
// numbers wider than an int32 (ioctl requests on macOS are unsigned 32-bit).
type UConstMap map[uint64]string

func (m UConstMap) Lookup(v uint64) (string, bool) {
	name, ok := m[v]
	return name, ok
}
