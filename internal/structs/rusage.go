package structs

import (
	"encoding/binary"
	"fmt"
)

// Rusage is {utime timeval, stime timeval, 14 long counters}, per spec
// §4.5; time fields render as "<sec>s"/"<usec>µs" pairs and the 14
// counters keep their ru_* names.
var rusageCounterNames = []string{
	"ru_maxrss", "ru_ixrss", "ru_idrss", "ru_isrss",
	"ru_minflt", "ru_majflt", "ru_nswap",
	"ru_inblock", "ru_oublock", "ru_msgsnd", "ru_msgrcv",
	"ru_nsignals", "ru_nvcsw", "ru_nivcsw",
}

func buildRusageLayout() Layout {
	fields := []Field{
		{Name: "ru_utime_sec", Offset: 0, Size: 8, Format: secondsField},
		{Name: "ru_utime_usec", Offset: 8, Size: 4, Format: microsField},
		{Name: "ru_stime_sec", Offset: 16, Size: 8, Format: secondsField},
		{Name: "ru_stime_usec", Offset: 24, Size: 4, Format: microsField},
	}
	offset := 32
	for _, name := range rusageCounterNames {
		fields = append(fields, Field{Name: name, Offset: offset, Size: 8, Format: I64})
		offset += 8
	}
	return Layout{Size: offset, Fields: fields}
}

var Rusage = buildRusageLayout()

func secondsField(raw []byte) any {
	return fmt.Sprintf("%ds", int64(binary.LittleEndian.Uint64(raw)))
}

func microsField(raw []byte) any {
	return fmt.Sprintf("%dµs", int32(binary.LittleEndian.Uint32(raw)))
}
