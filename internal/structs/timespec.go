package structs

// Timespec is {tv_sec int64, tv_nsec int64}, 16 bytes on the macOS LP64 ABI.
var Timespec = Layout{
	Size: 16,
	Fields: []Field{
		{Name: "tv_sec", Offset: 0, Size: 8, Format: I64},
		{Name: "tv_nsec", Offset: 8, Size: 8, Format: I64},
	},
}

// Timeval is {tv_sec int64, tv_usec int32} with 4 bytes of padding, 16
// bytes on the macOS LP64 ABI.
var Timeval = Layout{
	Size: 16,
	Fields: []Field{
		{Name: "tv_sec", Offset: 0, Size: 8, Format: I64},
		{Name: "tv_usec", Offset: 8, Size: 4, Format: I32},
	},
}
