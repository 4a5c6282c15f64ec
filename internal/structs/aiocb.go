package structs

// Aiocb is struct aiocb: {fildes int32, offset off_t(8, pads to 8),
// buf ptr, nbytes size_t, reqprio int32, sigevent (32 bytes),
// lio_opcode int32}, 80 bytes once padded to 8-byte alignment.
var Aiocb = Layout{
	Size: 80,
	Fields: []Field{
		{Name: "aio_fildes", Offset: 0, Size: 4, Format: I32},
		{Name: "aio_offset", Offset: 8, Size: 8, Format: I64},
		{Name: "aio_buf", Offset: 16, Size: 8, Format: ptrField},
		{Name: "aio_nbytes", Offset: 24, Size: 8, Format: U64},
		{Name: "aio_reqprio", Offset: 32, Size: 4, Format: I32},
		{Name: "aio_sigevent", Offset: 40, Size: 32, Format: nestedSigevent},
		{Name: "aio_lio_opcode", Offset: 72, Size: 4, Format: I32},
	},
}

func nestedSigevent(raw []byte) any { return Sigevent.Decode(raw) }
