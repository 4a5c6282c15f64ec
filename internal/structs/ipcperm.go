package structs

// IpcPerm is macOS's struct ipc_perm: {uid,gid,cuid,cgid uint32, mode
// uint16, _seq uint16, _key int32}. The layout covers the first 20 bytes,
// through _seq: the sequence number is excluded and the key is not read;
// nothing downstream renders them.
var IpcPerm = Layout{
	Size: 20,
	Fields: []Field{
		{Name: "uid", Offset: 0, Size: 4, Format: U32},
		{Name: "gid", Offset: 4, Size: 4, Format: U32},
		{Name: "cuid", Offset: 8, Size: 4, Format: U32},
		{Name: "cgid", Offset: 12, Size: 4, Format: U32},
		{Name: "mode", Offset: 16, Size: 2, Format: modePermField},
		{Name: "_seq", Offset: 18, Size: 2, Excluded: true},
	},
}

func modePermField(raw []byte) any {
	v := uint64(raw[0]) | uint64(raw[1])<<8
	return octalField(v)
}

func octalField(v uint64) string {
	if v == 0 {
		return "0"
	}
	const digits = "01234567"
	var buf [22]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = digits[v&7]
		v >>= 3
	}
	return "0" + string(buf[i:])
}

// Semid is struct semid_ds: {sem_perm ipc_perm, sem_base ptr, sem_nsems
// uint16, sem_otime int64, sem_ctime int64}, embedded ipc_perm at offset 0
// (20 bytes) then padded to an 8-byte boundary for the pointer.
var Semid = Layout{
	Size: 48,
	Fields: []Field{
		{Name: "sem_perm", Offset: 0, Size: 20, Format: nestedIpcPerm},
		{Name: "sem_nsems", Offset: 24, Size: 2, Format: U16},
		{Name: "sem_otime", Offset: 32, Size: 8, Format: I64},
		{Name: "sem_ctime", Offset: 40, Size: 8, Format: I64},
	},
}

func nestedIpcPerm(raw []byte) any { return IpcPerm.Decode(raw) }
