package structs

import "github.com/gostrace/mstrace/internal/symbols"

// Attrlist is struct attrlist (getattrlist/setattrlist): {bitmapcount
// uint16, reserved uint16, commonattr uint32, volattr uint32, dirattr
// uint32, fileattr uint32, forkattr uint32}. The layout covers the first
// 20 bytes, through fileattr; forkattr is not decoded.
var Attrlist = Layout{
	Size: 20,
	Fields: []Field{
		{Name: "bitmapcount", Offset: 0, Size: 2, Format: U16},
		{Name: "_reserved", Offset: 2, Size: 2, Excluded: true},
		{Name: "commonattr", Offset: 4, Size: 4, Format: Flags32(attrCommon.Decode)},
		{Name: "volattr", Offset: 8, Size: 4, Format: Flags32(attrVol.Decode)},
		{Name: "dirattr", Offset: 12, Size: 4, Format: Flags32(attrDir.Decode)},
		{Name: "fileattr", Offset: 16, Size: 4, Format: Flags32(attrFile.Decode)},
	},
}

var attrCommon = symbols.FlagMap{
	0x00000001: "ATTR_CMN_NAME",
	0x00000002: "ATTR_CMN_DEVID",
	0x00000004: "ATTR_CMN_FSID",
	0x00000008: "ATTR_CMN_OBJTYPE",
	0x00000020: "ATTR_CMN_OBJID",
	0x00000200: "ATTR_CMN_CRTIME",
	0x00000400: "ATTR_CMN_MODTIME",
	0x00001000: "ATTR_CMN_OWNERID",
	0x00002000: "ATTR_CMN_GRPID",
	0x00008000: "ATTR_CMN_FLAGS",
}

var attrVol = symbols.FlagMap{
	0x00000001: "ATTR_VOL_FSTYPE",
	0x00000002: "ATTR_VOL_SIGNATURE",
	0x00000004: "ATTR_VOL_SIZE",
	0x00000400: "ATTR_VOL_NAME",
}

var attrDir = symbols.FlagMap{
	0x00000001: "ATTR_DIR_LINKCOUNT",
	0x00000002: "ATTR_DIR_ENTRYCOUNT",
}

var attrFile = symbols.FlagMap{
	0x00000001: "ATTR_FILE_LINKCOUNT",
	0x00000002: "ATTR_FILE_TOTALSIZE",
	0x00000004: "ATTR_FILE_DATALENGTH",
}
