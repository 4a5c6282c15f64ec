package structs

// Winsize is {ws_row, ws_col, ws_xpixel, ws_ypixel uint16}, 8 bytes.
var Winsize = Layout{
	Size: 8,
	Fields: []Field{
		{Name: "ws_row", Offset: 0, Size: 2, Format: U16},
		{Name: "ws_col", Offset: 2, Size: 2, Format: U16},
		{Name: "ws_xpixel", Offset: 4, Size: 2, Format: U16},
		{Name: "ws_ypixel", Offset: 6, Size: 2, Format: U16},
	},
}
