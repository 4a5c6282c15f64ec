package structs

// FsSearchBlock is struct fssearchblock (searchfs(2)): {searchAttrs ptr to
// attrlist, returnAttrs ptr to attrlist, returnBuffer ptr, returnBufferSize
// uint32, maxMatches uint32, timeLimit timeval(8), searchParams1 ptr,
// sizeOfSearchParams1 uint32, searchParams2 ptr, sizeOfSearchParams2
// uint32, searchAttrsBitmap uint32}. The layout covers the first 64 bytes,
// through sizeOfSearchParams2; searchAttrsBitmap is not decoded.
var FsSearchBlock = Layout{
	Size: 64,
	Fields: []Field{
		{Name: "searchAttrs", Offset: 0, Size: 8, Format: ptrField},
		{Name: "returnAttrs", Offset: 8, Size: 8, Format: ptrField},
		{Name: "returnBuffer", Offset: 16, Size: 8, Format: ptrField},
		{Name: "returnBufferSize", Offset: 24, Size: 4, Format: U32},
		{Name: "maxMatches", Offset: 28, Size: 4, Format: U32},
		{Name: "timeLimit", Offset: 32, Size: 8, Excluded: true},
		{Name: "searchParams1", Offset: 40, Size: 8, Format: ptrField},
		{Name: "sizeOfSearchParams1", Offset: 48, Size: 4, Format: U32},
		{Name: "searchParams2", Offset: 52, Size: 8, Excluded: true},
		{Name: "sizeOfSearchParams2", Offset: 60, Size: 4, Format: U32},
	},
}
