package decode

import (
	"github.com/gostrace/mstrace/internal/argvalue"
	"github.com/gostrace/mstrace/internal/memory"
)

// String decodes the raw value as the address of a NUL-terminated string.
var String Decoder = DecoderFunc(func(ctx *Context) (argvalue.Value, bool) {
	if !ctx.AtEntry {
		return argvalue.Value{}, false
	}
	data, ok := memory.ReadCString(ctx.Reader, ctx.Raw)
	if !ok {
		return argvalue.StringFailed(ctx.Raw, nil), true
	}
	return argvalue.StringVal(data), true
})

// ArrayOfStrings decodes the raw value as a NULL-terminated pointer array
// (argv/envp style), each pointer dereferenced into a string.
var ArrayOfStrings Decoder = DecoderFunc(func(ctx *Context) (argvalue.Value, bool) {
	if !ctx.AtEntry {
		return argvalue.Value{}, false
	}
	strs := memory.ReadPointerArray(ctx.Reader, ctx.Raw)
	return argvalue.StringArray(strs), true
})
