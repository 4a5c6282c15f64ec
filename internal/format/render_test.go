package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gostrace/mstrace/internal/argvalue"
)

func TestRenderArgScalars(t *testing.T) {
	assert.Equal(t, "-1", renderArg(argvalue.Int(-1)))
	assert.Equal(t, "42", renderArg(argvalue.Unsigned(42)))
	assert.Equal(t, "0x1000", renderArg(argvalue.Pointer(0x1000)))
	assert.Equal(t, "3", renderArg(argvalue.FileDescriptor(3)))
}

func TestRenderArgSymbolicInt(t *testing.T) {
	assert.Equal(t, "AT_FDCWD", renderArg(argvalue.IntSym(-2, "AT_FDCWD")))
}

func TestRenderArgStringEscapesAndQuotes(t *testing.T) {
	assert.Equal(t, `"hi\n"`, renderArg(argvalue.StringVal([]byte("hi\n"))))
}

func TestRenderArgStringReadFailedShowsAddress(t *testing.T) {
	assert.Equal(t, "0x2000", renderArg(argvalue.StringFailed(0x2000, nil)))
}

func TestRenderArgBufferTruncatedAppendsEllipsis(t *testing.T) {
	v := argvalue.Buffer([]byte("abc"), 0x3000, true)
	assert.Equal(t, `"abc"...`, renderArg(v))
}

func TestRenderArgFlagsFallsBackToHex(t *testing.T) {
	assert.Equal(t, "0x3", renderArg(argvalue.Flags(0x3, "")))
}

func TestRenderArgStruct(t *testing.T) {
	s := &argvalue.Struct{}
	s.Set("st_size", int64(128))
	s.Set("st_mode", "S_IFREG|0644")
	got := renderArg(argvalue.StructVal(s))
	assert.Equal(t, "{st_size=128, st_mode=S_IFREG|0644}", got)
}

func TestRenderArgUnknown(t *testing.T) {
	assert.Equal(t, "?", renderArg(argvalue.Unknown()))
}

func TestRenderArgIntPtr(t *testing.T) {
	assert.Equal(t, "[7]", renderArg(argvalue.IntPtr(7)))
}
