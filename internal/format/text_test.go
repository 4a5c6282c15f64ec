package format

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gostrace/mstrace/internal/argvalue"
	"github.com/gostrace/mstrace/internal/tracer"
)

func TestTextSinkPlainNoColor(t *testing.T) {
	var buf bytes.Buffer
	sink := NewTextSink(&buf, false)
	err := sink.Emit(tracer.Event{
		Syscall:   "open",
		Args:      []argvalue.Value{argvalue.StringVal([]byte("/etc/hosts")), argvalue.Flags(0, "O_RDONLY")},
		Return:    3,
		ReturnStr: "3",
		HasReturn: true,
	})
	require.NoError(t, err)
	require.Equal(t, "open(\"/etc/hosts\", O_RDONLY) = 3\n", buf.String())
}

func TestTextSinkColorWrapsReturnAndName(t *testing.T) {
	var buf bytes.Buffer
	sink := NewTextSink(&buf, true)
	err := sink.Emit(tracer.Event{
		Syscall:   "close",
		Return:    -1,
		ReturnStr: "-1 EBADF (Bad file descriptor)",
		HasReturn: true,
	})
	require.NoError(t, err)
	out := buf.String()
	require.Contains(t, out, colorCyanBright+"close"+colorReset)
	require.Contains(t, out, colorRedBright)
}

func TestTextSinkMissingReturnShowsQuestionMark(t *testing.T) {
	var buf bytes.Buffer
	sink := NewTextSink(&buf, false)
	require.NoError(t, sink.Emit(tracer.Event{Syscall: "read", HasReturn: false}))
	require.Equal(t, "read() = ?\n", buf.String())
}
