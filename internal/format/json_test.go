package format

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gostrace/mstrace/internal/argvalue"
	"github.com/gostrace/mstrace/internal/tracer"
)

func TestJSONSinkNumericReturnStaysNumber(t *testing.T) {
	var buf bytes.Buffer
	sink := NewJSONSink(&buf)
	require.NoError(t, sink.Emit(tracer.Event{
		Syscall: "getpid", Return: 412, ReturnStr: "412", HasReturn: true, PID: 412,
	}))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, float64(412), decoded["return"])
}

func TestJSONSinkSymbolicReturnStaysString(t *testing.T) {
	var buf bytes.Buffer
	sink := NewJSONSink(&buf)
	require.NoError(t, sink.Emit(tracer.Event{
		Syscall: "open", Return: -1, ReturnStr: "-1 ENOENT (No such file or directory)", HasReturn: true,
	}))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, "-1 ENOENT (No such file or directory)", decoded["return"])
}

func TestJSONArgPointerBecomesHexString(t *testing.T) {
	require.Equal(t, "0x1000", jsonArg(argvalue.Pointer(0x1000)))
}

func TestJSONArgStructWrapsInOutputKey(t *testing.T) {
	s := &argvalue.Struct{}
	s.Set("st_size", int64(10))
	v := jsonArg(argvalue.StructVal(s))
	m, ok := v.(map[string]any)
	require.True(t, ok)
	out, ok := m["output"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, int64(10), out["st_size"])
}
