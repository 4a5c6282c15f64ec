package format

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gostrace/mstrace/internal/tracer"
)

func TestSummarySinkCountsCallsAndErrors(t *testing.T) {
	var buf bytes.Buffer
	s := NewSummarySink(&buf)

	require.NoError(t, s.Emit(tracer.Event{Syscall: "open", Return: 3, HasReturn: true}))
	require.NoError(t, s.Emit(tracer.Event{Syscall: "open", Return: -1, HasReturn: true}))
	require.NoError(t, s.Emit(tracer.Event{Syscall: "close", Return: 0, HasReturn: true}))
	require.NoError(t, s.Close())

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.True(t, strings.HasPrefix(lines[0], "% time"))
	require.Contains(t, out, "close")
	require.Contains(t, out, "open")
	require.True(t, strings.HasSuffix(lines[len(lines)-1], "3 total"))
}
