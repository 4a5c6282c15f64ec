// Package format turns a tracer.Event into the three output shapes spec §6
// defines: colored or plain text, one-JSON-object-per-line, and the `-c`
// summary table. Rendering policy lives here; the tracer package only
// produces typed events.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gostrace/mstrace/internal/argvalue"
	"github.com/gostrace/mstrace/internal/memory"
)

// renderArg renders one decoded argument per the text rules of spec §4.2.
func renderArg(v argvalue.Value) string {
	switch v.Kind {
	case argvalue.KindInt:
		if v.HasSym {
			return v.Symbolic
		}
		return strconv.FormatInt(v.Int, 10)
	case argvalue.KindUnsigned:
		return strconv.FormatUint(v.Unsigned, 10)
	case argvalue.KindPointer:
		return fmt.Sprintf("0x%x", v.Unsigned)
	case argvalue.KindFileDescriptor:
		return strconv.FormatInt(v.Int, 10)
	case argvalue.KindString:
		return renderQuoted(v)
	case argvalue.KindFlags:
		if v.HasSym && v.Symbolic != "" {
			return v.Symbolic
		}
		return "0x" + strconv.FormatUint(v.Unsigned, 16)
	case argvalue.KindStruct:
		return renderStruct(v.StructVal)
	case argvalue.KindStructArray:
		parts := make([]string, len(v.StructArray))
		for i, s := range v.StructArray {
			parts[i] = renderStruct(s)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case argvalue.KindIntPtr:
		return fmt.Sprintf("[%d]", v.Int)
	case argvalue.KindBuffer:
		return renderBuffer(v)
	case argvalue.KindIovecArray:
		parts := make([]string, len(v.Iovecs))
		for i, iov := range v.Iovecs {
			if iov.Base == nil {
				parts[i] = fmt.Sprintf("{iov_base=?, iov_len=%d}", iov.Len)
				continue
			}
			parts[i] = fmt.Sprintf("{iov_base=\"%s\", iov_len=%d}", escape(iov.Base), iov.Len)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case argvalue.KindStringArray:
		parts := make([]string, len(v.Strings))
		for i, s := range v.Strings {
			parts[i] = "\"" + escape(s) + "\""
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case argvalue.KindUUID:
		return string(v.Str)
	case argvalue.KindRaw:
		return string(v.Str)
	case argvalue.KindUnknown:
		return "?"
	default:
		return "?"
	}
}

func renderQuoted(v argvalue.Value) string {
	if v.ReadFailed {
		return fmt.Sprintf("0x%x", v.OrigAddr)
	}
	return "\"" + escape(v.Str) + "\""
}

func renderBuffer(v argvalue.Value) string {
	if v.ReadFailed {
		return fmt.Sprintf("0x%x", v.OrigAddr)
	}
	s := "\"" + escape(v.Str) + "\""
	if v.Truncated {
		s += "..."
	}
	return s
}

func renderStruct(s *argvalue.Struct) string {
	if s == nil {
		return "{}"
	}
	parts := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		parts[i] = f.Name + "=" + renderFieldValue(f.Value)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func renderFieldValue(v any) string {
	switch t := v.(type) {
	case *argvalue.Struct:
		return renderStruct(t)
	case []any:
		parts := make([]string, len(t))
		for i, e := range t {
			parts[i] = renderFieldValue(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case string:
		return t
	case int64:
		return strconv.FormatInt(t, 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

func escape(b []byte) string { return memory.Escape(b) }
