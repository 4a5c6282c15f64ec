package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/gostrace/mstrace/internal/argvalue"
	"github.com/gostrace/mstrace/internal/tracer"
)

// JSONSink writes one JSON object per line, per spec §6's schema.
type JSONSink struct {
	enc *json.Encoder
}

func NewJSONSink(w io.Writer) *JSONSink {
	return &JSONSink{enc: json.NewEncoder(w)}
}

type jsonEvent struct {
	Syscall   string `json:"syscall"`
	Args      []any  `json:"args"`
	Return    any    `json:"return"`
	PID       int    `json:"pid"`
	Timestamp float64 `json:"timestamp"`
}

func (s *JSONSink) Emit(evt tracer.Event) error {
	args := make([]any, len(evt.Args))
	for i, a := range evt.Args {
		args[i] = jsonArg(a)
	}
	var ret any
	switch {
	case !evt.HasReturn:
		ret = evt.ReturnStr
	case evt.ReturnStr == strconv.FormatInt(evt.Return, 10):
		ret = evt.Return
	default:
		// errno translation or a return_decoder produced a non-numeric form
		ret = evt.ReturnStr
	}
	return s.enc.Encode(jsonEvent{
		Syscall:   evt.Syscall,
		Args:      args,
		Return:    ret,
		PID:       evt.PID,
		Timestamp: evt.Timestamp,
	})
}

// jsonArg converts one decoded argument into its JSON-native shape per
// spec §6: Pointer becomes a hex string, Struct becomes {"output": ...}
// to distinguish a decoded record from an ordinary object, everything
// else keeps its natural JSON type.
func jsonArg(v argvalue.Value) any {
	switch v.Kind {
	case argvalue.KindInt:
		return v.Int
	case argvalue.KindUnsigned:
		return v.Unsigned
	case argvalue.KindPointer:
		return fmt.Sprintf("0x%x", v.Unsigned)
	case argvalue.KindFileDescriptor:
		return v.Int
	case argvalue.KindString:
		if v.ReadFailed {
			return fmt.Sprintf("0x%x", v.OrigAddr)
		}
		return escape(v.Str)
	case argvalue.KindBuffer:
		if v.ReadFailed {
			return fmt.Sprintf("0x%x", v.OrigAddr)
		}
		return escape(v.Str)
	case argvalue.KindFlags:
		return renderArg(v)
	case argvalue.KindStruct:
		return map[string]any{"output": structFields(v.StructVal)}
	case argvalue.KindStructArray:
		out := make([]any, len(v.StructArray))
		for i, st := range v.StructArray {
			out[i] = map[string]any{"output": structFields(st)}
		}
		return out
	case argvalue.KindIntPtr:
		return []int64{v.Int}
	case argvalue.KindIovecArray:
		out := make([]any, len(v.Iovecs))
		for i, iov := range v.Iovecs {
			base := "?"
			if iov.Base != nil {
				base = escape(iov.Base)
			}
			out[i] = map[string]any{"iov_base": base, "iov_len": iov.Len}
		}
		return out
	case argvalue.KindStringArray:
		out := make([]string, len(v.Strings))
		for i, b := range v.Strings {
			out[i] = escape(b)
		}
		return out
	case argvalue.KindUUID, argvalue.KindRaw:
		return string(v.Str)
	default:
		return "?"
	}
}

func structFields(s *argvalue.Struct) map[string]any {
	out := map[string]any{}
	if s == nil {
		return out
	}
	for _, f := range s.Fields {
		if nested, ok := f.Value.(*argvalue.Struct); ok {
			out[f.Name] = structFields(nested)
			continue
		}
		out[f.Name] = f.Value
	}
	return out
}
