// Package argvalue defines the tagged value produced by parameter decoders
// and consumed by the output formatters.
package argvalue

// Kind identifies which variant of Value is populated.
type Kind int

const (
	KindInt Kind = iota
	KindUnsigned
	KindPointer
	KindFileDescriptor
	KindString
	KindFlags
	KindStruct
	KindStructArray
	KindIntPtr
	KindBuffer
	KindIovecArray
	KindStringArray
	KindUUID
	KindUnknown
	KindSkip
	KindRaw
)

// Iovec is one scatter/gather entry as decoded for output: Base holds the
// escaped-and-truncated preview of the memory the iovec pointed at, or nil
// if it could not be read.
type Iovec struct {
	Base []byte
	Len  uint64
}

// Field is one entry of a decoded struct, in declaration order. Value holds
// either a scalar (int64, uint64, string, float64, bool) or a nested *Struct
// for embedded records.
type Field struct {
	Name  string
	Value any
}

// Struct is an ordered field list, preserving declaration order for text
// and JSON rendering alike.
type Struct struct {
	Fields []Field
}

func (s *Struct) Set(name string, value any) {
	s.Fields = append(s.Fields, Field{Name: name, Value: value})
}

// Value is the tagged union described in spec §3.
type Value struct {
	Kind Kind

	Int      int64
	Unsigned uint64
	Symbolic string // populated for Int/Flags when a symbolic rendering exists
	HasSym   bool

	Str []byte // String/Buffer payload, already read (not yet escaped)

	Truncated   bool   // Buffer: true if the read was capped before the requested size
	OrigAddr    uint64 // Pointer/Buffer/String on read failure: the raw address
	ReadFailed  bool   // Buffer/String/Struct: the memory read failed
	StructVal   *Struct
	StructArray []*Struct
	Iovecs      []Iovec
	Strings     [][]byte // StringArray payload
}

func Int(v int64) Value                { return Value{Kind: KindInt, Int: v} }
func IntSym(v int64, sym string) Value { return Value{Kind: KindInt, Int: v, Symbolic: sym, HasSym: true} }
func Unsigned(v uint64) Value          { return Value{Kind: KindUnsigned, Unsigned: v} }
func Pointer(addr uint64) Value        { return Value{Kind: KindPointer, Unsigned: addr} }
func FileDescriptor(fd int64) Value    { return Value{Kind: KindFileDescriptor, Int: fd} }
func Unknown() Value                   { return Value{Kind: KindUnknown} }
func Skip() Value                      { return Value{Kind: KindSkip} }
func UUID(s string) Value              { return Value{Kind: KindUUID, Str: []byte(s)} }

func Flags(v uint64, sym string) Value {
	return Value{Kind: KindFlags, Unsigned: v, Symbolic: sym, HasSym: sym != ""}
}

func StringVal(b []byte) Value {
	return Value{Kind: KindString, Str: b}
}

func StringFailed(addr uint64, partial []byte) Value {
	if partial != nil {
		return Value{Kind: KindString, Str: partial, ReadFailed: true, OrigAddr: addr}
	}
	return Value{Kind: KindPointer, Unsigned: addr, ReadFailed: true}
}

func Buffer(b []byte, origAddr uint64, truncated bool) Value {
	return Value{Kind: KindBuffer, Str: b, OrigAddr: origAddr, Truncated: truncated}
}

func BufferFailed(addr uint64) Value {
	return Value{Kind: KindPointer, Unsigned: addr, ReadFailed: true}
}

func StructVal(s *Struct) Value {
	return Value{Kind: KindStruct, StructVal: s}
}

func StructArray(s []*Struct) Value {
	return Value{Kind: KindStructArray, StructArray: s}
}

func IntPtr(v int64) Value {
	return Value{Kind: KindIntPtr, Int: v}
}

func IovecArray(iov []Iovec) Value {
	return Value{Kind: KindIovecArray, Iovecs: iov}
}

func StringArray(strs [][]byte) Value {
	return Value{Kind: KindStringArray, Strings: strs}
}

// Raw wraps text that is already in its final rendered form (bracketed int
// arrays, MIB lists, size pointers) — formatters print it unquoted and
// unescaped, unlike String/Buffer.
func Raw(s string) Value {
	return Value{Kind: KindRaw, Str: []byte(s)}
}

// IsSkip reports whether this value is the Skip sentinel, meaning "omit
// this argument entirely".
func (v Value) IsSkip() bool { return v.Kind == KindSkip }
