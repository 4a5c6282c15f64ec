package decode

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/gostrace/mstrace/internal/argvalue"
	"github.com/gostrace/mstrace/internal/symbols"
)

// fakeReader serves fixed memory contents keyed by address, for decoders
// that dereference a pointer argument.
type fakeReader struct {
	mem map[uint64][]byte
}

func (f *fakeReader) ReadMemory(addr uint64, size int) ([]byte, error) {
	data, ok := f.mem[addr]
	if !ok {
		return nil, errors.New("fakeReader: unmapped address")
	}
	if len(data) < size {
		return nil, errors.New("fakeReader: short read")
	}
	return data[:size], nil
}

func TestIntRunsOnlyAtEntry(t *testing.T) {
	ctx := &Context{Raw: 0xfffffffffffffffe, AtEntry: true} // -2
	v, ok := Int.Decode(ctx)
	if !ok || v.Int != -2 {
		t.Fatalf("Int at entry = %+v, %v", v, ok)
	}
	ctx.AtEntry = false
	if _, ok := Int.Decode(ctx); ok {
		t.Fatalf("Int at exit should return ok=false")
	}
}

func TestPointerOutDecoderEntryExitContract(t *testing.T) {
	b := Buffer(1, Out)
	ctx := &Context{Raw: 0x2000, RawArgs: []uint64{0x2000, 4}, AtEntry: true}
	v, ok := b.Decode(ctx)
	if !ok || v.Kind != argvalue.KindPointer || v.Unsigned != 0x2000 {
		t.Fatalf("Buffer(OUT) at entry = %+v, want placeholder pointer", v)
	}
}

func TestBufferOutDecodesAtExit(t *testing.T) {
	reader := &fakeReader{mem: map[uint64][]byte{0x2000: []byte("data")}}
	b := Buffer(1, Out)
	ctx := &Context{
		Reader: reader, Raw: 0x2000, RawArgs: []uint64{0x2000, 4},
		AtEntry: false, HasReturn: true, Return: 4,
	}
	v, ok := b.Decode(ctx)
	if !ok || v.Kind != argvalue.KindBuffer || string(v.Str) != "data" {
		t.Fatalf("Buffer(OUT) at exit = %+v", v)
	}
}

func TestBufferInDecodesAtEntryOnly(t *testing.T) {
	reader := &fakeReader{mem: map[uint64][]byte{0x3000: []byte("hello")}}
	b := Buffer(1, In)
	ctx := &Context{Reader: reader, Raw: 0x3000, RawArgs: []uint64{0x3000, 5}, AtEntry: true}
	v, ok := b.Decode(ctx)
	if !ok || string(v.Str) != "hello" {
		t.Fatalf("Buffer(IN) at entry = %+v", v)
	}
	ctx.AtEntry = false
	if _, ok := b.Decode(ctx); ok {
		t.Fatalf("Buffer(IN) at exit should return ok=false")
	}
}

func TestIntArrayUsesCountIndexAndClampsToReturn(t *testing.T) {
	raw := make([]byte, 12)
	binary.LittleEndian.PutUint32(raw[0:], 10)
	binary.LittleEndian.PutUint32(raw[4:], 20)
	binary.LittleEndian.PutUint32(raw[8:], 30)
	reader := &fakeReader{mem: map[uint64][]byte{0x4000: raw}}

	dec := IntArray(-1, 0, Out)
	ctx := &Context{
		Reader: reader, Raw: 0x4000, RawArgs: []uint64{3, 0x4000},
		AtEntry: false, HasReturn: true, Return: 2,
	}
	v, ok := dec.Decode(ctx)
	if !ok || v.Kind != argvalue.KindRaw {
		t.Fatalf("IntArray(OUT) at exit = %+v", v)
	}
	if got, want := string(v.Str), "[10, 20]"; got != want {
		t.Errorf("IntArray clamped to return = %q, want %q", got, want)
	}
}

func TestTimespecDirInDefault(t *testing.T) {
	if TimespecDir(In) == nil {
		t.Fatal("TimespecDir(In) returned nil")
	}
}

func TestTimespecOutPlaceholderAtEntry(t *testing.T) {
	dec := TimespecDir(Out)
	ctx := &Context{Raw: 0x5000, AtEntry: true}
	v, ok := dec.Decode(ctx)
	if !ok || v.Kind != argvalue.KindPointer || v.Unsigned != 0x5000 {
		t.Fatalf("TimespecDir(Out) at entry = %+v, want placeholder pointer", v)
	}
}

func TestUuidPlaceholderAtEntryThenDecodedAtExit(t *testing.T) {
	ctx := &Context{Raw: 0x6000, AtEntry: true}
	v, ok := Uuid.Decode(ctx)
	if !ok || v.Kind != argvalue.KindPointer {
		t.Fatalf("Uuid at entry = %+v, want placeholder pointer", v)
	}

	reader := &fakeReader{mem: map[uint64][]byte{
		0x6000: {0xAA, 0xBB, 0xCC, 0xDD, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C},
	}}
	ctx = &Context{Reader: reader, Raw: 0x6000, AtEntry: false}
	v, ok = Uuid.Decode(ctx)
	if !ok || v.Kind != argvalue.KindUUID {
		t.Fatalf("Uuid at exit = %+v", v)
	}
}

func TestConstLooksUpSymbol(t *testing.T) {
	m := symbols.ConstMap{1: "ONE"}
	ctx := &Context{Raw: 0x1, AtEntry: true}
	v, ok := Const(m).Decode(ctx)
	if !ok || !v.HasSym || v.Symbolic != "ONE" {
		t.Fatalf("Const lookup = %+v", v)
	}
}
