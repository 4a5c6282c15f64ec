package archadapt

import (
	"encoding/binary"
	"errors"
	"testing"
)

type fakeThread struct {
	regs map[string]uint64
	sp   uint64
	mem  map[uint64][]byte
}

func (f *fakeThread) ReadRegister(name string) (uint64, error) {
	v, ok := f.regs[name]
	if !ok {
		return 0, errors.New("fakeThread: unknown register " + name)
	}
	return v, nil
}

func (f *fakeThread) StackPointer() (uint64, error) { return f.sp, nil }

func (f *fakeThread) ReadMemory(addr uint64, size int) ([]byte, error) {
	data, ok := f.mem[addr]
	if !ok {
		return nil, errors.New("fakeThread: unmapped address")
	}
	return data[:size], nil
}

func le64(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}

func TestSelectUnknownTriple(t *testing.T) {
	if _, err := Select("sparc64"); err == nil {
		t.Fatal("Select with an unsupported triple should error")
	}
}

func TestArm64ArgumentAndReturn(t *testing.T) {
	a, err := Select("arm64")
	if err != nil {
		t.Fatal(err)
	}
	th := &fakeThread{regs: map[string]uint64{"x0": 1, "x1": 2, "lr": 0xdead}}
	v, err := a.Argument(th, 1)
	if err != nil || v != 2 {
		t.Fatalf("Argument(1) = %d, %v", v, err)
	}
	ret, err := a.ReturnValue(th)
	if err != nil || ret != 1 {
		t.Fatalf("ReturnValue = %d, %v", ret, err)
	}
	addr, err := a.ReturnAddress(th)
	if err != nil || addr != 0xdead {
		t.Fatalf("ReturnAddress = %#x, %v", addr, err)
	}
}

func TestArm64VariadicReadsFromStack(t *testing.T) {
	a, _ := Select("arm64")
	th := &fakeThread{sp: 0x1000, mem: map[uint64][]byte{0x1000: le64(99)}}
	v, err := a.Variadic(th, 0)
	if err != nil || v != 99 {
		t.Fatalf("Variadic(0) = %d, %v", v, err)
	}
}

func TestAmd64ReturnAddressIsAtStackPointer(t *testing.T) {
	a, err := Select("x86_64")
	if err != nil {
		t.Fatal(err)
	}
	th := &fakeThread{sp: 0x2000, mem: map[uint64][]byte{0x2000: le64(0xbeef)}}
	addr, err := a.ReturnAddress(th)
	if err != nil || addr != 0xbeef {
		t.Fatalf("ReturnAddress = %#x, %v", addr, err)
	}
}

func TestAmd64VariadicSkipsReturnAddressSlot(t *testing.T) {
	a, _ := Select("x86_64")
	th := &fakeThread{sp: 0x3000, mem: map[uint64][]byte{0x3008: le64(7)}}
	v, err := a.Variadic(th, 0)
	if err != nil || v != 7 {
		t.Fatalf("Variadic(0) = %d, %v", v, err)
	}
}

func TestArgumentOutOfRangeErrors(t *testing.T) {
	a, _ := Select("arm64")
	th := &fakeThread{regs: map[string]uint64{}}
	if _, err := a.Argument(th, 8); err == nil {
		t.Fatal("Argument(8) should error on arm64 (8 arg registers, 0-indexed)")
	}
}
