// Package archadapt encapsulates the one piece of the tracer that varies
// by CPU architecture: which registers carry syscall arguments and the
// return value, how to recover a return address, and where variadic
// arguments beyond the register file live.
package archadapt

import (
	"fmt"

	"github.com/pkg/errors"
)

// Thread is the subset of the debugger's thread handle an Adapter needs:
// named-register reads and a raw stack-relative memory read (for x86_64's
// return address and both architectures' variadic stack slots).
type Thread interface {
	ReadRegister(name string) (uint64, error)
	StackPointer() (uint64, error)
	ReadMemory(addr uint64, size int) ([]byte, error)
}

// Adapter is the calling-convention contract of spec §4.7.
type Adapter interface {
	// Argument returns the raw value of argument index i (0-based),
	// consulting argument registers for i < NumArgRegisters().
	Argument(t Thread, i int) (uint64, error)
	// ReturnValue returns the raw return register value.
	ReturnValue(t Thread) (uint64, error)
	// ReturnAddress recovers the address execution resumes at after the
	// syscall wrapper returns.
	ReturnAddress(t Thread) (uint64, error)
	// Variadic reads the i-th argument beyond the register file (i is
	// relative to the first stack-resident slot, i.e. i=0 is the first
	// variadic argument when variadic_start equals NumArgRegisters()).
	Variadic(t Thread, i int) (uint64, error)
	// NumArgRegisters is how many leading arguments live in registers.
	NumArgRegisters() int
}

// Select returns the Adapter for a target triple's first component
// (aarch64/arm64/arm64e vs x86_64/i386), per spec §4.7.
func Select(triple string) (Adapter, error) {
	switch triple {
	case "aarch64", "arm64", "arm64e":
		return arm64Adapter{}, nil
	case "x86_64", "i386":
		return amd64Adapter{}, nil
	default:
		return nil, errors.Wrap(fmt.Errorf("unsupported architecture %q", triple), "archadapt.Select")
	}
}

type arm64Adapter struct{}

var arm64ArgRegs = [...]string{"x0", "x1", "x2", "x3", "x4", "x5", "x6", "x7"}

func (arm64Adapter) NumArgRegisters() int { return len(arm64ArgRegs) }

func (arm64Adapter) Argument(t Thread, i int) (uint64, error) {
	if i < 0 || i >= len(arm64ArgRegs) {
		return 0, errors.Errorf("archadapt: arm64 argument index %d out of range", i)
	}
	return t.ReadRegister(arm64ArgRegs[i])
}

func (arm64Adapter) ReturnValue(t Thread) (uint64, error) {
	return t.ReadRegister("x0")
}

// ReturnAddress is simply the link register on ARM64; no memory read.
func (arm64Adapter) ReturnAddress(t Thread) (uint64, error) {
	return t.ReadRegister("lr")
}

func (arm64Adapter) Variadic(t Thread, i int) (uint64, error) {
	sp, err := t.StackPointer()
	if err != nil {
		return 0, errors.Wrap(err, "archadapt: arm64 variadic read")
	}
	raw, err := t.ReadMemory(sp+uint64(8*i), 8)
	if err != nil {
		return 0, errors.Wrap(err, "archadapt: arm64 variadic read")
	}
	return leU64(raw), nil
}

type amd64Adapter struct{}

var amd64ArgRegs = [...]string{"rdi", "rsi", "rdx", "rcx", "r8", "r9"}

func (amd64Adapter) NumArgRegisters() int { return len(amd64ArgRegs) }

func (amd64Adapter) Argument(t Thread, i int) (uint64, error) {
	if i < 0 || i >= len(amd64ArgRegs) {
		return 0, errors.Errorf("archadapt: amd64 argument index %d out of range", i)
	}
	return t.ReadRegister(amd64ArgRegs[i])
}

func (amd64Adapter) ReturnValue(t Thread) (uint64, error) {
	return t.ReadRegister("rax")
}

// ReturnAddress is *rsp: the one case requiring a memory read.
func (amd64Adapter) ReturnAddress(t Thread) (uint64, error) {
	sp, err := t.StackPointer()
	if err != nil {
		return 0, errors.Wrap(err, "archadapt: amd64 return address")
	}
	raw, err := t.ReadMemory(sp, 8)
	if err != nil {
		return 0, errors.Wrap(err, "archadapt: amd64 return address")
	}
	return leU64(raw), nil
}

// Variadic slot i sits at [rsp + 8*(i+1)]: the saved return address
// occupies [rsp].
func (amd64Adapter) Variadic(t Thread, i int) (uint64, error) {
	sp, err := t.StackPointer()
	if err != nil {
		return 0, errors.Wrap(err, "archadapt: amd64 variadic read")
	}
	raw, err := t.ReadMemory(sp+uint64(8*(i+1)), 8)
	if err != nil {
		return 0, errors.Wrap(err, "archadapt: amd64 variadic read")
	}
	return leU64(raw), nil
}

func leU64(b []byte) uint64 {
	var v uint64
	for i := 7; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v
}
