package argvalue

import "testing"

func TestIsSkip(t *testing.T) {
	if !Skip().IsSkip() {
		t.Error("Skip().IsSkip() = false, want true")
	}
	if Int(0).IsSkip() {
		t.Error("Int(0).IsSkip() = true, want false")
	}
}

func TestStringFailedWithPartial(t *testing.T) {
	v := StringFailed(0x1000, []byte("partial"))
	if v.Kind != KindString || !v.ReadFailed || v.OrigAddr != 0x1000 {
		t.Errorf("StringFailed with partial = %+v", v)
	}
}

func TestStringFailedNoPartial(t *testing.T) {
	v := StringFailed(0x1000, nil)
	if v.Kind != KindPointer || !v.ReadFailed || v.Unsigned != 0x1000 {
		t.Errorf("StringFailed without partial = %+v", v)
	}
}

func TestStructSetPreservesOrder(t *testing.T) {
	s := &Struct{}
	s.Set("a", int64(1))
	s.Set("b", "two")
	if len(s.Fields) != 2 || s.Fields[0].Name != "a" || s.Fields[1].Name != "b" {
		t.Errorf("Struct.Set order = %+v", s.Fields)
	}
}

func TestFlagsSymbolic(t *testing.T) {
	v := Flags(0x3, "O_RDWR")
	if !v.HasSym || v.Symbolic != "O_RDWR" {
		t.Errorf("Flags with symbol = %+v", v)
	}
	v2 := Flags(0x3, "")
	if v2.HasSym {
		t.Errorf("Flags with empty symbol should not set HasSym")
	}
}
