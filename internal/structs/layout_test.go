package structs

import "testing"

func TestLayoutDecodeOrderAndExclusion(t *testing.T) {
	l := Layout{
		Size: 9,
		Fields: []Field{
			{Name: "a", Offset: 0, Size: 4, Format: U32},
			{Name: "_pad", Offset: 4, Size: 4, Excluded: true},
			{Name: "b", Offset: 8, Size: 1, Format: U8},
		},
	}
	raw := []byte{1, 0, 0, 0, 0xff, 0xff, 0xff, 0xff, 7}
	s := l.Decode(raw)
	if len(s.Fields) != 2 {
		t.Fatalf("expected 2 non-excluded fields, got %d: %+v", len(s.Fields), s.Fields)
	}
	if s.Fields[0].Name != "a" || s.Fields[0].Value.(int64) != 1 {
		t.Errorf("field a = %+v", s.Fields[0])
	}
	if s.Fields[1].Name != "b" || s.Fields[1].Value.(int64) != 7 {
		t.Errorf("field b = %+v", s.Fields[1])
	}
}

func TestLayoutDecodeDropsOutOfBoundsField(t *testing.T) {
	l := Layout{Fields: []Field{{Name: "missing", Offset: 4, Size: 4}}}
	s := l.Decode([]byte{1, 2})
	if len(s.Fields) != 0 {
		t.Errorf("out-of-bounds field should be dropped, got %+v", s.Fields)
	}
}

func TestCStringTrimsTrailingNuls(t *testing.T) {
	if got := CString([]byte("hfs\x00\x00\x00")); got != "hfs" {
		t.Errorf("CString = %q, want hfs", got)
	}
}

func TestDefaultFormatSignExtends(t *testing.T) {
	v := defaultFormat([]byte{0xff, 0xff, 0xff, 0xff})
	if v.(int64) != -1 {
		t.Errorf("defaultFormat(0xffffffff) = %v, want -1", v)
	}
}

func TestU32IsUnsigned(t *testing.T) {
	v := U32([]byte{0xff, 0xff, 0xff, 0xff})
	if v.(int64) != 0xffffffff {
		t.Errorf("U32(0xffffffff) = %v, want 4294967295", v)
	}
}
