package symbols

import "testing"

func TestFlagMapDecode(t *testing.T) {
	m := FlagMap{0x1: "A", 0x2: "B", 0x4: "C"}
	cases := []struct {
		in   uint64
		want string
	}{
		{0x0, "0"},
		{0x1, "A"},
		{0x3, "A|B"},
		{0x5, "A|C"},
		{0x9, "A|0x8"},
	}
	for _, c := range cases {
		if got := m.Decode(c.in); got != c.want {
			t.Errorf("Decode(%#x) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFlagMapDecodeZeroEntry(t *testing.T) {
	m := FlagMap{0x0: "NONE", 0x1: "A"}
	if got := m.Decode(0); got != "NONE" {
		t.Errorf("Decode(0) = %q, want NONE", got)
	}
}

func TestDecodeOpenFlags(t *testing.T) {
	v := uint64(0x1 | 0x200 | 0x400) // O_WRONLY|O_CREAT|O_TRUNC
	got := DecodeOpenFlags(v)
	want := "O_WRONLY|O_CREAT|O_TRUNC"
	if got != want {
		t.Errorf("DecodeOpenFlags = %q, want %q", got, want)
	}
}

func TestDecodeOpenFlagsReadOnly(t *testing.T) {
	if got := DecodeOpenFlags(0); got != "O_RDONLY" {
		t.Errorf("DecodeOpenFlags(0) = %q, want O_RDONLY", got)
	}
}

func TestTranslateErrno(t *testing.T) {
	if got := Translate(-2, false); got != "-2 ENOENT (No such file or directory)" {
		t.Errorf("Translate(-2,false) = %q", got)
	}
	if got := Translate(-2, true); got != "-2" {
		t.Errorf("Translate(-2,true) = %q", got)
	}
	if got := Translate(5, false); got != "5" {
		t.Errorf("Translate(5,false) = %q", got)
	}
}

func TestDecodeFileMode(t *testing.T) {
	if got := DecodeFileMode(SIfreg|0644, false); got != "S_IFREG|0644" {
		t.Errorf("DecodeFileMode = %q", got)
	}
	if got := DecodeFileMode(0644, false); got != "0644" {
		t.Errorf("DecodeFileMode(no-type) = %q", got)
	}
}
