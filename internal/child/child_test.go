package child

import "testing"

func TestInjectEnvAddsBothVars(t *testing.T) {
	out := InjectEnv([]string{"PATH=/usr/bin"}, "/tmp/lib.dylib")
	found := map[string]bool{}
	for _, kv := range out {
		found[kv] = true
	}
	if !found["PATH=/usr/bin"] {
		t.Error("InjectEnv dropped an unrelated variable")
	}
	if !found[EnvInsertLibraries+"=/tmp/lib.dylib"] {
		t.Error("InjectEnv did not set DYLD_INSERT_LIBRARIES")
	}
	if !found[EnvChildStop+"=1"] {
		t.Error("InjectEnv did not set STRACE_MACOS_CHILD_STOP")
	}
}

func TestInjectEnvReplacesExisting(t *testing.T) {
	in := []string{EnvInsertLibraries + "=/old.dylib", "FOO=bar"}
	out := InjectEnv(in, "/new.dylib")
	for _, kv := range out {
		if kv == EnvInsertLibraries+"=/old.dylib" {
			t.Fatal("InjectEnv should replace, not duplicate, an existing entry")
		}
	}
}

func TestInjectEnvNilMeansInheritEnviron(t *testing.T) {
	out := InjectEnv(nil, "/lib.dylib")
	if len(out) < 2 {
		t.Fatal("InjectEnv(nil, ...) should at least inject its own two variables")
	}
}

func TestHasPrefix(t *testing.T) {
	if !hasPrefix("FOO=bar", "FOO=") {
		t.Error("hasPrefix should match")
	}
	if hasPrefix("FOO=bar", "BAR=") {
		t.Error("hasPrefix should not match")
	}
	if hasPrefix("FO", "FOO=") {
		t.Error("hasPrefix should not match a shorter string")
	}
}
