package tracer

import (
	"errors"
	"testing"
)

func TestErrorMessageIncludesCause(t *testing.T) {
	cause := errors.New("boom")
	err := wrapErr(KindSetup, "create target", cause)
	if err.Error() != "create target: boom" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestOnlySetupKindIsFatal(t *testing.T) {
	if !(Error{Kind: KindSetup}).Fatal() {
		t.Error("KindSetup should be fatal")
	}
	if (Error{Kind: KindMemoryRead}).Fatal() {
		t.Error("KindMemoryRead should not be fatal")
	}
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("boom")
	err := wrapErr(KindSetup, "", cause)
	if errors.Unwrap(err) != cause {
		t.Error("Unwrap should expose the wrapped cause")
	}
}
