package sip

import "testing"

func TestContainsPlatformFlag(t *testing.T) {
	out := "Executable=/usr/libexec/taskgated\n" +
		"Identifier=com.apple.taskgated\n" +
		"Format=Mach-O thin (arm64)\n" +
		"    flags=0x20002(adhoc,platform)\n"
	if !containsPlatformFlag(out) {
		t.Error("expected platform flag to be detected")
	}
}

func TestContainsPlatformFlagAbsent(t *testing.T) {
	out := "Executable=/tmp/hello\n" +
		"flags=0x0(none)\n"
	if containsPlatformFlag(out) {
		t.Error("unexpected platform flag detected")
	}
}

func TestMessageMentionsPath(t *testing.T) {
	msg := Message("/usr/libexec/taskgated")
	if msg == "" {
		t.Fatal("Message returned empty string")
	}
}
