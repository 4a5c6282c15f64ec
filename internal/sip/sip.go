// Package sip detects macOS binaries that System Integrity Protection
// will not let a debugger attach to: platform binaries, identified by
// their code-signing platform identifier. The tracer refuses to trace
// these rather than fail confusingly deep inside the debugger (spec §6).
package sip

import (
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// platformFlagMarker is the substring codesign prints in its "flags="
// line for a binary signed with the platform identifier (CS_PLATFORM_BINARY).
const platformFlagMarker = "platform"

// IsProtected reports whether path is a SIP-protected platform binary, by
// shelling out to the system `codesign` tool the way a tracer without
// direct Security.framework bindings has to. codesign exiting non-zero
// (e.g. the binary is unsigned) is reported as "not protected" with no
// error — an unsigned binary is never a platform binary. If codesign
// cannot be run at all, the wrapped error is returned.
func IsProtected(path string) (bool, error) {
	out, err := exec.Command("codesign", "-dv", "--verbose=4", path).CombinedOutput()
	if err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return false, nil
		}
		return false, errors.Wrap(err, "sip: run codesign")
	}
	return containsPlatformFlag(string(out)), nil
}

func containsPlatformFlag(codesignOutput string) bool {
	for _, line := range strings.Split(codesignOutput, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "flags=") && strings.Contains(line, platformFlagMarker) {
			return true
		}
	}
	return false
}

// Message is the explanatory stderr text emitted before the tracer exits
// 1 on a protected target.
func Message(path string) string {
	return "mstrace: " + path + " is a SIP-protected platform binary and cannot be traced while System Integrity Protection is enforcing debugging restrictions"
}
