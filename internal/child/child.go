// Package child implements the fork-following contract of spec §6: a
// small preloaded shared library lets a spawned child stop itself right
// after fork/vfork so the tracer can attach to it before it runs any of
// its own code. This package implements only the two pieces spec §6
// assigns to the tracer side of that contract — locating/building the
// cached helper library and injecting the environment that activates
// it — not the library's own fork-interception logic.
package child

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/pkg/errors"
)

const (
	// EnvInsertLibraries is the dyld variable that preloads the helper.
	EnvInsertLibraries = "DYLD_INSERT_LIBRARIES"
	// EnvChildStop tells the preloaded helper to stop the child at the
	// well-known handshake point instead of running normally.
	EnvChildStop = "STRACE_MACOS_CHILD_STOP"

	helperName = "libmstrace_follow.dylib"
)

// CacheDir returns the per-session directory the compiled helper library
// is cached under, creating it if necessary.
func CacheDir() (string, error) {
	dir := filepath.Join(os.TempDir(), "mstrace-helper")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(err, "child: create helper cache dir")
	}
	return dir, nil
}

// EnsureHelperLibrary returns the path to a compiled, up-to-date fat
// (ARM64 + x86_64) helper library, compiling sourcePath into cacheDir if
// the cached artifact is missing or older than the source. The compiler
// is $CC, falling back to "clang".
func EnsureHelperLibrary(sourcePath, cacheDir string) (string, error) {
	out := filepath.Join(cacheDir, helperName)

	srcInfo, err := os.Stat(sourcePath)
	if err != nil {
		return "", errors.Wrap(err, "child: stat helper source")
	}
	if outInfo, err := os.Stat(out); err == nil && outInfo.ModTime().After(srcInfo.ModTime()) {
		return out, nil
	}

	cc := os.Getenv("CC")
	if cc == "" {
		cc = "clang"
	}

	args := []string{"-dynamiclib", "-arch", "arm64", "-arch", "x86_64", "-o", out, sourcePath}
	cmd := exec.Command(cc, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return "", errors.Wrapf(err, "child: compile helper library: %s", string(output))
	}
	return out, nil
}

// InjectEnv returns a copy of env with the DYLD_INSERT_LIBRARIES and
// STRACE_MACOS_CHILD_STOP variables set (or replaced) so a spawned child
// loads helperPath and stops itself at the handshake point. env == nil
// means "inherit os.Environ()".
func InjectEnv(env []string, helperPath string) []string {
	if env == nil {
		env = os.Environ()
	}
	out := make([]string, 0, len(env)+2)
	for _, kv := range env {
		if hasPrefix(kv, EnvInsertLibraries+"=") || hasPrefix(kv, EnvChildStop+"=") {
			continue
		}
		out = append(out, kv)
	}
	out = append(out, EnvInsertLibraries+"="+helperPath, EnvChildStop+"=1")
	return out
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

// SupportedArch reports whether the running host is macOS on one of the
// two architectures the helper library is built for (arm64, amd64).
// EnsureHelperLibrary passes both -arch flags regardless of this result.
func SupportedArch() bool {
	return runtime.GOOS == "darwin" && (runtime.GOARCH == "arm64" || runtime.GOARCH == "amd64")
}
