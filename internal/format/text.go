package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/gostrace/mstrace/internal/argvalue"
	"github.com/gostrace/mstrace/internal/tracer"
)

// ANSI codes for the color table in spec §6.
const (
	colorReset      = "\x1b[0m"
	colorCyanBright = "\x1b[96m"
	colorYellow     = "\x1b[33m"
	colorMagenta    = "\x1b[35m"
	colorBlue       = "\x1b[34m"
	colorGreen      = "\x1b[32m"
	colorGreenBright = "\x1b[92m"
	colorRedBright  = "\x1b[91m"
)

// TextSink writes `name(args...) = return` lines to w, applying ANSI
// color when w is a TTY (detected via isatty the way the pack's CLI tools
// gate their own color output).
type TextSink struct {
	w     io.Writer
	color bool
}

// NewTextSink wraps w. isTTY is typically isatty.IsTerminal(fd) on the
// underlying file descriptor of w; passing it in keeps this package free
// of any direct *os.File dependency.
func NewTextSink(w io.Writer, isTTY bool) *TextSink {
	return &TextSink{w: w, color: isTTY}
}

// IsTTYFd is a small convenience wrapper around isatty for callers that
// have a raw file descriptor (cmd/mstrace's stderr/-o FILE handles).
func IsTTYFd(fd uintptr) bool { return isatty.IsTerminal(fd) }

func (s *TextSink) Emit(evt tracer.Event) error {
	args := make([]string, len(evt.Args))
	for i, a := range evt.Args {
		args[i] = s.colorizeArg(a)
	}
	name := evt.Syscall
	if s.color {
		name = colorCyanBright + name + colorReset
	}
	ret := evt.ReturnStr
	if ret == "" {
		ret = "?"
	}
	if s.color && evt.HasReturn {
		if evt.Return < 0 {
			ret = colorRedBright + ret + colorReset
		} else {
			ret = colorGreenBright + ret + colorReset
		}
	}
	_, err := fmt.Fprintf(s.w, "%s(%s) = %s\n", name, strings.Join(args, ", "), ret)
	return err
}

func (s *TextSink) colorizeArg(v argvalue.Value) string {
	rendered := renderArg(v)
	if !s.color {
		return rendered
	}
	switch v.Kind {
	case argvalue.KindString, argvalue.KindBuffer, argvalue.KindStringArray:
		return colorYellow + rendered + colorReset
	case argvalue.KindInt, argvalue.KindUnsigned, argvalue.KindIntPtr, argvalue.KindFlags:
		return colorMagenta + rendered + colorReset
	case argvalue.KindPointer:
		return colorBlue + rendered + colorReset
	case argvalue.KindFileDescriptor:
		return colorGreen + rendered + colorReset
	default:
		return rendered
	}
}
