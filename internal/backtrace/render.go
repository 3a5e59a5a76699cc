package backtrace

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Render formats a Backtrace the way the teacher's ErrorReporter formats
// a CompilerError: a colored "level[code]: message" header, a "-->
// module:line:col" location line, a caret-underlined source excerpt, and
// a dimmed "Traceback:" block for every call-site frame beneath it.
func Render(b *Backtrace) string {
	if len(b.Frames) == 0 {
		return ""
	}

	var out strings.Builder
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	head := b.Frames[0]
	levelColor := levelColor(head.Level)
	if head.Code != "" {
		out.WriteString(fmt.Sprintf("%s[%s]: %s\n", levelColor(string(head.Level)), head.Code, head.Message))
	} else {
		out.WriteString(fmt.Sprintf("%s: %s\n", levelColor(string(head.Level)), head.Message))
	}
	if head.Level == LevelBug {
		out.WriteString(dim("  this is an interpreter bug; please report it\n"))
	}
	writeFrameLocation(&out, head, bold, dim)

	if len(b.Frames) > 1 {
		out.WriteString(dim("Traceback:\n"))
		for _, frame := range b.Frames[1:] {
			writeFrameLocation(&out, frame, bold, dim)
		}
	}

	return out.String()
}

func writeFrameLocation(out *strings.Builder, f Frame, bold, dim func(a ...any) string) {
	if f.Mark == nil {
		return
	}
	out.WriteString(fmt.Sprintf("  %s %s\n", dim("-->"), f.Mark.String()))
	out.WriteString(fmt.Sprintf("  %s\n", indentCaret(f.Mark.Caret(), bold, dim)))
}

func indentCaret(caret string, bold, dim func(a ...any) string) string {
	lines := strings.SplitN(caret, "\n", 2)
	if len(lines) != 2 {
		return bold(caret)
	}
	return bold(lines[0]) + "\n  " + dim(lines[1])
}

func levelColor(l Level) func(format string, a ...any) string {
	switch l {
	case LevelError:
		return color.New(color.FgRed, color.Bold).SprintfFunc()
	case LevelBug:
		return color.New(color.FgMagenta, color.Bold).SprintfFunc()
	default:
		return color.New(color.FgCyan).SprintfFunc()
	}
}
