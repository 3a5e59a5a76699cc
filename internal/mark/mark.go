// Package mark carries source-location information through the lexer,
// parser, and evaluator so every atom and every error frame can point
// back at the line it came from.
package mark

import "fmt"

// Line identifies one physical line of one module: its name, its raw
// text (for rendering a caret excerpt), and its 1-based row.
type Line struct {
	ModuleName string
	Text       string
	Row        int
}

// Mark pins a span of columns on a Line. ColumnStart and ColumnEnd are
// 0-based, half-open: [ColumnStart, ColumnEnd).
type Mark struct {
	Line        *Line
	ColumnStart int
	ColumnEnd   int
}

func New(line *Line, start, end int) Mark {
	return Mark{Line: line, ColumnStart: start, ColumnEnd: end}
}

// Whole marks an entire line, used for statements whose head spans the
// line rather than a single token.
func Whole(line *Line) Mark {
	return Mark{Line: line, ColumnStart: 0, ColumnEnd: len(line.Text)}
}

func (m Mark) String() string {
	return fmt.Sprintf("%s:%d:%d", m.Line.ModuleName, m.Line.Row, m.ColumnStart+1)
}

// Caret renders the source line followed by a caret underline spanning
// the mark's columns, the way the teacher's error reporter does.
func (m Mark) Caret() string {
	line := m.Line.Text
	start := m.ColumnStart
	end := m.ColumnEnd
	if start < 0 {
		start = 0
	}
	if end > len(line) {
		end = len(line)
	}
	if end <= start {
		end = start + 1
	}
	underline := make([]byte, end)
	for i := range underline {
		if i < start {
			underline[i] = ' '
		} else {
			underline[i] = '^'
		}
	}
	return line + "\n" + string(underline)
}
