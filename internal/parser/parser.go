// Package parser turns a token-line stream into the nested Atom tree
// the evaluator consumes. Grounded on original_source's
// src/parser/atom.rs generate_statements.
package parser

import (
	"errors"

	"minky/internal/atom"
	"minky/internal/backtrace"
	"minky/internal/lexer"
	"minky/internal/mark"
)

var errNoParent = errors.New("no parent statement")

const (
	nullWord  = "null"
	trueWord  = "true"
	falseWord = "false"
	pipeWord  = "|"
)

func tokenToAtom(t lexer.Token, m mark.Mark) atom.Atom {
	switch t.Kind {
	case lexer.StringLit:
		return atom.NewString(t.String, m)
	case lexer.FloatLit:
		return atom.NewFloat(t.Float, m)
	default:
		switch t.Word {
		case nullWord:
			return atom.NewNull(m)
		case trueWord:
			return atom.NewBool(true, m)
		case falseWord:
			return atom.NewBool(false, m)
		default:
			return atom.NewIdentifier(t.Word, m)
		}
	}
}

// Parse consumes lines in source order, building the nested Statement
// tree by indentation: a line at depth N nests under the most recent
// statement at depth N-1. A jump of more than one level is
// ParseError("excessive indentation"); a non-identifier head
// (STRING/FLOAT/BOOL/NULL) is ParseError; leading indentation on the
// first top-level statement is ParseError.
func Parse(moduleName, source string) ([]atom.Atom, *backtrace.Backtrace) {
	lines, err := lexer.Lex(moduleName, source)
	if err != nil {
		return nil, err
	}
	var program []atom.Atom
	currentIndent := 0

	markLines := make(map[int]*mark.Line)
	getMarkLine := func(row int, text string) *mark.Line {
		if ml, ok := markLines[row]; ok {
			return ml
		}
		ml := &mark.Line{ModuleName: moduleName, Text: text, Row: row}
		markLines[row] = ml
		return ml
	}

	for _, line := range lines {
		ml := getMarkLine(line.Row, line.Text)
		displacement := line.IndentCount - currentIndent
		if displacement > 1 {
			return nil, backtrace.Error(backtrace.CodeParseError, ptr(mark.Whole(ml)), "excessive indentation")
		}

		atoms, rest, groupErr := parseParenGroup(line.Tokens, ml)
		if groupErr != nil {
			return nil, groupErr
		}
		if len(rest) != 0 {
			return nil, backtrace.Error(backtrace.CodeParseError, ptr(mark.New(ml, rest[0].ColumnStart, rest[0].ColumnEnd)), "unmatched ')'")
		}

		if len(atoms) == 0 {
			currentIndent = line.IndentCount
			continue
		}

		if len(program) == 0 && line.IndentCount != 0 {
			return nil, backtrace.Error(backtrace.CodeParseError, ptr(mark.Whole(ml)), "unexpected indentation on the first statement")
		}

		isContinuation := line.IndentCount != 0 && atoms[0].Kind == atom.Identifier && atoms[0].Text == pipeWord
		if !isContinuation {
			switch atoms[0].Kind {
			case atom.String:
				return nil, backtrace.Error(backtrace.CodeParseError, &atoms[0].Mark, "string as the head of a statement is forbidden")
			case atom.Float:
				return nil, backtrace.Error(backtrace.CodeParseError, &atoms[0].Mark, "float as the head of a statement is forbidden")
			case atom.Bool:
				return nil, backtrace.Error(backtrace.CodeParseError, &atoms[0].Mark, "bool as the head of a statement is forbidden")
			case atom.Null:
				return nil, backtrace.Error(backtrace.CodeParseError, &atoms[0].Mark, "null as the head of a statement is forbidden")
			case atom.Statement:
				return nil, backtrace.Bug(&atoms[0].Mark, "statement as the head of a statement should be unreachable")
			}
		}

		if line.IndentCount == 0 {
			program = append(program, atom.NewStatement(atoms, mark.Whole(ml)))
			currentIndent = line.IndentCount
			continue
		}

		parent, perr := findParentStatement(program, line.IndentCount-1)
		if perr != nil {
			return nil, backtrace.Error(backtrace.CodeParseError, ptr(mark.Whole(ml)), "expecting a statement")
		}

		if isContinuation {
			parent.Statement = append(parent.Statement, atoms[1:]...)
			currentIndent = line.IndentCount
			continue
		}

		parent.Statement = append(parent.Statement, atom.NewStatement(atoms, mark.Whole(ml)))
		currentIndent = line.IndentCount
	}

	return program, nil
}

// parseParenGroup converts one line's flat token stream into atoms,
// turning each matched `(...)` span into a nested Statement atom so a
// call's arguments can be composed inline (spec.md's worked examples,
// e.g. `println (add 1 2 3)`) rather than only through indentation. It
// consumes tokens until exhaustion or an unmatched ')', returning
// whatever tokens remain unconsumed (empty, or starting at the ')') for
// the caller to judge.
func parseParenGroup(tokens []lexer.Token, ml *mark.Line) ([]atom.Atom, []lexer.Token, *backtrace.Backtrace) {
	var atoms []atom.Atom
	for len(tokens) > 0 {
		t := tokens[0]
		switch t.Kind {
		case lexer.RParen:
			return atoms, tokens, nil
		case lexer.LParen:
			inner, rest, err := parseParenGroup(tokens[1:], ml)
			if err != nil {
				return nil, nil, err
			}
			if len(rest) == 0 || rest[0].Kind != lexer.RParen {
				return nil, nil, backtrace.Error(backtrace.CodeParseError, ptr(mark.New(ml, t.ColumnStart, t.ColumnEnd)), "unmatched '('")
			}
			if len(inner) == 0 {
				return nil, nil, backtrace.Error(backtrace.CodeParseError, ptr(mark.New(ml, t.ColumnStart, rest[0].ColumnEnd)), "empty parenthesized group")
			}
			atoms = append(atoms, atom.NewStatement(inner, mark.New(ml, t.ColumnStart, rest[0].ColumnEnd)))
			tokens = rest[1:]
		default:
			atoms = append(atoms, tokenToAtom(t, mark.New(ml, t.ColumnStart, t.ColumnEnd)))
			tokens = tokens[1:]
		}
	}
	return atoms, nil, nil
}

func ptr(m mark.Mark) *mark.Mark { return &m }

// findParentStatement descends `nesting` levels into the last statement
// appended so far, mirroring generate_statements's get_subatom_mut.
func findParentStatement(program []atom.Atom, nesting int) (*atom.Atom, error) {
	if len(program) == 0 {
		return nil, errNoParent
	}
	current := &program[len(program)-1]
	for n := nesting; n > 0; n-- {
		if current.Kind != atom.Statement || len(current.Statement) == 0 {
			return nil, errNoParent
		}
		current = &current.Statement[len(current.Statement)-1]
	}
	if current.Kind != atom.Statement {
		return nil, errNoParent
	}
	return current, nil
}
