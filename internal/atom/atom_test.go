package atom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"minky/internal/atom"
	"minky/internal/mark"
)

func testMark() mark.Mark {
	line := &mark.Line{ModuleName: "test", Text: "add 1 2", Row: 1}
	return mark.New(line, 0, len(line.Text))
}

func TestHeadAndBodySplitStatement(t *testing.T) {
	m := testMark()
	head := atom.NewIdentifier("add", m)
	a := atom.NewFloat(1, m)
	b := atom.NewFloat(2, m)
	stmt := atom.NewStatement([]atom.Atom{head, a, b}, m)

	assert.Equal(t, atom.Statement, stmt.Kind)
	assert.Equal(t, "add", stmt.Head().Text)
	assert.Equal(t, []atom.Atom{a, b}, stmt.Body())
}

func TestLeafConstructorsSetKindAndPayload(t *testing.T) {
	m := testMark()

	n := atom.NewNull(m)
	assert.Equal(t, atom.Null, n.Kind)

	boolAtom := atom.NewBool(true, m)
	assert.Equal(t, atom.Bool, boolAtom.Kind)
	assert.True(t, boolAtom.BoolValue)

	floatAtom := atom.NewFloat(3.5, m)
	assert.Equal(t, atom.Float, floatAtom.Kind)
	assert.Equal(t, 3.5, floatAtom.FloatValue)

	stringAtom := atom.NewString("hi", m)
	assert.Equal(t, atom.String, stringAtom.Kind)
	assert.Equal(t, "hi", stringAtom.Text)

	identAtom := atom.NewIdentifier("x", m)
	assert.Equal(t, atom.Identifier, identAtom.Kind)
	assert.Equal(t, "x", identAtom.Text)
}

func TestBodyOfSingleHeadStatementIsEmpty(t *testing.T) {
	m := testMark()
	stmt := atom.NewStatement([]atom.Atom{atom.NewIdentifier("break", m)}, m)
	assert.Empty(t, stmt.Body())
}
