package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListPushGetPop(t *testing.T) {
	l := NewList(Float(1), Float(2))
	l.Push(Float(3))
	assert.Equal(t, 3, l.Len())

	v, ok := l.Get(2)
	assert.True(t, ok)
	assert.Equal(t, Float(3), v)

	_, ok = l.Get(99)
	assert.False(t, ok)

	popped, ok := l.Pop()
	assert.True(t, ok)
	assert.Equal(t, Float(3), popped)
	assert.Equal(t, 2, l.Len())
}

func TestListAliasing(t *testing.T) {
	a := NewList(Float(1), Float(2))
	b := a // same handle, the spec's "assignment aliases, not copies"
	b.Push(Float(3))
	assert.Equal(t, 3, a.Len(), "pushing through b must be visible through a")
}

func TestEmptyListPop(t *testing.T) {
	l := NewList()
	_, ok := l.Pop()
	assert.False(t, ok)
}
