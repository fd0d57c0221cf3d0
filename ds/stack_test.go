package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_Peek(t *testing.T) {
	type T struct {
		Value1 int
		Value2 int
	}
	stack := NewStack[T]()
	stack.Push(
		T{
			Value1: 1,
			Value2: 2,
		},
	)

	last := stack.Peek()

	assert.Equal(t, last.Value1, 1)
	assert.Equal(t, last.Value2, 2)
}

func TestStack_PushPop(t *testing.T) {
	stack := NewStack[string]()
	stack.Push("/data")
	stack.Push("/data/stb")

	assert.Equal(t, 2, stack.Len())
	assert.Equal(t, "/data/stb", stack.Pop())
	assert.Equal(t, "/data", stack.Pop())
	assert.Equal(t, 0, stack.Len())
}
