package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderedRegistry_InsertionOrder(t *testing.T) {
	r := NewOrderedRegistry[string, int]()
	set := func(v int) func(int, bool) int {
		return func(int, bool) int { return v }
	}
	r.Update("b", set(1))
	r.Update("a", set(2))
	r.Update("b", set(3))

	assert.Equal(t, []string{"b", "a"}, r.Keys())
	v, ok := r.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, 2, r.Size())
}

func TestOrderedRegistry_Update(t *testing.T) {
	r := NewOrderedRegistry[string, []string]()
	appendTo := func(item string) func([]string, bool) []string {
		return func(current []string, _ bool) []string { return append(current, item) }
	}

	r.Update("x", appendTo("1"))
	r.Update("y", appendTo("2"))
	r.Update("x", appendTo("3"))

	var visited []string
	r.ForEach(func(k string, v []string) {
		visited = append(visited, k)
	})
	assert.Equal(t, []string{"x", "y"}, visited)

	v, _ := r.Get("x")
	assert.Equal(t, []string{"1", "3"}, v)
	assert.False(t, r.Has("z"))
}
