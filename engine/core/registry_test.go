package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryOrderAndRemove(t *testing.T) {
	a, b, c := &KeyAdapter{}, &KeyAdapter{}, &KeyAdapter{}
	var r Registry[KeyListener]
	r.Add(a)
	r.Add(b)
	r.Add(c)
	assert.Equal(t, 3, r.Len())

	snap := r.Snapshot()
	assert.True(t, r.Remove(b))
	assert.False(t, r.Remove(b))

	assert.Equal(t, []KeyListener{a, b, c}, snap)
	assert.Equal(t, []KeyListener{a, c}, r.Snapshot())

	var seen []KeyListener
	r.ForEach(func(l KeyListener) { seen = append(seen, l) })
	assert.Equal(t, []KeyListener{a, c}, seen)
}

func TestRegistryEmptySnapshot(t *testing.T) {
	var r Registry[MouseListener]
	assert.Nil(t, r.Snapshot())
}
