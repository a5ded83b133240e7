package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCache(t *testing.T) {
	c := newCache(2)
	assert.False(t, c.has(1))

	c.add(1)
	c.add(2)
	assert.True(t, c.has(1))
	assert.True(t, c.has(2))

	// the oldest hash is evicted first
	c.add(3)
	assert.False(t, c.has(1))
	assert.True(t, c.has(3))

	c.reset()
	assert.False(t, c.has(2))

	c.add(4)
	c.enabled = false
	assert.False(t, c.has(4))
}

func TestCache_Disabled(t *testing.T) {
	for _, size := range []int{-1, 0, 1} {
		c := newCache(size)
		c.add(7)
		assert.False(t, c.has(7), "size %d", size)
	}
}
