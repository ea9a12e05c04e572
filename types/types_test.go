package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEdgeKey(t *testing.T) {
	{ // Both directions share a key
		ek := NewEdgeKey(1, 0)
		assert.Equal(t, EdgeKey(1<<32), ek)
		assert.Equal(t, ek, NewEdgeKey(0, 1))
		lo, hi := ek.Nodes()
		assert.Equal(t, 0, lo)
		assert.Equal(t, 1, hi)
	}
	{
		ek := NewEdgeKey(100, 100001)
		assert.Equal(t, EdgeKey(100001<<32+100), ek)
		assert.Equal(t, "100-100001", ek.String())
	}
	{ // Largest node index
		ek := NewEdgeKey(MaxNodes-1, 1)
		lo, hi := ek.Nodes()
		assert.Equal(t, 1, lo)
		assert.Equal(t, MaxNodes-1, hi)
		assert.Equal(t, EdgeKey(1<<64-1), NewEdgeKey(MaxNodes-1, MaxNodes-1))
	}
}

func TestEdgeInt(t *testing.T) {
	e := NewEdgeInt(4, 0)
	assert.Equal(t, 4, e.From())
	assert.Equal(t, 0, e.To())
	assert.Equal(t, "4->0", e.String())
	assert.Equal(t, NewEdgeKey(0, 4), e.Key())

	r := e.Reverse()
	assert.NotEqual(t, e, r)
	assert.Equal(t, 0, r.From())
	assert.Equal(t, 4, r.To())
	assert.Equal(t, e.Key(), r.Key())
	assert.Equal(t, e, r.Reverse())
}
