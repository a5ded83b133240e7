package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState(t *testing.T) {
	s := NewState()
	s.Write8(0x42)
	s.Write16(0x1234)
	assert.Equal(t, []byte{0x42, 0x34, 0x12}, s.Bytes())

	r := StateFromBytes(s.Bytes())
	assert.Equal(t, uint8(0x42), r.Read8())
	assert.Equal(t, uint16(0x1234), r.Read16())
	require.NoError(t, r.Err())

	assert.Zero(t, r.Read8())
	assert.ErrorIs(t, r.Err(), ErrStateShort)
}

func TestState_Hash(t *testing.T) {
	a, b := NewState(), NewState()
	a.Write16(0xBEEF)
	b.Write16(0xBEEF)
	assert.Equal(t, a.Hash(), b.Hash())

	b.Write8(0)
	assert.NotEqual(t, a.Hash(), b.Hash())
}
