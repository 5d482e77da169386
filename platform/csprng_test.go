package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSPRNGRandomBytesLength(t *testing.T) {
	rng := NewCSPRNG()
	b, err := rng.RandomBytes(32)
	require.NoError(t, err)
	assert.Len(t, b, 32)
}

func TestCSPRNGRandomBytesVary(t *testing.T) {
	rng := NewCSPRNG()
	a, err := rng.RandomBytes(32)
	require.NoError(t, err)
	b, err := rng.RandomBytes(32)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
