package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClearRawBytes(t *testing.T) {
	type keyMaterial struct {
		Key    [32]byte
		UserID int64
	}

	data := &keyMaterial{UserID: 12345}
	for i := range data.Key {
		data.Key[i] = byte(i + 1)
	}

	ClearRawBytes(data)

	assert.True(t, Zeroed(data.Key[:]))
	assert.Equal(t, int64(0), data.UserID)
}

func TestClearRawBytesNil(t *testing.T) {
	var p *[32]byte
	assert.NotPanics(t, func() { ClearRawBytes(p) })
}

func TestClearBytes(t *testing.T) {
	b := make([]byte, 64)
	for i := range b {
		b[i] = byte(i + 1)
	}

	ClearBytes(b)

	assert.True(t, Zeroed(b))
}

func TestClearBytesEmpty(t *testing.T) {
	assert.NotPanics(t, func() { ClearBytes(nil) })
}

func TestZeroed(t *testing.T) {
	assert.True(t, Zeroed(make([]byte, 16)))
	assert.False(t, Zeroed([]byte{0, 0, 1}))
}
