package shamir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/horcrux-project/horcrux-go/platform"
)

func rng(seed uint64) platform.RandomSource {
	return platform.NewDeterministicRandomSource(seed)
}

func TestSplitCombineRoundTrip(t *testing.T) {
	secret := []byte("a reasonably sized secret message, several bytes long")

	shares, err := Split(secret, 5, 3, rng(1))
	require.NoError(t, err)
	require.Len(t, shares, 5)

	got, err := Combine(shares[:3])
	require.NoError(t, err)
	assert.Equal(t, secret, got)

	got2, err := Combine([]Share{shares[1], shares[3], shares[4]})
	require.NoError(t, err)
	assert.Equal(t, secret, got2)
}

func TestSplitCombineAllShares(t *testing.T) {
	secret := []byte{0, 1, 2, 255, 254, 128}

	shares, err := Split(secret, 4, 4, rng(2))
	require.NoError(t, err)

	got, err := Combine(shares)
	require.NoError(t, err)
	assert.Equal(t, secret, got)
}

func TestSplitBoundaryTwoOfTwo(t *testing.T) {
	secret := []byte("x")
	shares, err := Split(secret, 2, 2, rng(3))
	require.NoError(t, err)
	got, err := Combine(shares)
	require.NoError(t, err)
	assert.Equal(t, secret, got)
}

func TestSplitBoundaryTwoOfNinetyNine(t *testing.T) {
	secret := []byte("short")
	shares, err := Split(secret, 99, 2, rng(4))
	require.NoError(t, err)
	require.Len(t, shares, 99)

	got, err := Combine([]Share{shares[10], shares[80]})
	require.NoError(t, err)
	assert.Equal(t, secret, got)
}

func TestSplitAllByteValues(t *testing.T) {
	secret := make([]byte, 256)
	for i := range secret {
		secret[i] = byte(i)
	}
	shares, err := Split(secret, 5, 3, rng(5))
	require.NoError(t, err)

	got, err := Combine(shares[1:4])
	require.NoError(t, err)
	assert.Equal(t, secret, got)
}

func TestSharesHaveDistinctXCoordinates(t *testing.T) {
	shares, err := Split([]byte("abc"), 10, 4, rng(6))
	require.NoError(t, err)

	seen := map[byte]bool{}
	for _, s := range shares {
		assert.False(t, seen[s.X], "duplicate x-coordinate %d", s.X)
		assert.NotEqual(t, byte(0), s.X)
		seen[s.X] = true
	}
}

func TestSplitRejectsEmptySecret(t *testing.T) {
	_, err := Split(nil, 5, 3, rng(7))
	assert.Error(t, err)
}

func TestCombineRejectsEmptyShares(t *testing.T) {
	_, err := Combine(nil)
	assert.Error(t, err)
}

func TestCombineWithSingleShareDoesNotError(t *testing.T) {
	secret := []byte("abc")
	shares, err := Split(secret, 5, 3, rng(8))
	require.NoError(t, err)

	got, err := Combine(shares[:1])
	require.NoError(t, err)
	assert.NotEqual(t, secret, got, "a single share of a threshold-3 split is not expected to reproduce the secret")
}

func TestCombineRejectsMismatchedLengths(t *testing.T) {
	a, err := Split([]byte("short"), 3, 2, rng(9))
	require.NoError(t, err)
	b, err := Split([]byte("a much longer secret value"), 3, 2, rng(10))
	require.NoError(t, err)

	_, err = Combine([]Share{a[0], b[1]})
	assert.Error(t, err)
}
