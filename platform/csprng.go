package platform

import (
	"crypto/rand"

	sdkErrors "github.com/horcrux-project/horcrux-go/errors"
)

// CSPRNG is the default RandomSource, backed by crypto/rand.
type CSPRNG struct{}

// NewCSPRNG returns a crypto/rand-backed RandomSource.
func NewCSPRNG() CSPRNG {
	return CSPRNG{}
}

func (CSPRNG) RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, sdkErrors.ErrRandomGenerationFailed.Wrap(err)
	}
	return b, nil
}
