// Package shamir implements Shamir's Secret Sharing over GF(2^8): a
// secret byte string is split into a number of shares such that any
// threshold-sized subset can reconstruct it, while any smaller subset
// reveals nothing about it. Each byte of the secret is treated as the
// constant term of an independent random polynomial of degree
// threshold-1, evaluated at distinct non-zero x-coordinates.
package shamir

import (
	"github.com/horcrux-project/horcrux-go/errors"
	"github.com/horcrux-project/horcrux-go/gf256"
	"github.com/horcrux-project/horcrux-go/platform"
)

// Share is one point on the secret's polynomial: Y[i] is the
// polynomial for secret byte i evaluated at X.
type Share struct {
	X byte
	Y []byte
}

// Split divides secret into total shares, any threshold of which
// reconstruct it. It draws threshold-1 random coefficients per secret
// byte and total distinct, non-zero x-coordinates from rng.
func Split(secret []byte, total, threshold int, rng platform.RandomSource) ([]Share, error) {
	if len(secret) == 0 {
		return nil, errors.ErrEmptySecret.Clone()
	}

	xs, err := distinctXCoordinates(total, rng)
	if err != nil {
		return nil, err
	}

	shares := make([]Share, total)
	for i, x := range xs {
		shares[i] = Share{X: x, Y: make([]byte, len(secret))}
	}

	coeffs := make([]byte, threshold)
	for byteIdx, secretByte := range secret {
		coeffs[0] = secretByte
		randCoeffs, err := rng.RandomBytes(threshold - 1)
		if err != nil {
			return nil, errors.ErrRandomGenerationFailed.Wrap(err)
		}
		copy(coeffs[1:], randCoeffs)

		for i, x := range xs {
			shares[i].Y[byteIdx] = gf256.EvalPolynomial(coeffs, x)
		}
	}

	return shares, nil
}

// Combine reconstructs the secret from shares via Lagrange
// interpolation at x=0. Any threshold-sized subset of the shares
// produced by a matching Split call reconstructs the same secret;
// fewer shares silently produce garbage rather than erroring, since
// the algorithm has no way to distinguish "too few shares" from
// "correct shares" without external knowledge of the threshold.
func Combine(shares []Share) ([]byte, error) {
	if len(shares) == 0 {
		return nil, errors.ErrEmptyShares.Clone()
	}

	secretLen := len(shares[0].Y)
	for _, s := range shares {
		if len(s.Y) != secretLen {
			return nil, errors.ErrShareLengthMismatch.Clone()
		}
	}

	secret := make([]byte, secretLen)
	for byteIdx := 0; byteIdx < secretLen; byteIdx++ {
		var acc byte
		for i, si := range shares {
			num := byte(1)
			den := byte(1)
			for j, sj := range shares {
				if i == j {
					continue
				}
				num = gf256.Mul(num, sj.X)
				diff := gf256.Sub(sj.X, si.X)
				if diff == 0 {
					return nil, errors.ErrDivisionByZero.Clone()
				}
				den = gf256.Mul(den, diff)
			}
			term := gf256.Mul(si.Y[byteIdx], gf256.Div(num, den))
			acc = gf256.Add(acc, term)
		}
		secret[byteIdx] = acc
	}

	return secret, nil
}

// distinctXCoordinates draws count distinct, non-zero byte values from
// rng via rejection sampling. x=0 is reserved: evaluating a share's
// polynomial at x=0 would leak the secret byte directly.
func distinctXCoordinates(count int, rng platform.RandomSource) ([]byte, error) {
	seen := make(map[byte]bool, count)
	xs := make([]byte, 0, count)
	for len(xs) < count {
		buf, err := rng.RandomBytes(1)
		if err != nil {
			return nil, errors.ErrRandomGenerationFailed.Wrap(err)
		}
		x := buf[0]
		if x == 0 || seen[x] {
			continue
		}
		seen[x] = true
		xs = append(xs, x)
	}
	return xs, nil
}
