// Package cipher implements the symmetric encryption step of the
// split/bind pipeline: AES-256 in OFB mode with a fixed, all-zero
// 16-byte IV.
//
// A fixed IV makes this cipher an unauthenticated stream transform
// rather than a general-purpose AEAD: reusing a key across two
// different plaintexts would leak their XOR difference. That trade is
// deliberate here, since every split generates a fresh random key that
// is itself Shamir-split and never reused, and a fixed IV is required
// for two independently implemented tools (this one and the reference
// implementation it interoperates with) to produce byte-identical
// ciphertext from the same key and plaintext.
package cipher

import (
	"crypto/aes"
	stdcipher "crypto/cipher"
	"io"

	"github.com/horcrux-project/horcrux-go/errors"
)

// KeySize is the required AES-256 key length in bytes.
const KeySize = 32

var zeroIV = make([]byte, aes.BlockSize)

// Encrypt returns the AES-256-OFB transform of plaintext under key.
// OFB is a self-inverting stream cipher, so Encrypt and Decrypt are
// the same operation.
func Encrypt(key, plaintext []byte) ([]byte, error) {
	return transform(key, plaintext)
}

// Decrypt returns the AES-256-OFB transform of ciphertext under key.
func Decrypt(key, ciphertext []byte) ([]byte, error) {
	return transform(key, ciphertext)
}

func transform(key, in []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, errors.ErrInvalidKeyLength.Clone()
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.ErrGeneralFailure.Wrap(err)
	}

	stream := stdcipher.NewOFB(block, zeroIV)
	out := make([]byte, len(in))
	stream.XORKeyStream(out, in)
	return out, nil
}

// StreamWriter wraps w so that every byte written to it is transformed
// with AES-256-OFB under key before reaching w.
func StreamWriter(key []byte, w io.Writer) (io.Writer, error) {
	if len(key) != KeySize {
		return nil, errors.ErrInvalidKeyLength.Clone()
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.ErrGeneralFailure.Wrap(err)
	}
	stream := stdcipher.NewOFB(block, zeroIV)
	return &stdcipher.StreamWriter{S: stream, W: w}, nil
}

// StreamReader wraps r so that every byte read from it is transformed
// with AES-256-OFB under key after leaving r.
func StreamReader(key []byte, r io.Reader) (io.Reader, error) {
	if len(key) != KeySize {
		return nil, errors.ErrInvalidKeyLength.Clone()
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.ErrGeneralFailure.Wrap(err)
	}
	stream := stdcipher.NewOFB(block, zeroIV)
	return &stdcipher.StreamReader{S: stream, R: r}, nil
}
