// Package shard defines the shard header and container types, and
// serializes/parses the text-prefixed, binary-suffixed shard file
// format: an optional comment, a header marker, the JSON-encoded
// header, a body marker, and the raw ciphertext body.
package shard

import (
	"encoding/json"

	"github.com/horcrux-project/horcrux-go/errors"
)

// KeyFragment is one Shamir share of the AES key: x is the evaluation
// point, y the polynomial values for each key byte.
type KeyFragment struct {
	X byte
	Y []byte
}

// keyFragmentWire is KeyFragment's on-disk shape: y as a JSON array of
// integers rather than encoding/json's default base64 string for
// []byte, to stay byte-exact with the reference implementation's wire
// format.
type keyFragmentWire struct {
	X int   `json:"x"`
	Y []int `json:"y"`
}

// MarshalJSON encodes y as a JSON integer array instead of base64.
func (k KeyFragment) MarshalJSON() ([]byte, error) {
	y := make([]int, len(k.Y))
	for i, b := range k.Y {
		y[i] = int(b)
	}
	return json.Marshal(keyFragmentWire{X: int(k.X), Y: y})
}

// UnmarshalJSON decodes a JSON integer array into y.
func (k *KeyFragment) UnmarshalJSON(data []byte) error {
	var wire keyFragmentWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return errors.ErrMalformedHeader.Wrap(err)
	}
	if wire.X < 0 || wire.X > 255 {
		return errors.ErrMalformedHeader.Clone()
	}
	y := make([]byte, len(wire.Y))
	for i, v := range wire.Y {
		if v < 0 || v > 255 {
			return errors.ErrMalformedHeader.Clone()
		}
		y[i] = byte(v)
	}
	k.X = byte(wire.X)
	k.Y = y
	return nil
}

// FormatVersion is the current shard header version this package
// writes and accepts.
const FormatVersion = 1

// Header carries the metadata needed to group, validate, and
// reconstruct a split run from its constituent shards.
type Header struct {
	OriginalFilename string      `json:"originalFilename"`
	Timestamp        int64       `json:"timestamp"`
	Index            int         `json:"index"`
	Total            int         `json:"total"`
	Threshold        int         `json:"threshold"`
	KeyFragment      KeyFragment `json:"keyFragment"`
	Version          int         `json:"version"`
}

// Shard is one fragment of a split: a header plus its share of the
// ciphertext.
type Shard struct {
	Header  Header
	Content []byte
}
