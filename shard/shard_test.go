package shard

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleShard() Shard {
	return Shard{
		Header: Header{
			OriginalFilename: "secret.pdf",
			Timestamp:        1700000000000,
			Index:            3,
			Total:            5,
			Threshold:        3,
			KeyFragment: KeyFragment{
				X: 42,
				Y: []byte{1, 2, 3, 255, 0, 128},
			},
			Version: FormatVersion,
		},
		Content: []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x01},
	}
}

func TestKeyFragmentJSONIsIntegerArray(t *testing.T) {
	kf := KeyFragment{X: 7, Y: []byte{1, 2, 255}}
	data, err := json.Marshal(kf)
	require.NoError(t, err)
	assert.JSONEq(t, `{"x":7,"y":[1,2,255]}`, string(data))
}

func TestKeyFragmentRoundTrip(t *testing.T) {
	kf := KeyFragment{X: 200, Y: []byte{0, 1, 2, 253, 254, 255}}
	data, err := json.Marshal(kf)
	require.NoError(t, err)

	var got KeyFragment
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, kf, got)
}

func TestSerializeParseRoundTrip(t *testing.T) {
	s := sampleShard()
	data, err := Serialize(s)
	require.NoError(t, err)

	got, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestSerializeContainsMarkers(t *testing.T) {
	data, err := Serialize(sampleShard())
	require.NoError(t, err)
	assert.Contains(t, string(data), HeaderMarker)
	assert.Contains(t, string(data), BodyMarker)
}

func TestParseRejectsMissingHeaderMarker(t *testing.T) {
	_, err := Parse([]byte("no markers here"))
	assert.Error(t, err)
}

func TestParseRejectsMissingBodyMarker(t *testing.T) {
	data := []byte(HeaderMarker + "\n{}\n")
	_, err := Parse(data)
	assert.Error(t, err)
}

func TestParseRejectsMalformedHeaderJSON(t *testing.T) {
	data := []byte(HeaderMarker + "\nnot json\n" + BodyMarker + "\nbody")
	_, err := Parse(data)
	assert.Error(t, err)
}

func TestParseRejectsUnsupportedVersion(t *testing.T) {
	s := sampleShard()
	s.Header.Version = 99
	data, err := Serialize(s)
	require.NoError(t, err)

	_, err = Parse(data)
	assert.Error(t, err)
}

func TestFilenameConvention(t *testing.T) {
	h := Header{OriginalFilename: "secret.pdf", Index: 3, Total: 5}
	assert.Equal(t, "secret.pdf.3_5.horcrux", Filename(h))
}

func TestParseHeaderStreamLeavesReaderAtContent(t *testing.T) {
	s := sampleShard()
	data, err := Serialize(s)
	require.NoError(t, err)

	r := bufio.NewReader(bytes.NewReader(data))
	header, err := ParseHeaderStream(r)
	require.NoError(t, err)
	assert.Equal(t, s.Header, header)

	rest, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, s.Content, rest)
}

func TestParseHeaderStreamRejectsMissingBodyMarker(t *testing.T) {
	r := bufio.NewReader(bytes.NewReader([]byte(HeaderMarker + "\n{}\n")))
	_, err := ParseHeaderStream(r)
	assert.Error(t, err)
}

func TestParseHeaderStreamRejectsUnsupportedVersion(t *testing.T) {
	s := sampleShard()
	s.Header.Version = 99
	data, err := Serialize(s)
	require.NoError(t, err)

	_, err = ParseHeaderStream(bufio.NewReader(bytes.NewReader(data)))
	assert.Error(t, err)
}

func TestSerializeHeaderMatchesSerializePrefix(t *testing.T) {
	s := sampleShard()
	full, err := Serialize(s)
	require.NoError(t, err)

	prefix, err := SerializeHeader(s.Header)
	require.NoError(t, err)

	assert.Equal(t, full[:len(prefix)], prefix)
	assert.Equal(t, s.Content, full[len(prefix):])
}

func TestParsePreservesBinaryContent(t *testing.T) {
	s := sampleShard()
	s.Content = make([]byte, 256)
	for i := range s.Content {
		s.Content[i] = byte(i)
	}
	data, err := Serialize(s)
	require.NoError(t, err)

	got, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, s.Content, got.Content)
}
