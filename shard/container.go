package shard

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/horcrux-project/horcrux-go/errors"
)

const (
	// HeaderMarker delimits the end of the optional comment line and
	// the start of the header JSON block.
	HeaderMarker = "!HORCRUX-BEGIN-HEADER!"

	// BodyMarker delimits the end of the header JSON block and the
	// start of the raw ciphertext body.
	BodyMarker = "!HORCRUX-BEGIN-BODY!"
)

// Comment, when non-empty, is written as the optional human-readable
// line preceding the header marker.
const Comment = "This is a horcrux, a fragment of a file split with https://horcrux-project.dev"

// SerializeHeader renders the text prefix that precedes a shard's
// binary content: an optional comment line, the header marker, the
// header JSON, and the body marker. It is split out from Serialize so
// a streaming writer can emit the prefix before the body is known, or
// even before it exists in memory at all.
func SerializeHeader(h Header) ([]byte, error) {
	headerJSON, err := json.Marshal(h)
	if err != nil {
		return nil, errors.ErrMalformedHeader.Wrap(err)
	}

	var buf bytes.Buffer
	if Comment != "" {
		buf.WriteString(Comment)
		buf.WriteByte('\n')
	}
	buf.WriteString(HeaderMarker)
	buf.WriteByte('\n')
	buf.Write(headerJSON)
	buf.WriteByte('\n')
	buf.WriteString(BodyMarker)
	buf.WriteByte('\n')

	return buf.Bytes(), nil
}

// Serialize renders s into its on-disk byte layout: SerializeHeader's
// prefix followed by the raw content bytes.
func Serialize(s Shard) ([]byte, error) {
	prefix, err := SerializeHeader(s.Header)
	if err != nil {
		return nil, err
	}
	return append(prefix, s.Content...), nil
}

// Parse reverses Serialize: it locates the header and body markers,
// decodes the header JSON, and returns the reconstructed Shard. The
// body is everything after the first newline following BodyMarker.
func Parse(data []byte) (Shard, error) {
	headerMarkerIdx := bytes.Index(data, []byte(HeaderMarker))
	if headerMarkerIdx < 0 {
		return Shard{}, errors.ErrMissingHeaderMarker.Clone()
	}

	afterHeaderMarker := headerMarkerIdx + len(HeaderMarker)
	if afterHeaderMarker >= len(data) || data[afterHeaderMarker] != '\n' {
		return Shard{}, errors.ErrMissingHeaderMarker.Clone()
	}
	headerStart := afterHeaderMarker + 1

	bodyMarkerIdx := bytes.Index(data[headerStart:], []byte(BodyMarker))
	if bodyMarkerIdx < 0 {
		return Shard{}, errors.ErrMissingBodyMarker.Clone()
	}
	bodyMarkerIdx += headerStart

	headerJSON := bytes.TrimSuffix(data[headerStart:bodyMarkerIdx], []byte("\n"))

	afterBodyMarker := bodyMarkerIdx + len(BodyMarker)
	if afterBodyMarker >= len(data) || data[afterBodyMarker] != '\n' {
		return Shard{}, errors.ErrMissingBodyMarker.Clone()
	}
	bodyStart := afterBodyMarker + 1

	var header Header
	if err := json.Unmarshal(headerJSON, &header); err != nil {
		return Shard{}, errors.ErrMalformedHeader.Wrap(err)
	}
	if header.OriginalFilename == "" {
		return Shard{}, errors.ErrMalformedHeader.Clone()
	}
	if header.Version < 1 || header.Version > FormatVersion {
		return Shard{}, errors.ErrUnsupportedVersion.Clone()
	}

	content := data[bodyStart:]
	contentCopy := make([]byte, len(content))
	copy(contentCopy, content)

	return Shard{Header: header, Content: contentCopy}, nil
}

// ParseHeaderStream reads and decodes the header prefix from r,
// leaving r positioned at the first byte of the content body. Unlike
// Parse, it never needs the body in memory: a caller reading a shard
// off disk can call this once and then stream the remaining bytes of
// r directly into the bind pipeline.
func ParseHeaderStream(r *bufio.Reader) (Header, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		return Header{}, errors.ErrMissingHeaderMarker.Wrap(err)
	}
	line = strings.TrimSuffix(line, "\n")

	if line != HeaderMarker {
		// line was the optional comment; the marker is the next line.
		line, err = r.ReadString('\n')
		if err != nil {
			return Header{}, errors.ErrMissingHeaderMarker.Wrap(err)
		}
		line = strings.TrimSuffix(line, "\n")
	}
	if line != HeaderMarker {
		return Header{}, errors.ErrMissingHeaderMarker.Clone()
	}

	headerLine, err := r.ReadString('\n')
	if err != nil {
		return Header{}, errors.ErrMalformedHeader.Wrap(err)
	}
	headerLine = strings.TrimSuffix(headerLine, "\n")

	bodyMarkerLine, err := r.ReadString('\n')
	if err != nil {
		return Header{}, errors.ErrMissingBodyMarker.Wrap(err)
	}
	bodyMarkerLine = strings.TrimSuffix(bodyMarkerLine, "\n")
	if bodyMarkerLine != BodyMarker {
		return Header{}, errors.ErrMissingBodyMarker.Clone()
	}

	var header Header
	if err := json.Unmarshal([]byte(headerLine), &header); err != nil {
		return Header{}, errors.ErrMalformedHeader.Wrap(err)
	}
	if header.OriginalFilename == "" {
		return Header{}, errors.ErrMalformedHeader.Clone()
	}
	if header.Version < 1 || header.Version > FormatVersion {
		return Header{}, errors.ErrUnsupportedVersion.Clone()
	}

	return header, nil
}

// Filename returns the conventional persisted filename for a shard:
// "<originalFilename>.<index>_<total>.horcrux".
func Filename(h Header) string {
	return fmt.Sprintf("%s.%d_%d.horcrux", h.OriginalFilename, h.Index, h.Total)
}
