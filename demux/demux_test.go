package demux

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitMergeRoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte("0123456789"), 250) // 2500 bytes
	streams := Split(data, 5, 100)
	assert.Len(t, streams, 5)

	got := Merge(streams, 100, len(data))
	assert.Equal(t, data, got)
}

func TestSplitMergeNonMultipleOfQuotaTimesTotal(t *testing.T) {
	data := make([]byte, 733)
	for i := range data {
		data[i] = byte(i % 256)
	}
	streams := Split(data, 3, 100)
	got := Merge(streams, 100, len(data))
	assert.Equal(t, data, got)
}

func TestSplitMergeSmallerThanOneQuota(t *testing.T) {
	data := []byte("tiny")
	streams := Split(data, 4, 100)
	got := Merge(streams, 100, len(data))
	assert.Equal(t, data, got)
}

func TestSplitMergeSingleByte(t *testing.T) {
	data := []byte{0x42}
	streams := Split(data, 3, 100)
	got := Merge(streams, 100, len(data))
	assert.Equal(t, data, got)
}

func TestSplitDistributesRoundRobin(t *testing.T) {
	data := make([]byte, 10)
	streams := Split(data, 5, 2)
	for _, s := range streams {
		assert.Len(t, s, 2)
	}
}

func TestSplitMergeAllByteValues(t *testing.T) {
	data := make([]byte, 256*3)
	for i := range data {
		data[i] = byte(i % 256)
	}
	streams := Split(data, 7, 100)
	got := Merge(streams, 100, len(data))
	assert.Equal(t, data, got)
}

func toWriters(bufs []*bytes.Buffer) []io.Writer {
	out := make([]io.Writer, len(bufs))
	for i, b := range bufs {
		out[i] = b
	}
	return out
}

func toReaders(bufs []*bytes.Buffer) []io.Reader {
	out := make([]io.Reader, len(bufs))
	for i, b := range bufs {
		out[i] = b
	}
	return out
}

func TestStreamSplitMatchesSplit(t *testing.T) {
	data := bytes.Repeat([]byte("0123456789"), 250)

	want := Split(data, 5, 100)

	bufs := make([]*bytes.Buffer, 5)
	for i := range bufs {
		bufs[i] = &bytes.Buffer{}
	}
	require.NoError(t, StreamSplit(bytes.NewReader(data), toWriters(bufs), 100))

	for i, b := range bufs {
		assert.Equal(t, want[i], b.Bytes())
	}
}

func TestStreamMergeMatchesMerge(t *testing.T) {
	data := make([]byte, 733)
	for i := range data {
		data[i] = byte(i % 256)
	}
	streams := Split(data, 3, 100)

	bufs := make([]*bytes.Buffer, len(streams))
	for i, s := range streams {
		bufs[i] = bytes.NewBuffer(s)
	}

	var out bytes.Buffer
	require.NoError(t, StreamMerge(toReaders(bufs), &out, 100))
	assert.Equal(t, data, out.Bytes())
}

func TestStreamSplitStreamMergeRoundTrip(t *testing.T) {
	data := make([]byte, 256*3)
	for i := range data {
		data[i] = byte(i % 256)
	}

	bufs := make([]*bytes.Buffer, 7)
	for i := range bufs {
		bufs[i] = &bytes.Buffer{}
	}
	require.NoError(t, StreamSplit(bytes.NewReader(data), toWriters(bufs), 100))

	readers := make([]*bytes.Buffer, len(bufs))
	for i, b := range bufs {
		readers[i] = bytes.NewBuffer(b.Bytes())
	}

	var out bytes.Buffer
	require.NoError(t, StreamMerge(toReaders(readers), &out, 100))
	assert.Equal(t, data, out.Bytes())
}
