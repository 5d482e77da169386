// Package demux implements round-robin byte striping: splitting a
// single ciphertext stream into N interleaved streams (and the inverse
// merge), used when every shard is required to reconstruct the
// original file (threshold == total). Data is divided into
// fixed-size stripes distributed to shards in rotation, the same
// byte-striping idea rclone's raid3 backend uses for its data
// particles, generalized here from 3 fixed shards to an arbitrary
// shard count and from per-byte to quota-sized stripes.
package demux

import "io"

// Split divides data into quota-sized stripes and distributes them
// round-robin across total output streams. The final stripe of the
// final full rotation may be shorter than quota; streams that receive
// no bytes in the last partial rotation are simply shorter than the
// others. total must be >= 1 and quota >= 1.
func Split(data []byte, total, quota int) [][]byte {
	out := make([][]byte, total)
	for i := range out {
		out[i] = make([]byte, 0, (len(data)/total/quota+1)*quota)
	}

	stream := 0
	for offset := 0; offset < len(data); offset += quota {
		end := offset + quota
		if end > len(data) {
			end = len(data)
		}
		out[stream] = append(out[stream], data[offset:end]...)
		stream = (stream + 1) % total
	}

	return out
}

// Merge reassembles the output of Split back into the original byte
// stream, reading quota-sized stripes from each of streams in the same
// round-robin rotation Split used. totalLen is the length of the
// original data, needed to know when to stop since the final stripe
// may be partial and streams may have run dry at different points.
func Merge(streams [][]byte, quota, totalLen int) []byte {
	out := make([]byte, 0, totalLen)
	offsets := make([]int, len(streams))

	stream := 0
	for len(out) < totalLen {
		s := streams[stream]
		off := offsets[stream]
		end := off + quota
		if end > len(s) {
			end = len(s)
		}
		out = append(out, s[off:end]...)
		offsets[stream] = end
		stream = (stream + 1) % len(streams)
	}

	return out
}

// StreamSplit is the streaming counterpart to Split: it copies src into
// dsts in quota-sized, round-robin stripes, one chunk at a time, so the
// caller never needs the full source held in memory at once. It stops
// cleanly when src is exhausted, leaving streams that missed the final
// partial rotation shorter than the others, exactly as Split does.
func StreamSplit(src io.Reader, dsts []io.Writer, quota int) error {
	buf := make([]byte, quota)
	i := 0
	for {
		n, err := io.ReadFull(src, buf)
		if n > 0 {
			if _, werr := dsts[i].Write(buf[:n]); werr != nil {
				return werr
			}
			i = (i + 1) % len(dsts)
		}
		switch {
		case err == io.EOF || err == io.ErrUnexpectedEOF:
			return nil
		case err != nil:
			return err
		}
	}
}

// StreamMerge is the streaming counterpart to Merge: it reads
// quota-sized, round-robin stripes from srcs and writes the
// reassembled stream to dst, one chunk at a time, until every source
// reports EOF. Each source is expected to end exactly where its
// stripe data ends, which is what StreamSplit's sinks produce.
func StreamMerge(srcs []io.Reader, dst io.Writer, quota int) error {
	buf := make([]byte, quota)
	done := make([]bool, len(srcs))
	remaining := len(srcs)
	i := 0
	for remaining > 0 {
		if !done[i] {
			n, err := io.ReadFull(srcs[i], buf)
			if n > 0 {
				if _, werr := dst.Write(buf[:n]); werr != nil {
					return werr
				}
			}
			switch {
			case err == io.EOF || err == io.ErrUnexpectedEOF:
				done[i] = true
				remaining--
			case err != nil:
				return err
			}
		}
		i = (i + 1) % len(srcs)
	}
	return nil
}
