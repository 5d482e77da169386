package horcrux

import (
	"io"
	"path"
	"strings"
	"time"

	hcipher "github.com/horcrux-project/horcrux-go/cipher"
	"github.com/horcrux-project/horcrux-go/config"
	"github.com/horcrux-project/horcrux-go/demux"
	"github.com/horcrux-project/horcrux-go/errors"
	"github.com/horcrux-project/horcrux-go/platform"
	"github.com/horcrux-project/horcrux-go/security/mem"
	"github.com/horcrux-project/horcrux-go/shamir"
	"github.com/horcrux-project/horcrux-go/shard"
)

// keySize is the AES-256 key length; it must match cipher.KeySize.
const keySize = hcipher.KeySize

// SplitBuffer splits plaintext in memory into opts.Total shards, any
// opts.Threshold of which reconstruct it.
func SplitBuffer(
	plaintext []byte, filename string, opts Options, rng platform.RandomSource,
) (SplitResult, error) {
	if err := opts.Validate(); err != nil {
		return SplitResult{}, err
	}
	if len(plaintext) == 0 {
		return SplitResult{}, errors.ErrEmptySecret.Clone()
	}

	key, err := rng.RandomBytes(keySize)
	if err != nil {
		return SplitResult{}, errors.ErrRandomGenerationFailed.Wrap(err)
	}

	shares, err := shamir.Split(key, opts.Total, opts.Threshold, rng)
	if err != nil {
		return SplitResult{}, err
	}

	ciphertext, err := hcipher.Encrypt(key, plaintext)
	if err != nil {
		return SplitResult{}, err
	}
	mem.ClearBytes(key)

	bodies := shardBodies(ciphertext, opts)

	timestamp := time.Now().UnixMilli()
	baseName := sanitizeFilename(filename)

	shards := make([]shard.Shard, opts.Total)
	totalSize := 0
	for i := 0; i < opts.Total; i++ {
		header := shard.Header{
			OriginalFilename: baseName,
			Timestamp:        timestamp,
			Index:            i + 1,
			Total:            opts.Total,
			Threshold:        opts.Threshold,
			KeyFragment: shard.KeyFragment{
				X: shares[i].X,
				Y: shares[i].Y,
			},
			Version: config.FormatVersionVal(),
		}
		shards[i] = shard.Shard{Header: header, Content: bodies[i]}
		totalSize += len(bodies[i])
	}

	return SplitResult{
		Horcruxes:    shards,
		OriginalSize: len(plaintext),
		TotalSize:    totalSize,
	}, nil
}

// SplitFile streams inputPath's contents through encryption and
// demultiplexing directly into shard files under outputDir: the
// plaintext is read, encrypted, and fanned out a chunk at a time, so
// the full ciphertext is never held in memory alongside the full
// plaintext. Horcruxes in the returned SplitResult carry headers only
// (Content is left empty); Paths holds the written file path for each
// shard, in the same order.
func SplitFile(
	inputPath, outputDir string, opts Options, fs platform.FileSystem, rng platform.RandomSource,
) (SplitResult, error) {
	if err := opts.Validate(); err != nil {
		return SplitResult{}, err
	}

	info, err := fs.Stat(inputPath)
	if err != nil {
		return SplitResult{}, err
	}
	if !info.IsFile {
		return SplitResult{}, errors.ErrNotAFile.Clone()
	}
	if info.Size == 0 {
		return SplitResult{}, errors.ErrEmptySecret.Clone()
	}

	key, err := rng.RandomBytes(keySize)
	if err != nil {
		return SplitResult{}, errors.ErrRandomGenerationFailed.Wrap(err)
	}

	shares, err := shamir.Split(key, opts.Total, opts.Threshold, rng)
	if err != nil {
		return SplitResult{}, err
	}

	src, err := fs.Open(inputPath)
	if err != nil {
		return SplitResult{}, err
	}
	defer src.Close()

	encReader, err := hcipher.StreamReader(key, src)
	if err != nil {
		return SplitResult{}, err
	}
	mem.ClearBytes(key)

	timestamp := time.Now().UnixMilli()
	baseName := sanitizeFilename(path.Base(inputPath))

	shards := make([]shard.Shard, opts.Total)
	paths := make([]string, opts.Total)
	sinks := make([]io.WriteCloser, 0, opts.Total)
	counters := make([]*countingWriter, opts.Total)
	defer func() { closeAll(sinks) }()

	for i := 0; i < opts.Total; i++ {
		header := shard.Header{
			OriginalFilename: baseName,
			Timestamp:        timestamp,
			Index:            i + 1,
			Total:            opts.Total,
			Threshold:        opts.Threshold,
			KeyFragment: shard.KeyFragment{
				X: shares[i].X,
				Y: shares[i].Y,
			},
			Version: config.FormatVersionVal(),
		}
		shards[i] = shard.Shard{Header: header}
		paths[i] = path.Join(outputDir, shard.Filename(header))

		prefix, err := shard.SerializeHeader(header)
		if err != nil {
			return SplitResult{}, err
		}

		sink, err := fs.Create(paths[i])
		if err != nil {
			return SplitResult{}, err
		}
		sinks = append(sinks, sink)

		if _, err := sink.Write(prefix); err != nil {
			return SplitResult{}, errors.ErrFSWriteFailed.Wrap(err)
		}

		counters[i] = &countingWriter{w: sink}
	}

	writers := make([]io.Writer, len(counters))
	for i, c := range counters {
		writers[i] = c
	}

	if opts.multiplexed() {
		if err := demux.StreamSplit(encReader, writers, config.DemuxQuotaVal()); err != nil {
			return SplitResult{}, errors.ErrFSWriteFailed.Wrap(err)
		}
	} else if _, err := io.Copy(io.MultiWriter(writers...), encReader); err != nil {
		return SplitResult{}, errors.ErrFSWriteFailed.Wrap(err)
	}

	totalSize := 0
	for _, c := range counters {
		totalSize += int(c.n)
	}

	return SplitResult{
		Horcruxes:    shards,
		Paths:        paths,
		OriginalSize: int(info.Size),
		TotalSize:    totalSize,
	}, nil
}

// countingWriter wraps a writer to track the number of bytes that have
// passed through it, used to report per-shard sizes without buffering
// shard content in memory.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// closeAll closes every writer in ws, ignoring nil entries. SplitFile
// defers it so every opened shard sink is closed on return, including
// when a later step fails partway through.
func closeAll(ws []io.WriteCloser) {
	for _, w := range ws {
		if w != nil {
			w.Close()
		}
	}
}

// SaveShards writes each shard in horcruxes to outputDir using the
// conventional shard filename, returning the written paths in the
// same order. It is the buffer-oriented counterpart to SplitFile,
// for callers that already hold shard content in memory (e.g. via
// SplitBuffer) and want it persisted.
func SaveShards(horcruxes []shard.Shard, outputDir string, fs platform.FileSystem) ([]string, error) {
	paths := make([]string, len(horcruxes))
	for i, s := range horcruxes {
		data, err := shard.Serialize(s)
		if err != nil {
			return nil, err
		}
		p := path.Join(outputDir, shard.Filename(s.Header))
		if err := fs.WriteFile(p, data); err != nil {
			return nil, err
		}
		paths[i] = p
	}
	return paths, nil
}

// shardBodies computes each shard's content: the full ciphertext in
// replicated mode, or its round-robin stripe in multiplexed mode.
func shardBodies(ciphertext []byte, opts Options) [][]byte {
	if opts.multiplexed() {
		return demux.Split(ciphertext, opts.Total, config.DemuxQuotaVal())
	}

	bodies := make([][]byte, opts.Total)
	for i := range bodies {
		bodies[i] = ciphertext
	}
	return bodies
}

// sanitizeFilename strips any path separators, recording only the
// bare filename at split time.
func sanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	return path.Base(filename)
}
