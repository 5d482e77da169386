package horcrux

import (
	"bufio"
	"io"
	"sort"

	hcipher "github.com/horcrux-project/horcrux-go/cipher"
	"github.com/horcrux-project/horcrux-go/config"
	"github.com/horcrux-project/horcrux-go/demux"
	"github.com/horcrux-project/horcrux-go/errors"
	"github.com/horcrux-project/horcrux-go/platform"
	"github.com/horcrux-project/horcrux-go/security/mem"
	"github.com/horcrux-project/horcrux-go/shamir"
	"github.com/horcrux-project/horcrux-go/shard"
)

// BindHorcruxes validates shards, reconstructs the key from the first
// threshold shards, and decrypts the ciphertext back to the original
// plaintext.
func BindHorcruxes(shards []shard.Shard, opts BindOptions) (BindResult, error) {
	if err := validateSet(shards); err != nil {
		return BindResult{}, err
	}

	threshold := shards[0].Header.Threshold
	if len(shards) < threshold {
		return BindResult{}, insufficientSharesError(len(shards), threshold)
	}

	selected := shards[:threshold]

	shares := make([]shamir.Share, len(selected))
	for i, s := range selected {
		shares[i] = shamir.Share{X: s.Header.KeyFragment.X, Y: s.Header.KeyFragment.Y}
	}
	key, err := shamir.Combine(shares)
	if err != nil {
		return BindResult{}, err
	}

	ciphertext := reassembleCiphertext(selected)

	plaintext, err := hcipher.Decrypt(key, ciphertext)
	if err != nil {
		return BindResult{}, err
	}
	mem.ClearBytes(key)

	filename := shards[0].Header.OriginalFilename
	if opts.OutputFilename != "" {
		filename = opts.OutputFilename
	}

	return BindResult{
		Data:          plaintext,
		Filename:      filename,
		HorcruxesUsed: threshold,
	}, nil
}

// BindFiles streams each shard in paths, demultiplexes and decrypts
// directly into outPath, and never holds the full ciphertext in memory
// alongside the full plaintext: content flows from the shard sources,
// through the demux/decrypt stages, straight to the output file.
// BindResult.Data is left empty; the reconstructed bytes live only in
// outPath.
func BindFiles(
	paths []string, outPath string, opts BindOptions, fs platform.FileSystem,
) (BindResult, error) {
	if len(paths) == 0 {
		return BindResult{}, errors.ErrNoShards.Clone()
	}

	sources := make([]io.ReadCloser, 0, len(paths))
	defer func() { closeReaders(sources) }()

	headers := make([]shard.Header, len(paths))
	bodies := make([]io.Reader, len(paths))
	for i, p := range paths {
		f, err := fs.Open(p)
		if err != nil {
			return BindResult{}, err
		}
		sources = append(sources, f)

		br := bufio.NewReader(f)
		h, err := shard.ParseHeaderStream(br)
		if err != nil {
			return BindResult{}, err
		}
		headers[i] = h
		bodies[i] = br
	}

	if err := validateHeaderSet(headers); err != nil {
		return BindResult{}, err
	}

	threshold := headers[0].Threshold
	if len(headers) < threshold {
		return BindResult{}, insufficientSharesError(len(headers), threshold)
	}

	selectedHeaders := headers[:threshold]
	selectedBodies := bodies[:threshold]

	shares := make([]shamir.Share, threshold)
	for i, h := range selectedHeaders {
		shares[i] = shamir.Share{X: h.KeyFragment.X, Y: h.KeyFragment.Y}
	}
	key, err := shamir.Combine(shares)
	if err != nil {
		return BindResult{}, err
	}

	out, err := fs.Create(outPath)
	if err != nil {
		return BindResult{}, err
	}
	defer out.Close()

	decWriter, err := hcipher.StreamWriter(key, out)
	if err != nil {
		return BindResult{}, err
	}
	mem.ClearBytes(key)

	if selectedHeaders[0].Threshold == selectedHeaders[0].Total {
		ordered := orderByIndex(selectedHeaders, selectedBodies)
		if err := demux.StreamMerge(ordered, decWriter, config.DemuxQuotaVal()); err != nil {
			return BindResult{}, errors.ErrFSReadFailed.Wrap(err)
		}
	} else if _, err := io.Copy(decWriter, selectedBodies[0]); err != nil {
		return BindResult{}, errors.ErrFSReadFailed.Wrap(err)
	}

	filename := headers[0].OriginalFilename
	if opts.OutputFilename != "" {
		filename = opts.OutputFilename
	}

	return BindResult{
		Filename:      filename,
		HorcruxesUsed: threshold,
	}, nil
}

// orderByIndex sorts bodies into header-index order, matching the
// rotation reassembleCiphertext (and StreamSplit) used to write them.
func orderByIndex(headers []shard.Header, bodies []io.Reader) []io.Reader {
	type pair struct {
		index int
		body  io.Reader
	}
	pairs := make([]pair, len(headers))
	for i := range headers {
		pairs[i] = pair{index: headers[i].Index, body: bodies[i]}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].index < pairs[j].index })

	ordered := make([]io.Reader, len(pairs))
	for i, p := range pairs {
		ordered[i] = p.body
	}
	return ordered
}

// closeReaders closes every reader in rs, ignoring nil entries.
// BindFiles defers it so every opened shard source is closed on
// return, including when a later step fails partway through.
func closeReaders(rs []io.ReadCloser) {
	for _, r := range rs {
		if r != nil {
			r.Close()
		}
	}
}

// reassembleCiphertext reconstructs the ciphertext from the selected
// shards: in multiplexed mode (threshold == total) it sorts by index
// and merges the round-robin stripes, otherwise any single shard
// already carries the full ciphertext.
func reassembleCiphertext(selected []shard.Shard) []byte {
	h := selected[0].Header
	if h.Threshold != h.Total {
		return selected[0].Content
	}

	sorted := make([]shard.Shard, len(selected))
	copy(sorted, selected)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Header.Index < sorted[j].Header.Index
	})

	streams := make([][]byte, len(sorted))
	totalLen := 0
	for i, s := range sorted {
		streams[i] = s.Content
		totalLen += len(s.Content)
	}

	return demux.Merge(streams, config.DemuxQuotaVal(), totalLen)
}
