package horcrux

import (
	"fmt"

	"github.com/horcrux-project/horcrux-go/errors"
	"github.com/horcrux-project/horcrux-go/shard"
)

// validateSet checks that every shard in shards agrees with the first
// on originalFilename, timestamp, total, and threshold, and that no
// two shards share an index. An empty slice is rejected with
// ErrNoShards.
func validateSet(shards []shard.Shard) error {
	headers := make([]shard.Header, len(shards))
	for i, s := range shards {
		headers[i] = s.Header
	}
	return validateHeaderSet(headers)
}

// validateHeaderSet is validateSet's header-only form, for callers
// (the streaming file pipeline) that parse shard headers before their
// content has been read.
func validateHeaderSet(headers []shard.Header) error {
	if len(headers) == 0 {
		return errors.ErrNoShards.Clone()
	}

	first := headers[0]
	seenIndex := make(map[int]bool, len(headers))
	seenIndex[first.Index] = true

	for _, h := range headers[1:] {
		switch {
		case h.OriginalFilename != first.OriginalFilename:
			return errors.ErrDifferentFiles.Clone()
		case h.Timestamp != first.Timestamp:
			return errors.ErrDifferentSplitRuns.Clone()
		case h.Total != first.Total:
			return errors.ErrInconsistentTotal.Clone()
		case h.Threshold != first.Threshold:
			return errors.ErrInconsistentThreshold.Clone()
		case seenIndex[h.Index]:
			return errors.ErrDuplicateIndex.Clone()
		}
		seenIndex[h.Index] = true
	}

	return nil
}

// insufficientSharesError builds the InsufficientShards error carrying
// how many shards were supplied versus how many are needed.
func insufficientSharesError(have, need int) error {
	err := errors.ErrInsufficientShards.Clone()
	err.Msg = fmt.Sprintf("have %d shards, need %d", have, need)
	return err
}
