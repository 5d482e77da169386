package horcrux

import "github.com/horcrux-project/horcrux-go/errors"

const (
	minShareCount = 2
	maxShareCount = 99
)

// Options configures a split operation.
type Options struct {
	// Total is the number of shards to produce, 2 <= Total <= 99.
	Total int

	// Threshold is the number of shards required to reconstruct,
	// 2 <= Threshold <= Total. Threshold == Total selects multiplexed
	// mode; Threshold < Total selects replicated mode.
	Threshold int
}

// Validate checks that o's Total and Threshold are in range and that
// Threshold does not exceed Total.
func (o Options) Validate() error {
	if o.Total < minShareCount || o.Total > maxShareCount {
		return errors.ErrInvalidTotal.Clone()
	}
	if o.Threshold < minShareCount || o.Threshold > maxShareCount {
		return errors.ErrInvalidThreshold.Clone()
	}
	if o.Threshold > o.Total {
		return errors.ErrThresholdExceedsTotal.Clone()
	}
	return nil
}

// multiplexed reports whether this configuration stripes ciphertext
// across shards (threshold == total) rather than replicating it
// fully onto each shard.
func (o Options) multiplexed() bool {
	return o.Threshold == o.Total
}

// BindOptions configures a bind operation.
type BindOptions struct {
	// OutputFilename, if non-empty, overrides the filename recorded
	// in the BindResult; it does not affect where the caller writes
	// the reconstructed bytes.
	OutputFilename string
}
