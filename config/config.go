// Package config provides environment-variable driven configuration
// for the small set of ambient knobs Horcrux exposes. Almost every
// parameter in this system (total, threshold, output filename) is a
// per-call argument rather than global configuration; this package
// only covers the handful of values that are legitimately operational
// tuning rather than split/bind semantics.
package config

import (
	"os"
	"strconv"
)

// DefaultDemuxQuota is the number of bytes the demultiplexer writes to
// one sink before rotating to the next.
const DefaultDemuxQuota = 100

// DefaultFormatVersion is the shard header version written by new
// splits.
const DefaultFormatVersion = 1

const demuxQuotaEnvVar = "HORCRUX_DEMUX_QUOTA"
const formatVersionEnvVar = "HORCRUX_FORMAT_VERSION"

// DemuxQuotaVal returns the configured demultiplexer stripe size, read
// from HORCRUX_DEMUX_QUOTA. Falls back to DefaultDemuxQuota if unset,
// empty, non-numeric, or less than 1.
func DemuxQuotaVal() int {
	v := os.Getenv(demuxQuotaEnvVar)
	if v == "" {
		return DefaultDemuxQuota
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return DefaultDemuxQuota
	}
	return n
}

// FormatVersionVal returns the shard header version to stamp on newly
// created shards, read from HORCRUX_FORMAT_VERSION. Falls back to
// DefaultFormatVersion if unset, empty, or non-numeric.
func FormatVersionVal() int {
	v := os.Getenv(formatVersionEnvVar)
	if v == "" {
		return DefaultFormatVersion
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return DefaultFormatVersion
	}
	return n
}
