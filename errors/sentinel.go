package errors

//
// General
//

var ErrGeneralFailure = register("gen_general_failure", "general failure")

//
// Configuration
//

var ErrInvalidTotal = register("config_invalid_total", "total must be an integer in [2,99]")
var ErrInvalidThreshold = register("config_invalid_threshold", "threshold must be an integer in [2,99]")
var ErrThresholdExceedsTotal = register("config_threshold_exceeds_total", "threshold cannot exceed total")

//
// Input
//

var ErrNotAFile = register("input_not_a_file", "path does not refer to a regular file")
var ErrEmptySecret = register("input_empty_secret", "secret/plaintext must not be empty")

//
// Shard container format
//

var ErrMissingHeaderMarker = register("format_missing_header_marker", "shard is missing the header marker")
var ErrMissingBodyMarker = register("format_missing_body_marker", "shard is missing the body marker")
var ErrMalformedHeader = register("format_malformed_header", "shard header is malformed or missing a required field")
var ErrUnsupportedVersion = register("format_unsupported_version", "shard header version is not supported")

//
// Shard set validation
//

var ErrNoShards = register("set_no_shards", "no shards were provided")
var ErrDifferentFiles = register("set_different_files", "shards originate from different files")
var ErrDifferentSplitRuns = register("set_different_split_runs", "shards originate from different split runs")
var ErrInconsistentTotal = register("set_inconsistent_total", "shards disagree on total shard count")
var ErrInconsistentThreshold = register("set_inconsistent_threshold", "shards disagree on threshold")
var ErrDuplicateIndex = register("set_duplicate_index", "two or more shards share the same index")
var ErrAmbiguousShardSets = register("set_ambiguous_shard_sets", "directory contains more than one distinct shard set")
var ErrInsufficientShards = register("set_insufficient_shards", "not enough shards were provided to meet the threshold")

//
// Cryptographic
//

var ErrInvalidKeyLength = register("crypto_invalid_key_length", "key must be exactly 32 bytes")
var ErrDivisionByZero = register("crypto_division_by_zero", "division by zero in GF(2^8) arithmetic, shares collide on x")
var ErrEmptyShares = register("crypto_empty_shares", "no key shares were provided")
var ErrShareLengthMismatch = register("crypto_share_length_mismatch", "key shares have inconsistent y-value lengths")

//
// Filesystem / platform boundary
//

var ErrFSFileOpenFailed = register("fs_file_open_failed", "failed to open file")
var ErrFSFileCreateFailed = register("fs_file_create_failed", "failed to create file")
var ErrFSReadFailed = register("fs_read_failed", "failed to read from filesystem")
var ErrFSWriteFailed = register("fs_write_failed", "failed to write to filesystem")
var ErrFSStatFailed = register("fs_stat_failed", "failed to stat path")
var ErrFSReadDirFailed = register("fs_read_dir_failed", "failed to list directory")
var ErrFSRemoveFailed = register("fs_remove_failed", "failed to remove path")

//
// CSPRNG
//

var ErrRandomGenerationFailed = register("crypto_random_generation_failed", "failed to generate random bytes")
