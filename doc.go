// Package horcrux splits a file into N encrypted shards such that any
// K of them reconstruct the original without a password, and binds a
// sufficient set of shards back into the original bytes.
//
// A 32-byte key is generated per split and divided via Shamir's Secret
// Sharing (package shamir) into N shares, one per shard. The plaintext
// is encrypted with AES-256-OFB (package cipher) under that key. When
// threshold equals total every shard must be present to reconstruct,
// so the ciphertext is striped round-robin across shards (package
// demux); otherwise every shard carries the full ciphertext and any
// threshold of them suffices. Each shard is serialized as a header
// plus body (package shard) and can be written to or read from a
// platform.FileSystem.
package horcrux
