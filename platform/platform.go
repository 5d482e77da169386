// Package platform defines the capability boundary the split/bind
// engine depends on instead of importing os or crypto/rand directly:
// a FileSystem for reading/writing named byte streams, and a
// RandomSource for cryptographically secure randomness. Concrete
// adapters (OS, CSPRNG) are thin bridging code; callers may substitute
// their own for testing or for hosts where os/crypto/rand don't apply.
package platform

import (
	"io"
	"time"
)

// Info describes a filesystem entry, mirroring what the engine needs
// from a stat call.
type Info struct {
	Size         int64
	IsFile       bool
	IsDirectory  bool
	ModifiedTime time.Time
	CreatedTime  time.Time
}

// FileSystem is the platform boundary for byte-stream storage. Paths
// are opaque strings interpreted by the host implementation.
type FileSystem interface {
	// ReadFile reads the entire contents of path.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to path, creating or truncating it.
	WriteFile(path string, data []byte) error

	// Open returns a readable stream over path's contents.
	Open(path string) (io.ReadCloser, error)

	// Create returns a writable stream that creates or truncates path.
	Create(path string) (io.WriteCloser, error)

	// Exists reports whether path refers to an existing entry.
	Exists(path string) bool

	// Stat returns metadata about path.
	Stat(path string) (Info, error)

	// ReadDir lists the entry names directly inside path.
	ReadDir(path string) ([]string, error)

	// Remove deletes the entry at path.
	Remove(path string) error
}

// RandomSource is the platform boundary for cryptographically secure
// randomness.
type RandomSource interface {
	// RandomBytes returns n cryptographically secure random bytes.
	RandomBytes(n int) ([]byte, error)
}
