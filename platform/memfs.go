package platform

import (
	"bytes"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	sdkErrors "github.com/horcrux-project/horcrux-go/errors"
)

// MemFS is an in-memory FileSystem, used by tests that exercise the
// split/bind engine without touching the real filesystem.
type MemFS struct {
	mu    sync.Mutex
	files map[string][]byte
	now   time.Time
}

// NewMemFS returns an empty in-memory filesystem.
func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte), now: time.Now()}
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.files[path]
	if !ok {
		return nil, sdkErrors.ErrFSReadFailed.Clone()
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *MemFS) WriteFile(path string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := make([]byte, len(data))
	copy(cp, data)
	m.files[path] = cp
	return nil
}

func (m *MemFS) Open(path string) (io.ReadCloser, error) {
	data, err := m.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *MemFS) Create(path string) (io.WriteCloser, error) {
	return &memWriteCloser{fs: m, path: path}, nil
}

func (m *MemFS) Exists(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.files[path]
	return ok
}

func (m *MemFS) Stat(path string) (Info, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.files[path]
	if !ok {
		return Info{}, sdkErrors.ErrFSStatFailed.Clone()
	}
	return Info{
		Size:         int64(len(data)),
		IsFile:       true,
		ModifiedTime: m.now,
		CreatedTime:  m.now,
	}, nil
}

func (m *MemFS) ReadDir(path string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	prefix := strings.TrimSuffix(path, "/") + "/"
	seen := make(map[string]bool)
	var names []string
	for p := range m.files {
		if !strings.HasPrefix(p, prefix) {
			continue
		}
		rest := strings.TrimPrefix(p, prefix)
		if rest == "" || strings.Contains(rest, "/") {
			continue
		}
		if !seen[rest] {
			seen[rest] = true
			names = append(names, rest)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (m *MemFS) Remove(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.files[path]; !ok {
		return sdkErrors.ErrFSRemoveFailed.Clone()
	}
	delete(m.files, path)
	return nil
}

type memWriteCloser struct {
	fs   *MemFS
	path string
	buf  bytes.Buffer
}

func (w *memWriteCloser) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *memWriteCloser) Close() error {
	return w.fs.WriteFile(w.path, w.buf.Bytes())
}

// DeterministicRandomSource produces a reproducible pseudo-random byte
// stream derived from a seed, for tests that need stable Shamir
// x-coordinates or AES keys across runs.
type DeterministicRandomSource struct {
	mu    sync.Mutex
	state uint64
}

// NewDeterministicRandomSource returns a RandomSource seeded from seed.
// The same seed always produces the same byte stream.
func NewDeterministicRandomSource(seed uint64) *DeterministicRandomSource {
	return &DeterministicRandomSource{state: seed + 0x9E3779B97F4A7C15}
}

func (d *DeterministicRandomSource) RandomBytes(n int) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]byte, n)
	for i := range out {
		// SplitMix64: full-period, well-distributed across all 256
		// byte values, deterministic and sufficient for exercising
		// split/bind logic in tests — never used for production
		// randomness.
		d.state += 0x9E3779B97F4A7C15
		z := d.state
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		z = z ^ (z >> 31)
		out[i] = byte(z)
	}
	return out, nil
}
