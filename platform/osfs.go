package platform

import (
	"io"
	"os"

	sdkErrors "github.com/horcrux-project/horcrux-go/errors"
)

// OS is the default FileSystem, backed directly by the os package.
type OS struct{}

// NewOS returns an OS-backed FileSystem.
func NewOS() OS {
	return OS{}
}

func (OS) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, sdkErrors.ErrFSReadFailed.Wrap(err)
	}
	return data, nil
}

func (OS) WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return sdkErrors.ErrFSWriteFailed.Wrap(err)
	}
	return nil
}

func (OS) Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, sdkErrors.ErrFSFileOpenFailed.Wrap(err)
	}
	return f, nil
}

func (OS) Create(path string) (io.WriteCloser, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return nil, sdkErrors.ErrFSFileCreateFailed.Wrap(err)
	}
	return f, nil
}

func (OS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (OS) Stat(path string) (Info, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return Info{}, sdkErrors.ErrFSStatFailed.Wrap(err)
	}
	return Info{
		Size:        fi.Size(),
		IsFile:      !fi.IsDir(),
		IsDirectory: fi.IsDir(),
		// os.FileInfo has no portable creation time; ModTime stands in
		// for both fields on platforms without a reliable birth time.
		ModifiedTime: fi.ModTime(),
		CreatedTime:  fi.ModTime(),
	}, nil
}

func (OS) ReadDir(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, sdkErrors.ErrFSReadDirFailed.Wrap(err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}

func (OS) Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return sdkErrors.ErrFSRemoveFailed.Wrap(err)
	}
	return nil
}
