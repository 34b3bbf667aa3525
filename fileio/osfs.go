package fileio

import (
	"io"
	"os"
)

// OSFileSystem implements FileSystem against the real host filesystem.
// Opening for write truncates, matching the host-artefact contract in the
// spec.
type OSFileSystem struct{}

// OpenRead opens name for reading.
func (OSFileSystem) OpenRead(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

// OpenWrite creates or truncates name for writing.
func (OSFileSystem) OpenWrite(name string) (io.WriteCloser, error) {
	return os.Create(name)
}
