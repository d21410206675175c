package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Local saves exported reports to a directory on the local filesystem.
type Local struct {
	basePath string
	maxSize  int64 // maximum number of bytes for a saved file
}

// NewLocal creates a Local saver rooted at basePath. maxSize caps the size of
// any saved file.
func NewLocal(basePath string, maxSize int64) (*Local, error) {
	p, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(p, os.ModePerm); err != nil {
		return nil, fmt.Errorf("unable to create export directory: %w", err)
	}

	return &Local{basePath: p, maxSize: maxSize}, nil
}

// Save writes contents under name, replacing any previous export of the same
// name. The write goes through a temporary file so a failed export never
// leaves a truncated report behind.
func (l *Local) Save(name string, contents io.Reader) error {
	fp := filepath.Join(l.basePath, filepath.Base(name))

	tempFile, err := os.CreateTemp(l.basePath, "export-*")
	if err != nil {
		return fmt.Errorf("unable to create temporary file: %w", err)
	}
	tempPath := tempFile.Name()
	defer os.Remove(tempPath)

	written, err := io.Copy(tempFile, io.LimitReader(contents, l.maxSize+1))
	if err != nil {
		tempFile.Close()
		return fmt.Errorf("unable to write export: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("unable to close temporary file: %w", err)
	}

	if written > l.maxSize {
		return fmt.Errorf("export exceeds maximum allowed size of %d bytes", l.maxSize)
	}

	if err := os.Rename(tempPath, fp); err != nil {
		return fmt.Errorf("unable to move export into place: %w", err)
	}

	return nil
}

// Path returns the absolute path a given export name resolves to.
func (l *Local) Path(name string) string {
	return filepath.Join(l.basePath, filepath.Base(name))
}
