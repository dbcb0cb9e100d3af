package source

import (
	"os"

	"github.com/iamNilotpal/crcsum/pkg/errors"
	"github.com/iamNilotpal/crcsum/pkg/fs"
)

// FileSource presents a file's contents as a byte source.
type FileSource struct {
	file *os.File
	path string
}

// NewFile stats the path before opening so a missing or inaccessible
// file is reported as a source error up front, never as a mid-stream
// read failure.
func NewFile(path string) (*FileSource, error) {
	exists, err := fs.Exists(path)
	if err != nil {
		return nil, errors.NewSourceError(path, err)
	}
	if !exists {
		return nil, errors.NewSourceError(path, os.ErrNotExist)
	}

	file, err := fs.OpenRead(path)
	if err != nil {
		return nil, errors.NewSourceError(path, err)
	}

	return &FileSource{file: file, path: path}, nil
}

func (s *FileSource) Read(p []byte) (int, error) {
	return s.file.Read(p)
}

func (s *FileSource) Name() string {
	return s.path
}

func (s *FileSource) Close() error {
	return s.file.Close()
}
