package fs

import (
	"errors"
	"os"
)

// Checks if a file exists or not.
func Exists(filePath string) (bool, error) {
	_, err := os.Stat(filePath)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Opens a file for reading.
func OpenRead(filePath string) (*os.File, error) {
	return os.Open(filePath)
}
