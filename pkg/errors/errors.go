package errors

import (
	"errors"
	"fmt"

	"github.com/iamNilotpal/crcsum/internal/core/domain"
)

// ChecksumError describes a failed checksum invocation. Every category
// is terminal: nothing is retried internally and no partial result
// survives the error.
type ChecksumError struct {
	Err      error
	Path     string
	Category domain.ErrorCategory
}

func (e *ChecksumError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("[%v] %s: %v", e.Category, e.Path, e.Err)
	}
	return fmt.Sprintf("[%v] %v", e.Category, e.Err)
}

func (e *ChecksumError) Unwrap() error {
	return e.Err
}

// NewUsageError reports a malformed invocation.
func NewUsageError(err error) *ChecksumError {
	return &ChecksumError{Err: err, Category: domain.ErrorUsage}
}

// NewSourceError reports a byte source that could not be opened,
// carrying the offending path.
func NewSourceError(path string, err error) *ChecksumError {
	return &ChecksumError{Err: err, Path: path, Category: domain.ErrorSource}
}

// NewReadError reports an I/O failure mid-stream, carrying the offending
// path and the underlying cause.
func NewReadError(path string, err error) *ChecksumError {
	return &ChecksumError{Err: err, Path: path, Category: domain.ErrorRead}
}

// IsChecksumError checks if a given error is of type ChecksumError.
func IsChecksumError(err error) bool {
	var ce *ChecksumError
	return errors.As(err, &ce)
}

// AsChecksumError attempts to extract a ChecksumError from a given error.
func AsChecksumError(err error) *ChecksumError {
	var ce *ChecksumError
	if errors.As(err, &ce) {
		return ce
	}
	return nil
}

// Category returns the error's category, or zero if err is not a
// ChecksumError.
func Category(err error) domain.ErrorCategory {
	if ce := AsChecksumError(err); ce != nil {
		return ce.Category
	}
	return 0
}
