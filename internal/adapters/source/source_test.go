package source

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamNilotpal/crcsum/internal/core/domain"
	"github.com/iamNilotpal/crcsum/pkg/errors"
)

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	src, err := NewFile(path)
	require.NoError(t, err)
	defer src.Close()

	assert.Equal(t, path, src.Name())

	contents, err := io.ReadAll(src)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), contents)
}

func TestFileSourceNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing")

	_, err := NewFile(path)
	require.Error(t, err)

	ce := errors.AsChecksumError(err)
	require.NotNil(t, ce)
	assert.Equal(t, domain.ErrorSource, ce.Category)
	assert.Equal(t, path, ce.Path)
}

func TestStringSource(t *testing.T) {
	src := NewString("123456789")
	defer src.Close()

	contents, err := io.ReadAll(src)
	require.NoError(t, err)
	assert.Equal(t, []byte("123456789"), contents)

	// Consumed once: a second read reports exhaustion.
	n, err := src.Read(make([]byte, 1))
	assert.Zero(t, n)
	assert.Equal(t, io.EOF, err)
}

func TestZstdSource(t *testing.T) {
	encoder, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	compressed := encoder.EncodeAll([]byte("compressed payload"), nil)
	require.NoError(t, encoder.Close())

	path := filepath.Join(t.TempDir(), "data.zst")
	require.NoError(t, os.WriteFile(path, compressed, 0o644))

	file, err := NewFile(path)
	require.NoError(t, err)

	src, err := NewZstd(file)
	require.NoError(t, err)
	defer src.Close()

	assert.Equal(t, path, src.Name())

	contents, err := io.ReadAll(src)
	require.NoError(t, err)
	assert.Equal(t, []byte("compressed payload"), contents)
}
