package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/iamNilotpal/crcsum/internal/core/domain"
	"github.com/iamNilotpal/crcsum/pkg/errors"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := New(zap.NewNop().Sugar())
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	// An explicit empty slice keeps cobra from falling back to os.Args.
	cmd.SetArgs(append([]string{}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestStringMode(t *testing.T) {
	// Decimal representation of the variant's check value.
	const want = "12577168950296156296\n"

	out, err := run(t, "--string", "123456789")
	require.NoError(t, err)
	assert.Equal(t, want, out)

	// The reference digest must print the identical number.
	out, err = run(t, "--string", "123456789", "--validate-slow")
	require.NoError(t, err)
	assert.Equal(t, want, out)
}

func TestFileMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input")
	require.NoError(t, os.WriteFile(path, []byte("123456789"), 0o644))

	out, err := run(t, "--file", path)
	require.NoError(t, err)
	assert.Equal(t, "12577168950296156296\n", out)
}

func TestChunkSizeOverride(t *testing.T) {
	out, err := run(t, "--string", "123456789", "--chunk-size", "2")
	require.NoError(t, err)
	assert.Equal(t, "12577168950296156296\n", out)
}

func TestMissingMode(t *testing.T) {
	out, err := run(t)
	require.Error(t, err)
	assert.Equal(t, domain.ErrorUsage, errors.Category(err))
	assert.Contains(t, out, "Usage")
}

func TestConflictingModes(t *testing.T) {
	_, err := run(t, "--file", "/tmp/x", "--string", "y")
	require.Error(t, err)
	assert.Equal(t, domain.ErrorUsage, errors.Category(err))
}

func TestUnknownFlag(t *testing.T) {
	out, err := run(t, "--mode", "file")
	require.Error(t, err)
	assert.Equal(t, domain.ErrorUsage, errors.Category(err))
	assert.Contains(t, out, "Usage")
}

func TestFileNotFound(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	out, err := run(t, "--file", missing)
	require.Error(t, err)

	ce := errors.AsChecksumError(err)
	require.NotNil(t, ce)
	assert.Equal(t, domain.ErrorSource, ce.Category)
	assert.Equal(t, missing, ce.Path)

	// No checksum reaches stdout on failure.
	assert.Empty(t, out)
}
