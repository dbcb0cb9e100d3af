package source

import (
	"github.com/klauspost/compress/zstd"

	"github.com/iamNilotpal/crcsum/internal/core/ports"
	"github.com/iamNilotpal/crcsum/pkg/errors"
)

// ZstdSource transparently decompresses a wrapped source, so the
// checksum of a compressed file covers its content rather than the
// compressed frames. Decompression is streamed; the bounded-memory
// property of the chunked consumer is preserved.
type ZstdSource struct {
	inner   ports.ByteSource
	decoder *zstd.Decoder
}

func NewZstd(inner ports.ByteSource) (*ZstdSource, error) {
	decoder, err := zstd.NewReader(inner, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, errors.NewSourceError(inner.Name(), err)
	}
	return &ZstdSource{inner: inner, decoder: decoder}, nil
}

func (s *ZstdSource) Read(p []byte) (int, error) {
	return s.decoder.Read(p)
}

func (s *ZstdSource) Name() string {
	return s.inner.Name()
}

func (s *ZstdSource) Close() error {
	s.decoder.Close()
	return s.inner.Close()
}
