package checksum

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/iamNilotpal/crcsum/internal/adapters/digest"
	"github.com/iamNilotpal/crcsum/internal/adapters/source"
	"github.com/iamNilotpal/crcsum/internal/core/domain"
	"github.com/iamNilotpal/crcsum/internal/core/ports"
	"github.com/iamNilotpal/crcsum/pkg/errors"
	"github.com/iamNilotpal/crcsum/pkg/pool"
)

// Service drives a digest to completion over byte sources of unbounded
// size while bounding peak memory to one reusable segment buffer. The
// computation is strictly sequential: read a segment, fold it in,
// read the next. Each computation owns a fresh digest exclusively for
// its lifetime, so independent computations never share state.
type Service struct {
	options *domain.ChecksumOptions // Configuration controlling digest kind and segmentation
	params  domain.Params           // The CRC variant every computation encodes
	pool    *pool.SegmentPool       // Reusable segment buffers, one per in-flight computation
	logger  *zap.SugaredLogger
}

func New(opts *domain.ChecksumOptions, logger *zap.SugaredLogger) (*Service, error) {
	if opts != nil {
		if err := Validate(opts); err != nil {
			return nil, err
		}
		opts = prepareDefaults(opts)
	} else {
		opts = prepareDefaults(&domain.ChecksumOptions{})
	}

	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &Service{
		options: opts,
		params:  domain.CRC64NVME,
		pool:    pool.NewSegmentPool(opts.ChunkSize),
		logger:  logger,
	}, nil
}

// Sum consumes the source to exhaustion and returns the 64-bit
// checksum. Segments are folded in the order they are read; a short
// read is passed through unchanged, never padded. The first read error
// terminates the computation and discards any partial state.
func (s *Service) Sum(ctx context.Context, src ports.ByteSource) (uint64, error) {
	d, err := digest.New(s.options.Kind, s.params)
	if err != nil {
		return 0, err
	}

	buf := s.pool.Get()
	defer s.pool.Put(buf)

	var segments, total int64
	for {
		if err := ctx.Err(); err != nil {
			return 0, errors.NewReadError(src.Name(), err)
		}

		n, err := src.Read(buf)
		if n > 0 {
			d.Update(buf[:n])
			segments++
			total += int64(n)
		}

		if err == io.EOF {
			sum := d.Finalize()
			s.logger.Debugw(
				"source consumed",
				"source", src.Name(), "segments", segments, "bytes", total, "kind", s.options.Kind,
			)
			return sum, nil
		}
		if err != nil {
			return 0, errors.NewReadError(src.Name(), err)
		}
	}
}

// SumFile checksums the contents of the file at path, decompressing
// first when the service was configured for zstd input.
func (s *Service) SumFile(ctx context.Context, path string) (uint64, error) {
	var src ports.ByteSource

	src, err := source.NewFile(path)
	if err != nil {
		return 0, err
	}

	if s.options.Zstd {
		zsrc, err := source.NewZstd(src)
		if err != nil {
			src.Close()
			return 0, err
		}
		src = zsrc
	}
	defer src.Close()

	return s.Sum(ctx, src)
}

// SumString checksums the byte representation of text.
func (s *Service) SumString(ctx context.Context, text string) (uint64, error) {
	src := source.NewString(text)
	defer src.Close()
	return s.Sum(ctx, src)
}

// Kind reports which digest strategy the service computes with.
func (s *Service) Kind() domain.DigestKind {
	return s.options.Kind
}
