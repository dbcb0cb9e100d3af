package checksum

import (
	"github.com/iamNilotpal/crcsum/internal/adapters/digest"
	"github.com/iamNilotpal/crcsum/internal/core/domain"
)

// DefaultChunkSize is the maximum bytes read from a source per segment.
// Large enough to amortize per-call overhead, small enough to keep the
// transient working set reasonable. Not a correctness parameter: any
// positive size yields the identical checksum.
const DefaultChunkSize = 100 * 1024 * 1024 // 100MB

func prepareDefaults(opts *domain.ChecksumOptions) *domain.ChecksumOptions {
	if opts.ChunkSize == 0 {
		opts.ChunkSize = DefaultChunkSize
	}
	if opts.Kind == "" {
		opts.Kind = digest.Accelerated
	}
	return opts
}
