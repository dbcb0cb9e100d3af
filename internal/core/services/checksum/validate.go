package checksum

import (
	"fmt"

	"github.com/iamNilotpal/crcsum/internal/adapters/digest"
	"github.com/iamNilotpal/crcsum/internal/core/domain"
	"github.com/iamNilotpal/crcsum/pkg/errors"
)

func Validate(opts *domain.ChecksumOptions) error {
	if opts.ChunkSize < 0 {
		return errors.NewValidationError(
			"chunkSize", opts.ChunkSize, fmt.Errorf("chunk size must be greater than 0"),
		)
	}

	if err := digest.Validate(opts.Kind); err != nil {
		return errors.NewValidationError("kind", opts.Kind, err)
	}

	return nil
}
