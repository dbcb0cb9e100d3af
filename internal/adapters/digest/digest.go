package digest

import (
	"fmt"
	"sync"

	"github.com/iamNilotpal/crcsum/internal/core/domain"
	"github.com/iamNilotpal/crcsum/internal/core/ports"
)

const (
	// Accelerated folds input with carryless multiplication over wide
	// registers. Production default.
	Accelerated domain.DigestKind = "accelerated"

	// Reference computes the variant by table-driven polynomial division,
	// directly from the algorithm parameters. Exists to validate the
	// accelerated strategy.
	Reference domain.DigestKind = "reference"
)

// checkInput is the standard 9-byte self-test message whose checksum
// every correct implementation of the variant must reproduce.
var checkInput = []byte("123456789")

var (
	selfCheckOnce sync.Once
	selfCheckErr  error
)

// New constructs a fresh single-use digest of the given kind. An empty
// kind selects the accelerated strategy. The first call in a process
// verifies both strategies against the variant's check value, so a
// miscompiled or misderived implementation fails loudly instead of
// producing wrong checksums.
func New(kind domain.DigestKind, params domain.Params) (ports.Digest, error) {
	if err := selfCheck(params); err != nil {
		return nil, err
	}

	switch kind {
	case Reference:
		return NewReference(params), nil
	case Accelerated, "":
		return NewAccelerated(), nil
	default:
		return nil, fmt.Errorf("unsupported digest kind: %s", kind)
	}
}

func Validate(kind domain.DigestKind) error {
	switch kind {
	case Accelerated, Reference, "":
		return nil
	default:
		return fmt.Errorf("unsupported digest kind: %s", kind)
	}
}

func selfCheck(params domain.Params) error {
	selfCheckOnce.Do(func() {
		impls := map[domain.DigestKind]ports.Digest{
			Reference:   NewReference(params),
			Accelerated: NewAccelerated(),
		}
		for kind, d := range impls {
			d.Update(checkInput)
			if sum := d.Finalize(); sum != params.Check {
				selfCheckErr = fmt.Errorf(
					"%s digest self-test failed: got %#016x, want %#016x", kind, sum, params.Check,
				)
				return
			}
		}
	})
	return selfCheckErr
}
