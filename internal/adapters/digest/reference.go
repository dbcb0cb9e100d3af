package digest

import (
	"github.com/iamNilotpal/crcsum/internal/core/domain"
)

// referenceDigest implements the variant by straightforward polynomial
// division over the reflected bit order, one byte at a time against a
// 256-entry table derived from the parameters. Canonical and
// unambiguous; heavier per byte than the accelerated strategy.
type referenceDigest struct {
	crc       uint64
	xorOut    uint64
	table     *[256]uint64
	sum       uint64
	finalized bool
}

// NewReference builds a fresh reference digest from the algorithm
// parameters. Changing any parameter changes the checksum it produces.
func NewReference(params domain.Params) *referenceDigest {
	return &referenceDigest{
		crc:    params.Init,
		xorOut: params.XorOut,
		table:  makeTable(params.ReflectedPoly()),
	}
}

// makeTable precomputes the register transition for every possible
// leading byte under the reflected polynomial.
func makeTable(poly uint64) *[256]uint64 {
	t := new([256]uint64)
	for i := 0; i < 256; i++ {
		crc := uint64(i)
		for j := 0; j < 8; j++ {
			if crc&1 == 1 {
				crc = (crc >> 1) ^ poly
			} else {
				crc >>= 1
			}
		}
		t[i] = crc
	}
	return t
}

func (d *referenceDigest) Update(data []byte) {
	if d.finalized {
		return
	}
	crc := d.crc
	for _, v := range data {
		crc = d.table[byte(crc)^v] ^ (crc >> 8)
	}
	d.crc = crc
}

func (d *referenceDigest) Finalize() uint64 {
	if !d.finalized {
		d.sum = d.crc ^ d.xorOut
		d.finalized = true
	}
	return d.sum
}
