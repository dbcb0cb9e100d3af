package digest

import (
	"hash"

	"github.com/klauspost/cpuid/v2"
	"github.com/minio/crc64nvme"
)

// acceleratedDigest computes the identical function as the reference
// digest using carryless-multiplication folding over wide registers
// (PCLMULQDQ/VPCLMULQDQ on amd64, PMULL on arm64, slicing-by-8
// otherwise). The folding constants are a hard-coded specialization of
// the same variant the reference digest derives from its parameters;
// the per-process self-check and the equivalence tests hold the two
// encodings together.
type acceleratedDigest struct {
	hash      hash.Hash64
	sum       uint64
	finalized bool
}

// NewAccelerated builds a fresh accelerated digest.
func NewAccelerated() *acceleratedDigest {
	return &acceleratedDigest{hash: crc64nvme.New()}
}

func (d *acceleratedDigest) Update(data []byte) {
	if d.finalized {
		return
	}
	// Write never fails; tails shorter than one fold step are handled by
	// the primitive with a correctly sized partial fold.
	d.hash.Write(data)
}

func (d *acceleratedDigest) Finalize() uint64 {
	if !d.finalized {
		d.sum = d.hash.Sum64()
		d.finalized = true
	}
	return d.sum
}

// HasAcceleration reports whether the CPU offers the carryless
// multiplication kernels the folding path dispatches to. Without them
// the accelerated digest still computes the same function through its
// slicing-by-8 fallback.
func HasAcceleration() bool {
	return cpuid.CPU.Supports(cpuid.SSE2, cpuid.CLMUL, cpuid.SSE4) ||
		cpuid.CPU.Supports(cpuid.ASIMD, cpuid.PMULL, cpuid.SHA3)
}
