package domain

import "math/bits"

// Params describes a single CRC variant in the Rocksoft parameter model.
// Every field is fixed for the lifetime of the process: the value is
// constructed once and handed to whichever digest constructor needs it,
// never mutated and never stored as ambient global state by consumers.
type Params struct {
	// Width is the register size in bits. Only 64 is modeled here.
	Width uint8

	// Poly is the generator polynomial in normal (most significant bit
	// first) representation.
	Poly uint64

	// Init is the register value before any input has been folded in.
	Init uint64

	// RefIn indicates input bytes are processed least significant bit first.
	RefIn bool

	// RefOut indicates the final register is emitted in reflected bit order.
	RefOut bool

	// XorOut is applied to the register as the final step of Finalize.
	XorOut uint64

	// Check is the checksum of the ASCII bytes "123456789" under this
	// variant. It exists solely to self-verify a digest implementation.
	Check uint64

	// Residue is the expected register state after processing a message
	// followed by its own checksum. Carried as descriptor data for
	// implementers validating the algorithm; not used during normal
	// operation.
	Residue uint64
}

// CRC64NVME is the 64-bit CRC variant standardized for the NVMe storage
// protocol. Both digest implementations compute exactly this function:
// the reference digest reads these parameters directly, the accelerated
// digest is a hard-coded specialization of the same variant.
var CRC64NVME = Params{
	Width:   64,
	Poly:    0xAD93D23594C93659,
	Init:    0xFFFFFFFFFFFFFFFF,
	RefIn:   true,
	RefOut:  true,
	XorOut:  0xFFFFFFFFFFFFFFFF,
	Check:   0xae8b14860a799888,
	Residue: 0x0000000000000000,
}

// ReflectedPoly returns the bit-reversed generator polynomial, the form
// used by table generation for reflected (RefIn) variants.
func (p Params) ReflectedPoly() uint64 {
	return bits.Reverse64(p.Poly)
}
