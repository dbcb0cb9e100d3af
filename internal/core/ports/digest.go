package ports

// Defines the shared capability of the two digest strategies.
type Digest interface {
	// Folds the given bytes into the accumulator state, in order.
	// May be called zero or more times; an empty slice is a no-op.
	// Splitting an input across any number of Update calls produces
	// exactly the same final checksum as a single call with the
	// concatenation.
	Update(data []byte)

	// Consumes the accumulated state, applying output reflection and the
	// final XOR mask, and returns the 64-bit checksum. A digest is
	// single-use: create a fresh one for each computation.
	Finalize() uint64
}
