package domain

// DigestKind identifies one of the two interchangeable digest strategies.
type DigestKind string

// ChecksumOptions defines configuration for checksum computations.
type ChecksumOptions struct {
	// Kind selects which digest strategy performs the computation.
	// The accelerated strategy is the production default; the reference
	// strategy exists to validate it and is selected explicitly.
	Kind DigestKind

	// ChunkSize is the maximum number of bytes read from the byte source
	// per segment. Any positive value produces the identical checksum;
	// the size only bounds peak memory and amortizes per-call overhead.
	ChunkSize int

	// Zstd treats file sources as zstd compressed and checksums the
	// decompressed content.
	Zstd bool
}
