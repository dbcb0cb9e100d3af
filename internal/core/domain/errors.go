package domain

// ErrorCategory classifies different types of errors
type ErrorCategory int

const (
	// ErrorUsage indicates the invocation itself was malformed: a missing
	// mode selector, an unknown flag, or conflicting modes.
	ErrorUsage ErrorCategory = iota + 1

	// ErrorSource indicates the byte source could not be opened at all,
	// e.g. a file path that does not exist or is inaccessible.
	ErrorSource

	// ErrorRead indicates an I/O failure mid-stream, after zero or more
	// segments were already folded into the digest. Partial state is
	// discarded; there is no resumable result.
	ErrorRead
)

// String returns the string representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case ErrorUsage:
		return "usage"
	case ErrorSource:
		return "source"
	case ErrorRead:
		return "read"
	default:
		return "unknown"
	}
}
