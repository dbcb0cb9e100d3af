package ports

// ByteSource is an ordered, finite sequence of bytes consumed once,
// front to back. A file and a string both present this interface;
// neither the digests nor the stream consumer distinguish their origin.
type ByteSource interface {
	// Reads up to len(p) bytes into p and reports how many were read.
	// Follows the io.Reader contract: io.EOF signals exhaustion, and a
	// read may return fewer bytes than requested at any point.
	Read(p []byte) (int, error)

	// Name identifies the source in error reports, e.g. the file path.
	Name() string

	// Releases whatever the source holds open. Safe to call once after
	// the computation finishes, regardless of outcome.
	Close() error
}
