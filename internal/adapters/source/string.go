package source

import "strings"

// StringSource presents a string's byte representation as a byte
// source. The value is already resident in memory, but it flows through
// the same chunked consumer as a file: the streaming-equivalence
// invariant makes the segmentation irrelevant to the result.
type StringSource struct {
	reader *strings.Reader
}

func NewString(text string) *StringSource {
	return &StringSource{reader: strings.NewReader(text)}
}

func (s *StringSource) Read(p []byte) (int, error) {
	return s.reader.Read(p)
}

func (s *StringSource) Name() string {
	return "<string>"
}

func (s *StringSource) Close() error {
	return nil
}
