package utfrange

import "errors"

// Errors returned by iterator and range operations.
// Decoding failures are reported with the codec package's errors.
var (
	// ErrMismatchedRange indicates iterators over different byte spans were combined or compared.
	ErrMismatchedRange = errors.New("iterators belong to different ranges")

	// ErrInvalidRange indicates a range whose begin lies after its end.
	ErrInvalidRange = errors.New("invalid range: begin after end")
)
