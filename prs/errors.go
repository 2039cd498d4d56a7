package prs

import "fmt"

// StructuralError is returned when a PRS image's header or compressed
// body is found to be invalid. It mirrors bzip2.StructuralError's role
// in the teacher codec: a single error type surfacing all decode-time
// structural problems to the caller.
type StructuralError string

func (s StructuralError) Error() string {
	return "prs: " + string(s)
}

// ErrBadMagic is returned when the header's magic bytes are not "YB".
var ErrBadMagic = StructuralError("bad magic, want \"YB\"")

// ErrUnsupportedBpp is returned when the header's bytes-per-pixel field
// is neither 3 nor 4.
var ErrUnsupportedBpp = StructuralError("unsupported bytes-per-pixel, want 3 or 4")

// ErrTruncatedPayload is returned when the compressed payload runs out
// before the declared output size is reached.
var ErrTruncatedPayload = StructuralError("truncated payload")

// InvalidOffsetError is returned when a back-reference's distance would
// reach before the start of the output buffer.
type InvalidOffsetError struct {
	Dst      int
	Distance int
}

func (e *InvalidOffsetError) Error() string {
	return fmt.Sprintf("prs: invalid back-reference offset %d at output position %d", e.Distance, e.Dst)
}
