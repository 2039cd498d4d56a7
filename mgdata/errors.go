package mgdata

// StructuralError is returned for MgData archives that do not match any
// known entry layout, mirroring prs.StructuralError's role for the
// image codec.
type StructuralError string

func (s StructuralError) Error() string {
	return "mgdata: " + string(s)
}

// ErrUnrecognizedArchive is returned when no known preset in
// keyregistry.MgDataPresets decodes every entry's name cleanly.
var ErrUnrecognizedArchive = StructuralError("no known entry layout decoded this archive")

// ErrTruncatedArchive is returned when the archive is too short to hold
// its 4-byte entry count, or when an entry's payload range extends past
// the end of the archive. An archive too short for its declared entry
// count under every candidate layout yields ErrUnrecognizedArchive.
var ErrTruncatedArchive = StructuralError("archive too short for its declared entry count")
