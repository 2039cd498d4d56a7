package mggra

// StructuralError is returned for data that fails one of the mg_gra
// index's several sanity checks (name-length bounds, entry-count
// bounds, archive file name, or an entry's placement within the file).
type StructuralError string

func (s StructuralError) Error() string {
	return "mggra: " + string(s)
}

// ErrNotRecognized is returned when data does not pass every sanity
// check for the mg_gra index layout.
var ErrNotRecognized = StructuralError("data does not match the mg_gra archive layout")
