package mggra

// Entry is one decoded mg_gra index record. Offset is the payload's
// absolute position from the start of the archive and Size its length;
// Name always carries the ".prs" extension the index itself omits.
type Entry struct {
	Name   string
	Offset uint32
	Size   uint32
}

// Archive is a decoded mg_gra index.
type Archive struct {
	NameLen int
	Entries []Entry
}
