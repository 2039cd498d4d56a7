package mgdata

// Entry is one decoded MgData archive record.
type Entry struct {
	Name   string
	Offset uint32
	Size   uint32
	// Raw holds the entry's full on-disk record (Params.EntrySize
	// bytes), preserved verbatim so a later non-patch repack can
	// reproduce the source tool's exact record-overwrite quirk.
	Raw []byte
}
