package mgdata

import (
	"encoding/binary"

	"github.com/hatoba/marbletk/internal/cp932"
	"github.com/hatoba/marbletk/xor"
)

// nameSlotSize is the number of bytes read for an entry's name,
// regardless of Params.EntrySize. The source tool always reads a fixed
// 0x20-byte slot starting at NameOffset; for the 0x18-byte entry layout
// this deliberately reads past the nominal record boundary into the
// following entry's (or the FileOffset/SizeOffset) bytes, and archives
// in the wild depend on that to decode cleanly.
const nameSlotSize = 0x20

// Archive is a decoded MgData archive: the preset that decoded it and
// its entries in on-disk order.
type Archive struct {
	Params  Params
	Entries []Entry
}

// ReadArchive decodes data against each of presets in turn, returning
// the first one under which every entry's name decodes as valid cp932.
func ReadArchive(data []byte, presets []Params) (*Archive, error) {
	if len(data) < 4 {
		return nil, ErrTruncatedArchive
	}
	count := int(binary.LittleEndian.Uint32(data[0:4]))

	for _, p := range presets {
		entries, ok := tryPreset(data, count, p)
		if ok {
			return &Archive{Params: p, Entries: entries}, nil
		}
	}
	return nil, ErrUnrecognizedArchive
}

func tryPreset(data []byte, count int, p Params) ([]Entry, bool) {
	headerSize := 4 + count*p.EntrySize
	if headerSize > len(data) {
		return nil, false
	}

	entries := make([]Entry, 0, count)
	for i := 0; i < count; i++ {
		base := 4 + i*p.EntrySize

		nameStart := base + p.NameOffset
		nameEnd := nameStart + nameSlotSize
		if nameEnd > len(data) {
			nameEnd = len(data)
		}
		if nameStart > len(data) {
			return nil, false
		}
		name, err := cp932.Decode(data[nameStart:nameEnd])
		if err != nil {
			return nil, false
		}

		recEnd := base + p.EntrySize
		if recEnd > len(data) {
			return nil, false
		}

		offset := binary.LittleEndian.Uint32(data[base+p.FileOffset : base+p.FileOffset+4])
		size := binary.LittleEndian.Uint32(data[base+p.SizeOffset : base+p.SizeOffset+4])

		raw := make([]byte, p.EntrySize)
		copy(raw, data[base:recEnd])

		entries = append(entries, Entry{
			Name:   name,
			Offset: offset,
			Size:   size,
			Raw:    raw,
		})
	}
	return entries, true
}

// ExtractPayload decrypts and returns the file data for e within data,
// using the archive's key.
func ExtractPayload(data []byte, e Entry, key []byte) ([]byte, error) {
	end := uint64(e.Offset) + uint64(e.Size)
	if end > uint64(len(data)) {
		return nil, ErrTruncatedArchive
	}
	return xor.Apply(data[e.Offset:end], key)
}
