package mggra

import (
	"bytes"
	"encoding/binary"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/klauspost/compress/zlib"
)

const (
	minNameLen = 8
	maxNameLen = 0x40
	minCount   = 1
	maxCount   = 9999
)

// ReadArchive decodes data as an mg_gra index. fileName is the
// archive's own file name (not a directory path); the source format's
// only type discriminator beyond field bounds is that the archive must
// be named "mg_gra" (case-insensitively, any extension), so archives
// of other formats sharing this byte layout are rejected by name
// rather than content.
func ReadArchive(data []byte, fileName string) (*Archive, error) {
	if len(data) < 8 {
		return nil, ErrNotRecognized
	}
	count := binary.LittleEndian.Uint32(data[0:4])
	nameLen := binary.LittleEndian.Uint32(data[4:8])

	if nameLen < minNameLen || nameLen > maxNameLen || count < minCount || count > maxCount {
		return nil, ErrNotRecognized
	}

	base := filepath.Base(fileName)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if !strings.EqualFold(base, "mg_gra") {
		return nil, ErrNotRecognized
	}

	entries := make([]Entry, 0, count)
	pos := 8
	for i := uint32(0); i < count; i++ {
		if pos+int(nameLen)+8 > len(data) {
			return nil, ErrNotRecognized
		}

		nameBytes := data[pos : pos+int(nameLen)]
		if nul := bytes.IndexByte(nameBytes, 0); nul >= 0 {
			nameBytes = nameBytes[:nul]
		}
		if !utf8.Valid(nameBytes) {
			return nil, ErrNotRecognized
		}
		name := strings.ToLower(string(nameBytes)) + ".prs"
		pos += int(nameLen)

		offset := binary.LittleEndian.Uint32(data[pos : pos+4])
		size := binary.LittleEndian.Uint32(data[pos+4 : pos+8])
		pos += 8

		if uint64(offset)+uint64(size) > uint64(len(data)) {
			return nil, ErrNotRecognized
		}

		entries = append(entries, Entry{Name: name, Offset: offset, Size: size})
	}

	if len(entries) == 0 || (len(entries) == 1 && count > 1) {
		return nil, ErrNotRecognized
	}

	return &Archive{NameLen: int(nameLen), Entries: entries}, nil
}

// ExtractPayload returns e's payload from data, inflating it first if
// it looks zlib-wrapped (a leading 0x78 byte).
func ExtractPayload(data []byte, e Entry) ([]byte, error) {
	end := uint64(e.Offset) + uint64(e.Size)
	if end > uint64(len(data)) {
		return nil, ErrNotRecognized
	}
	raw := data[e.Offset:end]

	if len(raw) == 0 || raw[0] != 0x78 {
		out := make([]byte, len(raw))
		copy(out, raw)
		return out, nil
	}

	zr, err := zlib.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}
