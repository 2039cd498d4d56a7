package mggra

import (
	"encoding/binary"
	"strings"
)

const (
	writeEntrySize = 21 // 13-byte name + 4-byte offset + 4-byte size
	writeNameLen   = 13
)

// WriteEntry is one file to pack into an mg_gra archive. Name should be
// the base name without extension; it is upper-cased and truncated to
// 13 bytes on write, matching the source tool.
type WriteEntry struct {
	Name string
	Data []byte
}

// BuildArchive assembles an mg_gra index over files, in the given
// order. Payloads are stored verbatim: the source tool's own deflate
// call is dead code (commented out), so it never re-compresses a
// payload even when the payload doesn't already start with the zlib
// header byte 0x78.
func BuildArchive(files []WriteEntry) []byte {
	headerSize := 8
	dataSectionOffset := headerSize + writeEntrySize*len(files)

	var data []byte
	offsets := make([]int, len(files))
	for i, f := range files {
		offsets[i] = len(data)
		data = append(data, f.Data...)
	}

	out := make([]byte, dataSectionOffset+len(data))
	binary.LittleEndian.PutUint32(out[0:4], uint32(len(files)))
	binary.LittleEndian.PutUint32(out[4:8], writeNameLen)

	pos := headerSize
	for i, f := range files {
		name := strings.ToUpper(f.Name)
		if len(name) > writeNameLen {
			name = name[:writeNameLen]
		}
		writeFixedName(out[pos:pos+writeNameLen], name)
		binary.LittleEndian.PutUint32(out[pos+writeNameLen:pos+writeNameLen+4], uint32(dataSectionOffset+offsets[i]))
		binary.LittleEndian.PutUint32(out[pos+writeNameLen+4:pos+writeNameLen+8], uint32(len(f.Data)))
		pos += writeEntrySize
	}

	copy(out[dataSectionOffset:], data)
	return out
}

// writeFixedName fills dst (the field's fixed width, zero-valued on
// entry) with name followed by as much of "\x00PRS" as fits in the
// remaining space. This reproduces the source tool's name-padding
// quirk rather than a plain NUL pad: a name that leaves fewer than 4
// bytes of room gets only a truncated prefix of "\x00PRS", not zeros.
func writeFixedName(dst []byte, name string) {
	n := copy(dst, name)
	pad := []byte("\x00PRS")
	remaining := len(dst) - n
	if remaining > len(pad) {
		remaining = len(pad)
	}
	if remaining <= 0 {
		return
	}
	copy(dst[n:], pad[:remaining])
}
