package mggra

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"testing"
)

func buildIndexBytes(t *testing.T, names []string, nameLen int, payloads [][]byte) []byte {
	t.Helper()
	headerSize := 8
	entrySize := nameLen + 8
	dataOffset := headerSize + entrySize*len(names)

	var data []byte
	offsets := make([]int, len(names))
	for i, p := range payloads {
		offsets[i] = len(data)
		data = append(data, p...)
	}

	out := make([]byte, dataOffset+len(data))
	binary.LittleEndian.PutUint32(out[0:4], uint32(len(names)))
	binary.LittleEndian.PutUint32(out[4:8], uint32(nameLen))

	pos := headerSize
	for i, name := range names {
		copy(out[pos:pos+nameLen], name)
		binary.LittleEndian.PutUint32(out[pos+nameLen:pos+nameLen+4], uint32(dataOffset+offsets[i]))
		binary.LittleEndian.PutUint32(out[pos+nameLen+4:pos+nameLen+8], uint32(len(payloads[i])))
		pos += entrySize
	}
	copy(out[dataOffset:], data)
	return out
}

func TestReadArchiveRejectsWrongFileName(t *testing.T) {
	data := buildIndexBytes(t, []string{"FOO"}, 13, [][]byte{{1}})
	if _, err := ReadArchive(data, "not_mg_gra.mbl"); err == nil {
		t.Fatal("expected rejection for a non-mg_gra file name")
	}
}

func TestReadArchiveDecodesEntries(t *testing.T) {
	payloads := [][]byte{{1, 2, 3}, {4, 5}}
	data := buildIndexBytes(t, []string{"FOO", "BAR"}, 13, payloads)

	arc, err := ReadArchive(data, "mg_gra.mbl")
	if err != nil {
		t.Fatalf("ReadArchive: %v", err)
	}
	if len(arc.Entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(arc.Entries))
	}
	if arc.Entries[0].Name != "foo.prs" || arc.Entries[1].Name != "bar.prs" {
		t.Fatalf("unexpected names: %+v", arc.Entries)
	}

	got, err := ExtractPayload(data, arc.Entries[0])
	if err != nil {
		t.Fatalf("ExtractPayload: %v", err)
	}
	if !bytes.Equal(got, payloads[0]) {
		t.Fatalf("payload = %x, want %x", got, payloads[0])
	}
}

func TestExtractPayloadInflatesZlib(t *testing.T) {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	zw.Write([]byte("hello world"))
	zw.Close()

	data := buildIndexBytes(t, []string{"Z"}, 13, [][]byte{buf.Bytes()})
	arc, err := ReadArchive(data, "MG_GRA.mbl")
	if err != nil {
		t.Fatalf("ReadArchive: %v", err)
	}

	got, err := ExtractPayload(data, arc.Entries[0])
	if err != nil {
		t.Fatalf("ExtractPayload: %v", err)
	}
	if string(got) != "hello world" {
		t.Fatalf("got %q, want %q", got, "hello world")
	}
}

func TestReadArchiveRejectsOutOfBoundsNameLen(t *testing.T) {
	data := make([]byte, 8)
	binary.LittleEndian.PutUint32(data[0:4], 1)
	binary.LittleEndian.PutUint32(data[4:8], 4) // below minNameLen
	if _, err := ReadArchive(data, "mg_gra.mbl"); err == nil {
		t.Fatal("expected rejection for out-of-bounds name length")
	}
}
