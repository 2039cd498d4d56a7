package mggra

import (
	"bytes"
	"testing"
)

func TestBuildArchiveRoundTrip(t *testing.T) {
	files := []WriteEntry{
		{Name: "intro", Data: []byte{1, 2, 3, 4}},
		{Name: "title", Data: []byte{5, 6}},
	}
	data := BuildArchive(files)

	arc, err := ReadArchive(data, "mg_gra.mbl")
	if err != nil {
		t.Fatalf("ReadArchive: %v", err)
	}
	if len(arc.Entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(arc.Entries))
	}
	if arc.Entries[0].Name != "intro.prs" || arc.Entries[1].Name != "title.prs" {
		t.Fatalf("unexpected names: %+v", arc.Entries)
	}

	got0, err := ExtractPayload(data, arc.Entries[0])
	if err != nil {
		t.Fatalf("ExtractPayload: %v", err)
	}
	if !bytes.Equal(got0, files[0].Data) {
		t.Fatalf("payload 0 = %x, want %x", got0, files[0].Data)
	}
	got1, err := ExtractPayload(data, arc.Entries[1])
	if err != nil {
		t.Fatalf("ExtractPayload: %v", err)
	}
	if !bytes.Equal(got1, files[1].Data) {
		t.Fatalf("payload 1 = %x, want %x", got1, files[1].Data)
	}
}

func TestBuildArchiveTruncatesLongNames(t *testing.T) {
	files := []WriteEntry{
		{Name: "a_name_far_too_long_for_the_field", Data: []byte{1}},
	}
	data := BuildArchive(files)

	arc, err := ReadArchive(data, "mg_gra.mbl")
	if err != nil {
		t.Fatalf("ReadArchive: %v", err)
	}
	if got, want := arc.Entries[0].Name, "a_name_far_too"[:13]+".prs"; got != want {
		t.Fatalf("name = %q, want %q", got, want)
	}
}

func TestWriteFixedNameShortNameGetsPaddingPrefix(t *testing.T) {
	dst := make([]byte, 13)
	writeFixedName(dst, "AB")
	want := append([]byte("AB"), []byte("\x00PRS")...)
	want = append(want, make([]byte, 13-len(want))...)
	if !bytes.Equal(dst, want) {
		t.Fatalf("writeFixedName(AB) = %x, want %x", dst, want)
	}
}
