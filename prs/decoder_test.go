package prs

import (
	"bytes"
	"testing"
)

func TestDecodeLiteralGroup(t *testing.T) {
	// control=0x00: eight clear bits, eight literal bytes follow.
	payload := []byte{0x00, 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H'}
	got, err := Decode(payload, 8)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte("ABCDEFGH")) {
		t.Errorf("got %q, want %q", got, "ABCDEFGH")
	}
}

func TestDecodeShortMatch(t *testing.T) {
	// token0 (bit0 clear): literal 'A'.
	// token1 (bit1 set): short match, b=0x00 -> mode=0 (length=2), shift=0 (dist=1).
	payload := []byte{0x02, 'A', 0x00}
	got, err := Decode(payload, 3)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte("AAA")) {
		t.Errorf("got %q, want %q", got, "AAA")
	}
}

func TestDecodeRawRun(t *testing.T) {
	// token0 (bit0 set): match branch, b=0x03 -> mode=3, raw run of
	// (0x03>>2)+9 = 9 literal bytes follow directly.
	run := bytes.Repeat([]byte{'z'}, 9)
	payload := append([]byte{0x01, 0x03}, run...)
	got, err := Decode(payload, 9)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, run) {
		t.Errorf("got %q, want %q", got, run)
	}
}

func TestDecodeMidMatch(t *testing.T) {
	// Build a 15-byte literal preamble, then a mid-form match copying
	// 5 bytes from distance 15.
	var payload bytes.Buffer
	// First group: control=0x00 (8 literals).
	payload.WriteByte(0x00)
	payload.Write([]byte("ABCDEFGH"))
	// Second group: control=0x00 for 7 literals then bit7 set for the
	// match (bit index 7 -> mask 0x80).
	payload.WriteByte(0x80)
	payload.Write([]byte("IJKLMNO")) // 7 literals, indices 0..6

	// Mid match: dist=15 (reaches back to the very first byte), length=5.
	shift := 14   // dist-1
	lenField := 2 // length-3
	shift12 := shift<<4 | lenField
	b1 := byte(0x80 | (shift12>>8)&0x3F)
	b2 := byte(shift12)
	payload.WriteByte(b1)
	payload.WriteByte(b2)

	want := 15 + 5
	got, err := Decode(payload.Bytes(), want)
	if err != nil {
		t.Fatal(err)
	}
	expect := "ABCDEFGHIJKLMNO" + "ABCDE"
	if string(got) != expect {
		t.Errorf("got %q, want %q", got, expect)
	}
}

func TestDecodeTruncated(t *testing.T) {
	got, err := Decode([]byte{0x00, 'A'}, 4)
	if err == nil {
		t.Error("Decode with short payload: got nil error")
	}
	if !bytes.Equal(got, []byte("A")) {
		t.Errorf("Decode with short payload: got partial buffer %q, want %q", got, "A")
	}
}

func TestDecodeInvalidOffset(t *testing.T) {
	// token0 (bit0 set): short match referencing before start of output.
	payload := []byte{0x01, 0x04} // mode=0, shift=1 -> dist=2, but dst=0
	if _, err := Decode(payload, 4); err == nil {
		t.Error("Decode with invalid back-reference offset: got nil error")
	}
}
