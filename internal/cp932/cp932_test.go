package cp932

import "testing"

func TestRoundTrip(t *testing.T) {
	const s = "女教師ゆうこ1968"
	enc, err := Encode(s)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Decode(enc)
	if err != nil {
		t.Fatal(err)
	}
	if got != s {
		t.Errorf("round trip = %q, want %q", got, s)
	}
}

func TestDecodeTruncatesAtNUL(t *testing.T) {
	enc, err := Encode("abc")
	if err != nil {
		t.Fatal(err)
	}
	padded := append(append([]byte(nil), enc...), 0, 'X', 'X')
	got, err := Decode(padded)
	if err != nil {
		t.Fatal(err)
	}
	if got != "abc" {
		t.Errorf("Decode with trailing padding = %q, want %q", got, "abc")
	}
}

func TestDecodeInvalid(t *testing.T) {
	// 0x81 alone is an incomplete double-byte lead in Shift-JIS.
	if _, err := Decode([]byte{0x81}); err == nil {
		t.Error("Decode of invalid cp932 byte: got nil error")
	}
}
