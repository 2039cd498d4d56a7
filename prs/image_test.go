package prs

import (
	"bytes"
	"testing"
)

func TestEncodeDecodeImageRoundTripNoFilter(t *testing.T) {
	pixels := bytes.Repeat([]byte{0x10, 0x20, 0x30}, 16)
	var buf bytes.Buffer
	if err := EncodeImage(&buf, pixels, 4, 4, 3, false); err != nil {
		t.Fatal(err)
	}
	got, h, err := DecodeImage(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if h.DeltaFiltered() {
		t.Error("header reports delta filter set, want clear")
	}
	if !bytes.Equal(got, pixels) {
		t.Errorf("round trip mismatch")
	}
}

func TestEncodeDecodeImageRoundTripWithDeltaFilter(t *testing.T) {
	pixels := make([]byte, 4*4*4)
	for i := range pixels {
		pixels[i] = byte(i * 7)
	}
	orig := append([]byte(nil), pixels...)

	var buf bytes.Buffer
	if err := EncodeImage(&buf, pixels, 4, 4, 4, true); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(pixels, orig) {
		t.Error("EncodeImage mutated the caller's pixel buffer")
	}

	got, h, err := DecodeImage(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !h.DeltaFiltered() {
		t.Error("header reports delta filter clear, want set")
	}
	if !bytes.Equal(got, orig) {
		t.Errorf("round trip mismatch")
	}
}

func TestIsDummyAlphaChannel(t *testing.T) {
	// Two BGRA pixels, both alpha=0x7F (uniform, not opaque): dummy.
	dummy := []byte{1, 2, 3, 0x7F, 4, 5, 6, 0x7F}
	if !IsDummyAlphaChannel(dummy) {
		t.Error("uniform non-0xFF alpha: got false, want true")
	}

	// Alpha fully opaque: never dummy.
	opaque := []byte{1, 2, 3, 0xFF, 4, 5, 6, 0xFF}
	if IsDummyAlphaChannel(opaque) {
		t.Error("opaque alpha: got true, want false")
	}

	// Alpha varies: not dummy.
	varying := []byte{1, 2, 3, 0x7F, 4, 5, 6, 0x10}
	if IsDummyAlphaChannel(varying) {
		t.Error("varying alpha: got true, want false")
	}
}
