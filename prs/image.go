package prs

import (
	"io"

	"github.com/hatoba/marbletk/internal/delta"
)

// DecodeImage reads a full PRS image (header plus compressed body) from
// r and returns its decompressed, delta-reversed BGR(A) pixel buffer.
func DecodeImage(r io.Reader) ([]byte, Header, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return nil, Header{}, err
	}
	payload := make([]byte, h.PackedSize)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, h, ErrTruncatedPayload
	}
	out, err := Decode(payload, h.PixelBufferSize())
	if err != nil {
		return nil, h, err
	}
	if h.DeltaFiltered() {
		delta.Decode(out, int(h.BytesPerPx))
	}
	return out, h, nil
}

// EncodeImage compresses a BGR(A) pixel buffer and writes a complete PRS
// image (header plus compressed body) to w. pixels is left unmodified;
// the delta filter, when requested, is applied to a private copy.
func EncodeImage(w io.Writer, pixels []byte, width, height uint16, bpp byte, useDelta bool) error {
	buf := append([]byte(nil), pixels...)
	var flag byte
	if useDelta {
		flag = FlagDeltaFilter
		delta.Encode(buf, int(bpp))
	}
	payload := Encode(buf)
	h := Header{
		Flag:       flag,
		BytesPerPx: bpp,
		PackedSize: uint32(len(payload)),
		Width:      width,
		Height:     height,
	}
	if err := WriteHeader(w, h); err != nil {
		return err
	}
	_, err := w.Write(payload)
	return err
}

// IsDummyAlphaChannel reports whether a BGRA pixel buffer's alpha plane
// is a single uniform value other than 0xFF, meaning the archive carries
// an alpha channel that encodes no real transparency. pixels must be a
// 4-bytes-per-pixel buffer.
func IsDummyAlphaChannel(pixels []byte) bool {
	if len(pixels) < 4 {
		return false
	}
	alpha := pixels[3]
	if alpha == 0xFF {
		return false
	}
	for i := 7; i < len(pixels); i += 4 {
		if pixels[i] != alpha {
			return false
		}
	}
	return true
}
