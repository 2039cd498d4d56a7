package prs

import (
	"bytes"

	"github.com/hatoba/marbletk/internal/bitio"
)

// Decode expands a PRS-compressed payload to want bytes of pixel data.
// payload holds exactly the PackedSize bytes that follow the header.
// If payload runs out before want bytes are produced, Decode returns
// the partial buffer decoded so far alongside ErrTruncatedPayload.
//
// Every control-bit-set token reads one byte b: b&0x80==0 selects either
// a short back-reference (mode 0..2) or a raw literal run (mode 3);
// 0x80<=b<0xC0 selects a two-byte back-reference; b>=0xC0 selects a
// three-byte, table-coded back-reference. A clear control bit always
// copies a single literal byte.
func Decode(payload []byte, want int) ([]byte, error) {
	src := bytes.NewReader(payload)
	cr := bitio.NewControlReader(src)

	out := make([]byte, 0, want)
	for len(out) < want {
		set, ok := cr.NextBit()
		if !ok {
			return out, ErrTruncatedPayload
		}
		if !set {
			b, err := src.ReadByte()
			if err != nil {
				return out, ErrTruncatedPayload
			}
			out = append(out, b)
			continue
		}

		b, err := src.ReadByte()
		if err != nil {
			return out, ErrTruncatedPayload
		}

		switch {
		case b < 0x80:
			mode := b & 3
			if mode == 3 {
				n := int(b>>2) + 9
				for i := 0; i < n && len(out) < want; i++ {
					lb, err := src.ReadByte()
					if err != nil {
						return out, ErrTruncatedPayload
					}
					out = append(out, lb)
				}
				continue
			}
			length := int(mode) + 2
			dist := int(b>>2) + 1
			out, err = copyMatch(out, dist, length, want)
			if err != nil {
				return out, err
			}

		case b&0xC0 == 0x80:
			b2, err := src.ReadByte()
			if err != nil {
				return out, ErrTruncatedPayload
			}
			shift12 := int(b&0x3F)<<8 | int(b2)
			length := (shift12 & 0xF) + 3
			dist := (shift12 >> 4) + 1
			out, err = copyMatch(out, dist, length, want)
			if err != nil {
				return out, err
			}

		default: // b&0xC0 == 0xC0
			b2, err := src.ReadByte()
			if err != nil {
				return out, ErrTruncatedPayload
			}
			shift12 := int(b&0x3F)<<8 | int(b2)
			b3, err := src.ReadByte()
			if err != nil {
				return out, ErrTruncatedPayload
			}
			length := lengthTable[b3]
			dist := shift12 + 1
			out, err = copyMatch(out, dist, length, want)
			if err != nil {
				return out, err
			}
		}
	}
	return out, nil
}

// copyMatch appends a back-reference copy of length bytes at distance
// dist behind the current end of out. The copy proceeds byte by byte so
// that overlapping references (dist < length) replicate a repeating
// pattern, matching the format's run-length idiom.
func copyMatch(out []byte, dist, length, want int) ([]byte, error) {
	if dist > len(out) {
		return out, &InvalidOffsetError{Dst: len(out), Distance: dist}
	}
	start := len(out) - dist
	for i := 0; i < length && len(out) < want; i++ {
		out = append(out, out[start+i])
	}
	return out, nil
}
