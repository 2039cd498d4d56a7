package prs

import (
	"bytes"

	"github.com/hatoba/marbletk/internal/bitio"
)

// Encode compresses input into the PRS payload format (the bytes that
// follow the 16-byte header). It never emits the raw-run token; that
// form exists purely for decoding archives produced by other encoders.
func Encode(input []byte) []byte {
	var buf bytes.Buffer
	cw := bitio.NewControlWriter(&buf)
	m := newMatcher(input)

	for p := 0; p < len(input); {
		length, dist := m.findLongest(p)

		if length == 0 {
			cw.PutToken(false, input[p])
			m.insert(p)
			p++
			continue
		}

		switch {
		case length <= 4 && dist <= 32:
			mode := byte(length - 2)
			b := mode | byte((dist-1)<<2)
			cw.PutToken(true, b)

		case length <= 18 && dist <= 1024:
			shift := dist - 1
			lenField := length - 3
			shift12 := shift<<4 | lenField
			b1 := 0x80 | byte(shift12>>8&0x3F)
			b2 := byte(shift12)
			cw.PutToken(true, b1, b2)

		default:
			// length <= maxMatchLen (0x100) and dist <= maxSearchOff
			// (0x2000), both within the long form's range.
			lb, ok := longMatchLengthByte(length)
			if !ok {
				// Not directly representable (shouldn't happen given
				// the match finder's bounds); fall back to a literal.
				cw.PutToken(false, input[p])
				m.insert(p)
				p++
				continue
			}
			shift12 := dist - 1
			b1 := 0xC0 | byte(shift12>>8&0x3F)
			b2 := byte(shift12)
			cw.PutToken(true, b1, b2, lb)
		}

		for i := p; i < p+length; i++ {
			m.insert(i)
		}
		p += length
	}

	cw.Flush()
	return buf.Bytes()
}
