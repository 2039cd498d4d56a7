package prs

import (
	"encoding/binary"
	"io"
)

const (
	magic = "YB"

	// HeaderSize is the fixed size, in bytes, of the PRS header.
	HeaderSize = 16

	// FlagDeltaFilter marks that the per-channel delta predictor was
	// applied to the pixel buffer before compression and must be
	// reversed after decompression.
	FlagDeltaFilter byte = 0x80
)

// Header is the 16-byte PRS image header.
type Header struct {
	Flag       byte
	BytesPerPx byte
	PackedSize uint32
	Width      uint16
	Height     uint16
}

// DeltaFiltered reports whether FlagDeltaFilter is set.
func (h Header) DeltaFiltered() bool {
	return h.Flag&FlagDeltaFilter != 0
}

// PixelBufferSize returns the fully decoded output length implied by
// the header's dimensions and pixel depth.
func (h Header) PixelBufferSize() int {
	return int(h.Width) * int(h.Height) * int(h.BytesPerPx)
}

// ReadHeader reads and validates a 16-byte PRS header from r.
func ReadHeader(r io.Reader) (Header, error) {
	var buf [HeaderSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Header{}, err
	}
	if string(buf[0:2]) != magic {
		return Header{}, ErrBadMagic
	}
	bpp := buf[3]
	if bpp != 3 && bpp != 4 {
		return Header{}, ErrUnsupportedBpp
	}
	return Header{
		Flag:       buf[2],
		BytesPerPx: bpp,
		PackedSize: binary.LittleEndian.Uint32(buf[4:8]),
		Width:      binary.LittleEndian.Uint16(buf[12:14]),
		Height:     binary.LittleEndian.Uint16(buf[14:16]),
	}, nil
}

// WriteHeader writes h to w in the on-disk 16-byte layout. Bytes 8..12
// are always written as zero, per the format's "reserved" field.
func WriteHeader(w io.Writer, h Header) error {
	var buf [HeaderSize]byte
	copy(buf[0:2], magic)
	buf[2] = h.Flag
	buf[3] = h.BytesPerPx
	binary.LittleEndian.PutUint32(buf[4:8], h.PackedSize)
	binary.LittleEndian.PutUint16(buf[12:14], h.Width)
	binary.LittleEndian.PutUint16(buf[14:16], h.Height)
	_, err := w.Write(buf[:])
	return err
}
