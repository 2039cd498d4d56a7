// Package bitio provides the forward, byte-oriented control-bit reader
// and writer used by the PRS codec's group/token framing: one control
// byte, consumed LSB-first, gates up to eight following payload tokens.
package bitio

import "io"

// ControlReader walks a byte stream in groups of a control byte followed
// by up to eight tokens. Callers ask NextBit for the bit gating the next
// token; NextBit transparently pulls a fresh control byte from the
// underlying source every eight calls.
type ControlReader struct {
	src io.ByteReader
	ctl byte
	bit byte
	err error
}

// NewControlReader returns a ControlReader pulling control bytes and
// payload bytes from src.
func NewControlReader(src io.ByteReader) *ControlReader {
	return &ControlReader{src: src}
}

// NextBit returns whether the control bit for the next token is set. ok
// is false if a fresh control byte was needed but could not be read; the
// error is available via Err.
func (c *ControlReader) NextBit() (set bool, ok bool) {
	if c.err != nil {
		return false, false
	}
	if c.bit == 0 {
		b, err := c.src.ReadByte()
		if err != nil {
			c.err = err
			return false, false
		}
		c.ctl = b
		c.bit = 1
	}
	set = c.ctl&c.bit != 0
	c.bit <<= 1
	return set, true
}

// Err returns the first error encountered by NextBit, if any.
func (c *ControlReader) Err() error {
	return c.err
}

// ControlWriter accumulates tokens into groups of a control byte
// followed by up to eight payload byte sequences, flushing a group to
// dst every eight tokens or on a final explicit Flush.
type ControlWriter struct {
	dst     io.Writer
	ctl     byte
	mask    byte
	payload []byte
	err     error
}

// NewControlWriter returns a ControlWriter that flushes completed groups
// to dst.
func NewControlWriter(dst io.Writer) *ControlWriter {
	return &ControlWriter{dst: dst, mask: 1}
}

// PutToken appends one token's payload bytes to the pending group. set
// indicates whether this token's control bit should be set (a match)
// or clear (a literal/raw-run). The group is flushed automatically once
// eight tokens have been buffered.
func (c *ControlWriter) PutToken(set bool, payload ...byte) {
	if c.err != nil {
		return
	}
	if set {
		c.ctl |= c.mask
	}
	c.payload = append(c.payload, payload...)
	c.mask <<= 1
	if c.mask == 0 {
		c.flushGroup()
	}
}

func (c *ControlWriter) flushGroup() {
	if _, err := c.dst.Write([]byte{c.ctl}); err != nil {
		c.err = err
		return
	}
	if len(c.payload) > 0 {
		if _, err := c.dst.Write(c.payload); err != nil {
			c.err = err
			return
		}
	}
	c.ctl = 0
	c.mask = 1
	c.payload = c.payload[:0]
}

// Flush writes out any partially filled group; it is a no-op if no
// tokens have been buffered since the last flush.
func (c *ControlWriter) Flush() error {
	if c.err != nil {
		return c.err
	}
	if c.mask != 1 || len(c.payload) > 0 {
		c.flushGroup()
	}
	return c.err
}

// Err returns the first error encountered while writing.
func (c *ControlWriter) Err() error {
	return c.err
}
