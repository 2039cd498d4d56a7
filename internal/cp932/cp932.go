// Package cp932 decodes and encodes the Shift-JIS-family text used for
// MgData/MgGra archive entry names and keys.
package cp932

import (
	"bytes"
	"errors"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
)

// Decode converts a NUL-terminated cp932 byte slice (as stored in a
// fixed-width name slot) to a Go string, truncating at the first NUL.
// It fails if b is not valid cp932.
func Decode(b []byte) (string, error) {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	out, err := japanese.ShiftJIS.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	// The decoder substitutes U+FFFD for invalid sequences instead of
	// failing; cp932 has no mapping to U+FFFD, so its presence means b
	// was not valid cp932.
	if bytes.ContainsRune(out, utf8.RuneError) {
		return "", errors.New("cp932: invalid byte sequence")
	}
	return string(out), nil
}

// Encode converts s to cp932 bytes, suitable for writing into a
// fixed-width name slot (without padding).
func Encode(s string) ([]byte, error) {
	return japanese.ShiftJIS.NewEncoder().Bytes([]byte(s))
}
