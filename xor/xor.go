// Package xor implements the keyed XOR stream cipher used to obscure
// MgData archive payloads.
package xor

import "errors"

// ErrEmptyKey is returned when Apply is called with a zero length key.
var ErrEmptyKey = errors.New("xor: key must not be empty")

// Apply XORs every byte of src against key, repeating key as necessary,
// and returns the result in a newly allocated slice. It is its own
// inverse: Apply(Apply(b, k), k) reproduces b.
func Apply(src, key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	out := make([]byte, len(src))
	for i, b := range src {
		out[i] = b ^ key[i%len(key)]
	}
	return out, nil
}
