// Package keyregistry holds the known MgData archive parameter presets,
// replacing the source tool's module-level global with named Go values.
package keyregistry

import "github.com/hatoba/marbletk/internal/cp932"

// DefaultKeyText is the cp932 key used by every known MgData archive.
const DefaultKeyText = "女教師ゆうこ1968"

// DefaultKey is DefaultKeyText, cp932-encoded.
var DefaultKey = mustEncode(DefaultKeyText)

func mustEncode(s string) []byte {
	b, err := cp932.Encode(s)
	if err != nil {
		panic("keyregistry: default key does not encode as cp932: " + err.Error())
	}
	return b
}

// Params describes one candidate layout for an MgData archive's
// fixed-size entry records.
type Params struct {
	EntrySize  int
	NameOffset int
	FileOffset int
	SizeOffset int
	Key        []byte
}

// MgDataPresets lists the known MgData entry layouts, tried in order
// until one decodes every entry's name cleanly.
var MgDataPresets = []Params{
	{EntrySize: 0x40, NameOffset: 0x00, FileOffset: 0x38, SizeOffset: 0x3C, Key: DefaultKey},
	{EntrySize: 0x18, NameOffset: 0x00, FileOffset: 0x10, SizeOffset: 0x14, Key: DefaultKey},
}
