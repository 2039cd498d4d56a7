package mgdata

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/hatoba/marbletk/internal/cp932"
)

// Sidecar is the on-disk shape of entries.json: the archive's decoded
// Params plus each entry's preserved raw record, in archive order. Go's
// map type cannot preserve that order, so Sidecar implements its own
// (un)marshaling instead of relying on encoding/json's struct/map
// defaults.
type Sidecar struct {
	Parameters Params
	Entries    []SidecarEntry
}

// SidecarEntry is one entry's name and preserved raw record bytes,
// hex-encoded in the JSON document.
type SidecarEntry struct {
	Name string
	Raw  []byte
}

type sidecarParamsJSON struct {
	EntrySize  int    `json:"entry_size"`
	NameOffset int    `json:"name_offset"`
	FileOffset int    `json:"file_offset"`
	SizeOffset int    `json:"size_offset"`
	Key        string `json:"key"`
}

// MarshalJSON writes {"parameters": {...}, "<name>": "<hex>", ...} with
// entries in the order they appear in s.Entries, matching the source
// tool's insertion-ordered dict dump.
func (s Sidecar) MarshalJSON() ([]byte, error) {
	keyText, err := cp932.Decode(s.Parameters.Key)
	if err != nil {
		return nil, fmt.Errorf("mgdata: sidecar: encoding key as text: %w", err)
	}
	params, err := json.Marshal(sidecarParamsJSON{
		EntrySize:  s.Parameters.EntrySize,
		NameOffset: s.Parameters.NameOffset,
		FileOffset: s.Parameters.FileOffset,
		SizeOffset: s.Parameters.SizeOffset,
		Key:        keyText,
	})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(`{"parameters":`)
	buf.Write(params)
	for _, e := range s.Entries {
		name, err := json.Marshal(e.Name)
		if err != nil {
			return nil, err
		}
		buf.WriteByte(',')
		buf.Write(name)
		buf.WriteByte(':')
		hexVal, err := json.Marshal(hex.EncodeToString(e.Raw))
		if err != nil {
			return nil, err
		}
		buf.Write(hexVal)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON parses an entries.json document, preserving the source
// order of its per-file keys via streaming token decode.
func (s *Sidecar) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("mgdata: sidecar: expected a JSON object")
	}

	*s = Sidecar{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("mgdata: sidecar: non-string object key")
		}

		if key == "parameters" {
			var p sidecarParamsJSON
			if err := dec.Decode(&p); err != nil {
				return err
			}
			keyBytes, err := cp932.Encode(p.Key)
			if err != nil {
				return fmt.Errorf("mgdata: sidecar: decoding key text: %w", err)
			}
			s.Parameters = Params{
				EntrySize:  p.EntrySize,
				NameOffset: p.NameOffset,
				FileOffset: p.FileOffset,
				SizeOffset: p.SizeOffset,
				Key:        keyBytes,
			}
			continue
		}

		var hexStr string
		if err := dec.Decode(&hexStr); err != nil {
			return err
		}
		raw, err := hex.DecodeString(hexStr)
		if err != nil {
			return fmt.Errorf("mgdata: sidecar: entry %q: %w", key, err)
		}
		s.Entries = append(s.Entries, SidecarEntry{Name: key, Raw: raw})
	}

	if _, err := dec.Token(); err != nil { // closing '}'
		return err
	}
	return nil
}
