package mgdata

import (
	"encoding/binary"

	"github.com/hatoba/marbletk/internal/cp932"
	"github.com/hatoba/marbletk/xor"
)

// BuildArchive reassembles an MgData archive from sc and the available
// file contents in files (keyed by entry name). Entries in sc.Entries
// with no corresponding files entry are dropped entirely: the output
// archive's entry count and record layout are compacted to just the
// present entries, in sidecar order, matching the source tool's
// enumerate(available_files.items()) repack (this is what makes
// patch/partial repacks work at all).
//
// When patch is false, each entry's full EntrySize-byte record is
// first overwritten with its preserved Raw bytes (which can reintroduce
// a stale name), then its FileOffset/SizeOffset fields are repatched
// with the current repack's actual values regardless of patch, since
// those must always reflect where the payload actually landed.
func BuildArchive(sc Sidecar, files map[string][]byte, patch bool) ([]byte, error) {
	p := sc.Parameters

	var available []SidecarEntry
	for _, e := range sc.Entries {
		if _, ok := files[e.Name]; ok {
			available = append(available, e)
		}
	}

	count := len(available)
	headerSize := 4 + count*p.EntrySize

	size := headerSize + 4
	for _, e := range available {
		size += len(files[e.Name])
	}

	out := make([]byte, size)
	binary.LittleEndian.PutUint32(out[0:4], uint32(count))

	currentOffset := headerSize + 4
	for i, e := range available {
		data := files[e.Name]
		base := 4 + i*p.EntrySize

		name, err := cp932.Encode(e.Name)
		if err != nil {
			return nil, err
		}
		copy(out[base+p.NameOffset:], name)

		if !patch {
			copy(out[base:base+p.EntrySize], e.Raw)
		}

		binary.LittleEndian.PutUint32(out[base+p.FileOffset:base+p.FileOffset+4], uint32(currentOffset))
		binary.LittleEndian.PutUint32(out[base+p.SizeOffset:base+p.SizeOffset+4], uint32(len(data)))

		enc, err := xor.Apply(data, p.Key)
		if err != nil {
			return nil, err
		}
		copy(out[currentOffset:currentOffset+len(enc)], enc)
		currentOffset += len(enc)
	}

	return out, nil
}
