package prs

const (
	minMatchLen  = 2
	maxMatchLen  = 0x100
	maxSearchOff = 0x2000
	maxChainLen  = 64
)

// matcher is a hash-chain longest-match finder over a fixed input
// buffer, keyed on the 3-byte sequence at each position. It trades
// exhaustive search for a bounded chain walk, the same shape as a
// conventional LZ77 dictionary matcher.
type matcher struct {
	input []byte
	chain map[uint32][]int
}

func newMatcher(input []byte) *matcher {
	return &matcher{input: input, chain: make(map[uint32][]int)}
}

func hash3(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
}

// insert registers position p in the hash chain for the 3 bytes
// starting there, if any remain.
func (m *matcher) insert(p int) {
	if p+3 > len(m.input) {
		return
	}
	h := hash3(m.input[p:])
	m.chain[h] = append(m.chain[h], p)
}

// findLongest returns the longest match at p and its back-distance, or
// length 0 if no usable match exists.
func (m *matcher) findLongest(p int) (length, dist int) {
	if p+3 > len(m.input) {
		return 0, 0
	}
	maxLen := len(m.input) - p
	if maxLen > maxMatchLen {
		maxLen = maxMatchLen
	}
	h := hash3(m.input[p:])
	candidates := m.chain[h]
	tries := 0
	for i := len(candidates) - 1; i >= 0; i-- {
		q := candidates[i]
		if p-q > maxSearchOff {
			break
		}
		tries++
		if tries > maxChainLen {
			break
		}
		l := commonPrefix(m.input, q, p, maxLen)
		if l > length {
			length = l
			dist = p - q
			if length == maxLen {
				break
			}
		}
	}
	if length < minMatchLen {
		return 0, 0
	}
	return length, dist
}

func commonPrefix(buf []byte, a, b, max int) int {
	n := 0
	for n < max && buf[a+n] == buf[b+n] {
		n++
	}
	return n
}
