package prs

// lengthTable maps a long-match's third payload byte to a decoded match
// length. Entries 0..0xFD are length i+3; the last two entries are the
// two special large-run lengths the format reserves.
var lengthTable = func() [256]int {
	var t [256]int
	for i := 0; i < 0xFE; i++ {
		t[i] = i + 3
	}
	t[0xFE] = 0x400
	t[0xFF] = 0x1000
	return t
}()

// longMatchLengthByte returns the payload byte that encodes length via
// lengthTable, and whether length is representable at all.
func longMatchLengthByte(length int) (b byte, ok bool) {
	switch length {
	case 0x400:
		return 0xFE, true
	case 0x1000:
		return 0xFF, true
	}
	if length >= 3 && length < 3+0xFE {
		return byte(length - 3), true
	}
	return 0, false
}
