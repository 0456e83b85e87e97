package forme

import "golang.org/x/text/width"

// RuneWidth classifies the display width of a code point: 0 for controls,
// combining marks, and zero-width format characters; 2 for CJK, Hangul,
// fullwidth forms, and a pragmatic emoji/dingbat set; 1 otherwise.
//
// The ranges below are pinned exactly as enumerated for this engine's wire
// contract — they are checked first and take precedence over any general
// Unicode database lookup, since third-party width tables drift release to
// release and a terminal-diffing engine needs a stable answer. Outside
// those pinned ranges golang.org/x/text/width's East-Asian-width property
// is consulted as a second opinion for code points the enumeration doesn't
// cover (e.g. less common fullwidth blocks added to Unicode after this
// engine's ranges were fixed).
func RuneWidth(r rune) int {
	if isZeroWidth(r) {
		return 0
	}
	if isWideRune(r) {
		return 2
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

// isZeroWidth reports controls, combining marks, and zero-width format
// characters.
func isZeroWidth(r rune) bool {
	switch {
	case r == 0:
		return true
	case r < 0x20 || (r >= 0x7F && r < 0xA0):
		return true
	case r >= 0x0300 && r <= 0x036F: // combining diacritical marks
		return true
	case r >= 0x200B && r <= 0x200F: // zero-width space/joiners/marks
		return true
	case r == 0xFEFF: // zero-width no-break space / BOM
		return true
	case r >= 0x1AB0 && r <= 0x1AFF: // combining diacritical marks extended
		return true
	case r >= 0x20D0 && r <= 0x20FF: // combining diacritical marks for symbols
		return true
	case r >= 0xFE00 && r <= 0xFE0F: // variation selectors
		return true
	case r >= 0xFE20 && r <= 0xFE2F: // combining half marks
		return true
	}
	return false
}

// wideRange is a half-open-inclusive code point range treated as width 2.
type wideRange struct{ lo, hi rune }

// wideRanges are the exact ranges spec'd for this engine; see spec.md §6.
var wideRanges = []wideRange{
	{0x1100, 0x115F},   // Hangul Jamo
	{0x2600, 0x27BF},   // misc symbols & dingbats
	{0x2E80, 0x9FFF},   // CJK radicals, symbols, unified ideographs, etc.
	{0xAC00, 0xD7A3},   // Hangul syllables
	{0xF900, 0xFAFF},   // CJK compatibility ideographs
	{0xFE10, 0xFE6F},   // vertical forms & CJK compatibility forms
	{0xFF00, 0xFF60},   // fullwidth forms
	{0xFFE0, 0xFFE6},   // fullwidth signs
	{0x1F300, 0x1F9FF}, // misc symbols & pictographs, emoji
	{0x20000, 0x2FFFD}, // CJK unified ideographs extension B+
	{0x30000, 0x3FFFD}, // CJK unified ideographs extension G+
}

func isWideRune(r rune) bool {
	for _, rg := range wideRanges {
		if r >= rg.lo && r <= rg.hi {
			return true
		}
		if r < rg.lo {
			break // ranges are sorted ascending; no later range can match
		}
	}
	return false
}

// DecodeRune decodes one UTF-8 code point from b, returning the rune and
// the number of bytes consumed. On a truncated or invalid lead byte, it
// returns the lead byte itself as a surrogate code point and advances one
// byte, matching the decoder's error-recovery contract (a malformed byte
// is dropped, not the whole buffer).
func DecodeRune(b []byte) (r rune, size int) {
	if len(b) == 0 {
		return 0, 0
	}
	lead := b[0]
	if lead < 0x80 {
		return rune(lead), 1
	}

	var want int
	switch {
	case lead&0xE0 == 0xC0:
		want, r = 2, rune(lead&0x1F)
	case lead&0xF0 == 0xE0:
		want, r = 3, rune(lead&0x0F)
	case lead&0xF8 == 0xF0:
		want, r = 4, rune(lead&0x07)
	default:
		return rune(lead), 1
	}
	if len(b) < want {
		return rune(lead), 1
	}
	for i := 1; i < want; i++ {
		c := b[i]
		if c&0xC0 != 0x80 {
			return rune(lead), 1
		}
		r = r<<6 | rune(c&0x3F)
	}
	return r, want
}

// EncodeRune appends the UTF-8 encoding of r to dst and returns the result.
func EncodeRune(dst []byte, r rune) []byte {
	switch {
	case r < 0:
		return dst
	case r <= 0x7F:
		return append(dst, byte(r))
	case r <= 0x7FF:
		return append(dst, byte(0xC0|r>>6), byte(0x80|r&0x3F))
	case r <= 0xFFFF:
		return append(dst, byte(0xE0|r>>12), byte(0x80|(r>>6)&0x3F), byte(0x80|r&0x3F))
	default:
		return append(dst, byte(0xF0|r>>18), byte(0x80|(r>>12)&0x3F), byte(0x80|(r>>6)&0x3F), byte(0x80|r&0x3F))
	}
}
