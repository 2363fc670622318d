package sanitize

// forbiddenCharMap maps the nine Windows-forbidden punctuation characters to
// fullwidth Unicode forms, following rclone's encoding scheme.
var forbiddenCharMap = map[rune]rune{
	'\\': '＼', // ＼ FULLWIDTH REVERSE SOLIDUS
	'/':  '／', // ／ FULLWIDTH SOLIDUS
	':':  '：', // ： FULLWIDTH COLON
	'*':  '＊', // ＊ FULLWIDTH ASTERISK
	'?':  '？', // ？ FULLWIDTH QUESTION MARK
	'"':  '＂', // ＂ FULLWIDTH QUOTATION MARK
	'<':  '＜', // ＜ FULLWIDTH LESS-THAN SIGN
	'>':  '＞', // ＞ FULLWIDTH GREATER-THAN SIGN
	'|':  '｜', // ｜ FULLWIDTH VERTICAL LINE
}

// controlPictureBase is the start of the Unicode Control Pictures block.
// ASCII control characters 0x00-0x1F map to U+2400-U+241F.
const controlPictureBase = 0x2400

// Replacements for trailing characters that Windows silently strips.
const (
	unicodeDotReplacement   = '．' // ．FULLWIDTH FULL STOP
	unicodeSpaceReplacement = '␠' // ␠ SYMBOL FOR SPACE
)

// isForbidden reports whether r is one of the Windows-forbidden punctuation
// characters.
func isForbidden(r rune) bool {
	_, ok := forbiddenCharMap[r]
	return ok
}

// isControl reports whether r is an ASCII control character (0x00-0x1F).
func isControl(r rune) bool {
	return r >= 0 && r < 0x20
}

// IsRestricted reports whether r may not appear in a portable name.
func IsRestricted(r rune) bool {
	return isForbidden(r) || isControl(r)
}

// unicodeReplacement returns the distinct visual analogue for a restricted
// rune. The mapping is injective: fullwidth forms for forbidden punctuation,
// control pictures for control characters.
func unicodeReplacement(r rune) rune {
	if sub, ok := forbiddenCharMap[r]; ok {
		return sub
	}
	if isControl(r) {
		return controlPictureBase + r
	}
	return r
}
