package tokenizer

import "unicode"

// CJK unicode ranges relevant to Japanese note content: kanji (including
// extension A), hiragana, katakana, and halfwidth katakana.
var cjkRanges = []*unicode.RangeTable{
	unicode.Han,
	unicode.Hiragana,
	unicode.Katakana,
}

func isCJK(r rune) bool {
	if r >= 0xFF66 && r <= 0xFF9D { // halfwidth katakana
		return true
	}
	return unicode.IsOneOf(cjkRanges, r)
}

// isCJKDominant counts CJK characters against Latin letters. Text with more
// CJK than Latin goes through morphological segmentation; whitespace
// splitting is unusable for word-boundary-free scripts.
func isCJKDominant(text string) bool {
	var cjk, latin int
	for _, r := range text {
		switch {
		case isCJK(r):
			cjk++
		case unicode.IsLetter(r):
			latin++
		}
	}
	return cjk > 0 && cjk >= latin
}

// isLatinRun reports whether every letter in the token is a Latin letter.
// Used to normalize embedded English inside segmented Japanese text.
func isLatinRun(token string) bool {
	hasLetter := false
	for _, r := range token {
		if isCJK(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}
