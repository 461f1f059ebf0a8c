package signal

import (
	"strings"
	"unicode"
)

// document is the tokenized form of one query text. It is built once per
// request and shared read-only by every extractor.
type document struct {
	normalized string   // lowercased text, punctuation collapsed to spaces
	tokens     []string // normalized tokens, '-' and '.' kept inside part numbers
}

func parse(text string) *document {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}

	fields := strings.Fields(b.String())
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		tok := strings.Trim(f, "-.")
		if tok == "" {
			continue
		}
		tokens = append(tokens, tok)
	}

	return &document{
		normalized: strings.Join(tokens, " "),
		tokens:     tokens,
	}
}

// containsPhrase matches a lexicon entry as a substring of the normalized
// text. Single words and multi-word phrases go through the same path, and
// plural or prefixed forms ("microcontrollers", "ultra-low power") still
// hit their base entry.
func (d *document) containsPhrase(p string) bool {
	return strings.Contains(d.normalized, p)
}

// isNumeric reports an all-digit token, decimal points allowed.
func isNumeric(tok string) bool {
	digits := 0
	for _, r := range tok {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
		default:
			return false
		}
	}
	return digits > 0
}

// isPartLike reports a mixed alphanumeric token such as a part number
// (2n3904, aec-q100) or a value with a unit suffix (3.3v, 100ma).
func isPartLike(tok string) bool {
	hasDigit, hasLetter := false, false
	for _, r := range tok {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case unicode.IsLetter(r):
			hasLetter = true
		}
	}
	return hasDigit && hasLetter
}
