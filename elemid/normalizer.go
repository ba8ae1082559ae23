package elemid

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/docforge/elemid/types"
)

// combiningDiacritics is the Unicode combining diacritical marks block
// (U+0300 through U+036F). Stripping it after NFKD decomposition removes
// accents while keeping the base letters, e.g. "é" becomes "e".
var combiningDiacritics = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036F, Stride: 1}},
}

// decompose applies NFKD and drops the combining diacritics left behind.
var decompose = transform.Chain(norm.NFKD, runes.Remove(runes.In(combiningDiacritics)))

var hyphenRuns = regexp.MustCompile(`-{2,}`)

// Normalize sanitizes candidate into a base identifier valid under the given
// document mode. Disallowed code points become hyphens, hyphen runs
// collapse, edges are trimmed and the result is lowercased. A candidate that
// sanitizes to nothing yields fallback verbatim. In legacy mode a result not
// starting with an ASCII letter is prefixed with fallback and separator.
//
// The fallback token is trusted as-is and must already have been validated;
// see the Generator constructor.
func Normalize(candidate string, mode types.DocumentMode, fallback, separator string) string {
	decomposed, _, _ := transform.String(decompose, candidate)

	cleaned := strings.Map(func(r rune) rune {
		if allowedRune(r, mode) {
			return r
		}
		return '-'
	}, decomposed)

	cleaned = hyphenRuns.ReplaceAllString(cleaned, "-")
	cleaned = trimEdges(cleaned)
	cleaned = strings.ToLower(cleaned)

	if cleaned == "" {
		return fallback
	}
	if mode == types.ModeLegacy {
		if first, _ := utf8.DecodeRuneInString(cleaned); !isASCIILetter(first) {
			return fallback + separator + cleaned
		}
	}
	return cleaned
}

// allowedRune reports membership in the mode-specific identifier character
// set. Strict mode admits the broad Unicode letter, mark and decimal digit
// classes; legacy mode admits ASCII alphanumerics only. Underscore and
// hyphen are allowed in both.
func allowedRune(r rune, mode types.DocumentMode) bool {
	if r == '_' || r == '-' {
		return true
	}
	if mode == types.ModeLegacy {
		return isASCIILetter(r) || (r >= '0' && r <= '9')
	}
	return unicode.IsDigit(r) || unicode.IsLetter(r) || unicode.IsMark(r)
}

// trimEdges strips edge hyphens and at most one underscore per side. The
// second hyphen pass handles candidates like "-_-x" where removing the
// underscore exposes another hyphen.
func trimEdges(s string) string {
	s = strings.Trim(s, "-")
	s = strings.TrimPrefix(s, "_")
	s = strings.TrimSuffix(s, "_")
	return strings.Trim(s, "-")
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
