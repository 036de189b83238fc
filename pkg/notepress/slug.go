package notepress

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// maxSlugLen caps derived slugs; explicit slugs are stored as submitted.
const maxSlugLen = 50

// Cyrillic-to-Latin table used before the generic ASCII fold, so titles in
// Russian still produce readable slugs instead of empty ones.
var translit = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "e",
	'ж': "zh", 'з': "z", 'и': "i", 'й': "j", 'к': "k", 'л': "l", 'м': "m",
	'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "h", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "sch",
	'ъ': "", 'ы': "y", 'ь': "", 'э': "e", 'ю': "yu", 'я': "ya",
}

var asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify derives a URL-safe token from a title: transliterate, strip
// diacritics, lowercase, collapse everything else to single hyphens. The
// derivation is deterministic; collision handling is left entirely to the
// repository, which fails instead of suffixing.
func Slugify(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if s, ok := translit[r]; ok {
			b.WriteString(s)
			continue
		}
		b.WriteRune(r)
	}

	folded, _, err := transform.String(asciiFold, b.String())
	if err != nil {
		folded = b.String()
	}

	out := make([]rune, 0, len(folded))
	pendingHyphen := false
	for _, r := range folded {
		isSafe := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !isSafe {
			pendingHyphen = len(out) > 0
			continue
		}
		if pendingHyphen {
			out = append(out, '-')
			pendingHyphen = false
		}
		out = append(out, r)
	}

	if len(out) > maxSlugLen {
		out = out[:maxSlugLen]
		for len(out) > 0 && out[len(out)-1] == '-' {
			out = out[:len(out)-1]
		}
	}
	return string(out)
}
