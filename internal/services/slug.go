package services

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slugify turns "Goa Beach Paradise!" into "goa-beach-paradise". Accents are
// folded ("Café" -> "cafe"); anything else outside [a-z0-9] becomes a hyphen.
func Slugify(s string) string {
	folded, _, err := transform.String(
		transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		s,
	)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	hyphen := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			hyphen = false
		case b.Len() > 0 && !hyphen:
			b.WriteByte('-')
			hyphen = true
		}
	}

	slug := strings.TrimSuffix(b.String(), "-")
	if len(slug) > 200 {
		slug = strings.TrimSuffix(slug[:200], "-")
	}
	return slug
}
