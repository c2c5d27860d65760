package menu

import "strings"

// Slugify derives the deterministic grouping key for a free-text label:
// lowercase, everything except letters, digits, hyphens and spaces
// stripped, whitespace runs collapsed to single hyphens, leading and
// trailing hyphens trimmed.
//
// Distinct labels can normalize to the same slug ("Mains!" and "mains");
// that collision is accepted and the first label seen wins for display.
func Slugify(label string) string {
	lower := strings.ToLower(label)

	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == ' ', r == '\t', r == '\n', r == '\r':
			b.WriteRune(' ')
		}
	}

	fields := strings.Fields(b.String())
	return strings.Trim(strings.Join(fields, "-"), "-")
}
