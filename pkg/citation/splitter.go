package citation

import (
	"strings"

	"github.com/dlclark/regexp2"
)

var (
	// Everything except digits, lower-case Cyrillic, commas, whitespace,
	// periods and hyphens is noise.
	listNoisePattern = regexp2.MustCompile(`[^0-9а-я,\s.\-]`, regexp2.None)

	// A period not flanked by digits on both sides is an abbreviation
	// remnant; decimal points like "15.1" survive.
	strayPeriodPattern = regexp2.MustCompile(`(?<!\d)\.(?!\d)`, regexp2.None)
)

// SplitNumberList parses a raw number-list fragment such as "1, 2 и 3а"
// into its individual tokens, in order. The fragment is lower-cased,
// stripped of noise and stray periods, then split on commas and the
// conjunction "и". If nothing usable remains, the fallback is returned as
// the single element.
func SplitNumberList(raw, fallback string) []string {
	clean := strings.ToLower(raw)
	clean, _ = listNoisePattern.Replace(clean, "", -1, -1)
	clean, _ = strayPeriodPattern.Replace(clean, "", -1, -1)

	var parts []string
	for _, part := range strings.FieldsFunc(clean, func(r rune) bool { return r == ',' || r == 'и' }) {
		part = strings.TrimSpace(part)
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return []string{fallback}
	}
	return parts
}
