package render

import (
	"regexp"

	"github.com/rulegaze/rulegaze/internal/styletext"
)

// The classifier table is evaluated top to bottom and the first pattern
// that matches at the start of the string wins. Order resolves overlap:
// an all-digit string is a number, never hex, because the number pattern
// is checked first.
var classifierTable = []struct {
	re  *regexp.Regexp
	tag styletext.StyleTag
}{
	{regexp.MustCompile(`^https?:`), styletext.TagURL},
	{regexp.MustCompile(`^\d+$`), styletext.TagNumber},
	{regexp.MustCompile(`^[0-9A-Fa-f]+$`), styletext.TagHex},
	{regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`), styletext.TagDate},
	{regexp.MustCompile(`^\$[a-z_]+`), styletext.TagMatchVar},
}

// Classify maps a string to the semantic tag of the first matching
// content pattern, falling back to the generic string tag.
func Classify(s string) styletext.StyleTag {
	for _, entry := range classifierTable {
		if entry.re.MatchString(s) {
			return entry.tag
		}
	}
	return styletext.TagString
}
