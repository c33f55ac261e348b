package yarex

import (
	"fmt"
	"strings"
)

// DefaultRuleName prefixes rules synthesized from ad-hoc patterns.
const DefaultRuleName = "RULEGAZE"

// RuleString builds the source of one minimal rule that matches the
// given regex pattern under the given name.
func RuleString(pattern, name string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "rule %s {\n", name)
	b.WriteString("    strings:\n")
	fmt.Fprintf(&b, "        $%s = /%s/\n", strings.ToLower(DefaultRuleName), pattern)
	b.WriteString("    condition:\n")
	b.WriteString("        any of them\n")
	b.WriteString("}\n")
	return b.String()
}

// RulesForPatterns synthesizes one rule per pattern, named
// RULEGAZE_1..RULEGAZE_n, and returns the joined source.
func RulesForPatterns(patterns []string) string {
	sources := make([]string, len(patterns))
	for i, p := range patterns {
		sources[i] = RuleString(p, fmt.Sprintf("%s_%d", DefaultRuleName, i+1))
	}
	return strings.Join(sources, "\n")
}
