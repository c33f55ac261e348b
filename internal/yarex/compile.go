package yarex

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// CompileError reports malformed rule source with a 1-based line number.
type CompileError struct {
	Line int
	Msg  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("rule compile error at line %d: %s", e.Line, e.Msg)
}

func errAt(line int, format string, args ...any) *CompileError {
	return &CompileError{Line: line, Msg: fmt.Sprintf(format, args...)}
}

var (
	reRuleHeader = regexp.MustCompile(`^rule\s+([A-Za-z_][A-Za-z0-9_]*)\s*(?::\s*([A-Za-z0-9_ \t]+?))?\s*\{$`)
	reIdentifier = regexp.MustCompile(`^\$[A-Za-z0-9_]*$`)
)

type parser struct {
	lines []string
	pos   int
}

// Compile parses rule source and compiles every string pattern onto the
// regexp engine. The whole source is rejected on the first syntax error.
func Compile(source string) (*Rules, error) {
	p := &parser{lines: strings.Split(source, "\n")}
	var rules []rule
	seen := map[string]int{}

	for {
		line, n, ok := p.next()
		if !ok {
			break
		}
		m := reRuleHeader.FindStringSubmatch(line)
		if m == nil {
			return nil, errAt(n, "expected rule declaration, got %q", line)
		}
		ru, err := p.parseRuleBody(m[1], m[2])
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[ru.name]; dup {
			return nil, errAt(n, "duplicate rule %q (first declared at line %d)", ru.name, prev)
		}
		seen[ru.name] = n
		rules = append(rules, ru)
	}

	if len(rules) == 0 {
		return nil, errAt(1, "no rules in source")
	}
	return &Rules{rules: rules}, nil
}

// next returns the next significant line with comments stripped, plus its
// 1-based number. ok is false at end of input.
func (p *parser) next() (string, int, bool) {
	for p.pos < len(p.lines) {
		raw := p.lines[p.pos]
		p.pos++
		if i := strings.Index(raw, "//"); i >= 0 {
			raw = raw[:i]
		}
		line := strings.TrimSpace(raw)
		if line != "" {
			return line, p.pos, true
		}
	}
	return "", p.pos, false
}

func (p *parser) parseRuleBody(name, tagList string) (rule, error) {
	ru := rule{name: name, condition: condAnyOfThem}
	if tagList != "" {
		ru.tags = strings.Fields(tagList)
	}

	section := ""
	sawCondition := false
	for {
		line, n, ok := p.next()
		if !ok {
			return ru, errAt(n, "unterminated rule %q", name)
		}
		if line == "}" {
			if len(ru.patterns) == 0 {
				return ru, errAt(n, "rule %q has no strings", name)
			}
			if !sawCondition {
				return ru, errAt(n, "rule %q has no condition", name)
			}
			return ru, nil
		}

		switch line {
		case "meta:", "strings:", "condition:":
			section = strings.TrimSuffix(line, ":")
			continue
		}

		switch section {
		case "meta":
			pair, err := parseMeta(line, n)
			if err != nil {
				return ru, err
			}
			ru.meta = append(ru.meta, pair)
		case "strings":
			pat, err := parsePattern(line, n)
			if err != nil {
				return ru, err
			}
			ru.patterns = append(ru.patterns, pat)
		case "condition":
			cond, err := parseCondition(line, n)
			if err != nil {
				return ru, err
			}
			ru.condition = cond
			sawCondition = true
		default:
			return ru, errAt(n, "statement outside any section: %q", line)
		}
	}
}

func parseMeta(line string, n int) (MetaPair, error) {
	key, rest, found := strings.Cut(line, "=")
	if !found {
		return MetaPair{}, errAt(n, "malformed meta entry %q", line)
	}
	key = strings.TrimSpace(key)
	rest = strings.TrimSpace(rest)

	if strings.HasPrefix(rest, `"`) {
		s, err := strconv.Unquote(rest)
		if err != nil {
			return MetaPair{}, errAt(n, "malformed meta string %q", rest)
		}
		return MetaPair{Key: key, Value: s}, nil
	}
	if rest == "true" || rest == "false" {
		return MetaPair{Key: key, Value: rest == "true"}, nil
	}
	if v, err := strconv.ParseInt(rest, 10, 64); err == nil {
		return MetaPair{Key: key, Value: v}, nil
	}
	return MetaPair{}, errAt(n, "malformed meta value %q", rest)
}

func parsePattern(line string, n int) (pattern, error) {
	ident, rest, found := strings.Cut(line, "=")
	if !found {
		return pattern{}, errAt(n, "malformed string entry %q", line)
	}
	ident = strings.TrimSpace(ident)
	rest = strings.TrimSpace(rest)
	if !reIdentifier.MatchString(ident) {
		return pattern{}, errAt(n, "bad string identifier %q", ident)
	}

	nocase := false
	if strings.HasSuffix(rest, " nocase") {
		nocase = true
		rest = strings.TrimSpace(strings.TrimSuffix(rest, " nocase"))
	}

	var expr string
	switch {
	case strings.HasPrefix(rest, `"`):
		lit, err := strconv.Unquote(rest)
		if err != nil {
			return pattern{}, errAt(n, "malformed string literal %q", rest)
		}
		expr = regexp.QuoteMeta(lit)
	case strings.HasPrefix(rest, "/") && strings.HasSuffix(rest, "/") && len(rest) >= 2:
		expr = rest[1 : len(rest)-1]
	default:
		return pattern{}, errAt(n, "expected quoted literal or /regex/, got %q", rest)
	}
	if nocase {
		expr = "(?i)" + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return pattern{}, errAt(n, "bad pattern for %s: %v", ident, err)
	}
	return pattern{identifier: ident, re: re}, nil
}

func parseCondition(line string, n int) (conditionKind, error) {
	switch line {
	case "any of them":
		return condAnyOfThem, nil
	case "all of them":
		return condAllOfThem, nil
	}
	return condAnyOfThem, errAt(n, "unsupported condition %q", line)
}
