package yarex

import (
	"errors"
	"strings"
	"testing"
)

const twoRules = `
rule first : net http {
    meta:
        author = "probe"
        severity = 3
        active = true
    strings:
        $url = /https?:\/\/[^\s]+/
    condition:
        any of them
}

rule second {
    strings:
        $a = "alpha"
        $b = "beta"
    condition:
        all of them
}
`

func TestCompileTwoRules(t *testing.T) {
	rules, err := Compile(twoRules)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if rules.Count() != 2 {
		t.Fatalf("expected 2 rules, got %d", rules.Count())
	}
	names := rules.RuleNames()
	if names[0] != "first" || names[1] != "second" {
		t.Fatalf("rule names out of order: %v", names)
	}
}

func TestCompileMetaAndTags(t *testing.T) {
	rules, err := Compile(twoRules)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	ru := rules.rules[0]
	if len(ru.tags) != 2 || ru.tags[0] != "net" || ru.tags[1] != "http" {
		t.Fatalf("tags: %v", ru.tags)
	}
	if len(ru.meta) != 3 {
		t.Fatalf("meta count: %d", len(ru.meta))
	}
	if ru.meta[0].Key != "author" || ru.meta[0].Value != "probe" {
		t.Fatalf("meta[0]: %+v", ru.meta[0])
	}
	if ru.meta[1].Value != int64(3) {
		t.Fatalf("meta[1] should parse as int64: %+v", ru.meta[1])
	}
	if ru.meta[2].Value != true {
		t.Fatalf("meta[2] should parse as bool: %+v", ru.meta[2])
	}
}

func TestCompileStripsComments(t *testing.T) {
	src := `
// leading comment
rule commented { // trailing
    strings:
        $x = "needle" // another
    condition:
        any of them
}
`
	rules, err := Compile(src)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if rules.Count() != 1 {
		t.Fatalf("expected 1 rule, got %d", rules.Count())
	}
}

func TestCompileNocase(t *testing.T) {
	src := `
rule shout {
    strings:
        $x = "Needle" nocase
    condition:
        any of them
}
`
	rules, err := Compile(src)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	var got *Outcome
	rules.Scan([]byte("NEEDLE in a haystack"), func(o Outcome) CallbackResult {
		got = &o
		return ScanContinue
	})
	if got == nil || !got.Matches {
		t.Fatalf("nocase pattern should match uppercase input: %+v", got)
	}
}

func TestCompileErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		line int
	}{
		{"empty source", "", 1},
		{"garbage header", "not a rule", 1},
		{"bad identifier", "rule r {\n strings:\n x = \"a\"\n condition:\n any of them\n}", 3},
		{"bad condition", "rule r {\n strings:\n $x = \"a\"\n condition:\n 2 of them\n}", 5},
		{"unterminated", "rule r {\n strings:\n $x = \"a\"", 3},
		{"no strings", "rule r {\n condition:\n any of them\n}", 4},
		{"bad regex", "rule r {\n strings:\n $x = /(/\n condition:\n any of them\n}", 3},
		{"statement outside section", "rule r {\n $x = \"a\"\n}", 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compile(tc.src)
			if err == nil {
				t.Fatalf("expected compile error")
			}
			var ce *CompileError
			if !errors.As(err, &ce) {
				t.Fatalf("expected *CompileError, got %T", err)
			}
			if ce.Line != tc.line {
				t.Fatalf("line = %d, want %d (%v)", ce.Line, tc.line, ce)
			}
		})
	}
}

func TestCompileRejectsDuplicateRuleNames(t *testing.T) {
	src := `
rule dup {
    strings:
        $x = "a"
    condition:
        any of them
}
rule dup {
    strings:
        $y = "b"
    condition:
        any of them
}
`
	_, err := Compile(src)
	if err == nil || !strings.Contains(err.Error(), "duplicate rule") {
		t.Fatalf("expected duplicate rule error, got %v", err)
	}
}

func TestRuleStringCompiles(t *testing.T) {
	src := RuleString(`\d+`, "digits")
	rules, err := Compile(src)
	if err != nil {
		t.Fatalf("synthesized rule does not compile: %v\n%s", err, src)
	}
	if rules.RuleNames()[0] != "digits" {
		t.Fatalf("rule name: %v", rules.RuleNames())
	}
}

func TestRulesForPatterns(t *testing.T) {
	src := RulesForPatterns([]string{"foo", "bar"})
	rules, err := Compile(src)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	names := rules.RuleNames()
	if len(names) != 2 || names[0] != "RULEGAZE_1" || names[1] != "RULEGAZE_2" {
		t.Fatalf("synthesized names: %v", names)
	}
}
