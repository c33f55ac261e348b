package rulegaze

import "testing"

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestPickInt(t *testing.T) {
	if got := pickInt(120, intPtr(100), intPtr(80)); got != 120 {
		t.Fatalf("cli flag should win: %d", got)
	}
	if got := pickInt(0, intPtr(100), intPtr(80)); got != 100 {
		t.Fatalf("local config should beat global: %d", got)
	}
	if got := pickInt(0, nil, intPtr(80)); got != 80 {
		t.Fatalf("global config should apply: %d", got)
	}
	if got := pickInt(0, nil, nil); got != 0 {
		t.Fatalf("everything unset should be zero: %d", got)
	}
	// A zero in the config counts as unset, same as the flag.
	if got := pickInt(0, intPtr(0), intPtr(80)); got != 80 {
		t.Fatalf("zero local value should fall through: %d", got)
	}
}

func TestPickBool(t *testing.T) {
	if !pickBool(true, boolPtr(false), boolPtr(false)) {
		t.Fatalf("set cli flag should win")
	}
	if !pickBool(false, boolPtr(true), boolPtr(false)) {
		t.Fatalf("local config should apply")
	}
	if pickBool(false, boolPtr(false), boolPtr(true)) {
		t.Fatalf("explicit local false should mask global true")
	}
	if !pickBool(false, nil, boolPtr(true)) {
		t.Fatalf("global config should apply when local is absent")
	}
	if pickBool(false, nil, nil) {
		t.Fatalf("everything unset should be false")
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	want := map[string]bool{"scan": false, "rules": false, "version": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}
