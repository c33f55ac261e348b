package types

import (
	"encoding/json"
	"testing"
)

func TestNumString(t *testing.T) {
	if got := Int(42).NumString(); got != "42" {
		t.Fatalf("Int(42) = %q", got)
	}
	if got := Number(1.5).NumString(); got != "1.5" {
		t.Fatalf("Number(1.5) = %q", got)
	}
	if got := Number(0).NumString(); got != "0" {
		t.Fatalf("Number(0) = %q", got)
	}
}

func TestMarshalJSONLeaves(t *testing.T) {
	cases := []struct {
		in   ScanValue
		want string
	}{
		{String("hi"), `"hi"`},
		{Bytes([]byte("raw")), `"raw"`},
		{Int(7), `7`},
		{Bool(true), `true`},
		{Sequence(), `[]`},
		{Mapping(), `{}`},
		{Unknown(3.5), `"3.5"`},
	}
	for _, tc := range cases {
		b, err := json.Marshal(tc.in)
		if err != nil {
			t.Fatalf("marshal %+v: %v", tc.in, err)
		}
		if string(b) != tc.want {
			t.Errorf("marshal %+v = %s, want %s", tc.in, b, tc.want)
		}
	}
}

func TestMarshalJSONMappingKeepsOrder(t *testing.T) {
	v := Mapping(
		Pair{Key: "zebra", Value: Int(1)},
		Pair{Key: "apple", Value: Int(2)},
		Pair{Key: "mango", Value: Sequence(String("a"), String("b"))},
	)
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"zebra":1,"apple":2,"mango":["a","b"]}`
	if string(b) != want {
		t.Fatalf("mapping json = %s, want %s", b, want)
	}
}

func TestStringify(t *testing.T) {
	if got := Stringify(nil); got != "<nil>" {
		t.Fatalf("Stringify(nil) = %q", got)
	}
	if got := Stringify(3.5); got != "3.5" {
		t.Fatalf("Stringify(3.5) = %q", got)
	}
}
