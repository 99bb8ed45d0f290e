package phparray

import (
	"strings"
	"testing"
)

func TestFromJSON_PreservesKeyOrder(t *testing.T) {
	v, err := FromJSONString(`{"zulu": 1, "alpha": 2, "mike": 3}`)
	if err != nil {
		t.Fatalf("FromJSON failed: %v", err)
	}

	entries, err := v.AsMapping()
	if err != nil {
		t.Fatalf("AsMapping failed: %v", err)
	}

	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
	}
	if strings.Join(keys, " ") != "zulu alpha mike" {
		t.Errorf("Unexpected key order: %v", keys)
	}
}

func TestFromJSON_DuplicateKeys(t *testing.T) {
	v, err := FromJSONString(`{"a": 1, "b": 2, "a": 3}`)
	if err != nil {
		t.Fatalf("FromJSON failed: %v", err)
	}

	got := Render(v, WithIndent(IndentNone))
	expected := "[\n\"a\" => 3,\n\"b\" => 2\n]"
	if got != expected {
		t.Errorf("Render = %q, want %q", got, expected)
	}
}

func TestFromJSON_Scalars(t *testing.T) {
	tests := []struct {
		input    string
		kind     Kind
		expected string
	}{
		{`null`, KindNull, "null"},
		{`true`, KindBool, "true"},
		{`false`, KindBool, "false"},
		{`42`, KindNumber, "42"},
		{`-0`, KindNumber, "0"},
		{`9007199254740993`, KindNumber, "9007199254740993"},
		{`1e21`, KindNumber, "1e+21"},
		{`2.50`, KindNumber, "2.5"},
		{`"aé\n"`, KindText, `"aé\n"`},
		{`  [ ]  `, KindSequence, "[\n]"},
		{`{}`, KindMapping, "[\n]"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := FromJSONString(tt.input)
			if err != nil {
				t.Fatalf("FromJSON failed: %v", err)
			}
			if v.Kind() != tt.kind {
				t.Errorf("Kind = %s, want %s", v.Kind(), tt.kind)
			}
			if got := Render(v); got != tt.expected {
				t.Errorf("Render = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFromJSON_Invalid(t *testing.T) {
	inputs := []string{``, `{`, `[1,]`, `{"a" 1}`, `nope`}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			if _, err := FromJSONString(input); err == nil {
				t.Errorf("Expected error for %q", input)
			}
		})
	}
}
