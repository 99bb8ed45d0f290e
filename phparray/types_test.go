package phparray

import (
	"math"
	"testing"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindNull, "null"},
		{KindBool, "bool"},
		{KindNumber, "number"},
		{KindText, "text"},
		{KindSequence, "sequence"},
		{KindMapping, "mapping"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}

func TestValue_Constructors(t *testing.T) {
	tests := []struct {
		name  string
		value *Value
		kind  Kind
	}{
		{"null", Null(), KindNull},
		{"bool", Bool(true), KindBool},
		{"number", Number(1.5), KindNumber},
		{"int", Int(3), KindNumber},
		{"text", Text("x"), KindText},
		{"sequence", Sequence(Int(1)), KindSequence},
		{"mapping", Mapping(Pair("a", Int(1))), KindMapping},
		{"zero value", &Value{}, KindNull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value.Kind() != tt.kind {
				t.Errorf("Kind = %s, want %s", tt.value.Kind(), tt.kind)
			}
		})
	}

	var nilValue *Value
	if !nilValue.IsNull() || nilValue.Kind() != KindNull {
		t.Errorf("nil *Value should be null")
	}
}

func TestValue_Accessors(t *testing.T) {
	if b, err := Bool(true).AsBool(); err != nil || !b {
		t.Errorf("AsBool = %v, %v", b, err)
	}
	if f, err := Number(2.5).AsNumber(); err != nil || f != 2.5 {
		t.Errorf("AsNumber = %v, %v", f, err)
	}
	if f, err := Int(7).AsNumber(); err != nil || f != 7 {
		t.Errorf("AsNumber(Int) = %v, %v", f, err)
	}
	if n, err := Number(4).AsInt(); err != nil || n != 4 {
		t.Errorf("AsInt = %v, %v", n, err)
	}
	if _, err := Number(4.5).AsInt(); err == nil {
		t.Errorf("AsInt(4.5) should fail")
	}
	if _, err := Number(math.Inf(1)).AsInt(); err == nil {
		t.Errorf("AsInt(Inf) should fail")
	}
	if s, err := Text("hi").AsText(); err != nil || s != "hi" {
		t.Errorf("AsText = %v, %v", s, err)
	}
	if _, err := Text("hi").AsBool(); err == nil {
		t.Errorf("AsBool on text should fail")
	}

	var nilValue *Value
	if _, err := nilValue.AsText(); err == nil {
		t.Errorf("AsText on nil should fail")
	}

	seq := Sequence(Int(1), Int(2))
	items, err := seq.AsSequence()
	if err != nil || len(items) != 2 {
		t.Fatalf("AsSequence = %v, %v", items, err)
	}
	if _, err := seq.Index(2); err == nil {
		t.Errorf("Index out of bounds should fail")
	}
	if v, err := seq.Index(1); err != nil || v != items[1] {
		t.Errorf("Index(1) = %v, %v", v, err)
	}
}

func TestValue_MappingKeysStayUnique(t *testing.T) {
	m := Mapping(
		Pair("b", Int(1)),
		Pair("a", Int(2)),
		Pair("b", Int(3)),
	)

	entries, err := m.AsMapping()
	if err != nil {
		t.Fatalf("AsMapping failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].Key != "b" || entries[1].Key != "a" {
		t.Errorf("Unexpected key order: %s, %s", entries[0].Key, entries[1].Key)
	}
	if n, _ := m.Get("b").AsInt(); n != 3 {
		t.Errorf("Expected last value for repeated key, got %d", n)
	}
}

func TestValue_SetAndAppend(t *testing.T) {
	m := Mapping()
	m.Set("x", Int(1))
	m.Set("y", Int(2))
	m.Set("x", Int(10))

	if m.Len() != 2 {
		t.Fatalf("Expected 2 entries, got %d", m.Len())
	}
	if m.Get("missing") != nil {
		t.Errorf("Get on missing key should return nil")
	}

	seq := Sequence()
	seq.Append(Text("a"))
	seq.Append(Null())
	if seq.Len() != 2 {
		t.Errorf("Expected 2 elements, got %d", seq.Len())
	}

	defer func() {
		if recover() == nil {
			t.Errorf("Append on a mapping should panic")
		}
	}()
	m.Append(Int(1))
}
