package phparray

import (
	"fmt"
	"math"
)

// Kind is the discriminant of a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindText
	KindSequence
	KindMapping
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Value is a renderable value. The zero Value and a nil *Value are null.
type Value struct {
	kind Kind

	boolVal bool
	numVal  float64
	intVal  int64
	isInt   bool // numeric value is intVal, not numVal
	textVal string
	seqVal  []*Value
	mapVal  []Entry
}

// Entry is a key-value pair in a mapping.
type Entry struct {
	Key   string
	Value *Value
}

// ============================================================
// Constructors
// ============================================================

// Null creates a null value.
func Null() *Value {
	return &Value{kind: KindNull}
}

// Bool creates a boolean value.
func Bool(v bool) *Value {
	return &Value{kind: KindBool, boolVal: v}
}

// Number creates a numeric value. NaN and infinities are allowed.
func Number(v float64) *Value {
	return &Value{kind: KindNumber, numVal: v}
}

// Int creates a numeric value that renders as an exact base-10 integer.
func Int(v int64) *Value {
	return &Value{kind: KindNumber, intVal: v, isInt: true}
}

// Text creates a text value.
func Text(v string) *Value {
	return &Value{kind: KindText, textVal: v}
}

// Sequence creates a sequence value.
func Sequence(values ...*Value) *Value {
	return &Value{kind: KindSequence, seqVal: values}
}

// Mapping creates a mapping from entries. A repeated key replaces the value
// of its first occurrence, so keys stay unique and keep their first position.
func Mapping(entries ...Entry) *Value {
	m := &Value{kind: KindMapping, mapVal: make([]Entry, 0, len(entries))}
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}

// Pair creates an Entry for use in Mapping construction.
func Pair(key string, value *Value) Entry {
	return Entry{Key: key, Value: value}
}

// ============================================================
// Accessors
// ============================================================

// Kind returns the value kind.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// IsNull returns true if this is a null value.
func (v *Value) IsNull() bool {
	return v == nil || v.kind == KindNull
}

// AsBool returns the boolean value.
func (v *Value) AsBool() (bool, error) {
	if err := v.expect(KindBool); err != nil {
		return false, err
	}
	return v.boolVal, nil
}

// AsNumber returns the numeric value as a float64.
func (v *Value) AsNumber() (float64, error) {
	if err := v.expect(KindNumber); err != nil {
		return 0, err
	}
	if v.isInt {
		return float64(v.intVal), nil
	}
	return v.numVal, nil
}

// AsInt returns the numeric value as an int64 if it is integral.
func (v *Value) AsInt() (int64, error) {
	if err := v.expect(KindNumber); err != nil {
		return 0, err
	}
	if v.isInt {
		return v.intVal, nil
	}
	if v.numVal != math.Trunc(v.numVal) || math.IsInf(v.numVal, 0) {
		return 0, fmt.Errorf("phparray: %v is not an integer", v.numVal)
	}
	return int64(v.numVal), nil
}

// AsText returns the text value.
func (v *Value) AsText() (string, error) {
	if err := v.expect(KindText); err != nil {
		return "", err
	}
	return v.textVal, nil
}

// AsSequence returns the sequence elements.
func (v *Value) AsSequence() ([]*Value, error) {
	if err := v.expect(KindSequence); err != nil {
		return nil, err
	}
	return v.seqVal, nil
}

// AsMapping returns the mapping entries in insertion order.
func (v *Value) AsMapping() ([]Entry, error) {
	if err := v.expect(KindMapping); err != nil {
		return nil, err
	}
	return v.mapVal, nil
}

func (v *Value) expect(k Kind) error {
	if v == nil {
		return fmt.Errorf("phparray: nil value")
	}
	if v.kind != k {
		return fmt.Errorf("phparray: expected %s, got %s", k, v.kind)
	}
	return nil
}

// Len returns the length of a sequence or mapping.
func (v *Value) Len() int {
	switch v.Kind() {
	case KindSequence:
		return len(v.seqVal)
	case KindMapping:
		return len(v.mapVal)
	default:
		return 0
	}
}

// Get returns the value stored under key in a mapping, or nil.
func (v *Value) Get(key string) *Value {
	if v.Kind() != KindMapping {
		return nil
	}
	for _, e := range v.mapVal {
		if e.Key == key {
			return e.Value
		}
	}
	return nil
}

// Index returns the i-th element of a sequence.
func (v *Value) Index(i int) (*Value, error) {
	if v.Kind() != KindSequence {
		return nil, fmt.Errorf("phparray: not a sequence")
	}
	if i < 0 || i >= len(v.seqVal) {
		return nil, fmt.Errorf("phparray: index %d out of bounds (len=%d)", i, len(v.seqVal))
	}
	return v.seqVal[i], nil
}

// ============================================================
// Mutators
// ============================================================

// Set stores val under key in a mapping. An existing key keeps its position.
func (v *Value) Set(key string, val *Value) {
	if v.Kind() != KindMapping {
		panic("phparray: cannot set on non-mapping")
	}
	for i := range v.mapVal {
		if v.mapVal[i].Key == key {
			v.mapVal[i].Value = val
			return
		}
	}
	v.mapVal = append(v.mapVal, Entry{Key: key, Value: val})
}

// Append adds a value to a sequence.
func (v *Value) Append(val *Value) {
	if v.Kind() != KindSequence {
		panic("phparray: cannot append to non-sequence")
	}
	v.seqVal = append(v.seqVal, val)
}
