package phparray

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// ============================================================
// JSON Bridge
// ============================================================
//
// Converts JSON text to Value without going through map[string]any, so
// object keys keep their document order. A key repeated within one object
// keeps its first position and takes its last value. Integer literals that
// fit in int64 stay exact; every other number becomes a float64.

// FromJSON converts JSON bytes to a Value.
func FromJSON(data []byte) (*Value, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("JSON parse error: invalid JSON")
	}
	return fromJSONResult(gjson.ParseBytes(data))
}

// FromJSONString converts a JSON string to a Value.
func FromJSONString(s string) (*Value, error) {
	return FromJSON([]byte(s))
}

func fromJSONResult(r gjson.Result) (*Value, error) {
	switch r.Type {
	case gjson.Null:
		return Null(), nil

	case gjson.False:
		return Bool(false), nil

	case gjson.True:
		return Bool(true), nil

	case gjson.Number:
		return fromJSONNumber(r.Raw)

	case gjson.String:
		return Text(r.Str), nil

	case gjson.JSON:
		if r.IsArray() {
			return fromJSONArray(r)
		}
		return fromJSONObject(r)

	default:
		return nil, fmt.Errorf("unsupported JSON type: %s", r.Type)
	}
}

func fromJSONArray(r gjson.Result) (*Value, error) {
	seq := Sequence()
	var err error
	i := 0
	r.ForEach(func(_, elem gjson.Result) bool {
		item, e := fromJSONResult(elem)
		if e != nil {
			err = fmt.Errorf("array[%d]: %w", i, e)
			return false
		}
		seq.Append(item)
		i++
		return true
	})
	if err != nil {
		return nil, err
	}
	return seq, nil
}

func fromJSONObject(r gjson.Result) (*Value, error) {
	m := Mapping()
	var err error
	r.ForEach(func(key, elem gjson.Result) bool {
		item, e := fromJSONResult(elem)
		if e != nil {
			err = fmt.Errorf("object[%q]: %w", key.Str, e)
			return false
		}
		m.Set(key.Str, item)
		return true
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}
