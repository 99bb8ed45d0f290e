package phparray

import (
	"encoding"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// ============================================================
// Go Bridge
// ============================================================
//
// Converts loosely typed Go values into Value. This is the boundary where
// unsupported kinds (funcs, channels, complex numbers, unsafe pointers) are
// rejected with an UnsupportedValueError.
//
//   - nil, nil pointers, nil maps and nil slices become null
//   - bool, integers and floats become numbers and bools
//   - strings, encoding.TextMarshaler and json.Number keep their text form
//   - []byte becomes base64 text, as encoding/json does
//   - slices and arrays become sequences
//   - maps become mappings in sorted key order (Go maps have no insertion order)
//   - structs become mappings in field order, honoring `json` tags
//   - *Value and Value pass through unchanged, []Entry becomes a mapping

// RenderAny converts v with FromGo and renders the result.
func RenderAny(v any, opts ...Option) (string, error) {
	val, err := FromGo(v)
	if err != nil {
		return "", err
	}
	return Render(val, opts...), nil
}

// FromGo converts a Go value to a Value.
func FromGo(v any) (*Value, error) {
	return fromGo(reflect.ValueOf(v))
}

var (
	valueType         = reflect.TypeOf(Value{})
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
	entriesType       = reflect.TypeOf([]Entry(nil))
	jsonNumberType    = reflect.TypeOf(json.Number(""))
)

func fromGo(rv reflect.Value) (*Value, error) {
	if !rv.IsValid() {
		return Null(), nil
	}

	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return Null(), nil
		}
		if rv.Type().Elem() == valueType {
			return rv.Interface().(*Value), nil
		}
	case reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
	}

	if rv.Type() == valueType {
		v := rv.Interface().(Value)
		return &v, nil
	}
	if rv.Type() == entriesType {
		return Mapping(rv.Interface().([]Entry)...), nil
	}
	if rv.Type() == jsonNumberType {
		return fromJSONNumber(rv.String())
	}
	if rv.Type().Implements(textMarshalerType) && rv.CanInterface() {
		text, err := rv.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return nil, err
		}
		return Text(string(text)), nil
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return fromGo(rv.Elem())

	case reflect.Bool:
		return Bool(rv.Bool()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return Number(float64(u)), nil
		}
		return Int(int64(u)), nil

	case reflect.Float32, reflect.Float64:
		return Number(rv.Float()), nil

	case reflect.String:
		return Text(rv.String()), nil

	case reflect.Slice:
		if rv.IsNil() {
			return Null(), nil
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return Text(base64.StdEncoding.EncodeToString(rv.Bytes())), nil
		}
		return fromGoList(rv)

	case reflect.Array:
		return fromGoList(rv)

	case reflect.Map:
		if rv.IsNil() {
			return Null(), nil
		}
		return fromGoMap(rv)

	case reflect.Struct:
		return fromGoStruct(rv)

	default:
		return nil, unsupported(rv)
	}
}

func fromGoList(rv reflect.Value) (*Value, error) {
	items := make([]*Value, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		item, err := fromGo(rv.Index(i))
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		items = append(items, item)
	}
	return Sequence(items...), nil
}

func fromGoMap(rv reflect.Value) (*Value, error) {
	type keyed struct {
		key string
		val reflect.Value
	}

	pairs := make([]keyed, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		key, err := mapKeyString(iter.Key())
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, keyed{key: key, val: iter.Value()})
	}
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].key < pairs[j].key
	})

	entries := make([]Entry, 0, len(pairs))
	for _, p := range pairs {
		val, err := fromGo(p.val)
		if err != nil {
			return nil, fmt.Errorf("[%q]: %w", p.key, err)
		}
		entries = append(entries, Pair(p.key, val))
	}
	return Mapping(entries...), nil
}

func mapKeyString(k reflect.Value) (string, error) {
	if k.Kind() == reflect.Interface {
		if k.IsNil() {
			return "", unsupported(k)
		}
		k = k.Elem()
	}
	if k.Type().Implements(textMarshalerType) && k.CanInterface() {
		text, err := k.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return "", err
		}
		return string(text), nil
	}
	switch k.Kind() {
	case reflect.String:
		return k.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(k.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(k.Uint(), 10), nil
	}
	return "", unsupported(k)
}

func fromGoStruct(rv reflect.Value) (*Value, error) {
	t := rv.Type()
	entries := make([]Entry, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name, options, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" && options == "" {
			continue
		}
		if name == "" {
			name = field.Name
		}

		fv := rv.Field(i)
		if strings.Contains(options, "omitempty") && fv.IsZero() {
			continue
		}

		val, err := fromGo(fv)
		if err != nil {
			return nil, fmt.Errorf("[%q]: %w", name, err)
		}
		entries = append(entries, Pair(name, val))
	}
	return Mapping(entries...), nil
}

func fromJSONNumber(s string) (*Value, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(n), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return Number(f), nil
}

func unsupported(rv reflect.Value) error {
	repr := rv.String()
	if rv.CanInterface() {
		repr = fmt.Sprint(rv.Interface())
	}
	return &UnsupportedValueError{Kind: rv.Kind().String(), Repr: repr}
}
