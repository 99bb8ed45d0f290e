package phparray

import (
	"errors"
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// ============================================================
// Lua Bridge
// ============================================================
//
// Converts values produced by a Lua chunk to Value. A table whose keys are
// exactly 1..n becomes a sequence; any other table becomes a mapping in
// insertion order. Functions, userdata, threads and channels are rejected
// with an UnsupportedValueError. Tables must not reference themselves.

// ErrNoLuaValue is returned when a Lua chunk returns nothing.
var ErrNoLuaValue = errors.New("lua chunk returned no value")

// EvalLua runs a Lua chunk and converts the value it returns.
func EvalLua(src string) (*Value, error) {
	return evalLua(func(L *lua.LState) error {
		return L.DoString(src)
	})
}

// EvalLuaFile runs a Lua file and converts the value it returns.
func EvalLuaFile(path string) (*Value, error) {
	return evalLua(func(L *lua.LState) error {
		return L.DoFile(path)
	})
}

func evalLua(run func(L *lua.LState) error) (v *Value, err error) {
	L := newLuaState()
	defer L.Close()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()

	top := L.GetTop()
	if err := run(L); err != nil {
		return nil, fmt.Errorf("lua: %w", err)
	}
	if L.GetTop() == top {
		return nil, ErrNoLuaValue
	}
	return FromLua(L.Get(-1))
}

// newLuaState opens only the libraries a data chunk needs: no io, os,
// debug or package.
func newLuaState() *lua.LState {
	L := lua.NewState(lua.Options{
		SkipOpenLibs: true,
	})
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	return L
}

// FromLua converts a Lua value to a Value.
func FromLua(lv lua.LValue) (*Value, error) {
	switch v := lv.(type) {
	case nil, *lua.LNilType:
		return Null(), nil
	case lua.LBool:
		return Bool(bool(v)), nil
	case lua.LNumber:
		return Number(float64(v)), nil
	case lua.LString:
		return Text(string(v)), nil
	case *lua.LTable:
		return fromLuaTable(v)
	default:
		return nil, &UnsupportedValueError{Kind: lv.Type().String(), Repr: lv.String()}
	}
}

type luaPair struct {
	key lua.LValue
	val lua.LValue
}

func fromLuaTable(t *lua.LTable) (*Value, error) {
	var pairs []luaPair
	for k, v := t.Next(lua.LNil); k != lua.LNil; k, v = t.Next(k) {
		pairs = append(pairs, luaPair{key: k, val: v})
	}

	if n, ok := luaSequenceLen(pairs); ok {
		items := make([]*Value, 0, n)
		for i := 1; i <= n; i++ {
			item, err := FromLua(t.RawGetInt(i))
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i-1, err)
			}
			items = append(items, item)
		}
		return Sequence(items...), nil
	}

	m := Mapping()
	for _, p := range pairs {
		key, err := luaKeyString(p.key)
		if err != nil {
			return nil, err
		}
		val, err := FromLua(p.val)
		if err != nil {
			return nil, fmt.Errorf("[%q]: %w", key, err)
		}
		m.Set(key, val)
	}
	return m, nil
}

// luaSequenceLen reports whether the keys are exactly the integers 1..n.
func luaSequenceLen(pairs []luaPair) (int, bool) {
	maxN := 0
	for _, p := range pairs {
		kn, ok := p.key.(lua.LNumber)
		if !ok {
			return 0, false
		}
		n := int(kn)
		if float64(n) != float64(kn) || n < 1 {
			return 0, false
		}
		if n > maxN {
			maxN = n
		}
	}
	// Keys are unique, so a maximum equal to the count means no holes.
	return maxN, maxN == len(pairs)
}

func luaKeyString(k lua.LValue) (string, error) {
	switch v := k.(type) {
	case lua.LString:
		return string(v), nil
	case lua.LNumber:
		return formatNumber(float64(v)), nil
	case lua.LBool:
		return v.String(), nil
	default:
		return "", &UnsupportedValueError{Kind: k.Type().String(), Repr: k.String()}
	}
}
