package cio

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Kind identifies the variant held by a [Value].
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// Value is a generic tree of structured data: scalars, arrays, and objects
// with ordered keys. Values are immutable once constructed; the rendering
// engine only reads them.
type Value struct {
	kind Kind
	b    bool
	num  string // canonical decimal text, kept verbatim
	str  string
	arr  []Value
	obj  []Member
}

// Member is a single key-value entry of an object. Keys within one object
// are unique and keep their insertion order.
type Member struct {
	Key   string
	Value Value
}

// Null returns the null value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number returns a numeric value from its decimal text. The text is carried
// through to the output verbatim, so callers control precision and notation.
func Number(text string) Value { return Value{kind: KindNumber, num: text} }

// Int returns a numeric value from an integer.
func Int(n int64) Value { return Number(strconv.FormatInt(n, 10)) }

// Float returns a numeric value from a float, formatted with the shortest
// representation that round-trips.
func Float(f float64) Value { return Number(strconv.FormatFloat(f, 'g', -1, 64)) }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Array returns an array value.
func Array(elems ...Value) Value { return Value{kind: KindArray, arr: elems} }

// Object returns an object value with the given members, in order.
func Object(members ...Member) Value { return Value{kind: KindObject, obj: members} }

// Kind reports which variant the value holds.
func (v Value) Kind() Kind { return v.kind }

// Len reports the number of elements (arrays) or members (objects).
// Scalars have length 0.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.obj)
	default:
		return 0
	}
}

// Index returns the i-th array element. It panics if v is not an array or
// the index is out of range, mirroring slice semantics.
func (v Value) Index(i int) Value { return v.arr[i] }

// Member returns the i-th object member in insertion order.
func (v Value) Member(i int) Member { return v.obj[i] }

// Lookup returns the value for key and whether the key is present.
func (v Value) Lookup(key string) (Value, bool) {
	for _, m := range v.obj {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}

func (v Value) isContainer() bool {
	return v.kind == KindArray || v.kind == KindObject
}

// ValueOf builds a [Value] from an arbitrary Go value using reflection:
// booleans, every integer and float kind, strings, slices and arrays, maps
// (keys sorted for determinism), and structs (exported fields in declaration
// order). nil and nil pointers become Null; anything else falls back to its
// fmt.Stringer or %v text.
func ValueOf(x any) Value {
	if x == nil {
		return Null()
	}
	if v, ok := x.(Value); ok {
		return v
	}
	return reflectValue(reflect.ValueOf(x))
}

func reflectValue(rv reflect.Value) Value {
	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number(strconv.FormatUint(rv.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float())
	case reflect.String:
		return String(rv.String())
	case reflect.Slice, reflect.Array:
		elems := make([]Value, rv.Len())
		for i := range elems {
			elems[i] = reflectValue(rv.Index(i))
		}
		return Array(elems...)
	case reflect.Map:
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
		})
		members := make([]Member, 0, len(keys))
		for _, k := range keys {
			members = append(members, Member{
				Key:   fmt.Sprint(k.Interface()),
				Value: reflectValue(rv.MapIndex(k)),
			})
		}
		return Object(members...)
	case reflect.Struct:
		t := rv.Type()
		var members []Member
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			members = append(members, Member{Key: f.Name, Value: reflectValue(rv.Field(i))})
		}
		return Object(members...)
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null()
		}
		return reflectValue(rv.Elem())
	default:
		if s, ok := rv.Interface().(fmt.Stringer); ok {
			return String(s.String())
		}
		return String(fmt.Sprintf("%v", rv.Interface()))
	}
}

// objectMarker is the cell text for objects nested too deep to flatten.
const objectMarker = "[object]"

// text stringifies a leaf value for a table cell: null is blank, numbers
// keep their canonical text, arrays render as a bracketed comma-joined list,
// and objects collapse to the [object] marker.
func (v Value) text() string {
	switch v.kind {
	case KindNull:
		return ""
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return v.num
	case KindString:
		return v.str
	case KindArray:
		parts := make([]string, len(v.arr))
		for i, e := range v.arr {
			parts[i] = e.text()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindObject:
		return objectMarker
	default:
		return ""
	}
}
