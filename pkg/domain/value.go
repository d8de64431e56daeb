package domain

import (
	"fmt"
	"hash/fnv"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// InconvertibleError indicates a Go value whose domain is detectable but
// whose shape FromGo cannot represent (e.g. a struct or a non-string-keyed
// map).
type InconvertibleError struct {
	Type string
}

func (e *InconvertibleError) Error() string {
	return fmt.Sprintf("cannot convert value of type %s to a domain value", e.Type)
}

func NewInconvertibleError(v any) *InconvertibleError {
	return &InconvertibleError{Type: fmt.Sprintf("%T", v)}
}

// GoFunc is the callable shape carried by Function values.
type GoFunc func(args ...Value) (Value, error)

// Value is the tagged union every domain variant implements.
type Value interface {
	Domain() Name
	Inspect() string
	Go() any
	Hash() uint32
}

type String struct {
	Value string
}

func (s *String) Domain() Name    { return STR_DOMAIN }
func (s *String) Inspect() string { return strconv.Quote(s.Value) }
func (s *String) Go() any         { return s.Value }
func (s *String) Hash() uint32    { return hashString(s.Value) }

type Number struct {
	Value float64
}

func (n *Number) Domain() Name { return NUM_DOMAIN }
func (n *Number) Inspect() string {
	if n.Value == math.Trunc(n.Value) && !math.IsInf(n.Value, 0) {
		return strconv.FormatInt(int64(n.Value), 10)
	}
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}
func (n *Number) Go() any      { return n.Value }
func (n *Number) Hash() uint32 { return hashString(strconv.FormatFloat(n.Value, 'b', -1, 64)) }

type Array struct {
	Items []Value
}

func (a *Array) Domain() Name { return ARR_DOMAIN }
func (a *Array) Inspect() string {
	parts := make([]string, len(a.Items))
	for i, it := range a.Items {
		parts[i] = it.Inspect()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (a *Array) Go() any {
	out := make([]any, len(a.Items))
	for i, it := range a.Items {
		out[i] = it.Go()
	}
	return out
}
func (a *Array) Hash() uint32 {
	h := fnv.New32a()
	for _, it := range a.Items {
		fmt.Fprintf(h, "%d,", it.Hash())
	}
	return h.Sum32()
}

type Object struct {
	Fields map[string]Value
}

func (o *Object) Domain() Name { return OBJ_DOMAIN }
func (o *Object) Inspect() string {
	keys := sortedKeys(o.Fields)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + o.Fields[k].Inspect()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
func (o *Object) Go() any {
	out := make(map[string]any, len(o.Fields))
	for k, v := range o.Fields {
		out[k] = v.Go()
	}
	return out
}
func (o *Object) Hash() uint32 {
	h := fnv.New32a()
	for _, k := range sortedKeys(o.Fields) {
		fmt.Fprintf(h, "%s=%d,", k, o.Fields[k].Hash())
	}
	return h.Sum32()
}

type Boolean struct {
	Value bool
}

func (b *Boolean) Domain() Name    { return BOOL_DOMAIN }
func (b *Boolean) Inspect() string { return strconv.FormatBool(b.Value) }
func (b *Boolean) Go() any         { return b.Value }
func (b *Boolean) Hash() uint32 {
	if b.Value {
		return 1
	}
	return 0
}

type Null struct{}

func (n *Null) Domain() Name    { return NULL_DOMAIN }
func (n *Null) Inspect() string { return "null" }
func (n *Null) Go() any         { return nil }
func (n *Null) Hash() uint32    { return hashString("null") }

type Undefined struct{}

func (u *Undefined) Domain() Name    { return UNDEFINED_DOMAIN }
func (u *Undefined) Inspect() string { return "undefined" }
func (u *Undefined) Go() any         { return nil }
func (u *Undefined) Hash() uint32    { return hashString("undefined") }

type Function struct {
	Name string
	Fn   GoFunc
}

func (f *Function) Domain() Name { return FN_DOMAIN }
func (f *Function) Inspect() string {
	if f.Name != "" {
		return "fn " + f.Name
	}
	return "fn"
}
func (f *Function) Go() any      { return f.Fn }
func (f *Function) Hash() uint32 { return hashString("fn:" + f.Name) }

// Shared singletons for the payload-free variants.
var (
	NULL      = &Null{}
	UNDEFINED = &Undefined{}
	TRUE      = &Boolean{Value: true}
	FALSE     = &Boolean{Value: false}
)

// Bool returns the shared Boolean for b.
func Bool(b bool) *Boolean {
	if b {
		return TRUE
	}
	return FALSE
}

// Str builds a String value.
func Str(s string) *String { return &String{Value: s} }

// Num builds a Number value.
func Num(f float64) *Number { return &Number{Value: f} }

// Arr builds an Array value.
func Arr(items ...Value) *Array { return &Array{Items: items} }

// Obj builds an Object value.
func Obj(fields map[string]Value) *Object {
	if fields == nil {
		fields = map[string]Value{}
	}
	return &Object{Fields: fields}
}

// Fn builds a named Function value.
func Fn(name string, fn GoFunc) *Function { return &Function{Name: name, Fn: fn} }

// FromGo converts a plain Go value into a tagged Value, recursing into
// slices and string-keyed maps. Undetectable values yield *UndetectableError.
func FromGo(v any) (Value, error) {
	if val, ok := v.(Value); ok {
		return val, nil
	}
	name, err := DetectStrict(v)
	if err != nil {
		return nil, err
	}
	switch name {
	case NULL_DOMAIN:
		return NULL, nil
	case BOOL_DOMAIN:
		return Bool(v.(bool)), nil
	case STR_DOMAIN:
		return Str(v.(string)), nil
	case NUM_DOMAIN:
		return Num(toFloat(v)), nil
	case FN_DOMAIN:
		if fn, ok := v.(GoFunc); ok {
			return Fn("", fn), nil
		}
		return nil, NewInconvertibleError(v)
	case ARR_DOMAIN:
		rv := reflect.ValueOf(v)
		arr := make([]Value, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			conv, err := FromGo(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			arr[i] = conv
		}
		return Arr(arr...), nil
	case OBJ_DOMAIN:
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Pointer {
			rv = rv.Elem()
			v = rv.Interface()
		}
		if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
			return nil, NewInconvertibleError(v)
		}
		fields := make(map[string]Value, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			conv, err := FromGo(iter.Value().Interface())
			if err != nil {
				return nil, err
			}
			fields[iter.Key().String()] = conv
		}
		return Obj(fields), nil
	default:
		return nil, NewInconvertibleError(v)
	}
}

// Equal compares two values structurally. Values of different domains are
// never equal; arrays and objects compare element-wise.
func Equal(a, b Value) bool {
	if a.Domain() != b.Domain() {
		return false
	}
	switch x := a.(type) {
	case *String:
		return x.Value == b.(*String).Value
	case *Number:
		return x.Value == b.(*Number).Value
	case *Boolean:
		return x.Value == b.(*Boolean).Value
	case *Null, *Undefined:
		return true
	case *Function:
		return a == b
	case *Array:
		y := b.(*Array)
		if len(x.Items) != len(y.Items) {
			return false
		}
		for i := range x.Items {
			if !Equal(x.Items[i], y.Items[i]) {
				return false
			}
		}
		return true
	case *Object:
		y := b.(*Object)
		if len(x.Fields) != len(y.Fields) {
			return false
		}
		for k, v := range x.Fields {
			w, ok := y.Fields[k]
			if !ok || !Equal(v, w) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint8:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	case float32:
		return float64(n)
	case float64:
		return n
	default:
		return 0
	}
}

func sortedKeys(m map[string]Value) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Helper for hashing strings
func hashString(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}
