// Package domain defines the runtime value model of traitkit.
//
// Every value that flows through trait dispatch is a tagged Value belonging
// to exactly one Name (domain). The tagged representation is built once at
// the Go boundary (FromGo), so dispatch becomes a plain tag lookup instead
// of repeated runtime type probing.
package domain

import (
	"fmt"
	"reflect"
)

// Name identifies the runtime category a Value belongs to.
type Name string

const (
	STR_DOMAIN       Name = "Str"
	NUM_DOMAIN       Name = "Num"
	ARR_DOMAIN       Name = "Arr"
	OBJ_DOMAIN       Name = "Obj"
	BOOL_DOMAIN      Name = "Bool"
	NULL_DOMAIN      Name = "Null"
	UNDEFINED_DOMAIN Name = "Undefined"
	FN_DOMAIN        Name = "Fn"
)

// AllNames lists every domain in a stable order.
var AllNames = []Name{
	STR_DOMAIN, NUM_DOMAIN, ARR_DOMAIN, OBJ_DOMAIN,
	BOOL_DOMAIN, NULL_DOMAIN, UNDEFINED_DOMAIN, FN_DOMAIN,
}

// Valid reports whether n is one of the fixed domain names.
func (n Name) Valid() bool {
	switch n {
	case STR_DOMAIN, NUM_DOMAIN, ARR_DOMAIN, OBJ_DOMAIN,
		BOOL_DOMAIN, NULL_DOMAIN, UNDEFINED_DOMAIN, FN_DOMAIN:
		return true
	default:
		return false
	}
}

// UndetectableError indicates a Go value whose runtime type maps to no domain.
type UndetectableError struct {
	Type string
}

func (e *UndetectableError) Error() string {
	return fmt.Sprintf("cannot detect domain for value of type %s", e.Type)
}

func NewUndetectableError(v any) *UndetectableError {
	return &UndetectableError{Type: fmt.Sprintf("%T", v)}
}

// Detect classifies an arbitrary Go value into a domain.
//
// Classification order matters: nil before everything, tagged Values pass
// through, arrays before generic objects. Values with no domain (channels,
// complex numbers) report ok=false rather than panicking. Detect is pure
// and safe for concurrent use.
func Detect(v any) (Name, bool) {
	switch x := v.(type) {
	case nil:
		return NULL_DOMAIN, true
	case Value:
		return x.Domain(), true
	case bool:
		return BOOL_DOMAIN, true
	case string:
		return STR_DOMAIN, true
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return NUM_DOMAIN, true
	case GoFunc:
		return FN_DOMAIN, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return ARR_DOMAIN, true
	case reflect.Map, reflect.Struct:
		return OBJ_DOMAIN, true
	case reflect.Func:
		return FN_DOMAIN, true
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return NULL_DOMAIN, true
		}
		return Detect(rv.Elem().Interface())
	default:
		return "", false
	}
}

// DetectStrict is Detect with the sentinel converted into an error.
func DetectStrict(v any) (Name, error) {
	name, ok := Detect(v)
	if !ok {
		return "", NewUndetectableError(v)
	}
	return name, nil
}
