package domain

import (
	"errors"
	"testing"
)

func TestDetect_DetectableValues(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Name
	}{
		{"nil", nil, NULL_DOMAIN},
		{"string", "hello", STR_DOMAIN},
		{"int", 42, NUM_DOMAIN},
		{"float", 3.14, NUM_DOMAIN},
		{"uint", uint(7), NUM_DOMAIN},
		{"bool", true, BOOL_DOMAIN},
		{"slice", []any{1, 2}, ARR_DOMAIN},
		{"typed slice", []string{"a"}, ARR_DOMAIN},
		{"map", map[string]any{"a": 1}, OBJ_DOMAIN},
		{"struct", struct{ X int }{1}, OBJ_DOMAIN},
		{"func", func() {}, FN_DOMAIN},
		{"go func", GoFunc(func(args ...Value) (Value, error) { return NULL, nil }), FN_DOMAIN},
		{"tagged value", Str("x"), STR_DOMAIN},
		{"nil pointer", (*struct{})(nil), NULL_DOMAIN},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Detect(tt.in)
			if !ok {
				t.Fatalf("Detect(%v) not detectable, want %s", tt.in, tt.want)
			}
			if got != tt.want {
				t.Errorf("Detect(%v) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestDetect_UndetectableValues(t *testing.T) {
	undetectable := []any{
		make(chan int),
		complex(1, 2),
	}
	for _, v := range undetectable {
		if name, ok := Detect(v); ok {
			t.Errorf("Detect(%T) = %s, want undetectable", v, name)
		}
		_, err := DetectStrict(v)
		if err == nil {
			t.Fatalf("DetectStrict(%T) = nil error, want *UndetectableError", v)
		}
		var ue *UndetectableError
		if !errors.As(err, &ue) {
			t.Errorf("DetectStrict(%T) error type = %T, want *UndetectableError", v, err)
		}
	}
}

func TestNameValid(t *testing.T) {
	for _, n := range AllNames {
		if !n.Valid() {
			t.Errorf("%s reported invalid", n)
		}
	}
	if Name("Sym").Valid() {
		t.Error("Sym reported valid")
	}
}

func TestFromGo_Roundtrip(t *testing.T) {
	in := map[string]any{
		"name":  "kit",
		"count": 3,
		"tags":  []any{"a", "b"},
		"ok":    true,
		"none":  nil,
	}
	v, err := FromGo(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	obj, ok := v.(*Object)
	if !ok {
		t.Fatalf("FromGo returned %T, want *Object", v)
	}
	if obj.Fields["name"].(*String).Value != "kit" {
		t.Errorf("name = %s", obj.Fields["name"].Inspect())
	}
	if obj.Fields["count"].(*Number).Value != 3 {
		t.Errorf("count = %s", obj.Fields["count"].Inspect())
	}
	if obj.Fields["none"] != NULL {
		t.Errorf("none = %s, want null", obj.Fields["none"].Inspect())
	}

	back := v.Go().(map[string]any)
	if back["name"] != "kit" || back["ok"] != true {
		t.Errorf("Go() roundtrip = %#v", back)
	}
}

func TestFromGo_TypedSliceAndMap(t *testing.T) {
	v, err := FromGo([]string{"a", "b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := v.Inspect(); got != `["a", "b"]` {
		t.Errorf("Inspect() = %s", got)
	}

	v, err = FromGo(map[string]int{"n": 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := v.Inspect(); got != `{n: 1}` {
		t.Errorf("Inspect() = %s", got)
	}
}

func TestFromGo_Errors(t *testing.T) {
	if _, err := FromGo(make(chan int)); err == nil {
		t.Fatal("expected error for chan")
	}
	var ie *InconvertibleError
	_, err := FromGo(struct{ X int }{1})
	if !errors.As(err, &ie) {
		t.Fatalf("FromGo(struct) error = %v, want *InconvertibleError", err)
	}
	_, err = FromGo(map[int]string{1: "x"})
	if !errors.As(err, &ie) {
		t.Fatalf("FromGo(map[int]) error = %v, want *InconvertibleError", err)
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"equal strings", Str("a"), Str("a"), true},
		{"unequal strings", Str("a"), Str("b"), false},
		{"equal numbers", Num(2), Num(2), true},
		{"cross domain", Str("2"), Num(2), false},
		{"nulls", NULL, &Null{}, true},
		{"nested arrays", Arr(Num(1), Arr(Str("x"))), Arr(Num(1), Arr(Str("x"))), true},
		{"array length", Arr(Num(1)), Arr(Num(1), Num(2)), false},
		{"objects", Obj(map[string]Value{"a": Num(1)}), Obj(map[string]Value{"a": Num(1)}), true},
		{"object keys", Obj(map[string]Value{"a": Num(1)}), Obj(map[string]Value{"b": Num(1)}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%s, %s) = %v, want %v", tt.a.Inspect(), tt.b.Inspect(), got, tt.want)
			}
		})
	}
}

func TestInspect(t *testing.T) {
	v := Obj(map[string]Value{
		"b": Num(2),
		"a": Arr(Str("x"), Bool(true), NULL),
	})
	want := `{a: ["x", true, null], b: 2}`
	if got := v.Inspect(); got != want {
		t.Errorf("Inspect() = %s, want %s", got, want)
	}
}

func TestHash_EqualValuesAgree(t *testing.T) {
	a := Arr(Str("x"), Num(1))
	b := Arr(Str("x"), Num(1))
	if a.Hash() != b.Hash() {
		t.Errorf("equal arrays hash differently: %d vs %d", a.Hash(), b.Hash())
	}
	if Str("x").Hash() == Str("y").Hash() {
		t.Error("distinct strings collide in this fixture")
	}
}
