package nums

import (
	"testing"

	"github.com/funvibe/traitkit/pkg/domain"
	"github.com/funvibe/traitkit/pkg/trait"
)

func TestClamp(t *testing.T) {
	tests := []struct{ v, lo, hi, want float64 }{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestInRange(t *testing.T) {
	if !InRange(0, 0, 10) {
		t.Error("lower bound should be inclusive")
	}
	if InRange(10, 0, 10) {
		t.Error("upper bound should be exclusive")
	}
}

func TestRoundTo(t *testing.T) {
	if got := RoundTo(3.14159, 2); got != 3.14 {
		t.Errorf("RoundTo = %v", got)
	}
	if got := RoundTo(2.5, 0); got != 3 {
		t.Errorf("RoundTo(2.5, 0) = %v", got)
	}
}

func TestInstall(t *testing.T) {
	r := trait.New()
	Install(r)

	got, err := r.Dispatch("Ord", "compare", domain.Num(2), domain.Num(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.(*domain.Number).Value != -1 {
		t.Errorf("compare(2, 3) = %s, want -1", got.Inspect())
	}

	got, err = r.Dispatch("Default", "value", domain.Num(99))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.(*domain.Number).Value != 0 {
		t.Errorf("default = %s, want 0", got.Inspect())
	}

	if _, err := r.Dispatch("Ord", "compare", domain.Num(1), domain.Str("x")); err == nil {
		t.Error("cross-domain compare succeeded, want type mismatch error")
	}
}
