// Package nums provides numeric helpers and the Num-domain
// implementations of the standard traits.
package nums

import (
	"fmt"
	"math"

	"github.com/funvibe/traitkit/internal/config"
	"github.com/funvibe/traitkit/pkg/domain"
	"github.com/funvibe/traitkit/pkg/trait"
)

// Clamp limits v to the inclusive range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// InRange reports lo <= v < hi.
func InRange(v, lo, hi float64) bool {
	return v >= lo && v < hi
}

// RoundTo rounds v to the given number of decimal places.
func RoundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

// Install registers the Num-domain implementations of the standard traits.
func Install(r *trait.Registry) {
	d := domain.NUM_DOMAIN

	r.Register(config.EqTraitName, d, trait.Impl{
		config.IsMethodName: func(recv domain.Value, args ...domain.Value) (domain.Value, error) {
			if len(args) != 2 {
				return nil, trait.NewArityError(config.IsMethodName, 2, len(args))
			}
			return domain.Bool(domain.Equal(args[0], args[1])), nil
		},
		config.IsntMethodName: func(recv domain.Value, args ...domain.Value) (domain.Value, error) {
			if len(args) != 2 {
				return nil, trait.NewArityError(config.IsntMethodName, 2, len(args))
			}
			return domain.Bool(!domain.Equal(args[0], args[1])), nil
		},
	})

	r.Register(config.OrdTraitName, d, trait.Impl{
		config.CompareMethodName: func(recv domain.Value, args ...domain.Value) (domain.Value, error) {
			if len(args) != 2 {
				return nil, trait.NewArityError(config.CompareMethodName, 2, len(args))
			}
			a, aok := args[0].(*domain.Number)
			b, bok := args[1].(*domain.Number)
			if !aok || !bok {
				return nil, fmt.Errorf("type mismatch in compare: %s vs %s", args[0].Domain(), args[1].Domain())
			}
			switch {
			case a.Value < b.Value:
				return domain.Num(-1), nil
			case a.Value > b.Value:
				return domain.Num(1), nil
			default:
				return domain.Num(0), nil
			}
		},
	})

	r.Register(config.ShowTraitName, d, trait.Impl{
		config.ShowMethodName: func(recv domain.Value, args ...domain.Value) (domain.Value, error) {
			return domain.Str(args[0].Inspect()), nil
		},
	})

	r.Register(config.DefaultTraitName, d, trait.Impl{
		config.ValueMethodName: func(recv domain.Value, args ...domain.Value) (domain.Value, error) {
			return domain.Num(0), nil
		},
	})
}
