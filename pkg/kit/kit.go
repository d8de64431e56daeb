// Package kit wires the helper namespaces into a trait registry. Each
// namespace package exports plain Go helpers plus an Install function that
// registers its domain's implementations of the standard traits; Install
// here runs all of them against one registry.
package kit

import (
	"fmt"

	"github.com/funvibe/traitkit/internal/config"
	"github.com/funvibe/traitkit/pkg/domain"
	"github.com/funvibe/traitkit/pkg/kit/arrs"
	"github.com/funvibe/traitkit/pkg/kit/nums"
	"github.com/funvibe/traitkit/pkg/kit/objs"
	"github.com/funvibe/traitkit/pkg/kit/strs"
	"github.com/funvibe/traitkit/pkg/trait"
)

// Standard trait and method names.
const (
	EqTrait      = config.EqTraitName
	OrdTrait     = config.OrdTraitName
	ShowTrait    = config.ShowTraitName
	DefaultTrait = config.DefaultTraitName
	LenTrait     = config.LenTraitName

	IsMethod      = config.IsMethodName
	IsntMethod    = config.IsntMethodName
	CompareMethod = config.CompareMethodName
	LtMethod      = config.LtMethodName
	LteMethod     = config.LteMethodName
	GtMethod      = config.GtMethodName
	GteMethod     = config.GteMethodName
	ShowMethod    = config.ShowMethodName
	ValueMethod   = config.ValueMethodName
	LenMethod     = config.LenMethodName
	IsEmptyMethod = config.IsEmptyMethodName
)

// Install registers every namespace's trait implementations into r.
// Call once per registry, before dispatching.
func Install(r *trait.Registry) {
	r.Define(OrdTrait, OrdBase)

	nums.Install(r)
	strs.Install(r)
	arrs.Install(r)
	objs.Install(r)
	installPrimitives(r)
}

// OrdBase derives the comparison operators from a domain-supplied compare
// (negative, zero, positive). Domains register compare and inherit the
// rest; any of the derived methods can still be overridden per domain.
func OrdBase(view *trait.View) trait.Impl {
	cmp := func(args ...domain.Value) (float64, error) {
		res, err := view.Invoke(OrdTrait, CompareMethod, args...)
		if err != nil {
			return 0, err
		}
		n, ok := res.(*domain.Number)
		if !ok {
			return 0, fmt.Errorf("compare for domain %s returned %s, want a number", view.Domain(), res.Inspect())
		}
		return n.Value, nil
	}
	derive := func(test func(float64) bool) trait.Method {
		return func(recv domain.Value, args ...domain.Value) (domain.Value, error) {
			c, err := cmp(args...)
			if err != nil {
				return nil, err
			}
			return domain.Bool(test(c)), nil
		}
	}
	return trait.Impl{
		LtMethod:  derive(func(c float64) bool { return c < 0 }),
		LteMethod: derive(func(c float64) bool { return c <= 0 }),
		GtMethod:  derive(func(c float64) bool { return c > 0 }),
		GteMethod: derive(func(c float64) bool { return c >= 0 }),
	}
}

// EqImpl is the structural-equality implementation shared by every domain.
func EqImpl() trait.Impl {
	return trait.Impl{
		IsMethod: func(recv domain.Value, args ...domain.Value) (domain.Value, error) {
			if len(args) != 2 {
				return nil, trait.NewArityError(IsMethod, 2, len(args))
			}
			return domain.Bool(domain.Equal(args[0], args[1])), nil
		},
		IsntMethod: func(recv domain.Value, args ...domain.Value) (domain.Value, error) {
			if len(args) != 2 {
				return nil, trait.NewArityError(IsntMethod, 2, len(args))
			}
			return domain.Bool(!domain.Equal(args[0], args[1])), nil
		},
	}
}

// ShowImpl renders a value with its Inspect form.
func ShowImpl() trait.Impl {
	return trait.Impl{
		ShowMethod: func(recv domain.Value, args ...domain.Value) (domain.Value, error) {
			return domain.Str(args[0].Inspect()), nil
		},
	}
}

// DefaultImpl returns a fixed default value regardless of arguments.
func DefaultImpl(val domain.Value) trait.Impl {
	return trait.Impl{
		ValueMethod: func(recv domain.Value, args ...domain.Value) (domain.Value, error) {
			return val, nil
		},
	}
}

// installPrimitives covers the payload-free domains: Bool, Null,
// Undefined and Fn get equality and show; Bool and Null also have
// sensible defaults.
func installPrimitives(r *trait.Registry) {
	for _, d := range []domain.Name{
		domain.BOOL_DOMAIN, domain.NULL_DOMAIN, domain.UNDEFINED_DOMAIN, domain.FN_DOMAIN,
	} {
		r.Register(EqTrait, d, EqImpl())
		r.Register(ShowTrait, d, ShowImpl())
	}
	r.Register(DefaultTrait, domain.BOOL_DOMAIN, DefaultImpl(domain.FALSE))
	r.Register(DefaultTrait, domain.NULL_DOMAIN, DefaultImpl(domain.NULL))

	// Bool ordering: false < true.
	r.Register(OrdTrait, domain.BOOL_DOMAIN, trait.Impl{
		CompareMethod: func(recv domain.Value, args ...domain.Value) (domain.Value, error) {
			if len(args) != 2 {
				return nil, trait.NewArityError(CompareMethod, 2, len(args))
			}
			a, aok := args[0].(*domain.Boolean)
			b, bok := args[1].(*domain.Boolean)
			if !aok || !bok {
				return nil, fmt.Errorf("type mismatch in compare: %s vs %s", args[0].Domain(), args[1].Domain())
			}
			toNum := func(v bool) float64 {
				if v {
					return 1
				}
				return 0
			}
			return domain.Num(toNum(a.Value) - toNum(b.Value)), nil
		},
	})
}
