// Package arrs provides slice helpers and the Arr-domain implementations
// of the standard traits.
package arrs

import (
	"fmt"

	"github.com/funvibe/traitkit/internal/config"
	"github.com/funvibe/traitkit/pkg/domain"
	"github.com/funvibe/traitkit/pkg/trait"
)

// Dedupe returns a copy of items with duplicates removed, keeping the
// first occurrence of each element in order.
func Dedupe[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}
	return out
}

// Partition splits items into (matching, rest) by pred, preserving order.
func Partition[T any](items []T, pred func(T) bool) ([]T, []T) {
	var yes, no []T
	for _, it := range items {
		if pred(it) {
			yes = append(yes, it)
		} else {
			no = append(no, it)
		}
	}
	return yes, no
}

// Chunk splits items into slices of at most size elements. size < 1 yields
// a single chunk with everything.
func Chunk[T any](items []T, size int) [][]T {
	if len(items) == 0 {
		return nil
	}
	if size < 1 {
		return [][]T{items}
	}
	var out [][]T
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		out = append(out, items[start:end])
	}
	return out
}

// Intersection returns the elements of a that also occur in b, in a's
// order, deduplicated.
func Intersection[T comparable](a, b []T) []T {
	inB := make(map[T]struct{}, len(b))
	for _, it := range b {
		inB[it] = struct{}{}
	}
	var out []T
	seen := make(map[T]struct{})
	for _, it := range a {
		if _, ok := inB[it]; !ok {
			continue
		}
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}
	return out
}

// At returns items[i] when i is in range, the fallback otherwise. Negative
// indices count from the end.
func At[T any](items []T, i int, fallback T) T {
	if i < 0 {
		i += len(items)
	}
	if i < 0 || i >= len(items) {
		return fallback
	}
	return items[i]
}

// Flatten concatenates one level of nesting.
func Flatten[T any](chunks [][]T) []T {
	var out []T
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out
}

// Install registers the Arr-domain implementations of the standard traits.
// Ordering is lexicographic and re-dispatches Ord.compare per element, so
// arrays of any comparable domain order correctly.
func Install(r *trait.Registry) {
	d := domain.ARR_DOMAIN

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
			a := args[0].(*domain.Array)
			b, ok := args[1].(*domain.Array)
			if !ok {
				return nil, fmt.Errorf("type mismatch in compare: %s vs %s", args[0].Domain(), args[1].Domain())
			}
			for i := 0; i < len(a.Items) && i < len(b.Items); i++ {
				res, err := r.Dispatch(config.OrdTraitName, config.CompareMethodName, a.Items[i], b.Items[i])
				if err != nil {
					return nil, err
				}
				if c := res.(*domain.Number).Value; c != 0 {
					return domain.Num(c), nil
				}
			}
			return domain.Num(float64(len(a.Items) - len(b.Items))), nil
		},
	})

	r.Register(config.ShowTraitName, d, trait.Impl{
		config.ShowMethodName: func(recv domain.Value, args ...domain.Value) (domain.Value, error) {
			return domain.Str(args[0].Inspect()), nil
		},
	})

	r.Register(config.DefaultTraitName, d, trait.Impl{
		config.ValueMethodName: func(recv domain.Value, args ...domain.Value) (domain.Value, error) {
			return domain.Arr(), nil
		},
	})

	r.Register(config.LenTraitName, d, trait.Impl{
		config.LenMethodName: func(recv domain.Value, args ...domain.Value) (domain.Value, error) {
			return domain.Num(float64(len(args[0].(*domain.Array).Items))), nil
		},
		config.IsEmptyMethodName: func(recv domain.Value, args ...domain.Value) (domain.Value, error) {
			return domain.Bool(len(args[0].(*domain.Array).Items) == 0), nil
		},
	})
}
