// Package objs provides helpers for string-keyed maps and the Obj-domain
// implementations of the standard traits.
package objs

import (
	"sort"
	"strings"

	"github.com/funvibe/traitkit/internal/config"
	"github.com/funvibe/traitkit/pkg/domain"
	"github.com/funvibe/traitkit/pkg/trait"
)

// Keys returns the sorted keys of m.
func Keys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Values returns the values of m in key order.
func Values[V any](m map[string]V) []V {
	keys := Keys(m)
	out := make([]V, 0, len(keys))
	for _, k := range keys {
		out = append(out, m[k])
	}
	return out
}

// Merge copies entries of every map into a new one, later maps winning on
// key conflicts.
func Merge[V any](maps ...map[string]V) map[string]V {
	out := make(map[string]V)
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

// Pick returns a new map containing only the listed keys.
func Pick[V any](m map[string]V, keys ...string) map[string]V {
	out := make(map[string]V, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	return out
}

// Omit returns a new map without the listed keys.
func Omit[V any](m map[string]V, keys ...string) map[string]V {
	drop := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	out := make(map[string]V, len(m))
	for k, v := range m {
		if _, ok := drop[k]; !ok {
			out[k] = v
		}
	}
	return out
}

// Get resolves a dotted path ("a.b.c") through nested Object values.
// Missing segments yield (nil, false).
func Get(obj *domain.Object, path string) (domain.Value, bool) {
	var cur domain.Value = obj
	for _, seg := range strings.Split(path, ".") {
		o, ok := cur.(*domain.Object)
		if !ok {
			return nil, false
		}
		cur, ok = o.Fields[seg]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Install registers the Obj-domain implementations of the standard traits.
func Install(r *trait.Registry) {
	d := domain.OBJ_DOMAIN

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

	r.Register(config.ShowTraitName, d, trait.Impl{
		config.ShowMethodName: func(recv domain.Value, args ...domain.Value) (domain.Value, error) {
			return domain.Str(args[0].Inspect()), nil
		},
	})

	r.Register(config.DefaultTraitName, d, trait.Impl{
		config.ValueMethodName: func(recv domain.Value, args ...domain.Value) (domain.Value, error) {
			return domain.Obj(nil), nil
		},
	})

	r.Register(config.LenTraitName, d, trait.Impl{
		config.LenMethodName: func(recv domain.Value, args ...domain.Value) (domain.Value, error) {
			return domain.Num(float64(len(args[0].(*domain.Object).Fields))), nil
		},
		config.IsEmptyMethodName: func(recv domain.Value, args ...domain.Value) (domain.Value, error) {
			return domain.Bool(len(args[0].(*domain.Object).Fields) == 0), nil
		},
	})
}
