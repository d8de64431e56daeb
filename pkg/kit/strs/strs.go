// Package strs provides string helpers and the Str-domain implementations
// of the standard traits.
package strs

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/funvibe/traitkit/internal/config"
	"github.com/funvibe/traitkit/pkg/domain"
	"github.com/funvibe/traitkit/pkg/trait"
)

// Match reports whether s matches a glob-style pattern where '*' matches
// any run of characters and '?' matches exactly one.
func Match(pattern, s string) bool {
	return matchAt(pattern, s)
}

func matchAt(pattern, s string) bool {
	for len(pattern) > 0 {
		switch pattern[0] {
		case '*':
			// Collapse consecutive stars, then try every split point.
			rest := strings.TrimLeft(pattern, "*")
			if rest == "" {
				return true
			}
			for i := 0; i <= len(s); i++ {
				if matchAt(rest, s[i:]) {
					return true
				}
			}
			return false
		case '?':
			if s == "" {
				return false
			}
			pattern, s = pattern[1:], s[1:]
		default:
			if s == "" || s[0] != pattern[0] {
				return false
			}
			pattern, s = pattern[1:], s[1:]
		}
	}
	return s == ""
}

// PadStart left-pads s with pad runes until it reaches width.
func PadStart(s string, width int, pad rune) string {
	for len([]rune(s)) < width {
		s = string(pad) + s
	}
	return s
}

// PadEnd right-pads s with pad runes until it reaches width.
func PadEnd(s string, width int, pad rune) string {
	for len([]rune(s)) < width {
		s += string(pad)
	}
	return s
}

// Lines splits s on newlines. A trailing newline does not produce an empty
// final line.
func Lines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

// Unlines joins lines with newlines and appends a final newline.
func Unlines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// Truncate shortens s to at most width runes, replacing the tail with an
// ellipsis when anything was cut.
func Truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}

// Camel converts kebab-case, snake_case or space-separated words into
// camelCase.
func Camel(s string) string {
	var b strings.Builder
	upperNext := false
	first := true
	for _, r := range s {
		switch {
		case r == '-' || r == '_' || r == ' ':
			upperNext = !first
		case upperNext:
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
		case first:
			b.WriteRune(unicode.ToLower(r))
			first = false
		default:
			b.WriteRune(r)
		}
		if r != '-' && r != '_' && r != ' ' {
			first = false
		}
	}
	return b.String()
}

// Kebab converts camelCase or snake_case into kebab-case.
func Kebab(s string) string {
	var b strings.Builder
	for i, r := range s {
		switch {
		case unicode.IsUpper(r):
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
		case r == '_' || r == ' ':
			b.WriteByte('-')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Install registers the Str-domain implementations of the standard traits.
func Install(r *trait.Registry) {
	d := domain.STR_DOMAIN

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
			a, aok := args[0].(*domain.String)
			b, bok := args[1].(*domain.String)
			if !aok || !bok {
				return nil, fmt.Errorf("type mismatch in compare: %s vs %s", args[0].Domain(), args[1].Domain())
			}
			return domain.Num(float64(strings.Compare(a.Value, b.Value))), nil
		},
	})

	r.Register(config.ShowTraitName, d, trait.Impl{
		config.ShowMethodName: func(recv domain.Value, args ...domain.Value) (domain.Value, error) {
			return domain.Str(args[0].Inspect()), nil
		},
	})

	r.Register(config.DefaultTraitName, d, trait.Impl{
		config.ValueMethodName: func(recv domain.Value, args ...domain.Value) (domain.Value, error) {
			return domain.Str(""), nil
		},
	})

	r.Register(config.LenTraitName, d, trait.Impl{
		config.LenMethodName: func(recv domain.Value, args ...domain.Value) (domain.Value, error) {
			s := args[0].(*domain.String)
			return domain.Num(float64(len([]rune(s.Value)))), nil
		},
		config.IsEmptyMethodName: func(recv domain.Value, args ...domain.Value) (domain.Value, error) {
			s := args[0].(*domain.String)
			return domain.Bool(s.Value == ""), nil
		},
	})
}
