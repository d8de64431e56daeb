// Package errs provides error inspection helpers: walking wrap chains,
// locating causes, and rendering a chain for humans.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Wrap annotates err with a message, preserving the chain for errors.Is
// and errors.As. Wrapping nil yields nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf is Wrap with a format string.
func Wrapf(err error, format string, a ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(a, err)...)
}

// Chain returns err followed by every wrapped cause, outermost first.
// Multi-cause errors (errors.Join) contribute each branch in order.
func Chain(err error) []error {
	var out []error
	var walk func(error)
	walk = func(e error) {
		if e == nil {
			return
		}
		out = append(out, e)
		switch x := e.(type) {
		case interface{ Unwrap() error }:
			walk(x.Unwrap())
		case interface{ Unwrap() []error }:
			for _, c := range x.Unwrap() {
				walk(c)
			}
		}
	}
	walk(err)
	return out
}

// Root returns the innermost cause of err, or nil for nil.
func Root(err error) error {
	chain := Chain(err)
	if len(chain) == 0 {
		return nil
	}
	return chain[len(chain)-1]
}

// Find walks the chain and returns the first error satisfying pred, or
// nil.
func Find(err error, pred func(error) bool) error {
	for _, e := range Chain(err) {
		if pred(e) {
			return e
		}
	}
	return nil
}

// Has reports whether any error in the chain matches target per errors.Is.
func Has(err, target error) bool {
	return errors.Is(err, target)
}

// Format renders the chain one cause per line, indenting each level:
//
//	load manifest: read config: file missing
//	  caused by: read config: file missing
//	    caused by: file missing
func Format(err error) string {
	chain := Chain(err)
	if len(chain) == 0 {
		return ""
	}
	var b strings.Builder
	for i, e := range chain {
		if i > 0 {
			b.WriteByte('\n')
			b.WriteString(strings.Repeat("  ", i))
			b.WriteString("caused by: ")
		}
		b.WriteString(e.Error())
	}
	return b.String()
}
