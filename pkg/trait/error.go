package trait

import (
	"fmt"

	"github.com/funvibe/traitkit/pkg/domain"
)

// The dispatch failure taxonomy. All of these indicate misconfiguration
// (a registration that never happened), not expected runtime conditions;
// they are returned synchronously and never retried.

// TraitNotFoundError indicates a dispatch through a trait name that was
// never registered.
type TraitNotFoundError struct {
	Trait string
}

func (e *TraitNotFoundError) Error() string {
	return fmt.Sprintf("trait not found: %s", e.Trait)
}

func NewTraitNotFoundError(trait string) *TraitNotFoundError {
	return &TraitNotFoundError{Trait: trait}
}

// DomainNotRegisteredError indicates the trait exists but has no
// implementation for the detected domain.
type DomainNotRegisteredError struct {
	Trait  string
	Domain domain.Name
}

func (e *DomainNotRegisteredError) Error() string {
	return fmt.Sprintf("trait %s has no implementation for domain %s", e.Trait, e.Domain)
}

func NewDomainNotRegisteredError(trait string, d domain.Name) *DomainNotRegisteredError {
	return &DomainNotRegisteredError{Trait: trait, Domain: d}
}

// MethodNotFoundError indicates the domain implementation exists but lacks
// the requested method.
type MethodNotFoundError struct {
	Trait  string
	Domain domain.Name
	Method string
}

func (e *MethodNotFoundError) Error() string {
	return fmt.Sprintf("trait %s: domain %s has no method %s", e.Trait, e.Domain, e.Method)
}

func NewMethodNotFoundError(trait string, d domain.Name, method string) *MethodNotFoundError {
	return &MethodNotFoundError{Trait: trait, Domain: d, Method: method}
}

// ArityError indicates a method invoked with the wrong number of
// arguments. Implementations raise it themselves; the dispatcher does not
// validate arity.
type ArityError struct {
	Method string
	Want   int
	Got    int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s expects %d arguments, got %d", e.Method, e.Want, e.Got)
}

func NewArityError(method string, want, got int) *ArityError {
	return &ArityError{Method: method, Want: want, Got: got}
}

// NoArgumentsError indicates a dispatch with no arguments; the first
// argument is required to determine the domain.
type NoArgumentsError struct {
	Trait  string
	Method string
}

func (e *NoArgumentsError) Error() string {
	return fmt.Sprintf("trait %s: cannot dispatch %s without arguments", e.Trait, e.Method)
}

func NewNoArgumentsError(trait, method string) *NoArgumentsError {
	return &NoArgumentsError{Trait: trait, Method: method}
}
