package trait

import (
	"github.com/funvibe/traitkit/pkg/domain"
)

// Dispatch routes a method invocation to the implementation registered for
// the domain of the first argument. The implementation's return value
// passes through unmodified. Dispatch is synchronous and reentrant: a
// dispatched method may call back into the dispatcher.
func (r *Registry) Dispatch(traitName, methodName string, args ...domain.Value) (domain.Value, error) {
	return r.DispatchBound(traitName, methodName, domain.UNDEFINED, args...)
}

// DispatchBound is Dispatch with an explicit receiver passed through to the
// implementation.
func (r *Registry) DispatchBound(traitName, methodName string, recv domain.Value, args ...domain.Value) (domain.Value, error) {
	if len(args) == 0 {
		return nil, NewNoArgumentsError(traitName, methodName)
	}
	fn, err := r.lookupMethod(traitName, args[0].Domain(), methodName)
	if err != nil {
		return nil, err
	}
	return fn(recv, args...)
}
