package trait

import (
	"sync"

	"github.com/funvibe/traitkit/pkg/domain"
)

// BaseFunc builds the default method bodies for a trait. It receives the
// view of the domain being registered; methods produced here typically
// close over the view and re-dispatch to sibling traits of the same domain.
type BaseFunc func(view *View) Impl

// View gives base methods access to every trait implementation registered
// for one domain. Resolution is lazy: nothing is bound at registration
// time, so traits may reference each other regardless of registration
// order. The view caches a snapshot of the domain's implementations and
// rebuilds it whenever a new registration lands for that domain.
type View struct {
	registry *Registry
	domain   domain.Name

	mu       sync.Mutex
	gen      uint64
	snapshot map[string]Impl
}

// Domain returns the domain this view resolves against.
func (v *View) Domain() domain.Name { return v.domain }

// Has reports whether traitName is registered for this view's domain.
func (v *View) Has(traitName string) bool {
	impl, _ := v.resolve(traitName)
	return impl != nil
}

// Invoke dispatches a sibling trait's method on this view's domain. The
// failure taxonomy matches the registry dispatcher.
func (v *View) Invoke(traitName, methodName string, args ...domain.Value) (domain.Value, error) {
	impl, err := v.resolve(traitName)
	if err != nil {
		return nil, err
	}
	fn, ok := impl[methodName]
	if !ok {
		return nil, NewMethodNotFoundError(traitName, v.domain, methodName)
	}
	return fn(domain.UNDEFINED, args...)
}

func (v *View) resolve(traitName string) (Impl, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if gen := v.registry.generation(v.domain); v.snapshot == nil || gen != v.gen {
		v.rebuild(gen)
	}
	impl, ok := v.snapshot[traitName]
	if !ok {
		// Distinguish a missing trait from a trait missing this domain.
		v.registry.mu.RLock()
		_, traitExists := v.registry.traits[traitName]
		v.registry.mu.RUnlock()
		if !traitExists {
			return nil, NewTraitNotFoundError(traitName)
		}
		return nil, NewDomainNotRegisteredError(traitName, v.domain)
	}
	return impl, nil
}

// rebuild snapshots every implementation currently registered for the
// view's domain. Called with v.mu held.
func (v *View) rebuild(gen uint64) {
	v.registry.mu.RLock()
	defer v.registry.mu.RUnlock()

	snap := make(map[string]Impl)
	for traitName, table := range v.registry.traits {
		if impl, ok := table[v.domain]; ok {
			snap[traitName] = impl
		}
	}
	v.snapshot = snap
	v.gen = gen
}
