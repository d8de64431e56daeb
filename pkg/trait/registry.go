// Package trait implements the runtime trait/domain dispatch system: a
// registry mapping (trait × domain × method) to implementations, a
// dispatcher that routes calls by the domain of the first argument, and a
// memoizing proxy for method-call sugar.
//
// Registries are plain injected objects, not globals; independent
// registries coexist freely (useful in tests). The intended usage pattern
// is registration during an initialization phase followed by dispatch, but
// the registry is guarded so registrations arriving from init() functions
// across packages stay safe.
package trait

import (
	"sort"
	"sync"

	"github.com/funvibe/traitkit/pkg/domain"
)

// Method is one trait operation. recv carries the optional bound receiver;
// dispatches without one pass the Undefined value.
type Method func(recv domain.Value, args ...domain.Value) (domain.Value, error)

// Impl maps method names to callables for one (trait, domain) pair. The
// shape is duck-typed: no arity or naming validation happens at
// registration time.
type Impl map[string]Method

// Registry stores implementations keyed by trait name and domain.
type Registry struct {
	mu     sync.RWMutex
	traits map[string]map[domain.Name]Impl
	bases  map[string]BaseFunc

	// gens counts registrations per domain; base-method views use it to
	// invalidate their sibling-trait snapshots.
	gens map[domain.Name]uint64
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		traits: make(map[string]map[domain.Name]Impl),
		bases:  make(map[string]BaseFunc),
		gens:   make(map[domain.Name]uint64),
	}
}

// Define attaches a base implementation factory to a trait. Subsequent
// registrations for that trait merge their methods over the base's; the
// base methods resolve sibling traits lazily through a View. Defining a
// base does not by itself register any domain.
func (r *Registry) Define(traitName string, base BaseFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bases[traitName] = base
}

// Register inserts or overwrites the implementation for (traitName, d).
// Last write wins; there is no merge between successive registrations and
// no deregistration. The trait's sub-table is created on first use.
func (r *Registry) Register(traitName string, d domain.Name, impl Impl) {
	r.mu.RLock()
	base, hasBase := r.bases[traitName]
	r.mu.RUnlock()

	// The base factory runs outside the write lock so it may inspect the
	// view eagerly if it wants to.
	merged := impl
	if hasBase {
		view := &View{registry: r, domain: d}
		merged = make(Impl, len(impl))
		for name, fn := range base(view) {
			merged[name] = fn
		}
		for name, fn := range impl {
			merged[name] = fn
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	table, ok := r.traits[traitName]
	if !ok {
		table = make(map[domain.Name]Impl)
		r.traits[traitName] = table
	}
	table[d] = merged
	r.gens[d]++
}

// Lookup returns the implementation registered for (traitName, d).
func (r *Registry) Lookup(traitName string, d domain.Name) (Impl, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	impl, ok := r.traits[traitName][d]
	return impl, ok
}

// Implements reports whether (traitName, d) has a registration.
func (r *Registry) Implements(traitName string, d domain.Name) bool {
	_, ok := r.Lookup(traitName, d)
	return ok
}

// Traits returns the sorted names of all registered traits.
func (r *Registry) Traits() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.traits))
	for name := range r.traits {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Domains returns the sorted domains registered for a trait.
func (r *Registry) Domains(traitName string) []domain.Name {
	r.mu.RLock()
	defer r.mu.RUnlock()
	table := r.traits[traitName]
	names := make([]domain.Name, 0, len(table))
	for d := range table {
		names = append(names, d)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

func (r *Registry) generation(d domain.Name) uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.gens[d]
}

// lookupMethod resolves (trait, domain, method) under the read lock,
// returning the dispatch failure taxonomy.
func (r *Registry) lookupMethod(traitName string, d domain.Name, methodName string) (Method, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	table, ok := r.traits[traitName]
	if !ok {
		return nil, NewTraitNotFoundError(traitName)
	}
	impl, ok := table[d]
	if !ok {
		return nil, NewDomainNotRegisteredError(traitName, d)
	}
	fn, ok := impl[methodName]
	if !ok {
		return nil, NewMethodNotFoundError(traitName, d, methodName)
	}
	return fn, nil
}
