package trait

import (
	"sync"

	"github.com/funvibe/traitkit/pkg/domain"
)

// Proxy presents one trait of a registry as an object, so callers write
// eq.Call("is", a, b) instead of spelling out the full dispatch. Per-method
// handles are memoized: repeated Method calls for the same name return the
// identical *BoundMethod, which matters for code that compares handles or
// memoizes by them.
//
// The proxy holds the live registry, never a snapshot: a domain registered
// after the proxy (or the handle) was created is observed on the next call.
type Proxy struct {
	registry *Registry
	trait    string

	mu      sync.Mutex
	methods map[string]*BoundMethod
}

// Proxy returns a proxy for one trait. The trait does not need to exist
// yet; dispatching through a still-unregistered trait fails the usual way.
func (r *Registry) Proxy(traitName string) *Proxy {
	return &Proxy{
		registry: r,
		trait:    traitName,
		methods:  make(map[string]*BoundMethod),
	}
}

// Trait returns the trait name this proxy dispatches through.
func (p *Proxy) Trait() string { return p.trait }

// Method returns the memoized handle for one method name.
func (p *Proxy) Method(name string) *BoundMethod {
	p.mu.Lock()
	defer p.mu.Unlock()
	if m, ok := p.methods[name]; ok {
		return m
	}
	m := &BoundMethod{proxy: p, name: name}
	p.methods[name] = m
	return m
}

// Call dispatches methodName through the proxy's trait.
func (p *Proxy) Call(methodName string, args ...domain.Value) (domain.Value, error) {
	return p.registry.Dispatch(p.trait, methodName, args...)
}

// BoundMethod is a dispatch handle for one (trait, method) pair. It
// memoizes the dispatch route only, never the resolved implementation.
type BoundMethod struct {
	proxy *Proxy
	name  string
}

// Name returns the method name this handle dispatches.
func (m *BoundMethod) Name() string { return m.name }

// Call dispatches with no bound receiver.
func (m *BoundMethod) Call(args ...domain.Value) (domain.Value, error) {
	return m.proxy.registry.Dispatch(m.proxy.trait, m.name, args...)
}

// CallBound dispatches with recv as the receiver.
func (m *BoundMethod) CallBound(recv domain.Value, args ...domain.Value) (domain.Value, error) {
	return m.proxy.registry.DispatchBound(m.proxy.trait, m.name, recv, args...)
}
