// Package manifest reads trait manifests: YAML files declaring which
// traits exist, which methods they carry, and which domains are expected
// to implement them. A manifest is the declarative counterpart of the
// registration calls scattered through init code; Verify checks the two
// against each other.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/traitkit/pkg/domain"
	"github.com/funvibe/traitkit/pkg/trait"
)

// Manifest is the top-level traitkit.yaml structure.
type Manifest struct {
	// Traits lists the declared traits.
	Traits []Trait `yaml:"traits"`
}

// Trait declares one trait: its methods and the domains expected to
// implement it.
type Trait struct {
	// Name is the trait name used at registration and dispatch time.
	Name string `yaml:"name"`

	// Doc is an optional one-line description, used by rendering tools.
	Doc string `yaml:"doc,omitempty"`

	// Methods lists the method names every implementation must provide.
	Methods []string `yaml:"methods"`

	// Domains lists the domain names expected to register an
	// implementation (e.g. "Str", "Num").
	Domains []string `yaml:"domains"`
}

// Parse decodes and validates manifest bytes. path is used in error
// messages only.
func Parse(data []byte, path string) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%s: invalid YAML: %w", path, err)
	}
	if err := m.validate(path); err != nil {
		return nil, err
	}
	return &m, nil
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(data, path)
}

func (m *Manifest) validate(path string) error {
	if len(m.Traits) == 0 {
		return fmt.Errorf("%s: manifest declares no traits", path)
	}
	seen := make(map[string]bool)
	for i, t := range m.Traits {
		if t.Name == "" {
			return fmt.Errorf("%s: trait %d has no name", path, i)
		}
		if seen[t.Name] {
			return fmt.Errorf("%s: trait %s declared twice", path, t.Name)
		}
		seen[t.Name] = true
		if len(t.Methods) == 0 {
			return fmt.Errorf("%s: trait %s declares no methods", path, t.Name)
		}
		for _, method := range t.Methods {
			if method == "" {
				return fmt.Errorf("%s: trait %s has an empty method name", path, t.Name)
			}
		}
		for _, d := range t.Domains {
			if !domain.Name(d).Valid() {
				return fmt.Errorf("%s: trait %s: unknown domain %q", path, t.Name, d)
			}
		}
	}
	return nil
}

// Problem is one mismatch between a manifest and a registry.
type Problem struct {
	Trait  string
	Domain domain.Name
	Method string
}

func (p Problem) String() string {
	if p.Method != "" {
		return fmt.Sprintf("trait %s: domain %s is missing method %s", p.Trait, p.Domain, p.Method)
	}
	return fmt.Sprintf("trait %s: domain %s is not registered", p.Trait, p.Domain)
}

// Verify checks that every (trait, domain, method) the manifest declares
// is actually registered. Typically run right after installation, before
// any dispatching starts.
func Verify(m *Manifest, r *trait.Registry) []Problem {
	var problems []Problem
	for _, t := range m.Traits {
		for _, d := range t.Domains {
			name := domain.Name(d)
			impl, ok := r.Lookup(t.Name, name)
			if !ok {
				problems = append(problems, Problem{Trait: t.Name, Domain: name})
				continue
			}
			for _, method := range t.Methods {
				if _, ok := impl[method]; !ok {
					problems = append(problems, Problem{Trait: t.Name, Domain: name, Method: method})
				}
			}
		}
	}
	return problems
}
