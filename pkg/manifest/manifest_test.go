package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/funvibe/traitkit/pkg/kit"
	"github.com/funvibe/traitkit/pkg/trait"
)

func TestParse_ValidMinimal(t *testing.T) {
	yaml := `
traits:
  - name: Eq
    doc: structural equality
    methods: [is, isnt]
    domains: [Str, Num]
`
	m, err := Parse([]byte(yaml), "test.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Traits) != 1 {
		t.Fatalf("expected 1 trait, got %d", len(m.Traits))
	}
	tr := m.Traits[0]
	if tr.Name != "Eq" {
		t.Errorf("name = %q, want Eq", tr.Name)
	}
	if tr.Doc != "structural equality" {
		t.Errorf("doc = %q", tr.Doc)
	}
	if len(tr.Methods) != 2 || tr.Methods[0] != "is" {
		t.Errorf("methods = %v", tr.Methods)
	}
	if len(tr.Domains) != 2 || tr.Domains[1] != "Num" {
		t.Errorf("domains = %v", tr.Domains)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"bad yaml", "traits: [", "invalid YAML"},
		{"no traits", "traits: []", "declares no traits"},
		{"missing name", "traits:\n  - methods: [is]\n", "has no name"},
		{"duplicate", "traits:\n  - name: Eq\n    methods: [is]\n  - name: Eq\n    methods: [is]\n", "declared twice"},
		{"no methods", "traits:\n  - name: Eq\n", "declares no methods"},
		{"unknown domain", "traits:\n  - name: Eq\n    methods: [is]\n    domains: [Widget]\n", `unknown domain "Widget"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml), "test.yaml")
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traitkit.yaml")
	content := "traits:\n  - name: Eq\n    methods: [is]\n    domains: [Str]\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Traits[0].Name != "Eq" {
		t.Errorf("name = %q", m.Traits[0].Name)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestVerify(t *testing.T) {
	yaml := `
traits:
  - name: Eq
    methods: [is, isnt]
    domains: [Str, Num, Arr]
  - name: Ord
    methods: [compare, lt]
    domains: [Str, Obj]
  - name: Fancy
    methods: [sparkle]
    domains: [Str]
`
	m, err := Parse([]byte(yaml), "test.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := trait.New()
	kit.Install(r)

	problems := Verify(m, r)

	// Eq is fully installed; Ord lacks Obj; Fancy is absent entirely.
	if len(problems) != 2 {
		t.Fatalf("Verify = %v, want 2 problems", problems)
	}
	joined := ""
	for _, p := range problems {
		joined += p.String() + "\n"
	}
	if !strings.Contains(joined, "trait Ord: domain Obj is not registered") {
		t.Errorf("missing Ord/Obj problem in:\n%s", joined)
	}
	if !strings.Contains(joined, "trait Fancy: domain Str is not registered") {
		t.Errorf("missing Fancy problem in:\n%s", joined)
	}
}

func TestVerify_MissingMethod(t *testing.T) {
	yaml := `
traits:
  - name: Eq
    methods: [is, hash]
    domains: [Str]
`
	m, err := Parse([]byte(yaml), "test.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := trait.New()
	kit.Install(r)

	problems := Verify(m, r)
	if len(problems) != 1 {
		t.Fatalf("Verify = %v, want 1 problem", problems)
	}
	if problems[0].Method != "hash" {
		t.Errorf("problem = %s", problems[0])
	}
}
