package errs

import (
	"errors"
	"strings"
	"testing"
)

var errBase = errors.New("file missing")

func TestWrap(t *testing.T) {
	err := Wrap(errBase, "read config")
	if err.Error() != "read config: file missing" {
		t.Errorf("Wrap = %q", err)
	}
	if !errors.Is(err, errBase) {
		t.Error("wrapped error lost its cause")
	}
	if Wrap(nil, "x") != nil {
		t.Error("Wrap(nil) != nil")
	}
}

func TestWrapf(t *testing.T) {
	err := Wrapf(errBase, "read %s", "config.yaml")
	if err.Error() != "read config.yaml: file missing" {
		t.Errorf("Wrapf = %q", err)
	}
	if Wrapf(nil, "x") != nil {
		t.Error("Wrapf(nil) != nil")
	}
}

func TestChainAndRoot(t *testing.T) {
	err := Wrap(Wrap(errBase, "read config"), "load manifest")
	chain := Chain(err)
	if len(chain) != 3 {
		t.Fatalf("len(Chain) = %d, want 3", len(chain))
	}
	if chain[0] != err {
		t.Error("chain does not start with the outermost error")
	}
	if Root(err) != errBase {
		t.Errorf("Root = %v", Root(err))
	}
	if Root(nil) != nil {
		t.Error("Root(nil) != nil")
	}
}

func TestChain_Joined(t *testing.T) {
	other := errors.New("other")
	err := errors.Join(errBase, other)
	chain := Chain(err)
	found := 0
	for _, e := range chain {
		if e == errBase || e == other {
			found++
		}
	}
	if found != 2 {
		t.Errorf("joined chain %v is missing branches", chain)
	}
}

func TestFind(t *testing.T) {
	err := Wrap(errBase, "read config")
	got := Find(err, func(e error) bool { return e == errBase })
	if got != errBase {
		t.Errorf("Find = %v", got)
	}
	if Find(err, func(e error) bool { return false }) != nil {
		t.Error("Find matched nothing but returned non-nil")
	}
}

func TestFormat(t *testing.T) {
	err := Wrap(Wrap(errBase, "read config"), "load manifest")
	got := Format(err)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("Format produced %d lines:\n%s", len(lines), got)
	}
	if lines[0] != "load manifest: read config: file missing" {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "    caused by: ") {
		t.Errorf("third line = %q", lines[2])
	}
	if Format(nil) != "" {
		t.Error("Format(nil) != empty")
	}
}
