package core_test

import (
	"testing"

	"github.com/velisar/lstar/core"
)

// TestWord_EmptyAndFrom covers the two basic constructors.
func TestWord_EmptyAndFrom(t *testing.T) {
	eps := core.Empty[string]()
	if !eps.IsEmpty() || eps.Len() != 0 {
		t.Errorf("Empty() = %v; want ε", eps)
	}
	one := core.From("a")
	if one.Len() != 1 || one.At(0) != "a" {
		t.Errorf("From(a) = %v; want a", one)
	}
	// the zero value is ε too
	var zero core.Word[string]
	if !zero.Equal(eps) {
		t.Errorf("zero value != Empty()")
	}
}

// TestWord_AppendImmutable verifies Append never mutates the receiver,
// even when two extensions share the same prefix.
func TestWord_AppendImmutable(t *testing.T) {
	w := core.Of("a", "b")
	wa := w.Append("a")
	wb := w.Append("b")

	if got, want := w.String(), "ab"; got != want {
		t.Errorf("receiver mutated: %q; want %q", got, want)
	}
	if got, want := wa.String(), "aba"; got != want {
		t.Errorf("first extension = %q; want %q", got, want)
	}
	if got, want := wb.String(), "abb"; got != want {
		t.Errorf("second extension = %q; want %q", got, want)
	}
}

// TestWord_Concat covers ε identities and ordinary joins.
func TestWord_Concat(t *testing.T) {
	eps := core.Empty[string]()
	ab := core.Of("a", "b")
	cd := core.Of("c", "d")

	if got := eps.Concat(ab); !got.Equal(ab) {
		t.Errorf("ε·ab = %v; want ab", got)
	}
	if got := ab.Concat(eps); !got.Equal(ab) {
		t.Errorf("ab·ε = %v; want ab", got)
	}
	if got, want := ab.Concat(cd).String(), "abcd"; got != want {
		t.Errorf("ab·cd = %q; want %q", got, want)
	}
}

// TestWord_Prefixes checks prefix enumeration with and without ε.
func TestWord_Prefixes(t *testing.T) {
	w := core.Of("a", "b", "c")

	withEps := w.Prefixes(true)
	wantAll := []string{"ε", "a", "ab", "abc"}
	if len(withEps) != len(wantAll) {
		t.Fatalf("Prefixes(true) has %d entries; want %d", len(withEps), len(wantAll))
	}
	for i, p := range withEps {
		if p.String() != wantAll[i] {
			t.Errorf("Prefixes(true)[%d] = %q; want %q", i, p.String(), wantAll[i])
		}
	}

	withoutEps := w.Prefixes(false)
	if len(withoutEps) != 3 || withoutEps[0].String() != "a" {
		t.Errorf("Prefixes(false) = %v; want [a ab abc]", withoutEps)
	}

	// ε has no prefixes besides itself
	eps := core.Empty[string]()
	if got := eps.Prefixes(false); len(got) != 0 {
		t.Errorf("ε.Prefixes(false) = %v; want empty", got)
	}
	if got := eps.Prefixes(true); len(got) != 1 || !got[0].IsEmpty() {
		t.Errorf("ε.Prefixes(true) = %v; want [ε]", got)
	}
}

// TestWord_EqualAndSymbols covers structural equality and defensive copies.
func TestWord_EqualAndSymbols(t *testing.T) {
	w := core.Of("a", "b")
	v := core.From("a").Append("b")
	if !w.Equal(v) {
		t.Errorf("structurally equal words reported unequal")
	}
	if w.Equal(core.Of("a")) || w.Equal(core.Of("b", "a")) {
		t.Errorf("unequal words reported equal")
	}

	syms := w.Symbols()
	syms[0] = "x"
	if w.String() != "ab" {
		t.Errorf("Symbols() leaked backing storage: %q", w.String())
	}
}

// TestWord_String covers ε rendering and plain concatenation.
func TestWord_String(t *testing.T) {
	if got := core.Empty[string]().String(); got != "ε" {
		t.Errorf("ε renders as %q", got)
	}
	if got := core.Of(0, 1, 1).String(); got != "011" {
		t.Errorf("011 renders as %q", got)
	}
}
