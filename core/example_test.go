package core_test

import (
	"fmt"

	"github.com/velisar/lstar/core"
)

// ExampleWord_Prefixes enumerates the prefixes of a three-symbol word.
func ExampleWord_Prefixes() {
	w := core.Of("a", "b", "c")
	for _, p := range w.Prefixes(true) {
		fmt.Println(p)
	}
	// Output:
	// ε
	// a
	// ab
	// abc
}

// ExampleNewAlphabet shows the stable symbol↔index mapping.
func ExampleNewAlphabet() {
	alph, _ := core.NewAlphabet("x", "y")
	for _, sym := range alph.Symbols() {
		i, _ := alph.IndexOf(sym)
		fmt.Printf("%s -> %d\n", sym, i)
	}
	// Output:
	// x -> 0
	// y -> 1
}
