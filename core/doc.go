// Package core defines the word and alphabet value types every other
// lstar package builds on.
//
// 🚀 What is core?
//
//	The vocabulary of automata learning:
//
//	  • Word[S]     — an immutable finite sequence of symbols
//	  • Alphabet[S] — an ordered finite symbol set with a stable
//	    symbol↔index bijection
//
// ✨ Key properties:
//   - Immutability — every mutator (Append, Concat) returns a fresh Word;
//     backing storage is never shared with callers
//   - Structural identity — Equal and the ε word behave like values,
//     not references
//   - Stable ordering — an Alphabet enumerates its symbols in
//     construction order, and IndexOf/SymbolAt round-trip for the
//     lifetime of the alphabet
//
// ⚙️ Usage:
//
//	import "github.com/velisar/lstar/core"
//
//	alph, err := core.NewAlphabet("a", "b")
//	w := core.From("a").Append("b")       // the word a·b
//	for _, p := range w.Prefixes(true) {  // ε, a, a·b
//	    fmt.Println(p)
//	}
//
// Words print as "ε" when empty, otherwise as the concatenation of their
// symbols' default formatting.
package core
