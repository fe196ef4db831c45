// Package obstable implements the observation table at the heart of
// active automata learning.
//
// 🚀 What is an observation table?
//
//	A two-region table whose rows are labeled by prefixes, whose columns
//	are labeled by suffixes, and whose cells hold the oracle's answer for
//	the concatenation prefix·suffix:
//
//	  • SP — short prefixes (the "upper" region): candidate DFA states.
//	    Always contains ε.
//	  • LP — long prefixes (the "lower" region): one-symbol extensions
//	    of short prefixes, used to infer transitions.
//	  • E  — suffixes (column labels): the distinguishing experiments.
//	    Always contains ε; new suffixes are appended.
//
//	The row signature of a prefix is the vector of its cell values in
//	suffix order. Two prefixes with equal signatures are apparently
//	equivalent.
//
// ✨ The two properties that drive learning:
//   - Closed      — every long-prefix signature equals some short-prefix
//     signature (so every transition target has a state)
//   - Consistent  — short prefixes with equal signatures extend, by any
//     single symbol, to prefixes with equal signatures (so the choice of
//     representative does not matter)
//
// ⚙️ Usage:
//
//	import "github.com/velisar/lstar/obstable"
//
//	t, _ := obstable.New[string, bool](alph) // SP={ε}, LP=Σ, E={ε}
//	for _, c := range t.MissingCells() {
//	    t.Record(c.Prefix, c.Suffix, oracleAnswer(c))
//	}
//	if v, unclosed, _ := t.FindUnclosed(); unclosed {
//	    t.MoveLongToShort(v) // …extend LP, re-populate, repeat
//	}
//
// The table grows monotonically: cells, prefixes, and suffixes are never
// removed (prefixes may migrate from LP to SP). Iteration over SP, LP,
// and E preserves insertion order, so identical operation sequences
// replay to identical tables.
//
// Render produces a human-readable dump: a suffix header, the SP block,
// a separator, the LP block.
package obstable
