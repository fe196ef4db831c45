// Package dfa provides a minimal deterministic finite automaton over an
// ordered alphabet, designed as the output type of automata learning.
//
// 🚀 What is dfa?
//
//	A DFA M = (Q, Σ, δ, q₀, F) with:
//
//	  • dense integer states 0..NumStates-1, assigned by AddState
//	  • a transition table indexed by (state, symbol index)
//	  • an accepting flag per state
//	  • an optional representative word per state — the access word
//	    that introduced the state during learning
//
// ✨ Key properties:
//   - Determinism by construction — at most one target per (state, symbol)
//   - Totality checkable — Validate reports the exact missing transition
//   - Simulation — Step, Run, and Accepts walk the automaton over words
//
// ⚙️ Usage:
//
//	import (
//	    "github.com/velisar/lstar/core"
//	    "github.com/velisar/lstar/dfa"
//	)
//
//	alph, _ := core.NewAlphabet("a")
//	m, _ := dfa.New(alph)
//	even := m.AddState(true)  // accepting
//	odd := m.AddState(false)
//	_ = m.SetStart(even)
//	_ = m.SetTransition(even, "a", odd)
//	_ = m.SetTransition(odd, "a", even)
//
//	ok, _ := m.Accepts(core.Of("a", "a")) // true: even length
//
// Complexity: Step is O(1); Run and Accepts are O(len(word)).
package dfa
