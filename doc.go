// Package lstar is an active automata-learning toolkit for Go: it infers
// a deterministic finite automaton (DFA) for an unknown regular language
// by asking questions, in the style of Angluin's L* algorithm.
//
// 🚀 What is lstar?
//
//	A small, focused library that brings together:
//
//	  • Word & alphabet primitives: immutable symbol sequences over any
//	    comparable symbol type, with a stable symbol↔index mapping
//	  • The observation table: the closedness/consistency engine that
//	    drives hypothesis construction
//	  • The L* learner: batched membership queries, counterexample-driven
//	    refinement, hypothesis extraction
//	  • A minimal DFA type: dense integer states, total transitions,
//	    built for inspection and simulation
//
// ✨ Why choose lstar?
//
//   - Deterministic          — identical inputs replay to identical tables
//   - Batched by design      — one oracle call per populate step, never
//     one query at a time
//   - Generic                — symbols are any comparable type; the table
//     is generic over outputs as well
//   - Pure Go                — no cgo, tiny dependency footprint
//
// Everything is organized under four subpackages:
//
//	core/     — Word and Alphabet value types
//	obstable/ — the observation table and its pretty renderer
//	lstar/    — the learner, oracle boundary types, hypothesis builder
//	dfa/      — the extracted deterministic finite automaton
//
// Quick sketch of a learning session:
//
//	learner ──(batched membership queries)──▶ your oracle
//	   │                                         │
//	   ◀──────────(true / false answers)─────────┘
//	   │
//	   ├─ close & make consistent
//	   ├─ Hypothesis() ──▶ DFA
//	   └─ RefineHypothesis(counterexample) … repeat until equivalent
//
// See each package's doc.go and example tests for walkthroughs.
//
//	go get github.com/velisar/lstar
package lstar
