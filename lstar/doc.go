// Package lstar implements Angluin's L* algorithm: active learning of a
// deterministic finite automaton from a minimally adequate teacher.
//
// 🚀 How learning works
//
//	The learner keeps an observation table (see obstable) and talks to a
//	caller-supplied membership oracle:
//
//	  1. StartLearning populates every cell with one batched oracle call,
//	     then closes the table and makes it consistent.
//	  2. Hypothesis extracts a DFA: one state per distinct short-prefix
//	     row signature, transitions read off the table.
//	  3. The caller checks the hypothesis against the target (an
//	     equivalence oracle, outside this package). On disagreement it
//	     feeds the offending word to RefineHypothesis, which injects all
//	     its prefixes as candidate states and re-establishes closedness
//	     and consistency.
//	  4. Repeat 2–3 until no counterexample remains.
//
// ✨ Guarantees:
//   - Batched queries — every populate step issues exactly one
//     MembershipOracle.Process call, one query per undefined cell
//   - All-or-nothing populate — an oracle error leaves the table's
//     cells untouched
//   - Determinism — identical alphabets, oracles, and counterexample
//     sequences replay to identical tables and isomorphic hypotheses
//   - Convergence — for a regular target language the loop terminates
//     with a DFA of at most minimal-DFA-size states
//
// ⚙️ Usage:
//
//	import (
//	    "github.com/velisar/lstar/core"
//	    "github.com/velisar/lstar/lstar"
//	)
//
//	alph, _ := core.NewAlphabet("0", "1")
//	learner, _ := lstar.NewLearner(alph, oracle)
//	if err := learner.StartLearning(); err != nil { … }
//
//	hyp, _ := learner.Hypothesis()
//	for ce, found := findCounterexample(hyp); found; {
//	    _, _ = learner.RefineHypothesis(ce)
//	    hyp, _ = learner.Hypothesis()
//	    ce, found = findCounterexample(hyp)
//	}
//
// Counterexample handling is the baseline Angluin scheme: every prefix
// of the counterexample becomes a short prefix. Smarter schemes (binary
// search, Rivest–Schapire) trade table size for query count and are
// deliberately not implemented.
//
// A learner instance is single-threaded; independent learners with
// independent oracles may run in parallel.
package lstar
