package lstar_test

import (
	"errors"
	"testing"

	"github.com/velisar/lstar/core"
	"github.com/velisar/lstar/dfa"
	"github.com/velisar/lstar/lstar"
)

// langOracle answers membership batches from a predicate and records
// every query it sees, so tests can assert batch shapes and dedup.
type langOracle struct {
	lang func(core.Word[string]) bool

	calls      int
	batchSizes []int
	seen       map[string]int // cell key → times queried across all batches
}

func newLangOracle(lang func(core.Word[string]) bool) *langOracle {
	return &langOracle{lang: lang, seen: make(map[string]int)}
}

func (o *langOracle) Process(queries []*lstar.Query[string, bool]) error {
	o.calls++
	o.batchSizes = append(o.batchSizes, len(queries))
	for _, q := range queries {
		o.seen[q.Prefix.String()+"\x00"+q.Suffix.String()]++
		q.Output = o.lang(q.Word())
	}

	return nil
}

// maxQueried returns the highest per-cell query count the oracle saw.
func (o *langOracle) maxQueried() int {
	max := 0
	for _, n := range o.seen {
		if n > max {
			max = n
		}
	}

	return max
}

// errOracleDown is what the failing oracle returns.
var errOracleDown = errors.New("oracle down")

// flakyOracle fails its first failures batches, then delegates.
type flakyOracle struct {
	inner    lstar.MembershipOracle[string, bool]
	failures int
}

func (o *flakyOracle) Process(queries []*lstar.Query[string, bool]) error {
	if o.failures > 0 {
		o.failures--
		return errOracleDown
	}

	return o.inner.Process(queries)
}

// Reference predicates for the scenario languages.
func universal(core.Word[string]) bool { return true }

func onlyEmpty(w core.Word[string]) bool { return w.IsEmpty() }

func evenLength(w core.Word[string]) bool { return w.Len()%2 == 0 }

func endsInOne(w core.Word[string]) bool {
	return w.Len() > 0 && w.At(w.Len()-1) == "1"
}

func containsAB(w core.Word[string]) bool {
	for i := 0; i+1 < w.Len(); i++ {
		if w.At(i) == "a" && w.At(i+1) == "b" {
			return true
		}
	}

	return false
}

// findCounterexample plays equivalence oracle by brute force: it
// enumerates all words up to maxLen in length-lexicographic order and
// returns the first disagreement between hyp and lang.
func findCounterexample(
	tb testing.TB,
	hyp *dfa.DFA[string],
	lang func(core.Word[string]) bool,
	alph *core.Alphabet[string],
	maxLen int,
) (lstar.Counterexample[string, bool], bool) {
	tb.Helper()

	frontier := []core.Word[string]{core.Empty[string]()}
	for len(frontier) > 0 {
		w := frontier[0]
		frontier = frontier[1:]

		got, err := hyp.Accepts(w)
		if err != nil {
			tb.Fatalf("hypothesis failed on %s: %v", w, err)
		}
		if want := lang(w); got != want {
			return lstar.Counterexample[string, bool]{Word: w, Output: want}, true
		}
		if w.Len() < maxLen {
			for _, sym := range alph.Symbols() {
				frontier = append(frontier, w.Append(sym))
			}
		}
	}

	return lstar.Counterexample[string, bool]{}, false
}

// learnUntilStable runs the outer L* loop — hypothesis, equivalence
// check, refinement — until no counterexample remains, and returns the
// final hypothesis plus the number of hypotheses extracted.
func learnUntilStable(
	tb testing.TB,
	learner *lstar.Learner[string],
	lang func(core.Word[string]) bool,
	alph *core.Alphabet[string],
	maxLen int,
) (*dfa.DFA[string], int) {
	tb.Helper()

	if err := learner.StartLearning(); err != nil {
		tb.Fatalf("StartLearning: %v", err)
	}

	rounds := 0
	for {
		rounds++
		if rounds > 50 {
			tb.Fatalf("learning did not converge after %d hypotheses", rounds-1)
		}
		hyp, err := learner.Hypothesis()
		if err != nil {
			tb.Fatalf("Hypothesis: %v", err)
		}
		ce, found := findCounterexample(tb, hyp, lang, alph, maxLen)
		if !found {
			return hyp, rounds
		}
		if _, err = learner.RefineHypothesis(ce); err != nil {
			tb.Fatalf("RefineHypothesis(%s): %v", ce.Word, err)
		}
	}
}

func mustAlphabet(tb testing.TB, syms ...string) *core.Alphabet[string] {
	tb.Helper()
	alph, err := core.NewAlphabet(syms...)
	if err != nil {
		tb.Fatalf("NewAlphabet: %v", err)
	}

	return alph
}
