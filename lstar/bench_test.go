package lstar_test

import (
	"testing"

	"github.com/velisar/lstar/core"
	"github.com/velisar/lstar/lstar"
)

// benchmarkLearn runs a full learning session — start, equivalence
// checks by enumeration, refinements — once per iteration.
func benchmarkLearn(b *testing.B, syms []string, lang func(core.Word[string]) bool, maxLen int) {
	alph := mustAlphabet(b, syms...)

	b.ResetTimer() // ignore alphabet setup
	for i := 0; i < b.N; i++ {
		learner, err := lstar.NewLearner(alph, newLangOracle(lang))
		if err != nil {
			b.Fatalf("NewLearner failed: %v", err)
		}
		learnUntilStable(b, learner, lang, alph, maxLen)
	}
}

// modCounter returns the language of words whose length is divisible by k.
func modCounter(k int) func(core.Word[string]) bool {
	return func(w core.Word[string]) bool { return w.Len()%k == 0 }
}

// BenchmarkLearn_EndsInOne learns the 2-state suffix-marker language.
func BenchmarkLearn_EndsInOne(b *testing.B) {
	benchmarkLearn(b, []string{"0", "1"}, endsInOne, 7)
}

// BenchmarkLearn_ContainsAB learns the 3-state substring language.
func BenchmarkLearn_ContainsAB(b *testing.B) {
	benchmarkLearn(b, []string{"a", "b"}, containsAB, 8)
}

// BenchmarkLearn_Mod5 learns a 5-state modular counter over one symbol.
func BenchmarkLearn_Mod5(b *testing.B) {
	benchmarkLearn(b, []string{"a"}, modCounter(5), 12)
}

// BenchmarkLearn_Mod8 learns an 8-state modular counter over one symbol.
func BenchmarkLearn_Mod8(b *testing.B) {
	benchmarkLearn(b, []string{"a"}, modCounter(8), 18)
}
