// Package lstar declares the learner's boundary types — membership
// queries, the oracle interface, counterexamples — its functional
// options, and sentinel errors.
//
// Errors:
//
//	ErrNilAlphabet       - NewLearner called with a nil alphabet.
//	ErrNilOracle         - NewLearner called with a nil oracle.
//	ErrOptionViolation   - an invalid Option was supplied.
//	ErrInvalidLifecycle  - learner calls out of order (see Learner docs).
//	ErrBadCounterexample - a counterexample the hypothesis already agrees with.
//	ErrUnclosedTable     - hypothesis extraction over an unclosed table.
package lstar

import (
	"errors"

	"github.com/velisar/lstar/core"
)

// Sentinel errors for learner construction and lifecycle.
var (
	// ErrNilAlphabet indicates NewLearner was called with a nil alphabet.
	ErrNilAlphabet = errors.New("lstar: alphabet is nil")

	// ErrNilOracle indicates NewLearner was called with a nil membership oracle.
	ErrNilOracle = errors.New("lstar: membership oracle is nil")

	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("lstar: invalid option supplied")

	// ErrInvalidLifecycle indicates a learner call out of order:
	// StartLearning twice, or Hypothesis / RefineHypothesis /
	// AddGlobalSuffixes before StartLearning.
	ErrInvalidLifecycle = errors.New("lstar: invalid learner lifecycle")

	// ErrBadCounterexample indicates a counterexample whose declared output
	// the current hypothesis already produces (WithCounterexampleCheck only).
	ErrBadCounterexample = errors.New("lstar: counterexample agrees with hypothesis")

	// ErrUnclosedTable indicates hypothesis extraction found a transition
	// row with no short-prefix signature. Does not occur when the learner
	// drives the table.
	ErrUnclosedTable = errors.New("lstar: observation table is not closed")
)

// Query is one membership question: is Prefix·Suffix in the target
// language? The oracle answers by setting Output.
type Query[S comparable, D any] struct {
	// Prefix is the row label of the cell behind this query.
	Prefix core.Word[S]

	// Suffix is the column label of the cell behind this query.
	Suffix core.Word[S]

	// Output is the oracle's answer for Prefix·Suffix.
	Output D
}

// Word returns the full queried word Prefix·Suffix.
func (q *Query[S, D]) Word() core.Word[S] {
	return q.Prefix.Concat(q.Suffix)
}

// MembershipOracle answers membership queries in batches. Process must
// set Output on every query; returning an error discards the whole
// batch (the learner records nothing). The learner never mutates the
// oracle and issues no concurrent calls.
type MembershipOracle[S comparable, D any] interface {
	Process(queries []*Query[S, D]) error
}

// Counterexample is a word on which the current hypothesis and the
// target language disagree, together with the target's true output.
type Counterexample[S comparable, D any] struct {
	// Word is the disagreeing input word.
	Word core.Word[S]

	// Output is the target language's classification of Word.
	Output D
}

// Option configures a Learner via functional arguments. An invalid
// option is recorded internally and surfaced as ErrOptionViolation by
// NewLearner. Options carry the symbol type so hooks can observe typed
// learner events.
type Option[S comparable] func(*Options[S])

// Options holds the learner's tunable behavior.
type Options[S comparable] struct {
	// CheckCounterexamples makes RefineHypothesis validate that the
	// counterexample's declared output differs from the current
	// hypothesis's, failing with ErrBadCounterexample otherwise.
	CheckCounterexamples bool

	// OnBatch is called immediately before each membership batch is
	// handed to the oracle, with the number of queries in the batch.
	OnBatch func(size int)

	// OnRefine is called after each successful RefineHypothesis with the
	// counterexample that was processed.
	OnRefine func(ce Counterexample[S, bool])

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the learner defaults: no counterexample
// validation, no-op hooks.
func DefaultOptions[S comparable]() Options[S] {
	return Options[S]{
		CheckCounterexamples: false,
		OnBatch:              func(int) {},
		OnRefine:             func(Counterexample[S, bool]) {},
		err:                  nil,
	}
}

// WithCounterexampleCheck enables counterexample validation in
// RefineHypothesis.
func WithCounterexampleCheck[S comparable]() Option[S] {
	return func(o *Options[S]) {
		o.CheckCounterexamples = true
	}
}

// WithOnBatch registers a callback observing each membership batch.
func WithOnBatch[S comparable](fn func(size int)) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnBatch = fn
		}
	}
}

// WithOnRefine registers a callback observing each processed
// counterexample.
func WithOnRefine[S comparable](fn func(ce Counterexample[S, bool])) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnRefine = fn
		}
	}
}
