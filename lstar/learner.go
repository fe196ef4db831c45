package lstar

import (
	"fmt"

	"github.com/velisar/lstar/core"
	"github.com/velisar/lstar/dfa"
	"github.com/velisar/lstar/obstable"
)

// Learner runs Angluin's L* over a boolean membership oracle. It owns
// its observation table exclusively and borrows the oracle only for the
// duration of each batched call. Not safe for concurrent use.
//
// The genericity split mirrors the layering: Query, MembershipOracle,
// Counterexample, and the table stay parametric in the output domain;
// the learner instantiates it to bool because hypothesis extraction
// needs an accept/reject verdict per cell.
type Learner[S comparable] struct {
	alph    *core.Alphabet[S]
	oracle  MembershipOracle[S, bool]
	table   *obstable.Table[S, bool]
	opts    Options[S]
	started bool
}

// NewLearner builds a learner over alph and oracle. The observation
// table is seeded (SP={ε}, LP=Σ, E={ε}) but the oracle is not consulted
// until StartLearning.
func NewLearner[S comparable](alph *core.Alphabet[S], oracle MembershipOracle[S, bool], opts ...Option[S]) (*Learner[S], error) {
	if alph == nil {
		return nil, ErrNilAlphabet
	}
	if oracle == nil {
		return nil, ErrNilOracle
	}
	o := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	table, err := obstable.New[S, bool](alph)
	if err != nil {
		return nil, err
	}

	return &Learner[S]{alph: alph, oracle: oracle, table: table, opts: o}, nil
}

// StartLearning fills the seeded table with one batched oracle call and
// drives it to a closed, consistent state. It succeeds at most once;
// a second call fails with ErrInvalidLifecycle. If an oracle batch fails
// the learner is left unstarted and that batch records nothing (cells
// and promotions from earlier batches of the call remain), so the call
// may be retried.
func (l *Learner[S]) StartLearning() error {
	if l.started {
		return fmt.Errorf("%w: StartLearning called twice", ErrInvalidLifecycle)
	}
	if err := l.populate(); err != nil {
		return err
	}
	if err := l.makeClosedAndConsistent(); err != nil {
		return err
	}
	l.started = true

	return nil
}

// Hypothesis extracts the current DFA from the table: one state per
// distinct short-prefix signature, transitions read off the rows.
// Requires StartLearning to have succeeded.
func (l *Learner[S]) Hypothesis() (*dfa.DFA[S], error) {
	if !l.started {
		return nil, fmt.Errorf("%w: Hypothesis before StartLearning", ErrInvalidLifecycle)
	}

	return buildHypothesis(l.table)
}

// RefineHypothesis processes a counterexample in the baseline Angluin
// manner: every prefix of the word becomes a short prefix, the lower
// region is rebuilt around the new candidates, and the table is driven
// back to a closed, consistent state. Returns true on success. A word
// whose prefixes are all short prefixes already adds nothing to the
// table. Requires StartLearning.
//
// With WithCounterexampleCheck enabled, a counterexample whose declared
// output the current hypothesis already produces fails with
// ErrBadCounterexample and leaves the table unchanged.
func (l *Learner[S]) RefineHypothesis(ce Counterexample[S, bool]) (bool, error) {
	if !l.started {
		return false, fmt.Errorf("%w: RefineHypothesis before StartLearning", ErrInvalidLifecycle)
	}
	if l.opts.CheckCounterexamples {
		hyp, err := buildHypothesis(l.table)
		if err != nil {
			return false, err
		}
		got, err := hyp.Accepts(ce.Word)
		if err != nil {
			return false, err
		}
		if got == ce.Output {
			return false, fmt.Errorf("%w: %s", ErrBadCounterexample, ce.Word)
		}
	}

	// 1+2) inject every prefix of the counterexample, shortest first
	var fresh []core.Word[S]
	for _, p := range ce.Word.Prefixes(true) {
		if l.table.InShort(p) {
			continue
		}
		if err := l.table.AddShortPrefix(p); err != nil {
			return false, err
		}
		fresh = append(fresh, p)
	}

	// 3) restore region disjointness
	l.table.RemoveShortPrefixesFromLong()

	// 4) rebuild the lower region around the new short prefixes
	for _, p := range fresh {
		for _, sym := range l.alph.Symbols() {
			ext := p.Append(sym)
			if l.table.InShort(ext) {
				continue
			}
			if err := l.table.AddLongPrefix(ext); err != nil {
				return false, err
			}
		}
	}

	// 5+6) one batch for the new cells, then re-establish the invariants
	if err := l.populate(); err != nil {
		return false, err
	}
	if err := l.makeClosedAndConsistent(); err != nil {
		return false, err
	}
	l.opts.OnRefine(ce)

	return true, nil
}

// GlobalSuffixes returns the suffix set E in column order.
func (l *Learner[S]) GlobalSuffixes() []core.Word[S] {
	return l.table.Suffixes()
}

// AddGlobalSuffixes appends caller-provided suffixes to E, populates the
// new columns, and re-closes the table. Consistency is NOT re-checked:
// the added suffixes may or may not witness an inconsistency, and the
// next RefineHypothesis cycle repairs one if they do. Callers extracting
// a hypothesis in between may observe an inconsistent table.
// Requires StartLearning.
func (l *Learner[S]) AddGlobalSuffixes(suffixes ...core.Word[S]) error {
	if !l.started {
		return fmt.Errorf("%w: AddGlobalSuffixes before StartLearning", ErrInvalidLifecycle)
	}
	for _, e := range suffixes {
		if err := l.table.AddSuffix(e); err != nil {
			return err
		}
	}
	if err := l.populate(); err != nil {
		return err
	}

	return l.closeTable()
}

// Observations returns a read-only view of the observation table.
func (l *Learner[S]) Observations() obstable.View[S, bool] {
	return l.table.View()
}

// populate answers every undefined cell with a single batched oracle
// call: one query per cell, no duplicates. Nothing is recorded if the
// oracle fails, so the table's cells are untouched on error.
func (l *Learner[S]) populate() error {
	cells := l.table.MissingCells()
	if len(cells) == 0 {
		return nil
	}

	queries := make([]*Query[S, bool], len(cells))
	for i, c := range cells {
		queries[i] = &Query[S, bool]{Prefix: c.Prefix, Suffix: c.Suffix}
	}

	l.opts.OnBatch(len(queries))
	if err := l.oracle.Process(queries); err != nil {
		return fmt.Errorf("lstar: membership batch failed: %w", err)
	}

	for i, q := range queries {
		if err := l.table.Record(cells[i].Prefix, cells[i].Suffix, q.Output); err != nil {
			return err
		}
	}

	return nil
}

// closeTable promotes unclosed rows until the table is closed. Each
// promotion extends the lower region by the promoted word's one-symbol
// extensions and triggers one populate batch. Terminates because SP
// grows strictly and is bounded by the number of distinct signatures.
func (l *Learner[S]) closeTable() error {
	for {
		v, unclosed, err := l.table.FindUnclosed()
		if err != nil {
			return err
		}
		if !unclosed {
			return nil
		}

		if err = l.table.MoveLongToShort(v); err != nil {
			return err
		}
		for _, sym := range l.alph.Symbols() {
			ext := v.Append(sym)
			if l.table.InShort(ext) {
				continue
			}
			if err = l.table.AddLongPrefix(ext); err != nil {
				return err
			}
		}
		if err = l.populate(); err != nil {
			return err
		}
	}
}

// makeClosedAndConsistent alternates the close and consistency phases
// until both properties hold. Each inconsistency appends its witness
// suffix to E, which refines at least two previously equal rows, so the
// loop terminates.
func (l *Learner[S]) makeClosedAndConsistent() error {
	for {
		if err := l.closeTable(); err != nil {
			return err
		}

		inc, inconsistent, err := l.table.FindInconsistency()
		if err != nil {
			return err
		}
		if !inconsistent {
			return nil
		}

		if err = l.table.AddSuffix(inc.Witness()); err != nil {
			return err
		}
		if err = l.populate(); err != nil {
			return err
		}
	}
}
