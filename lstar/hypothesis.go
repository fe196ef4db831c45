package lstar

import (
	"fmt"

	"github.com/velisar/lstar/dfa"
	"github.com/velisar/lstar/obstable"
)

// buildHypothesis converts a closed, consistent observation table into
// a DFA:
//
//   - one state per distinct short-prefix signature; the first short
//     prefix with a given signature is its representative and supplies
//     the state's access word
//   - the initial state is ε's state (ε is always the first short prefix)
//   - a state accepts iff the ε-column of its signature is true
//   - δ(state of u, a) is the state matching the signature of row u·a,
//     which exists by prefix closure and has a matching state by closedness
//
// Consistency makes the construction independent of the representative
// choice. A closedness defect surfaces as ErrUnclosedTable; the learner
// never triggers it because it extracts only from a closed table.
func buildHypothesis[S comparable](t *obstable.Table[S, bool]) (*dfa.DFA[S], error) {
	m, err := dfa.New(t.Alphabet())
	if err != nil {
		return nil, err
	}

	shorts := t.ShortPrefixes()
	rows, err := t.ShortRows()
	if err != nil {
		return nil, err
	}

	// 1) one state per distinct signature, in first-occurrence order
	stateOf := make(map[string]int, len(shorts))
	for i, row := range rows {
		key := row.Key()
		if _, seen := stateOf[key]; seen {
			continue
		}
		// the ε-column is always column 0: E is seeded with ε and only appended to
		q := m.AddState(row.At(0))
		if err = m.SetRepresentative(q, shorts[i]); err != nil {
			return nil, err
		}
		stateOf[key] = q
	}

	// 2) ε seeds the table, so the first short row is the start state
	if err = m.SetStart(stateOf[rows[0].Key()]); err != nil {
		return nil, err
	}

	// 3) transitions via the one-symbol extensions of each representative
	syms := t.Alphabet().Symbols()
	for q := 0; q < m.NumStates(); q++ {
		rep, err := m.Representative(q)
		if err != nil {
			return nil, err
		}
		for _, sym := range syms {
			extRow, err := t.RowOf(rep.Append(sym))
			if err != nil {
				return nil, err
			}
			target, ok := stateOf[extRow.Key()]
			if !ok {
				return nil, fmt.Errorf("%w: row %s·%v has no representative", ErrUnclosedTable, rep, sym)
			}
			if err = m.SetTransition(q, sym, target); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}
