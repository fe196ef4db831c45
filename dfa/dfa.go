// Package dfa declares the DFA type, its construction and simulation
// methods, and the sentinel errors they return.
//
// Errors:
//
//	ErrNilAlphabet       - New called with a nil alphabet.
//	ErrStateNotFound     - a state argument outside [0, NumStates).
//	ErrSymbolNotFound    - a symbol outside the automaton's alphabet.
//	ErrMissingTransition - Step over an (state, symbol) pair with no target.
//	ErrNoStartState      - Run/Accepts/Validate before SetStart.
package dfa

import (
	"errors"
	"fmt"
	"strings"

	"github.com/velisar/lstar/core"
)

// Sentinel errors for DFA construction and simulation.
var (
	// ErrNilAlphabet indicates New was called with a nil alphabet.
	ErrNilAlphabet = errors.New("dfa: alphabet is nil")

	// ErrStateNotFound indicates a state id outside [0, NumStates).
	ErrStateNotFound = errors.New("dfa: state does not exist")

	// ErrSymbolNotFound indicates a symbol the alphabet does not contain.
	ErrSymbolNotFound = errors.New("dfa: symbol not in alphabet")

	// ErrMissingTransition indicates a (state, symbol) pair with no target set.
	ErrMissingTransition = errors.New("dfa: missing transition")

	// ErrNoStartState indicates the start state has not been set.
	ErrNoStartState = errors.New("dfa: start state not set")
)

// unset marks an absent transition target.
const unset = -1

// DFA is a deterministic finite automaton over the symbols of a fixed
// alphabet. States are dense integers assigned by AddState; transitions
// form a table indexed by (state, symbol index).
//
// The zero DFA is not usable; construct with New.
type DFA[S comparable] struct {
	alph      *core.Alphabet[S]
	delta     [][]int
	accepting []bool
	reps      []core.Word[S]
	start     int
}

// New returns an empty DFA over alph. Returns ErrNilAlphabet if alph is nil.
func New[S comparable](alph *core.Alphabet[S]) (*DFA[S], error) {
	if alph == nil {
		return nil, ErrNilAlphabet
	}

	return &DFA[S]{alph: alph, start: unset}, nil
}

// Alphabet returns the alphabet the automaton reads.
func (m *DFA[S]) Alphabet() *core.Alphabet[S] {
	return m.alph
}

// NumStates returns the number of states added so far.
func (m *DFA[S]) NumStates() int {
	return len(m.delta)
}

// AddState adds a fresh state with the given acceptance flag and returns
// its id. All transitions of the new state start out unset.
func (m *DFA[S]) AddState(accepting bool) int {
	row := make([]int, m.alph.Size())
	for i := range row {
		row[i] = unset
	}
	m.delta = append(m.delta, row)
	m.accepting = append(m.accepting, accepting)
	m.reps = append(m.reps, core.Empty[S]())

	return len(m.delta) - 1
}

// SetStart marks q as the initial state. Returns ErrStateNotFound if q
// does not exist.
func (m *DFA[S]) SetStart(q int) error {
	if q < 0 || q >= len(m.delta) {
		return fmt.Errorf("%w: start %d", ErrStateNotFound, q)
	}
	m.start = q

	return nil
}

// Start returns the initial state id, or -1 if it has not been set.
func (m *DFA[S]) Start() int {
	return m.start
}

// IsAccepting reports whether q is an accepting state.
// Returns false if q does not exist.
func (m *DFA[S]) IsAccepting(q int) bool {
	if q < 0 || q >= len(m.accepting) {
		return false
	}

	return m.accepting[q]
}

// SetRepresentative attaches the access word that introduced state q.
func (m *DFA[S]) SetRepresentative(q int, w core.Word[S]) error {
	if q < 0 || q >= len(m.reps) {
		return fmt.Errorf("%w: state %d", ErrStateNotFound, q)
	}
	m.reps[q] = w

	return nil
}

// Representative returns the access word attached to state q
// (ε if none was set).
func (m *DFA[S]) Representative(q int) (core.Word[S], error) {
	if q < 0 || q >= len(m.reps) {
		return core.Empty[S](), fmt.Errorf("%w: state %d", ErrStateNotFound, q)
	}

	return m.reps[q], nil
}

// SetTransition installs δ(from, sym) = to, overwriting any previous
// target for the pair.
func (m *DFA[S]) SetTransition(from int, sym S, to int) error {
	if from < 0 || from >= len(m.delta) {
		return fmt.Errorf("%w: source %d", ErrStateNotFound, from)
	}
	if to < 0 || to >= len(m.delta) {
		return fmt.Errorf("%w: target %d", ErrStateNotFound, to)
	}
	i, err := m.alph.IndexOf(sym)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSymbolNotFound, sym)
	}
	m.delta[from][i] = to

	return nil
}

// Step returns δ(from, sym). Returns ErrMissingTransition if no target
// has been set for the pair.
func (m *DFA[S]) Step(from int, sym S) (int, error) {
	if from < 0 || from >= len(m.delta) {
		return unset, fmt.Errorf("%w: source %d", ErrStateNotFound, from)
	}
	i, err := m.alph.IndexOf(sym)
	if err != nil {
		return unset, fmt.Errorf("%w: %v", ErrSymbolNotFound, sym)
	}
	to := m.delta[from][i]
	if to == unset {
		return unset, fmt.Errorf("%w: δ(%d, %v)", ErrMissingTransition, from, sym)
	}

	return to, nil
}

// Run reads w from the start state and returns the final state.
func (m *DFA[S]) Run(w core.Word[S]) (int, error) {
	if m.start == unset {
		return unset, ErrNoStartState
	}
	q := m.start
	var err error
	for i := 0; i < w.Len(); i++ {
		if q, err = m.Step(q, w.At(i)); err != nil {
			return unset, err
		}
	}

	return q, nil
}

// Accepts reports whether the automaton accepts w.
func (m *DFA[S]) Accepts(w core.Word[S]) (bool, error) {
	q, err := m.Run(w)
	if err != nil {
		return false, err
	}

	return m.accepting[q], nil
}

// Validate checks that the start state is set and every (state, symbol)
// pair has a target, returning the first defect found.
func (m *DFA[S]) Validate() error {
	if m.start == unset {
		return ErrNoStartState
	}
	for q := range m.delta {
		for i, to := range m.delta[q] {
			if to == unset {
				sym, _ := m.alph.SymbolAt(i)
				return fmt.Errorf("%w: δ(%d, %v)", ErrMissingTransition, q, sym)
			}
		}
	}

	return nil
}

// String renders a deterministic dump of the automaton: one line per
// state with its flags and outgoing transitions in symbol index order.
func (m *DFA[S]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "DFA(states=%d, start=%d)", len(m.delta), m.start)
	for q := range m.delta {
		mark := " "
		if m.accepting[q] {
			mark = "*"
		}
		fmt.Fprintf(&sb, "\n%s%d:", mark, q)
		for i, to := range m.delta[q] {
			sym, _ := m.alph.SymbolAt(i)
			if to == unset {
				fmt.Fprintf(&sb, " %v→?", sym)
			} else {
				fmt.Fprintf(&sb, " %v→%d", sym, to)
			}
		}
	}

	return sb.String()
}
