package core

import (
	"fmt"
	"strings"
)

// Word is an immutable finite sequence of symbols over S.
//
// The zero value is the empty word ε. Words are plain values: copy them
// freely, compare them with Equal, use them as map payloads. Every
// mutating operation returns a new Word and leaves the receiver intact;
// the backing storage of a Word is never exposed to callers.
type Word[S comparable] struct {
	syms []S
}

// Empty returns the empty word ε.
func Empty[S comparable]() Word[S] {
	return Word[S]{}
}

// From returns the one-symbol word consisting of sym.
func From[S comparable](sym S) Word[S] {
	return Word[S]{syms: []S{sym}}
}

// Of returns the word spelled by syms, in order.
func Of[S comparable](syms ...S) Word[S] {
	if len(syms) == 0 {
		return Word[S]{}
	}
	owned := make([]S, len(syms))
	copy(owned, syms)

	return Word[S]{syms: owned}
}

// Len returns the number of symbols in w.
func (w Word[S]) Len() int {
	return len(w.syms)
}

// IsEmpty reports whether w is the empty word ε.
func (w Word[S]) IsEmpty() bool {
	return len(w.syms) == 0
}

// At returns the i-th symbol of w. Indexing follows slice semantics:
// i must be in [0, Len).
func (w Word[S]) At(i int) S {
	return w.syms[i]
}

// Append returns a new word one symbol longer than w.
func (w Word[S]) Append(sym S) Word[S] {
	// fresh backing array, so two Appends to the same prefix never alias
	next := make([]S, len(w.syms)+1)
	copy(next, w.syms)
	next[len(w.syms)] = sym

	return Word[S]{syms: next}
}

// Concat returns the word w·v.
func (w Word[S]) Concat(v Word[S]) Word[S] {
	if len(w.syms) == 0 {
		return v
	}
	if len(v.syms) == 0 {
		return w
	}
	joined := make([]S, 0, len(w.syms)+len(v.syms))
	joined = append(joined, w.syms...)
	joined = append(joined, v.syms...)

	return Word[S]{syms: joined}
}

// Prefixes returns every prefix of w in increasing length, the improper
// prefix w itself included. The empty word ε is included iff includeEmpty
// is set.
func (w Word[S]) Prefixes(includeEmpty bool) []Word[S] {
	first := 1
	if includeEmpty {
		first = 0
	}
	prefixes := make([]Word[S], 0, len(w.syms)+1-first)
	for n := first; n <= len(w.syms); n++ {
		// prefixes share w's backing array; safe because no operation
		// ever writes through an existing Word
		prefixes = append(prefixes, Word[S]{syms: w.syms[:n:n]})
	}

	return prefixes
}

// Symbols returns a copy of w's symbol sequence.
func (w Word[S]) Symbols() []S {
	if len(w.syms) == 0 {
		return nil
	}
	out := make([]S, len(w.syms))
	copy(out, w.syms)

	return out
}

// Equal reports whether w and v spell the same symbol sequence.
func (w Word[S]) Equal(v Word[S]) bool {
	if len(w.syms) != len(v.syms) {
		return false
	}
	for i := range w.syms {
		if w.syms[i] != v.syms[i] {
			return false
		}
	}

	return true
}

// String renders w for humans: "ε" for the empty word, otherwise the
// concatenation of each symbol's default formatting.
func (w Word[S]) String() string {
	if len(w.syms) == 0 {
		return "ε"
	}
	var sb strings.Builder
	for i := range w.syms {
		fmt.Fprintf(&sb, "%v", w.syms[i])
	}

	return sb.String()
}
