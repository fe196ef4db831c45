package obstable

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/velisar/lstar/core"
)

// entry pairs a stored word with its canonical key.
type entry[S comparable] struct {
	word core.Word[S]
	key  string
}

// Table is an observation table over symbols S and outputs D.
//
// Row labels live in two ordered regions, short prefixes (SP) and long
// prefixes (LP); column labels are the ordered suffix set E. Cells hold
// the oracle's output for prefix·suffix and are never removed. A Table
// is not safe for concurrent mutation.
type Table[S comparable, D comparable] struct {
	alph *core.Alphabet[S]

	short    []entry[S]
	long     []entry[S]
	shortSet map[string]struct{}
	longSet  map[string]struct{}

	suffixes []entry[S]
	sufSet   map[string]struct{}

	// cells maps prefix key → suffix key → recorded output.
	cells map[string]map[string]D
}

// New returns a table over alph seeded with SP = {ε}, LP = {a | a ∈ Σ},
// and E = {ε}. All cells start undefined. Returns ErrNilAlphabet if
// alph is nil.
func New[S comparable, D comparable](alph *core.Alphabet[S]) (*Table[S, D], error) {
	if alph == nil {
		return nil, ErrNilAlphabet
	}
	t := &Table[S, D]{
		alph:     alph,
		shortSet: make(map[string]struct{}),
		longSet:  make(map[string]struct{}),
		sufSet:   make(map[string]struct{}),
		cells:    make(map[string]map[string]D),
	}

	if err := t.AddShortPrefix(core.Empty[S]()); err != nil {
		return nil, err
	}
	if err := t.AddSuffix(core.Empty[S]()); err != nil {
		return nil, err
	}
	for _, sym := range alph.Symbols() {
		if err := t.AddLongPrefix(core.From(sym)); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Alphabet returns the alphabet the table's prefixes range over.
func (t *Table[S, D]) Alphabet() *core.Alphabet[S] {
	return t.alph
}

// wordKey returns the canonical key of w: its alphabet indices joined by
// dots. Injective for words over the alphabet; words containing foreign
// symbols yield ErrForeignSymbol.
func (t *Table[S, D]) wordKey(w core.Word[S]) (string, error) {
	var sb strings.Builder
	for i := 0; i < w.Len(); i++ {
		idx, err := t.alph.IndexOf(w.At(i))
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrForeignSymbol, w.At(i))
		}
		sb.WriteString(strconv.Itoa(idx))
		sb.WriteByte('.')
	}

	return sb.String(), nil
}

// ShortPrefixes returns the short prefixes in insertion order.
func (t *Table[S, D]) ShortPrefixes() []core.Word[S] {
	return wordsOf(t.short)
}

// LongPrefixes returns the long prefixes in insertion order.
func (t *Table[S, D]) LongPrefixes() []core.Word[S] {
	return wordsOf(t.long)
}

// Suffixes returns the column labels in insertion order.
func (t *Table[S, D]) Suffixes() []core.Word[S] {
	return wordsOf(t.suffixes)
}

func wordsOf[S comparable](entries []entry[S]) []core.Word[S] {
	out := make([]core.Word[S], len(entries))
	for i := range entries {
		out[i] = entries[i].word
	}

	return out
}

// InShort reports whether u is currently a short prefix.
func (t *Table[S, D]) InShort(u core.Word[S]) bool {
	k, err := t.wordKey(u)
	if err != nil {
		return false
	}
	_, ok := t.shortSet[k]

	return ok
}

// InLong reports whether u is currently a long prefix.
func (t *Table[S, D]) InLong(u core.Word[S]) bool {
	k, err := t.wordKey(u)
	if err != nil {
		return false
	}
	_, ok := t.longSet[k]

	return ok
}

// HasPrefix reports whether u labels a row in either region.
func (t *Table[S, D]) HasPrefix(u core.Word[S]) bool {
	return t.InShort(u) || t.InLong(u)
}

// AddShortPrefix inserts u into SP. A no-op if u is already a short
// prefix. A word currently held in LP is admitted as well: the regions
// then overlap until RemoveShortPrefixesFromLong restores disjointness,
// which is how counterexample prefixes are injected.
func (t *Table[S, D]) AddShortPrefix(u core.Word[S]) error {
	k, err := t.wordKey(u)
	if err != nil {
		return err
	}
	if _, ok := t.shortSet[k]; ok {
		return nil
	}
	t.short = append(t.short, entry[S]{word: u, key: k})
	t.shortSet[k] = struct{}{}

	return nil
}

// AddLongPrefix inserts u into LP. A no-op if u is already a long
// prefix; returns ErrRegionConflict if u is held in SP.
func (t *Table[S, D]) AddLongPrefix(u core.Word[S]) error {
	k, err := t.wordKey(u)
	if err != nil {
		return err
	}
	if _, ok := t.longSet[k]; ok {
		return nil
	}
	if _, ok := t.shortSet[k]; ok {
		return fmt.Errorf("%w: %s", ErrRegionConflict, u)
	}
	t.long = append(t.long, entry[S]{word: u, key: k})
	t.longSet[k] = struct{}{}

	return nil
}

// AddSuffix appends e to the suffix set E. A no-op if e is already a
// column label.
func (t *Table[S, D]) AddSuffix(e core.Word[S]) error {
	k, err := t.wordKey(e)
	if err != nil {
		return err
	}
	if _, ok := t.sufSet[k]; ok {
		return nil
	}
	t.suffixes = append(t.suffixes, entry[S]{word: e, key: k})
	t.sufSet[k] = struct{}{}

	return nil
}

// Record installs the cell value T(u, e) = d. The prefix must label a
// row (ErrUnknownPrefix) and the suffix must be a column
// (ErrUnknownSuffix). Re-recording a cell overwrites it.
func (t *Table[S, D]) Record(u, e core.Word[S], d D) error {
	uk, err := t.wordKey(u)
	if err != nil {
		return err
	}
	if _, short := t.shortSet[uk]; !short {
		if _, long := t.longSet[uk]; !long {
			return fmt.Errorf("%w: %s", ErrUnknownPrefix, u)
		}
	}
	ek, err := t.wordKey(e)
	if err != nil {
		return err
	}
	if _, ok := t.sufSet[ek]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSuffix, e)
	}

	row, ok := t.cells[uk]
	if !ok {
		row = make(map[string]D, len(t.suffixes))
		t.cells[uk] = row
	}
	row[ek] = d

	return nil
}

// MissingCells enumerates every undefined (prefix, suffix) pair in
// deterministic order: short prefixes first, then long prefixes, each
// crossed with the suffixes in column order. One entry per undefined
// cell; a prefix transiently held in both regions appears once.
func (t *Table[S, D]) MissingCells() []Cell[S] {
	var missing []Cell[S]
	collect := func(p entry[S]) {
		row := t.cells[p.key]
		for _, e := range t.suffixes {
			if _, ok := row[e.key]; !ok {
				missing = append(missing, Cell[S]{Prefix: p.word, Suffix: e.word})
			}
		}
	}

	for _, p := range t.short {
		collect(p)
	}
	for _, p := range t.long {
		if _, dual := t.shortSet[p.key]; dual {
			continue
		}
		collect(p)
	}

	return missing
}

// RowOf returns the signature of prefix u: its cell values in suffix
// order. Returns ErrUnknownPrefix if u labels no row and ErrRowIncomplete
// if any cell is still undefined.
func (t *Table[S, D]) RowOf(u core.Word[S]) (Row[D], error) {
	uk, err := t.wordKey(u)
	if err != nil {
		return Row[D]{}, err
	}
	if _, short := t.shortSet[uk]; !short {
		if _, long := t.longSet[uk]; !long {
			return Row[D]{}, fmt.Errorf("%w: %s", ErrUnknownPrefix, u)
		}
	}

	return t.rowByKey(uk, u)
}

func (t *Table[S, D]) rowByKey(uk string, u core.Word[S]) (Row[D], error) {
	stored := t.cells[uk]
	sig := make([]D, len(t.suffixes))
	for i, e := range t.suffixes {
		d, ok := stored[e.key]
		if !ok {
			return Row[D]{}, fmt.Errorf("%w: T(%s, %s)", ErrRowIncomplete, u, e.word)
		}
		sig[i] = d
	}

	return Row[D]{cells: sig}, nil
}

// ShortRows returns the signatures of the short prefixes in insertion
// order. Fails with ErrRowIncomplete if any cell is undefined.
func (t *Table[S, D]) ShortRows() ([]Row[D], error) {
	rows := make([]Row[D], len(t.short))
	for i, p := range t.short {
		row, err := t.rowByKey(p.key, p.word)
		if err != nil {
			return nil, err
		}
		rows[i] = row
	}

	return rows, nil
}

// FindUnclosed returns the first long prefix, in insertion order, whose
// signature matches no short-prefix signature. The second result is
// false when the table is closed. All cells must be recorded first.
func (t *Table[S, D]) FindUnclosed() (core.Word[S], bool, error) {
	shortSigs := make(map[string]struct{}, len(t.short))
	for _, p := range t.short {
		row, err := t.rowByKey(p.key, p.word)
		if err != nil {
			return core.Empty[S](), false, err
		}
		shortSigs[row.Key()] = struct{}{}
	}

	for _, p := range t.long {
		if _, dual := t.shortSet[p.key]; dual {
			continue
		}
		row, err := t.rowByKey(p.key, p.word)
		if err != nil {
			return core.Empty[S](), false, err
		}
		if _, ok := shortSigs[row.Key()]; !ok {
			return p.word, true, nil
		}
	}

	return core.Empty[S](), false, nil
}

// IsClosed reports whether every long-prefix signature equals some
// short-prefix signature.
func (t *Table[S, D]) IsClosed() (bool, error) {
	_, unclosed, err := t.FindUnclosed()
	if err != nil {
		return false, err
	}

	return !unclosed, nil
}

// MoveLongToShort migrates v from LP to SP, preserving its recorded
// cells. Returns ErrNotLongPrefix if v is not currently a long prefix.
func (t *Table[S, D]) MoveLongToShort(v core.Word[S]) error {
	k, err := t.wordKey(v)
	if err != nil {
		return err
	}
	if _, ok := t.longSet[k]; !ok {
		return fmt.Errorf("%w: %s", ErrNotLongPrefix, v)
	}

	for i := range t.long {
		if t.long[i].key == k {
			t.long = append(t.long[:i], t.long[i+1:]...)
			break
		}
	}
	delete(t.longSet, k)

	if _, dual := t.shortSet[k]; dual {
		return nil
	}
	t.short = append(t.short, entry[S]{word: v, key: k})
	t.shortSet[k] = struct{}{}

	return nil
}

// RemoveShortPrefixesFromLong drops every long prefix that is also held
// as a short prefix, restoring region disjointness after counterexample
// injection. Recorded cells are untouched.
func (t *Table[S, D]) RemoveShortPrefixesFromLong() {
	kept := t.long[:0]
	for _, p := range t.long {
		if _, dual := t.shortSet[p.key]; dual {
			delete(t.longSet, p.key)
			continue
		}
		kept = append(kept, p)
	}
	t.long = kept
}

// FindInconsistency searches for a pair of short prefixes with equal
// signatures whose one-symbol extensions disagree. Pairs are scanned in
// insertion order, symbols in index order, suffixes in column order, so
// the returned witness is deterministic. The second result is false when
// the table is consistent.
func (t *Table[S, D]) FindInconsistency() (Inconsistency[S], bool, error) {
	var none Inconsistency[S]
	syms := t.alph.Symbols()

	for i := 0; i < len(t.short); i++ {
		first, err := t.rowByKey(t.short[i].key, t.short[i].word)
		if err != nil {
			return none, false, err
		}
		for j := i + 1; j < len(t.short); j++ {
			second, err := t.rowByKey(t.short[j].key, t.short[j].word)
			if err != nil {
				return none, false, err
			}
			if !first.Equal(second) {
				continue
			}

			// apparently equivalent pair: compare successor rows per symbol
			for _, sym := range syms {
				extFirst := t.short[i].word.Append(sym)
				extSecond := t.short[j].word.Append(sym)
				rowFirst, err := t.RowOf(extFirst)
				if err != nil {
					return none, false, err
				}
				rowSecond, err := t.RowOf(extSecond)
				if err != nil {
					return none, false, err
				}
				for k := 0; k < rowFirst.Size(); k++ {
					if rowFirst.At(k) != rowSecond.At(k) {
						return Inconsistency[S]{
							First:  t.short[i].word,
							Second: t.short[j].word,
							Symbol: sym,
							Suffix: t.suffixes[k].word,
						}, true, nil
					}
				}
			}
		}
	}

	return none, false, nil
}

// IsConsistent reports whether every pair of apparently equivalent short
// prefixes stays equivalent under every one-symbol extension.
func (t *Table[S, D]) IsConsistent() (bool, error) {
	_, inconsistent, err := t.FindInconsistency()
	if err != nil {
		return false, err
	}

	return !inconsistent, nil
}
