// Package obstable declares the sentinel errors and the small value
// types (Row, Cell, Inconsistency) of the observation table.
//
// Errors:
//
//	ErrNilAlphabet    - New called with a nil alphabet.
//	ErrForeignSymbol  - a word contains a symbol outside the alphabet.
//	ErrUnknownPrefix  - a row operation on a word absent from SP ∪ LP.
//	ErrUnknownSuffix  - Record on a suffix absent from E.
//	ErrRegionConflict - AddLongPrefix on a word already in SP.
//	ErrNotLongPrefix  - MoveLongToShort on a word absent from LP.
//	ErrRowIncomplete  - a signature read over undefined cells.
package obstable

import (
	"errors"
	"fmt"
	"strings"

	"github.com/velisar/lstar/core"
)

// Sentinel errors for observation-table operations.
var (
	// ErrNilAlphabet indicates New was called with a nil alphabet.
	ErrNilAlphabet = errors.New("obstable: alphabet is nil")

	// ErrForeignSymbol indicates a word containing a symbol outside the alphabet.
	ErrForeignSymbol = errors.New("obstable: word contains symbol outside alphabet")

	// ErrUnknownPrefix indicates a row operation on a word that is in neither region.
	ErrUnknownPrefix = errors.New("obstable: prefix not in table")

	// ErrUnknownSuffix indicates a cell write under a suffix that is not a column.
	ErrUnknownSuffix = errors.New("obstable: suffix not in table")

	// ErrRegionConflict indicates AddLongPrefix on a word already held as a short prefix.
	ErrRegionConflict = errors.New("obstable: prefix already a short prefix")

	// ErrNotLongPrefix indicates MoveLongToShort on a word that is not a long prefix.
	ErrNotLongPrefix = errors.New("obstable: word is not a long prefix")

	// ErrRowIncomplete indicates a signature was requested while cells are undefined.
	ErrRowIncomplete = errors.New("obstable: row has undefined cells")
)

// Row is the signature of a prefix: its cell values in suffix order.
// Rows are immutable snapshots; mutating the table does not update
// previously returned rows.
type Row[D comparable] struct {
	cells []D
}

// Size returns the number of cells in the row (the number of suffixes
// at snapshot time).
func (r Row[D]) Size() int {
	return len(r.cells)
}

// At returns the cell under the i-th suffix. Indexing follows slice
// semantics: i must be in [0, Size).
func (r Row[D]) At(i int) D {
	return r.cells[i]
}

// Cells returns a copy of the row's cell values in suffix order.
func (r Row[D]) Cells() []D {
	out := make([]D, len(r.cells))
	copy(out, r.cells)

	return out
}

// Equal reports whether two rows carry identical signatures.
func (r Row[D]) Equal(other Row[D]) bool {
	if len(r.cells) != len(other.cells) {
		return false
	}
	for i := range r.cells {
		if r.cells[i] != other.cells[i] {
			return false
		}
	}

	return true
}

// Key returns an opaque deterministic identity for the signature:
// two rows have equal keys iff Equal reports true. Useful for grouping
// rows into equivalence classes.
func (r Row[D]) Key() string {
	var sb strings.Builder
	for i := range r.cells {
		fmt.Fprintf(&sb, "%v\x1f", r.cells[i])
	}

	return sb.String()
}

// Cell names one undefined (prefix, suffix) pair of the table; the
// membership query behind it is prefix·suffix.
type Cell[S comparable] struct {
	// Prefix is the row label of the undefined cell.
	Prefix core.Word[S]

	// Suffix is the column label of the undefined cell.
	Suffix core.Word[S]
}

// Inconsistency is a witness that the table is not consistent: First and
// Second are short prefixes with equal signatures whose one-symbol
// extensions by Symbol disagree under Suffix.
type Inconsistency[S comparable] struct {
	// First and Second are the apparently equivalent short prefixes.
	First  core.Word[S]
	Second core.Word[S]

	// Symbol is the extension on which their successor rows diverge.
	Symbol S

	// Suffix is the column under which the successor rows disagree.
	Suffix core.Word[S]
}

// Witness returns the new distinguishing suffix Symbol·Suffix; appending
// it to E separates First's row from Second's.
func (x Inconsistency[S]) Witness() core.Word[S] {
	return core.From(x.Symbol).Concat(x.Suffix)
}
