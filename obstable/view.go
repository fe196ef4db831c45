package obstable

import "github.com/velisar/lstar/core"

// View is a read-only handle on a Table, exposing its regions, columns,
// signatures, and rendering without any mutating surface. The view
// observes the live table: it reflects later mutations made through the
// owning Table.
type View[S comparable, D comparable] struct {
	t *Table[S, D]
}

// View returns a read-only handle on t.
func (t *Table[S, D]) View() View[S, D] {
	return View[S, D]{t: t}
}

// ShortPrefixes returns the short prefixes in insertion order.
func (v View[S, D]) ShortPrefixes() []core.Word[S] {
	return v.t.ShortPrefixes()
}

// LongPrefixes returns the long prefixes in insertion order.
func (v View[S, D]) LongPrefixes() []core.Word[S] {
	return v.t.LongPrefixes()
}

// Suffixes returns the column labels in insertion order.
func (v View[S, D]) Suffixes() []core.Word[S] {
	return v.t.Suffixes()
}

// RowOf returns the signature of prefix u.
func (v View[S, D]) RowOf(u core.Word[S]) (Row[D], error) {
	return v.t.RowOf(u)
}

// IsClosed reports whether the underlying table is closed.
func (v View[S, D]) IsClosed() (bool, error) {
	return v.t.IsClosed()
}

// IsConsistent reports whether the underlying table is consistent.
func (v View[S, D]) IsConsistent() (bool, error) {
	return v.t.IsConsistent()
}

// Render returns the table's printable form; see Table.Render.
func (v View[S, D]) Render(format func(D) string) string {
	return v.t.Render(format)
}
