package obstable_test

import (
	"fmt"

	"github.com/velisar/lstar/core"
	"github.com/velisar/lstar/obstable"
)

// ExampleTable walks one closing step for the language {ε} over Σ={a}.
func ExampleTable() {
	alph, _ := core.NewAlphabet("a")
	tbl, _ := obstable.New[string, bool](alph)

	// answer every membership query: only ε is in the language
	for _, c := range tbl.MissingCells() {
		_ = tbl.Record(c.Prefix, c.Suffix, c.Prefix.Concat(c.Suffix).IsEmpty())
	}

	v, unclosed, _ := tbl.FindUnclosed()
	fmt.Println("unclosed row:", v, unclosed)

	// promote the offending row, extend the lower region, re-populate
	_ = tbl.MoveLongToShort(v)
	_ = tbl.AddLongPrefix(v.Append("a"))
	for _, c := range tbl.MissingCells() {
		_ = tbl.Record(c.Prefix, c.Suffix, c.Prefix.Concat(c.Suffix).IsEmpty())
	}

	closed, _ := tbl.IsClosed()
	fmt.Println("closed:", closed)
	fmt.Println("short prefixes:", tbl.ShortPrefixes())
	// Output:
	// unclosed row: a true
	// closed: true
	// short prefixes: [ε a]
}
