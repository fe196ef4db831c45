package obstable_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velisar/lstar/core"
)

func TestRender_Blocks(t *testing.T) {
	tbl := newTable(t, "a")
	require.NoError(t, tbl.Record(core.Empty[string](), core.Empty[string](), true))

	out := tbl.Render(nil)

	assert.Contains(t, out, "ε", "header and ε row must render")
	assert.Contains(t, out, "true", "recorded cell renders via fmt.Sprint by default")
	assert.Contains(t, out, "·", "undefined cell renders as a placeholder")

	// the separator splits the SP block from the LP block: the ε row
	// must come before it, the "a" row after it
	lines := strings.Split(out, "\n")
	var epsLine, sepLine, aLine int
	for i, line := range lines {
		switch {
		case strings.Contains(line, "ε") && strings.Contains(line, "true"):
			epsLine = i
		case strings.Contains(line, "├"):
			sepLine = i
		case strings.Contains(line, "a") && strings.Contains(line, "·"):
			aLine = i
		}
	}
	assert.Less(t, epsLine, sepLine, "SP block renders above the separator")
	assert.Less(t, sepLine, aLine, "LP block renders below the separator")
}

func TestRender_CustomFormat(t *testing.T) {
	tbl := newTable(t, "a")
	require.NoError(t, tbl.Record(core.Empty[string](), core.Empty[string](), true))
	require.NoError(t, tbl.Record(core.Of("a"), core.Empty[string](), false))

	out := tbl.Render(func(d bool) string {
		if d {
			return "+"
		}
		return "-"
	})
	assert.Contains(t, out, "+")
	assert.Contains(t, out, "-")
	assert.NotContains(t, out, "true", "custom formatter replaces default rendering")
}

func TestRender_Deterministic(t *testing.T) {
	tbl := newTable(t, "a", "b")
	for _, c := range tbl.MissingCells() {
		require.NoError(t, tbl.Record(c.Prefix, c.Suffix, c.Prefix.Len()%2 == 0))
	}
	assert.Equal(t, tbl.Render(nil), tbl.Render(nil), "rendering must be stable")
}
