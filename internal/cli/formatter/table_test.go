package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable_Empty(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}

func TestRenderTable_PadsColumns(t *testing.T) {
	out := stripANSI(RenderTable([]string{"A", "B"}, [][]string{{"long cell", "x"}}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "A          B", lines[0])
	assert.Equal(t, "─────────  ─", lines[1])
	assert.Equal(t, "long cell  x", lines[2])
}

func TestRenderTable_RightAlign(t *testing.T) {
	out := stripANSI(RenderTable([]string{"NAME", "XP"}, [][]string{{"a", "5"}, {"b", "12,840"}}, AlignLeft, AlignRight))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "NAME      XP", lines[0])
	assert.Equal(t, "a          5", lines[2])
	assert.Equal(t, "b     12,840", lines[3])
}
