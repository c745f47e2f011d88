package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advent-labs/advent/internal/registry"
)

func TestLoad(t *testing.T) {
	root, err := Load()
	require.NoError(t, err)
	assert.Equal(t, RootID, root.ID())
	assert.Equal(t, "Year:", root.Label())
	assert.Equal(t, []string{"2023"}, root.IDs())

	entry, err := registry.Resolve(root, "2023", "trebuchet")
	require.NoError(t, err)
	assert.Equal(t, "Day 1: Trebuchet?!", entry.ID())
}
