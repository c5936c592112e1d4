package uid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateTableID(t *testing.T) {
	a := GenerateTableID()
	b := GenerateTableID()

	require.NotEqual(t, a, b)
	require.True(t, IsTableID(a))
	require.Len(t, a, 36)
	require.False(t, IsTableID("not-a-table"))
	require.False(t, IsTableID(""))
}
