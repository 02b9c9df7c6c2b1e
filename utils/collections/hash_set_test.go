package collections

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashSet(t *testing.T) {
	s := NewHashSet[string]()
	require.Equal(t, true, s.Add("aa"))
	require.Equal(t, false, s.Add("aa"))
	require.Equal(t, true, s.Add("bb"))
	require.Equal(t, 2, s.Size())
	require.Equal(t, true, s.Contains("aa"))
	require.Equal(t, true, s.Contains("bb"))
	require.Equal(t, false, s.Contains("cc"))
	require.Equal(t, true, s.Remove("bb"))
	require.Equal(t, false, s.Remove("bb"))
	require.Equal(t, false, s.Contains("bb"))
	require.Equal(t, 1, s.Size())
}
