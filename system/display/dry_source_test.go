package display

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDrySource(t *testing.T) {
	src, err := NewSource(Config{DryRun: true})
	require.NoError(t, err)
	require.NotEmpty(t, src.Name())

	modes, err := src.SupportedResolutions()
	require.NoError(t, err)

	expected := NewResolutionSet()
	for _, entry := range dryModeTable {
		expected.Add(entry.Mode)
	}
	require.Less(t, len(modes), len(dryModeTable))
	require.Equal(t, expected.Sorted(), modes)
	assertSortedDistinct(t, modes)

	require.Equal(t, Mode{640, 480, 60}, modes[0])
	require.Equal(t, Mode{3840, 2160, 60}, modes[len(modes)-1])
}
