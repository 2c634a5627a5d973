package pattern

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildRow(runs []int, startDark bool) []bool {
	var row []bool
	dark := startDark
	for _, n := range runs {
		for i := 0; i < n; i++ {
			row = append(row, dark)
		}
		dark = !dark
	}
	return row
}

func TestScanLineFindsFinderRatio(t *testing.T) {
	row := buildRow([]int{3, 3, 9, 3, 3}, true)
	finder := NewFinderPatternFinder()
	matches := finder.ScanLine(row)
	require.NotEmpty(t, matches)
	found := false
	for _, m := range matches {
		if m.Width == 21 {
			found = true
			require.InDelta(t, 10.5, m.Center, 1.0)
		}
	}
	require.True(t, found)
}

func TestMatchRejectsWrongRatio(t *testing.T) {
	finder := NewFinderPatternFinder()
	require.False(t, finder.Match([]int{1, 1, 1, 1, 1}))
}

func TestMatchAcceptsScaledRatio(t *testing.T) {
	finder := NewFinderPatternFinder()
	require.True(t, finder.Match([]int{3, 3, 9, 3, 3}))
}
