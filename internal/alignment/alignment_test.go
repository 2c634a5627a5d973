package alignment

import (
	"testing"

	"github.com/ashokshau/qriso/internal/bitutil"
	"github.com/stretchr/testify/require"
)

func drawAlignmentPattern(m *bitutil.BitMatrix, cx, cy int) {
	// 5x5 alignment pattern: a dark ring, a light ring, and a dark center
	// module, matching the 1:1:1:1:1 scanline ratio across its middle row.
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			dark := dx == -2 || dx == 2 || dy == -2 || dy == 2 || (dx == 0 && dy == 0)
			if dark {
				m.Set(cx+dx, cy+dy)
			}
		}
	}
}

func TestFindLocatesPatternNearPrediction(t *testing.T) {
	matrix := bitutil.NewBitMatrixWithSize(200, 200)
	drawAlignmentPattern(matrix, 100, 100)

	candidates, err := Find(matrix, 98, 98, 1, 20)
	require.NoError(t, err)
	require.NotEmpty(t, candidates)
	// The nearest hit should land within a module of the true center.
	require.InDelta(t, 100, candidates[0].Point.X, 2)
	require.InDelta(t, 100, candidates[0].Point.Y, 2)
}

func TestFindFallsBackToPredictionWhenRegionEmpty(t *testing.T) {
	matrix := bitutil.NewBitMatrixWithSize(200, 200)
	candidates, err := Find(matrix, 50, 50, 1, 10)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	require.Equal(t, 50.0, candidates[0].Point.X)
	require.Equal(t, 50.0, candidates[0].Point.Y)
}

func TestFindFallsBackWhenRegionOutOfBounds(t *testing.T) {
	matrix := bitutil.NewBitMatrixWithSize(20, 20)
	candidates, err := Find(matrix, -100, -100, 1, 5)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	require.Equal(t, -100.0, candidates[0].Point.X)
}

func TestFindAppendsPredictionAsFallbackCandidate(t *testing.T) {
	matrix := bitutil.NewBitMatrixWithSize(200, 200)
	drawAlignmentPattern(matrix, 100, 100)

	candidates, err := Find(matrix, 98, 98, 1, 20)
	require.NoError(t, err)
	last := candidates[len(candidates)-1]
	require.Equal(t, 98.0, last.Point.X)
	require.Equal(t, 98.0, last.Point.Y)
}
