package perspective

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSquareToQuadIdentityOnUnitSquare(t *testing.T) {
	tr := SquareToQuad(0, 0, 1, 0, 1, 1, 0, 1)
	x, y := tr.Apply(0.5, 0.5)
	require.InDelta(t, 0.5, x, 1e-9)
	require.InDelta(t, 0.5, y, 1e-9)
}

func TestSquareToQuadMapsCorners(t *testing.T) {
	tr := SquareToQuad(10, 10, 50, 12, 48, 55, 8, 52)
	x, y := tr.Apply(0, 0)
	require.InDelta(t, 10, x, 1e-6)
	require.InDelta(t, 10, y, 1e-6)
	x, y = tr.Apply(1, 0)
	require.InDelta(t, 50, x, 1e-6)
	require.InDelta(t, 12, y, 1e-6)
	x, y = tr.Apply(1, 1)
	require.InDelta(t, 48, x, 1e-6)
	require.InDelta(t, 55, y, 1e-6)
	x, y = tr.Apply(0, 1)
	require.InDelta(t, 8, x, 1e-6)
	require.InDelta(t, 52, y, 1e-6)
}

func TestQuadToQuadRoundTrip(t *testing.T) {
	tr := QuadToQuad(
		0, 0, 21, 0, 21, 21, 0, 21,
		10, 10, 50, 12, 48, 55, 8, 52,
	)
	x, y := tr.Apply(0, 0)
	require.InDelta(t, 10, x, 1e-6)
	require.InDelta(t, 10, y, 1e-6)
}
