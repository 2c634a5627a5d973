package finder

import (
	"testing"

	"github.com/ashokshau/qriso/internal/bitutil"
	"github.com/stretchr/testify/require"
)

func TestModuleSizesEqualRejectsMismatchedSizes(t *testing.T) {
	group := []Candidate{
		{Center: Point{0, 0}, ModuleSize: 4},
		{Center: Point{100, 0}, ModuleSize: 4},
		{Center: Point{0, 100}, ModuleSize: 8}, // more than 1.5x the others
	}
	require.False(t, moduleSizesEqual(group))
}

func TestModuleSizesEqualAcceptsCloseSizes(t *testing.T) {
	group := []Candidate{
		{Center: Point{0, 0}, ModuleSize: 4},
		{Center: Point{100, 0}, ModuleSize: 4.5},
		{Center: Point{0, 100}, ModuleSize: 5},
	}
	require.True(t, moduleSizesEqual(group))
}

// squareTriple builds a right-angled triple (top-left at the origin) with
// the given leg length and module size, the geometry validTriple expects
// for a genuine QR symbol.
func squareTriple(leg, moduleSize float64) Triple {
	tl := Candidate{Center: Point{0, 0}, ModuleSize: moduleSize}
	tr := Candidate{Center: Point{leg, 0}, ModuleSize: moduleSize}
	bl := Candidate{Center: Point{0, leg}, ModuleSize: moduleSize}
	return Triple{TopLeft: tl, TopRight: tr, BottomLeft: bl}
}

func TestValidTripleRejectsImplausibleAngle(t *testing.T) {
	// A triple where top-right and bottom-left collapse to nearly the same
	// direction from top-left describes an implausible (near-zero-degree)
	// corner, not a QR finder-pattern right angle.
	group := []Candidate{
		{Center: Point{0, 0}, ModuleSize: 4},
		{Center: Point{100, 1}, ModuleSize: 4},
		{Center: Point{100, 2}, ModuleSize: 4},
	}
	tri := Triple{TopLeft: group[0], TopRight: group[1], BottomLeft: group[2]}
	matrix := bitutil.NewBitMatrixWithSize(200, 200)
	require.False(t, validTriple(matrix, tri, group, group))
}

func TestValidTripleRejectsOutOfRangeSize(t *testing.T) {
	// A module size of 1 over a 200px leg implies a symbol far larger than
	// version 40's 177-module ceiling.
	tri := squareTriple(200, 1)
	group := []Candidate{tri.TopLeft, tri.TopRight, tri.BottomLeft}
	matrix := bitutil.NewBitMatrixWithSize(256, 256)
	require.False(t, validTriple(matrix, tri, group, group))
}

func TestNestsRejectsSuperposedCandidate(t *testing.T) {
	tri := squareTriple(120, 4)
	group := []Candidate{tri.TopLeft, tri.TopRight, tri.BottomLeft}
	// A fourth candidate sitting inside the triangle described by the
	// group indicates a second, superposed symbol rather than noise.
	inside := Candidate{Center: Point{30, 30}, ModuleSize: 4}
	all := append(append([]Candidate{}, group...), inside)
	require.True(t, nests(tri, group, all))
}

func TestNestsAcceptsDisjointCandidate(t *testing.T) {
	tri := squareTriple(120, 4)
	group := []Candidate{tri.TopLeft, tri.TopRight, tri.BottomLeft}
	outside := Candidate{Center: Point{-50, -50}, ModuleSize: 4}
	all := append(append([]Candidate{}, group...), outside)
	require.False(t, nests(tri, group, all))
}

// TestGroupTriplesDisambiguatesAmongCandidates exercises the >3-candidate
// enumeration path: one genuine right-angled triple plus a decoy candidate
// whose module size disqualifies every combination it appears in.
func TestGroupTriplesDisambiguatesAmongCandidates(t *testing.T) {
	matrix := bitutil.NewBitMatrixWithSize(400, 400)
	tl := Candidate{Center: Point{20, 20}, ModuleSize: 4, Combined: 5}
	tr := Candidate{Center: Point{300, 20}, ModuleSize: 4, Combined: 5}
	bl := Candidate{Center: Point{20, 300}, ModuleSize: 4, Combined: 5}
	decoy := Candidate{Center: Point{350, 350}, ModuleSize: 40, Combined: 3}

	// moduleSizesEqual keeps the genuine triple and rejects every
	// combination containing the decoy. groupTriples then runs validTriple
	// in full, including its timing-line scan, which this synthetic blank
	// matrix (no timing transitions at all) fails, so no group survives.
	group := []Candidate{tl, tr, bl}
	require.True(t, moduleSizesEqual(group))
	require.False(t, moduleSizesEqual([]Candidate{tl, tr, decoy}))
	require.False(t, moduleSizesEqual([]Candidate{tl, bl, decoy}))
	require.False(t, moduleSizesEqual([]Candidate{tr, bl, decoy}))

	_, err := groupTriples(matrix, []Candidate{tl, tr, bl, decoy})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestOrientAssignsRolesByGeometry(t *testing.T) {
	a := Candidate{Center: Point{0, 0}, ModuleSize: 4}
	b := Candidate{Center: Point{100, 0}, ModuleSize: 4}
	c := Candidate{Center: Point{0, 100}, ModuleSize: 4}
	tri := orient([]Candidate{a, b, c})
	require.Equal(t, a, tri.TopLeft)
	require.Equal(t, b, tri.TopRight)
	require.Equal(t, c, tri.BottomLeft)
}

func TestCountTransitionsOnUniformMatrixIsZero(t *testing.T) {
	matrix := bitutil.NewBitMatrixWithSize(50, 50)
	got := countTransitions(matrix, Point{0, 0}, Point{40, 0})
	require.Equal(t, 0, got)
}

func TestCountTransitionsCountsAlternatingRuns(t *testing.T) {
	matrix := bitutil.NewBitMatrixWithSize(10, 1)
	for x := 0; x < 10; x += 2 {
		matrix.Set(x, 0)
	}
	got := countTransitions(matrix, Point{0, 0}, Point{9, 0})
	require.Greater(t, got, 0)
}
