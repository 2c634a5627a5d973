// Package finder locates the three finder patterns of a QR symbol in a
// binarized image, groups them into an oriented triple (top-left,
// top-right, bottom-left), and estimates the symbol's module size and
// dimension from their spacing and the timing pattern between them.
package finder

import (
	"errors"
	"math"

	"github.com/ashokshau/qriso/internal/bitutil"
	"github.com/ashokshau/qriso/internal/pattern"
)

// ErrNotFound is returned when fewer than three finder pattern
// candidates can be grouped into a plausible, geometrically valid triple.
var ErrNotFound = errors.New("finder: could not locate three finder patterns")

// Point is a pixel-space coordinate.
type Point struct {
	X, Y float64
}

// Candidate is a finder pattern center confirmed by horizontal, vertical,
// and at least one diagonal ratio match (§4.8 steps 1-5).
type Candidate struct {
	Center     Point
	ModuleSize float64
	Combined   int     // scanline hits merged into this candidate
	Noise      float64 // §4.8 step 5 score; lower is cleaner
}

// Triple is three confirmed finder patterns assigned their roles by
// position: the pattern shared by both right-angle legs is top-left.
type Triple struct {
	TopLeft, TopRight, BottomLeft Candidate
}

const (
	minCombined = 3
	maxNoise    = 1.5
)

// Find scans matrix row by row for the QR finder ratio (1:1:3:1:1),
// confirms each hit with vertical, horizontal, and diagonal cross-checks,
// clusters confirmed hits into candidates, and returns the best-scoring
// oriented, geometrically valid triple (§4.8-4.9). All valid triples are
// candidates for FindAll, which a caller-driven detector can retry
// through if an earlier one fails downstream.
func Find(matrix *bitutil.BitMatrix) (Triple, error) {
	triples, err := FindAll(matrix)
	if err != nil {
		return Triple{}, err
	}
	return triples[0], nil
}

// FindAll returns every geometrically valid finder triple matrix yields,
// with the best (highest combined confirmation count) first and the rest
// in enumeration order, for a caller-driven detector to retry through on
// downstream failure.
func FindAll(matrix *bitutil.BitMatrix) ([]Triple, error) {
	candidates := scanCandidates(matrix)

	var confirmed []Candidate
	for _, c := range candidates {
		if c.Combined >= minCombined && c.Noise <= maxNoise {
			confirmed = append(confirmed, c)
		}
	}
	if len(confirmed) < 3 {
		return nil, ErrNotFound
	}

	return groupTriples(matrix, confirmed)
}

func scanCandidates(matrix *bitutil.BitMatrix) []Candidate {
	f := pattern.NewFinderPatternFinder()
	width, height := matrix.Width(), matrix.Height()

	var merged []Candidate
	for y := 0; y < height; y++ {
		row := make([]bool, width)
		for x := 0; x < width; x++ {
			row[x] = matrix.Get(x, y)
		}
		for _, m := range f.ScanLine(row) {
			seedX, seedY := int(math.Round(m.Center)), y

			vCenter, vSize, ok := f.CrossCheck(matrix, seedX, seedY, 0, 1)
			if !ok {
				continue
			}
			hCenter, hSize, ok := f.CrossCheck(matrix, seedX, int(math.Round(vCenter)), 1, 0)
			if !ok {
				continue
			}
			d1Center, d1Size, ok1 := f.CrossCheck(matrix, int(math.Round(hCenter)), int(math.Round(vCenter)), 1, 1)
			_, d2Size, ok2 := f.CrossCheck(matrix, int(math.Round(hCenter)), int(math.Round(vCenter)), 1, -1)
			if !ok1 && !ok2 {
				continue
			}
			_ = d1Center

			sizes := []float64{hSize, vSize}
			if ok1 {
				sizes = append(sizes, d1Size)
			}
			if ok2 {
				sizes = append(sizes, d2Size)
			}
			mean := 0.0
			for _, s := range sizes {
				mean += s
			}
			mean /= float64(len(sizes))

			noise := f.Noise(m.Counts)
			for _, s := range sizes {
				noise += math.Abs(s - mean)
			}

			hit := Candidate{Center: Point{X: hCenter, Y: vCenter}, ModuleSize: mean, Combined: 1, Noise: noise}
			merged = mergeCandidate(merged, hit)
		}
	}
	return merged
}

// mergeCandidate folds hit into an existing cluster whose center lies
// within half the module size's "mid ratio" distance (3/2 module sizes
// on each axis for the finder's 1:1:3:1:1 ratio), per §4.8 step 6;
// otherwise it starts a new cluster.
func mergeCandidate(candidates []Candidate, hit Candidate) []Candidate {
	for i := range candidates {
		c := &candidates[i]
		threshold := hit.ModuleSize * 1.5
		if math.Abs(c.Center.X-hit.Center.X) > threshold || math.Abs(c.Center.Y-hit.Center.Y) > threshold {
			continue
		}
		if math.Abs(c.ModuleSize-hit.ModuleSize) > 1 && math.Abs(c.ModuleSize-hit.ModuleSize) > hit.ModuleSize {
			continue
		}
		n := float64(c.Combined)
		c.Center.X = (c.Center.X*n + hit.Center.X) / (n + 1)
		c.Center.Y = (c.Center.Y*n + hit.Center.Y) / (n + 1)
		c.ModuleSize = (c.ModuleSize*n + hit.ModuleSize) / (n + 1)
		c.Noise = (c.Noise*n + hit.Noise) / (n + 1)
		c.Combined++
		return candidates
	}
	return append(candidates, hit)
}

// groupTriples implements §4.9: if exactly three confirmed candidates
// remain, they form the one group; otherwise every combination of three
// is enumerated and filtered by equal module size, plausible top-left
// angle, matching edge ratio, a valid estimated symbol size, a passing
// timing-line scan, and absence of nesting (superposed symbols). The
// valid group with the highest total combined confirmation count is
// returned first; the others follow in enumeration order, not sorted.
func groupTriples(matrix *bitutil.BitMatrix, candidates []Candidate) ([]Triple, error) {
	if len(candidates) == 3 {
		return []Triple{orient(candidates)}, nil
	}

	type ranked struct {
		t     Triple
		score int
	}
	var valid []ranked

	for i := 0; i < len(candidates); i++ {
		for j := i + 1; j < len(candidates); j++ {
			for k := j + 1; k < len(candidates); k++ {
				group := []Candidate{candidates[i], candidates[j], candidates[k]}
				if !moduleSizesEqual(group) {
					continue
				}
				t := orient(group)
				if !validTriple(matrix, t, group, candidates) {
					continue
				}
				valid = append(valid, ranked{t: t, score: group[0].Combined + group[1].Combined + group[2].Combined})
			}
		}
	}

	if len(valid) == 0 {
		return nil, ErrNotFound
	}
	best := valid[0]
	for _, r := range valid[1:] {
		if r.score > best.score {
			best = r
		}
	}
	out := make([]Triple, len(valid))
	for i, r := range valid {
		out[i] = r.t
	}
	// Put the highest-scoring triple first so callers that just want one
	// candidate (Find) get the cleanest group; FindAll still exposes the
	// rest for retry.
	for i, t := range out {
		if t == best.t {
			out[0], out[i] = out[i], out[0]
			break
		}
	}
	return out, nil
}

// moduleSizesEqual requires every pair's module size to be "equal"
// within a 0.5 ratio, i.e. the larger is at most 1.5x the smaller.
func moduleSizesEqual(group []Candidate) bool {
	for i := 0; i < len(group); i++ {
		for j := i + 1; j < len(group); j++ {
			a, b := group[i].ModuleSize, group[j].ModuleSize
			if a <= 0 || b <= 0 {
				return false
			}
			if a < b {
				a, b = b, a
			}
			if a/b > 1.5 {
				return false
			}
		}
	}
	return true
}

// validTriple applies the angle, edge-ratio, symbol-size, timing-line,
// and nesting rejection rules of §4.9 to an oriented group.
func validTriple(matrix *bitutil.BitMatrix, t Triple, group []Candidate, all []Candidate) bool {
	tlTR := Point{t.TopRight.Center.X - t.TopLeft.Center.X, t.TopRight.Center.Y - t.TopLeft.Center.Y}
	tlBL := Point{t.BottomLeft.Center.X - t.TopLeft.Center.X, t.BottomLeft.Center.Y - t.TopLeft.Center.Y}

	dot := tlTR.X*tlBL.X + tlTR.Y*tlBL.Y
	magTR := math.Hypot(tlTR.X, tlTR.Y)
	magBL := math.Hypot(tlBL.X, tlBL.Y)
	if magTR == 0 || magBL == 0 {
		return false
	}
	cos := dot / (magTR * magBL)
	cos = math.Max(-1, math.Min(1, cos))
	angle := math.Acos(cos) * 180 / math.Pi
	if angle < 40 || angle > 140 {
		return false
	}

	moduleX := (t.TopLeft.ModuleSize + t.TopRight.ModuleSize) / 2
	moduleY := (t.TopLeft.ModuleSize + t.BottomLeft.ModuleSize) / 2
	if moduleX == 0 || moduleY == 0 {
		return false
	}
	if math.Abs(magTR/moduleX-magBL/moduleY) > 4 {
		return false
	}

	rawSize := rawDimension(t)
	if rawSize < 21 || rawSize > 177 {
		return false
	}
	if !timingLineOK(matrix, t, rawSize) {
		return false
	}
	if nests(t, group, all) {
		return false
	}
	return true
}

// rawDimension estimates the module dimension without clamping, so
// out-of-range estimates are visible to validTriple's rejection rule.
func rawDimension(t Triple) int {
	moduleSize := (t.TopLeft.ModuleSize + t.TopRight.ModuleSize + t.BottomLeft.ModuleSize) / 3
	if moduleSize == 0 {
		return 0
	}
	topDistance := math.Hypot(t.TopRight.Center.X-t.TopLeft.Center.X, t.TopRight.Center.Y-t.TopLeft.Center.Y)
	sideDistance := math.Hypot(t.BottomLeft.Center.X-t.TopLeft.Center.X, t.BottomLeft.Center.Y-t.TopLeft.Center.Y)
	avgDistance := (topDistance + sideDistance) / 2
	dimension := int(math.Round(avgDistance/moduleSize)) + 7
	if rem := (dimension - 17) % 4; rem != 0 {
		dimension += 4 - rem
	}
	return dimension
}

// TimingLineOK walks from top-left toward top-right and toward
// bottom-left counting color transitions, requiring both counts to fall
// within the valid timing-pattern module-count range. This is the
// "estimate-timing-line" check of §4.9/§4.12, run against the raw image
// before any perspective rectification.
func TimingLineOK(matrix *bitutil.BitMatrix, t Triple, size int) bool {
	return timingLineOK(matrix, t, size)
}

func timingLineOK(matrix *bitutil.BitMatrix, t Triple, size int) bool {
	minModules := size - 14 - max(2, (size-17)/4)
	maxModules := size + 8

	trTransitions := countTransitions(matrix, t.TopLeft.Center, t.TopRight.Center)
	blTransitions := countTransitions(matrix, t.TopLeft.Center, t.BottomLeft.Center)
	return trTransitions >= minModules && trTransitions <= maxModules &&
		blTransitions >= minModules && blTransitions <= maxModules
}

func countTransitions(matrix *bitutil.BitMatrix, from, to Point) int {
	width, height := matrix.Width(), matrix.Height()
	steps := int(math.Hypot(to.X-from.X, to.Y-from.Y))
	if steps == 0 {
		return 0
	}
	transitions := 0
	last := matrix.Get(clampInt(int(from.X), 0, width-1), clampInt(int(from.Y), 0, height-1))
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := clampInt(int(from.X+(to.X-from.X)*t), 0, width-1)
		y := clampInt(int(from.Y+(to.Y-from.Y)*t), 0, height-1)
		cur := matrix.Get(x, y)
		if cur != last {
			transitions++
			last = cur
		}
	}
	return transitions
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// nests rejects a group if it geometrically encloses another candidate
// pattern not part of the group, indicating two superposed symbols.
func nests(t Triple, group, all []Candidate) bool {
	inGroup := func(c Candidate) bool {
		for _, g := range group {
			if g == c {
				return true
			}
		}
		return false
	}
	for _, c := range all {
		if inGroup(c) {
			continue
		}
		if pointInTriangle(c.Center, t.TopLeft.Center, t.TopRight.Center, t.BottomLeft.Center) {
			return true
		}
	}
	return false
}

func pointInTriangle(p, a, b, c Point) bool {
	sign := func(p1, p2, p3 Point) float64 {
		return (p1.X-p3.X)*(p2.Y-p3.Y) - (p2.X-p3.X)*(p1.Y-p3.Y)
	}
	d1 := sign(p, a, b)
	d2 := sign(p, b, c)
	d3 := sign(p, c, a)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// orient assigns top-left/top-right/bottom-left roles to three
// candidates by distance geometry: the pair with the greatest separation
// are the diagonal corners (top-right and bottom-left), and the
// remaining point is top-left.
func orient(c []Candidate) Triple {
	dist := func(a, b Point) float64 {
		dx, dy := a.X-b.X, a.Y-b.Y
		return math.Hypot(dx, dy)
	}

	d01 := dist(c[0].Center, c[1].Center)
	d12 := dist(c[1].Center, c[2].Center)
	d02 := dist(c[0].Center, c[2].Center)

	var topLeft, a, b Candidate
	switch {
	case d01 >= d12 && d01 >= d02:
		topLeft, a, b = c[2], c[0], c[1]
	case d12 >= d01 && d12 >= d02:
		topLeft, a, b = c[0], c[1], c[2]
	default:
		topLeft, a, b = c[1], c[0], c[2]
	}

	// Cross product of (a-topLeft) x (b-topLeft) is positive when b is
	// clockwise from a around topLeft in image coordinates (y grows
	// downward); that makes a top-right and b bottom-left.
	cross := (a.Center.X-topLeft.Center.X)*(b.Center.Y-topLeft.Center.Y) -
		(a.Center.Y-topLeft.Center.Y)*(b.Center.X-topLeft.Center.X)

	if cross < 0 {
		a, b = b, a
	}
	return Triple{TopLeft: topLeft, TopRight: a, BottomLeft: b}
}

// EstimateDimension derives the module dimension (modules per side) from
// an oriented triple's center spacing and average module size, clamping
// to the valid 21..177 (17+4v) range.
func EstimateDimension(t Triple) int {
	dimension := rawDimension(t)
	if dimension < 21 {
		dimension = 21
	}
	if dimension > 177 {
		dimension = 177
	}
	return dimension
}
