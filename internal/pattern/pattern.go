// Package pattern implements a generic ratio-window scanline finder: given
// a run-length ratio template (1:1:3:1:1 for QR finder patterns, 1:1:1:1:1
// for alignment patterns), it scans a row or column of dark/light pixels
// and reports every position whose run lengths match the template within
// tolerance. Grounded on ericlevine/zxinggo's pdf417 detector
// (findGuardPattern/patternMatchVariance), generalized from its
// fixed-width guard pattern to an arbitrary ratio template, and extended
// with the cross-direction confirmation pass ISO/IEC 18004 detection
// requires (horizontal match alone is not sufficient confirmation).
package pattern

import "github.com/ashokshau/qriso/internal/bitutil"

// Finder scans for a fixed run-length ratio template.
type Finder struct {
	Ratios                []int
	MaxIndividualVariance float64
	MaxAverageVariance    float64
}

// DefaultFinderRatios is the 1:1:3:1:1 ratio of a QR finder pattern.
var DefaultFinderRatios = []int{1, 1, 3, 1, 1}

// DefaultAlignmentRatios is the 1:1:1:1:1 ratio of a QR alignment
// pattern read across its center row or column.
var DefaultAlignmentRatios = []int{1, 1, 1, 1, 1}

// NewFinderPatternFinder returns a Finder tuned for QR finder patterns.
func NewFinderPatternFinder() Finder {
	return Finder{Ratios: DefaultFinderRatios, MaxIndividualVariance: 0.5, MaxAverageVariance: 0.25}
}

// NewAlignmentPatternFinder returns a Finder tuned for QR alignment
// patterns.
func NewAlignmentPatternFinder() Finder {
	return Finder{Ratios: DefaultAlignmentRatios, MaxIndividualVariance: 0.5, MaxAverageVariance: 0.25}
}

// Match reports whether a run-length window matches f's ratio template
// within tolerance, via ericlevine/zxinggo's patternMatchVariance: each
// run is compared to the expected fraction of the total width, and the
// match fails if any single run (or the average) deviates too far.
func (f Finder) Match(counts []int) bool {
	if len(counts) != len(f.Ratios) {
		return false
	}
	total, ratioSum := 0, 0
	for i, c := range counts {
		total += c
		ratioSum += f.Ratios[i]
	}
	if total < ratioSum {
		return false
	}
	unitWidth := float64(total) / float64(ratioSum)
	maxIndividualVariance := f.MaxIndividualVariance * unitWidth

	totalVariance := 0.0
	for i, c := range counts {
		expected := float64(f.Ratios[i]) * unitWidth
		variance := absFloat(float64(c) - expected)
		if variance > maxIndividualVariance {
			return false
		}
		totalVariance += variance
	}
	return totalVariance/unitWidth <= f.MaxAverageVariance*float64(len(counts))
}

// Noise sums each run's absolute deviation from its ideal ratio share of
// the window, normalized by the unit module width (§4.8 step 5, the
// per-run half of the noise score; the other half is the spread across
// the four verification directions, computed by the caller once all
// four have been cross-checked).
func (f Finder) Noise(counts []int) float64 {
	total, ratioSum := 0, 0
	for i, c := range counts {
		total += c
		ratioSum += f.Ratios[i]
	}
	if ratioSum == 0 || total == 0 {
		return 0
	}
	unitWidth := float64(total) / float64(ratioSum)
	noise := 0.0
	for i, c := range counts {
		expected := float64(f.Ratios[i]) * unitWidth
		noise += absFloat(float64(c)-expected) / unitWidth
	}
	return noise
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Match is one matched window: the pixel position of its center, the
// total width it spans, and the run-length counts that matched.
type Match struct {
	Center float64
	Width  int
	Counts []int
}

// ScanLine slides f's ratio window across row (true = dark pixel) and
// returns every position where the run lengths collected so far match
// the template.
func (f Finder) ScanLine(row []bool) []Match {
	n := len(f.Ratios)
	counts := make([]int, n)
	var matches []Match

	currentState := 0
	runStart := 0

	flush := func(end int) {
		if currentState != n-1 {
			return
		}
		if f.Match(counts) {
			total := 0
			for _, c := range counts {
				total += c
			}
			matches = append(matches, Match{
				Center: CenterFromEnd(counts, end),
				Width:  total,
				Counts: append([]int(nil), counts...),
			})
		}
	}

	if len(row) == 0 {
		return nil
	}
	lastColor := row[0]
	for i := 1; i <= len(row); i++ {
		var color bool
		atEnd := i == len(row)
		if !atEnd {
			color = row[i]
		}
		if !atEnd && color == lastColor {
			continue
		}
		runLength := i - runStart
		if currentState < n {
			counts[currentState] = runLength
		} else {
			copy(counts, counts[1:])
			counts[n-1] = runLength
		}
		if currentState < n-1 {
			currentState++
		} else {
			flush(i)
			// Slide the window by one run: drop the oldest run and
			// keep scanning for an overlapping match starting at the
			// second run.
			copy(counts, counts[1:])
		}
		runStart = i
		lastColor = color
	}
	return matches
}

// CenterFromEnd implements the "center-from-end" weighted-midpoint rule
// (§4.8 step 1): given the run-length window and the pixel position
// immediately after it, locate the weighted center of the window's
// middle (widest, darkest) run by walking backward from the end.
func CenterFromEnd(counts []int, end int) float64 {
	n := len(counts)
	mid := n / 2
	trailing := 0
	for i := mid + 1; i < n; i++ {
		trailing += counts[i]
	}
	return float64(end-trailing) - float64(counts[mid])/2
}

// CrossCheck re-scans matrix along the line through (x, y) in direction
// (dx, dy) (one of horizontal, vertical, or either diagonal), counting
// runs outward from the seed pixel until it has f's full window (each
// outermost run ends at the next color change or the matrix edge), and
// tests the result against f's ratio template (§4.8 steps 2-4). ok is
// false if the scan runs off the matrix before reaching the outermost
// runs or the collected runs don't match. center is the refined
// coordinate along the scan: y when scanning vertically, x when scanning
// horizontally, and for a diagonal scan a position measured from the
// larger of the last in-window pixel's x and y; moduleSize is the
// window's average run width.
func (f Finder) CrossCheck(matrix *bitutil.BitMatrix, x, y, dx, dy int) (center, moduleSize float64, ok bool) {
	n := len(f.Ratios)
	mid := n / 2
	width, height := matrix.Width(), matrix.Height()

	inBounds := func(px, py int) bool {
		return px >= 0 && px < width && py >= 0 && py < height
	}
	if !inBounds(x, y) {
		return 0, 0, false
	}

	counts := make([]int, n)
	color := matrix.Get(x, y)
	counts[mid] = 1

	// Walk backward (negative direction) filling counts[mid-1..0].
	px, py := x-dx, y-dy
	cur := color
	idx := mid
	steps := 0
	for {
		if !inBounds(px, py) {
			if idx == 0 {
				break
			}
			return 0, 0, false
		}
		c := matrix.Get(px, py)
		if c != cur {
			if idx == 0 {
				break
			}
			idx--
			cur = c
		}
		counts[idx]++
		px -= dx
		py -= dy
		steps++
		if steps > (width+height)*2 {
			return 0, 0, false
		}
	}
	// Walk forward (positive direction) filling counts[mid+1..n-1].
	px, py = x+dx, y+dy
	cur = color
	idx = mid
	var lastGoodX, lastGoodY int = x, y
	steps = 0
	for {
		if !inBounds(px, py) {
			if idx == n-1 {
				break
			}
			return 0, 0, false
		}
		c := matrix.Get(px, py)
		if c != cur {
			if idx == n-1 {
				break
			}
			idx++
			cur = c
		}
		counts[idx]++
		lastGoodX, lastGoodY = px, py
		px += dx
		py += dy
		steps++
		if steps > (width+height)*2 {
			return 0, 0, false
		}
	}

	if !f.Match(counts) {
		return 0, 0, false
	}

	total, ratioSum := 0, 0
	for i, c := range counts {
		total += c
		ratioSum += f.Ratios[i]
	}
	moduleSize = float64(total) / float64(ratioSum)

	var end int
	switch {
	case dx != 0 && dy == 0:
		end = lastGoodX + 1
	case dy != 0 && dx == 0:
		end = lastGoodY + 1
	default:
		end = max(lastGoodX, lastGoodY) + 1
	}
	center = CenterFromEnd(counts, end)
	return center, moduleSize, true
}
