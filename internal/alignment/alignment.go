// Package alignment searches a predicted region of a detected image for
// the alignment pattern nearest a finder-geometry prediction, refining
// the perspective transform for larger symbols (§4.10).
package alignment

import (
	"errors"
	"math"
	"sort"

	"github.com/ashokshau/qriso/internal/bitutil"
	"github.com/ashokshau/qriso/internal/finder"
	"github.com/ashokshau/qriso/internal/pattern"
)

// ErrNotFound names the case where no alignment pattern candidate lies
// close enough to the predicted location. Find does not return it: it
// falls back to the geometric prediction with a nil error instead.
var ErrNotFound = errors.New("alignment: pattern not found near prediction")

// Candidate is an alignment pattern hit ranked against the finder
// geometry's prediction.
type Candidate struct {
	Point      finder.Point
	ModuleSize float64
	Noise      float64
	rank       float64
}

// Find searches a square region of radius searchRadius (in pixels)
// centered on (predictedX, predictedY) for the alignment pattern's
// 1:1:1:1:1 ratio and returns candidates ranked by
// (distance-to-prediction + module-size deviation) * (1 + noise), best first,
// followed by the geometric prediction itself as a final fallback
// (§4.10 step: "take two best plus prediction as fallback").
func Find(matrix *bitutil.BitMatrix, predictedX, predictedY, moduleSize float64, searchRadius int) ([]Candidate, error) {
	f := pattern.NewAlignmentPatternFinder()
	width, height := matrix.Width(), matrix.Height()

	minX, maxX := clamp(int(predictedX)-searchRadius, 0, width), clamp(int(predictedX)+searchRadius, 0, width)
	minY, maxY := clamp(int(predictedY)-searchRadius, 0, height), clamp(int(predictedY)+searchRadius, 0, height)
	if minX >= maxX || minY >= maxY {
		return fallbackOnly(predictedX, predictedY), nil
	}

	var hits []Candidate
	for y := minY; y < maxY; y++ {
		row := make([]bool, maxX-minX)
		for x := minX; x < maxX; x++ {
			row[x-minX] = matrix.Get(x, y)
		}
		for _, m := range f.ScanLine(row) {
			size := float64(m.Width) / 5.0
			if math.Abs(size-moduleSize) > moduleSize {
				continue
			}
			point := finder.Point{X: m.Center + float64(minX), Y: float64(y)}
			noise := f.Noise(m.Counts)
			dist := math.Hypot(point.X-predictedX, point.Y-predictedY)
			sizeDiff := math.Abs(size - moduleSize)
			rank := (dist + sizeDiff) * (1 + noise)
			hits = append(hits, Candidate{Point: point, ModuleSize: size, Noise: noise, rank: rank})
		}
	}

	if len(hits) == 0 {
		return fallbackOnly(predictedX, predictedY), nil
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].rank < hits[j].rank })
	if len(hits) > 2 {
		hits = hits[:2]
	}
	hits = append(hits, Candidate{Point: finder.Point{X: predictedX, Y: predictedY}, ModuleSize: moduleSize})
	return hits, nil
}

func fallbackOnly(predictedX, predictedY float64) []Candidate {
	return []Candidate{{Point: finder.Point{X: predictedX, Y: predictedY}}}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
