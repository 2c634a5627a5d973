// Package detector orchestrates the full image decode pipeline: binarize
// the source image, locate the three finder patterns, estimate the
// symbol's dimension and perspective, refine it with the bottom-right
// alignment pattern when one exists, resample the rectified module grid,
// and hand it to internal/matrixparser. This is the Cursor of §4.12:
// nothing is computed until the first call to Next, which builds every
// candidate rectification at once, and a caller that fails to parse one (bad format info,
// uncorrectable codewords) drives the cursor to the next alternative via
// Advance instead of the detector redoing the image scan from scratch.
package detector

import (
	"errors"
	"image"

	"github.com/ashokshau/qriso/internal/alignment"
	"github.com/ashokshau/qriso/internal/binarize"
	"github.com/ashokshau/qriso/internal/bitutil"
	"github.com/ashokshau/qriso/internal/finder"
	"github.com/ashokshau/qriso/internal/matrixparser"
	"github.com/ashokshau/qriso/internal/perspective"
	"github.com/ashokshau/qriso/internal/version"
)

// ErrExhausted is returned once every detection strategy (histogram and
// adaptive binarization, each combined with every candidate finder
// triple and alignment refinement) has failed to produce a readable
// symbol.
var ErrExhausted = errors.New("detector: exhausted all detection strategies")

// Result is a successfully located and parsed symbol.
type Result struct {
	Symbol matrixparser.ParsedSymbol
}

// Attempt is one candidate rectification: the sampled square module grid
// a finder triple (and, for symbols large enough to carry one, an
// alignment pattern candidate) produced. Every Attempt has already
// passed the estimate-timing-line and mapping-timing-line checks of
// §4.9/§4.12; it is not yet known whether it parses into a valid symbol.
type Attempt struct {
	Matrix    *bitutil.BitMatrix
	Dimension int
	Triple    finder.Triple
}

// Cursor drives the pipeline lazily: Next returns the next untried
// attempt and Advance reports whether the caller is done, so a caller
// can retry against an alternate finder triple or alignment candidate
// without the detector redoing the expensive image scan.
type Cursor struct {
	img      image.Image
	source   *binarize.Source
	attempts []Attempt
	built    bool
	index    int
}

// NewCursor wraps an image for detection.
func NewCursor(img image.Image) *Cursor {
	return &Cursor{img: img}
}

func (c *Cursor) luminance() *binarize.Source {
	if c.source == nil {
		c.source = binarize.NewSource(c.img)
	}
	return c.source
}

func (c *Cursor) build() {
	if c.built {
		return
	}
	c.built = true
	src := c.luminance()
	if matrix, err := binarize.Histogram(src); err == nil {
		c.attempts = append(c.attempts, buildAttempts(matrix)...)
	}
	c.attempts = append(c.attempts, buildAttempts(binarize.Adaptive(src))...)
}

// Next returns the next untried attempt. ok is false once histogram and
// adaptive binarization, every candidate finder triple, and every
// alignment candidate have all been exhausted.
func (c *Cursor) Next() (Attempt, bool) {
	c.build()
	if c.index >= len(c.attempts) {
		return Attempt{}, false
	}
	return c.attempts[c.index], true
}

// Advance records the caller's verdict on the attempt most recently
// returned by Next and moves the cursor to the following one. success is
// accepted for symmetry with the detector's §6 contract; a caller that
// is satisfied simply stops calling Next.
func (c *Cursor) Advance(success bool) {
	c.index++
}

// Detect drives Next/Advance to completion, returning the first attempt
// whose sampled grid parses into a valid symbol. It is a convenience
// wrapper around the Attempt stream for callers that don't need to
// inspect a failed rectification before retrying.
func (c *Cursor) Detect() (Result, error) {
	for {
		attempt, ok := c.Next()
		if !ok {
			return Result{}, ErrExhausted
		}
		symbol, err := matrixparser.Parse(attempt.Matrix)
		if err != nil {
			c.Advance(false)
			continue
		}
		c.Advance(true)
		return Result{Symbol: symbol}, nil
	}
}

// buildAttempts finds every geometrically valid finder triple in matrix
// and, for each, every alignment-refined rectification that passes the
// mapping-timing-line check. Alignment search is skipped for dimensions
// under 25 modules, per §4.12.
func buildAttempts(matrix *bitutil.BitMatrix) []Attempt {
	triples, err := finder.FindAll(matrix)
	if err != nil {
		return nil
	}

	var attempts []Attempt
	for _, triple := range triples {
		dimension := finder.EstimateDimension(triple)
		if !finder.TimingLineOK(matrix, triple, dimension) {
			continue
		}
		attempts = append(attempts, buildTripleAttempts(matrix, triple, dimension)...)
	}
	return attempts
}

func buildTripleAttempts(matrix *bitutil.BitMatrix, triple finder.Triple, dimension int) []Attempt {
	moduleSize := (triple.TopLeft.ModuleSize + triple.TopRight.ModuleSize + triple.BottomLeft.ModuleSize) / 3

	predictedX := triple.TopRight.Center.X + triple.BottomLeft.Center.X - triple.TopLeft.Center.X
	predictedY := triple.TopRight.Center.Y + triple.BottomLeft.Center.Y - triple.TopLeft.Center.Y
	moduleX, moduleY := float64(dimension)-3.5, float64(dimension)-3.5

	candidates := []alignment.Candidate{{Point: finder.Point{X: predictedX, Y: predictedY}}}
	if dimension >= 25 {
		if v, err := version.GetVersionForDimension(dimension); err == nil && len(v.AlignmentPatternCenters) > 0 {
			last := float64(v.AlignmentPatternCenters[len(v.AlignmentPatternCenters)-1])
			radius := int(moduleSize * float64(min(20, dimension/4)))
			if found, err := alignment.Find(matrix, predictedX, predictedY, moduleSize, radius); err == nil {
				candidates = found
				moduleX, moduleY = last+0.5, last+0.5
			}
		}
	}

	var attempts []Attempt
	for _, cand := range candidates {
		sampled := rectify(matrix, triple, cand.Point.X, cand.Point.Y, moduleX, moduleY, dimension)
		if sampled == nil {
			continue
		}
		if !mappingTimingLineOK(sampled, dimension) {
			continue
		}
		attempts = append(attempts, Attempt{Matrix: sampled, Dimension: dimension, Triple: triple})
	}
	return attempts
}

func rectify(matrix *bitutil.BitMatrix, triple finder.Triple, bottomRightX, bottomRightY, moduleX, moduleY float64, dimension int) *bitutil.BitMatrix {
	transform := perspective.QuadToQuad(
		3.5, 3.5,
		float64(dimension)-3.5, 3.5,
		moduleX, moduleY,
		3.5, float64(dimension)-3.5,
		triple.TopLeft.Center.X, triple.TopLeft.Center.Y,
		triple.TopRight.Center.X, triple.TopRight.Center.Y,
		bottomRightX, bottomRightY,
		triple.BottomLeft.Center.X, triple.BottomLeft.Center.Y,
	)

	sampled := bitutil.NewBitMatrixWithSize(dimension, dimension)
	for row := 0; row < dimension; row++ {
		for col := 0; col < dimension; col++ {
			px, py := transform.Apply(float64(col)+0.5, float64(row)+0.5)
			x, y := int(px), int(py)
			if x < 0 || x >= matrix.Width() || y < 0 || y >= matrix.Height() {
				continue
			}
			if matrix.Get(x, y) {
				sampled.Set(col, row)
			}
		}
	}
	return sampled
}

// mappingTimingLineOK checks the rectified module grid's timing pattern
// (row 6 and column 6, between the two pairs of finder patterns), which
// must alternate dark/light module by module. This is the
// "mapping-timing-line" check of §4.12, run after perspective
// rectification as the final gate before an attempt is yielded.
func mappingTimingLineOK(sampled *bitutil.BitMatrix, dimension int) bool {
	if dimension <= 16 {
		return true
	}
	return timingRunOK(sampled, 8, dimension-9, true) && timingRunOK(sampled, 8, dimension-9, false)
}

func timingRunOK(sampled *bitutil.BitMatrix, start, end int, horizontal bool) bool {
	if end <= start {
		return false
	}
	for i := start; i <= end; i++ {
		var dark bool
		if horizontal {
			dark = sampled.Get(i, 6)
		} else {
			dark = sampled.Get(6, i)
		}
		wantDark := (i-start)%2 == 0
		if dark != wantDark {
			return false
		}
	}
	return true
}
