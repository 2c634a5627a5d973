package binarize

import "github.com/ashokshau/qriso/internal/bitutil"

const (
	numBuckets    = 32
	luminanceShift = 8 // 256 levels / 32 buckets
)

// Histogram computes a single global threshold from a 32-bucket
// luminance histogram over the middle 3/5 x 3/5 region of the image (the
// threshold is then applied to every pixel): it locates the two tallest,
// sufficiently separated peaks (background and foreground) and picks the
// deepest valley between them as the threshold. Grounded on the
// two-peak, valley-search approach common to histogram-based QR
// binarizers in the zxing family.
func Histogram(src *Source) (*bitutil.BitMatrix, error) {
	var buckets [numBuckets]int
	for y := src.height / 5; y < src.height*4/5; y++ {
		for x := src.width / 5; x < src.width*4/5; x++ {
			buckets[src.At(x, y)/luminanceShift]++
		}
	}

	firstPeak, firstPeakSize := 0, 0
	for x := 0; x < numBuckets; x++ {
		if buckets[x] > firstPeakSize {
			firstPeakSize = buckets[x]
			firstPeak = x
		}
	}

	secondPeak, secondPeakScore := firstPeak, 0
	for x := 0; x < numBuckets; x++ {
		distance := x - firstPeak
		score := buckets[x] * distance * distance
		if score > secondPeakScore {
			secondPeakScore = score
			secondPeak = x
		}
	}
	if firstPeak > secondPeak {
		firstPeak, secondPeak = secondPeak, firstPeak
	}

	if secondPeak-firstPeak <= numBuckets/16 {
		return nil, ErrInsufficientContrast
	}

	bestValley := secondPeak - 1
	bestValleyScore := -1
	for x := secondPeak - 1; x > firstPeak; x-- {
		fromFirst := x - firstPeak
		score := fromFirst * fromFirst * (secondPeak - x) * (firstPeakSize - buckets[x])
		if score > bestValleyScore {
			bestValleyScore = score
			bestValley = x
		}
	}

	threshold := byte(bestValley * luminanceShift)
	out := bitutil.NewBitMatrixWithSize(src.width, src.height)
	for y := 0; y < src.height; y++ {
		for x := 0; x < src.width; x++ {
			if src.At(x, y) < threshold {
				out.Set(x, y)
			}
		}
	}
	return out, nil
}
