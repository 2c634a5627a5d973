package binarize

import "github.com/ashokshau/qriso/internal/bitutil"

const (
	blockSize        = 8
	minDynamicRange  = 24
)

// Adaptive binarizes src using a per-8x8-block local threshold, averaged
// over each block's 5x5 neighborhood before comparison (a pixel at or
// below the averaged threshold is dark), so a pixel's
// classification depends on nearby contrast rather than a single global
// cutoff. This tolerates uneven lighting across a captured image far
// better than Histogram, at the cost of more work, mirroring the
// block-local approach of hybrid binarizers in the zxing family.
func Adaptive(src *Source) *bitutil.BitMatrix {
	blocksX := (src.width + blockSize - 1) / blockSize
	blocksY := (src.height + blockSize - 1) / blockSize

	blockThresholds := make([][]byte, blocksY)
	for by := 0; by < blocksY; by++ {
		blockThresholds[by] = make([]byte, blocksX)
		for bx := 0; bx < blocksX; bx++ {
			min, max := blockMinMax(src, bx, by)
			if int(max)-int(min) <= minDynamicRange {
				// Low-contrast block: use half its minimum, or the
				// weighted threshold of the already-computed neighbors
				// above and to the left when the block is darker than it.
				average := int(min) / 2
				if bx > 0 && by > 0 {
					neighborAverage := (int(blockThresholds[by-1][bx]) + 2*int(blockThresholds[by][bx-1]) + int(blockThresholds[by-1][bx-1])) / 4
					if int(min) < neighborAverage {
						average = neighborAverage
					}
				}
				blockThresholds[by][bx] = byte(average)
				continue
			}
			blockThresholds[by][bx] = byte((int(min) + int(max)) / 2)
		}
	}

	out := bitutil.NewBitMatrixWithSize(src.width, src.height)
	for y := 0; y < src.height; y++ {
		by := y / blockSize
		for x := 0; x < src.width; x++ {
			bx := x / blockSize
			threshold := averageNeighborThreshold(blockThresholds, bx, by, blocksX, blocksY)
			if src.At(x, y) <= threshold {
				out.Set(x, y)
			}
		}
	}
	return out
}

func blockMinMax(src *Source, bx, by int) (min, max byte) {
	min, max = 255, 0
	x0, y0 := bx*blockSize, by*blockSize
	x1, y1 := x0+blockSize, y0+blockSize
	if x1 > src.width {
		x1 = src.width
	}
	if y1 > src.height {
		y1 = src.height
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			v := src.At(x, y)
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	return min, max
}

func averageNeighborThreshold(blocks [][]byte, bx, by, blocksX, blocksY int) byte {
	sum, count := 0, 0
	for dy := -2; dy <= 2; dy++ {
		ny := by + dy
		if ny < 0 || ny >= blocksY {
			continue
		}
		for dx := -2; dx <= 2; dx++ {
			nx := bx + dx
			if nx < 0 || nx >= blocksX {
				continue
			}
			sum += int(blocks[ny][nx])
			count++
		}
	}
	return byte(sum / count)
}
