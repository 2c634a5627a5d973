package matrixparser

import (
	"github.com/ashokshau/qriso/internal/bitutil"
	"github.com/ashokshau/qriso/internal/version"
)

// formatInfoCoordinatesXY is typeInfoCoordinates (layout package, (row,
// col)) converted to bitutil.BitMatrix's (x, y) = (col, row) convention.
var formatInfoCoordinatesXY = [15][2]int{
	{8, 0}, {8, 1}, {8, 2}, {8, 3}, {8, 4}, {8, 5}, {8, 7}, {8, 8},
	{7, 8}, {5, 8}, {4, 8}, {3, 8}, {2, 8}, {1, 8}, {0, 8},
}

// ReadFormatInfo reads the redundant 15-bit format info block from a
// detected module grid and returns the EC level and mask pattern it
// encodes, matching against the known BCH values within Hamming distance
// 3 (§8.9). It tries the primary copy (around the top-left finder) first
// and falls back to the secondary copy.
func ReadFormatInfo(matrix *bitutil.BitMatrix) (version.ECLevel, int, error) {
	primary := readFormatBlock(matrix, true)
	if level, mask, err := matchFormatInfo(primary); err == nil {
		return level, mask, nil
	}
	secondary := readFormatBlock(matrix, false)
	return matchFormatInfo(secondary)
}

func readFormatBlock(matrix *bitutil.BitMatrix, primary bool) int {
	dim := matrix.Width()
	value := 0
	for i := 0; i < 15; i++ {
		var dark bool
		if primary {
			x, y := formatInfoCoordinatesXY[i][0], formatInfoCoordinatesXY[i][1]
			dark = matrix.Get(x, y)
		} else if i < 8 {
			dark = matrix.Get(dim-i-1, 8)
		} else {
			dark = matrix.Get(8, dim-15+i)
		}
		value <<= 1
		if dark {
			value |= 1
		}
	}
	return value
}
