package matrixparser

import (
	"github.com/ashokshau/qriso/internal/bitutil"
	"github.com/ashokshau/qriso/internal/version"
)

// ReadVersion determines the symbol version from a detected module grid.
// For versions 1-6 the dimension alone is unambiguous; for 7 and above
// both redundant 18-bit version info blocks are read and matched against
// the known BCH-encoded values within Hamming distance 3, per §8.10.
func ReadVersion(matrix *bitutil.BitMatrix) (*version.Version, error) {
	dim := matrix.Width()
	if dim <= 42 {
		return version.GetVersionForDimension(dim)
	}

	if n, err := matchVersionInfo(readVersionBlock(matrix, true)); err == nil {
		return version.GetVersionForNumber(n)
	}
	if n, err := matchVersionInfo(readVersionBlock(matrix, false)); err == nil {
		return version.GetVersionForNumber(n)
	}
	return nil, errVersionUnreadable
}

// readVersionBlock reads one of the two redundant 18-bit version info
// blocks. primary selects the bottom-left block; the other selects the
// top-right block (mirrors PlaceVersionInfo's two write locations).
func readVersionBlock(matrix *bitutil.BitMatrix, primary bool) int {
	dim := matrix.Width()
	value := 0
	for i := 0; i < 6; i++ {
		for j := 0; j < 3; j++ {
			var dark bool
			if primary {
				dark = matrix.Get(i, dim-11+j)
			} else {
				dark = matrix.Get(dim-11+j, i)
			}
			value <<= 1
			if dark {
				value |= 1
			}
		}
	}
	return value
}
