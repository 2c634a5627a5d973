package layout

import (
	"github.com/ashokshau/qriso/internal/bitutil"
	"github.com/ashokshau/qriso/internal/version"
)

// BuildMatrix lays out a complete QR symbol matrix for v/level from its
// final (interleaved, error-corrected) codeword stream. If maskPattern is
// -1, every one of the 8 mask patterns is tried and the lowest-penalty
// one is kept (§8.8.2); otherwise maskPattern is used as given, mirroring
// the teacher's encoder which always hardcoded mask 0.
//
// It returns the finished matrix and the mask pattern actually used.
func BuildMatrix(v *version.Version, level version.ECLevel, codewords []byte, maskPattern int) (*ModuleMatrix, int) {
	dim := v.DimensionForVersion()
	matrix := NewModuleMatrix(dim)

	PlaceFunctionPatterns(matrix, v)
	ReserveFormatInfoAreas(matrix)
	ReserveVersionInfoAreas(matrix, v)

	bits := bitutil.NewBitArray(0)
	for _, b := range codewords {
		bits.AppendBits(uint32(b), 8)
	}
	PlaceData(matrix, bits)

	var final *ModuleMatrix
	var chosen int
	if maskPattern >= 0 {
		final = matrix.Clone()
		ApplyMask(final, maskPattern)
		chosen = maskPattern
	} else {
		final, chosen = SelectMask(matrix)
	}

	PlaceFormatInfo(final, level.Bits(), chosen)
	PlaceVersionInfo(final, v)

	return final, chosen
}
