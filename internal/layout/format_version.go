package layout

import "github.com/ashokshau/qriso/internal/version"

// Generator polynomials and mask pattern for the BCH-encoded format and
// version information blocks (ISO/IEC 18004 §8.9, §8.10). Grounded on the
// teacher's calculateBCHFormat, generalized to cover the version info
// block the teacher never needed (it only ever encoded versions 1-4).
const (
	formatInfoPoly = 0x537
	formatInfoMask = 0x5412
	versionInfoPoly = 0x1F25
)

// calculateBCHCode performs the standard polynomial-division BCH
// remainder computation shared by the format and version info
// calculations.
func calculateBCHCode(value, poly int) int {
	msbSetInPoly := findMSBSet(poly)
	value <<= uint(msbSetInPoly - 1)
	for findMSBSet(value) >= msbSetInPoly {
		value ^= poly << uint(findMSBSet(value)-msbSetInPoly)
	}
	return value
}

func findMSBSet(value int) int {
	digits := 0
	for value != 0 {
		value >>= 1
		digits++
	}
	return digits
}

// formatInfoBits computes the 15-bit masked format information for an EC
// level and mask pattern, per §8.9.
func formatInfoBits(levelBits, maskPattern int) int {
	typeInfo := levelBits<<3 | maskPattern
	bch := calculateBCHCode(typeInfo, formatInfoPoly)
	return (typeInfo<<10 | bch) ^ formatInfoMask
}

// versionInfoBits computes the 18-bit version information for symbol
// versions 7 and above, per §8.10.
func versionInfoBits(versionNumber int) int {
	bch := calculateBCHCode(versionNumber, versionInfoPoly)
	return versionNumber<<12 | bch
}

// typeInfoCoordinates is the fixed first-copy placement for each of the
// 15 format-info bits, taken in (row, col) form.
var typeInfoCoordinates = [15][2]int{
	{0, 8}, {1, 8}, {2, 8}, {3, 8}, {4, 8}, {5, 8}, {7, 8}, {8, 8},
	{8, 7}, {8, 5}, {8, 4}, {8, 3}, {8, 2}, {8, 1}, {8, 0},
}

// PlaceFormatInfo stamps the duplicated 15-bit format information block
// (EC level + mask pattern) into its two reserved positions: one copy
// around the top-left finder pattern, the other split between row 8
// beside the top-right finder and column 8 beside the bottom-left finder.
func PlaceFormatInfo(matrix *ModuleMatrix, levelBits, maskPattern int) {
	bits := formatInfoBits(levelBits, maskPattern)
	dim := matrix.Dimension()
	for i := 0; i < 15; i++ {
		bit := (bits>>uint(14-i))&1 == 1
		row, col := typeInfoCoordinates[i][0], typeInfoCoordinates[i][1]
		matrix.SetBit(row, col, bit)

		if i < 8 {
			matrix.SetBit(8, dim-i-1, bit)
		} else {
			matrix.SetBit(dim-15+i, 8, bit)
		}
	}
}

// PlaceVersionInfo stamps the two duplicated 18-bit version information
// blocks for versions 7 and above; it is a no-op below version 7.
func PlaceVersionInfo(matrix *ModuleMatrix, v *version.Version) {
	if v.Number < 7 {
		return
	}
	bits := versionInfoBits(v.Number)
	dim := matrix.Dimension()
	bitIndex := 17
	for i := 0; i < 6; i++ {
		for j := 0; j < 3; j++ {
			bit := (bits>>uint(bitIndex))&1 == 1
			bitIndex--
			matrix.SetBit(dim-11+j, i, bit)
			matrix.SetBit(i, dim-11+j, bit)
		}
	}
}

// ReserveFormatInfoAreas marks the format info positions as reserved
// before data placement, using a placeholder (light) value that
// PlaceFormatInfo overwrites once the mask pattern is chosen.
func ReserveFormatInfoAreas(matrix *ModuleMatrix) {
	dim := matrix.Dimension()
	for i := 0; i < 15; i++ {
		row, col := typeInfoCoordinates[i][0], typeInfoCoordinates[i][1]
		matrix.SetLight(row, col)
		if i < 8 {
			matrix.SetLight(8, dim-i-1)
		} else {
			matrix.SetLight(dim-15+i, 8)
		}
	}
}

// ReserveVersionInfoAreas marks the version info positions as reserved
// before data placement; a no-op below version 7.
func ReserveVersionInfoAreas(matrix *ModuleMatrix, v *version.Version) {
	if v.Number < 7 {
		return
	}
	dim := matrix.Dimension()
	for i := 0; i < 6; i++ {
		for j := 0; j < 3; j++ {
			matrix.SetLight(dim-11+j, i)
			matrix.SetLight(i, dim-11+j)
		}
	}
}
