package layout

import "github.com/ashokshau/qriso/internal/version"

// PlaceFunctionPatterns stamps every function pattern onto matrix: the
// three finder patterns with their separators, the alignment patterns,
// the timing patterns, and the dark module. It mirrors
// ericlevine/zxinggo's embedBasicPatterns, generalized to every version
// via version.Version's alignment-center table instead of the teacher's
// hardcoded versions-1-4 positions.
func PlaceFunctionPatterns(matrix *ModuleMatrix, v *version.Version) {
	placeFinderPatternAndSeparator(matrix, 0, 0)
	placeFinderPatternAndSeparator(matrix, 0, matrix.Dimension()-7)
	placeFinderPatternAndSeparator(matrix, matrix.Dimension()-7, 0)

	placeAlignmentPatterns(matrix, v)
	placeTimingPatterns(matrix)
	placeDarkModule(matrix, v.Number)
}

// finderPattern is the 7x7 finder template: a dark 7x7 ring, a light 5x5
// ring, and a dark 3x3 core.
var finderPattern = [7][7]bool{
	{true, true, true, true, true, true, true},
	{true, false, false, false, false, false, true},
	{true, false, true, true, true, false, true},
	{true, false, true, true, true, false, true},
	{true, false, true, true, true, false, true},
	{true, false, false, false, false, false, true},
	{true, true, true, true, true, true, true},
}

// placeFinderPatternAndSeparator stamps a 7x7 finder pattern whose
// top-left corner is (topRow, leftCol), plus its surrounding one-module
// light separator ring (clipped at the matrix edges).
func placeFinderPatternAndSeparator(matrix *ModuleMatrix, topRow, leftCol int) {
	for r := 0; r < 7; r++ {
		for c := 0; c < 7; c++ {
			matrix.SetBit(topRow+r, leftCol+c, finderPattern[r][c])
		}
	}
	dim := matrix.Dimension()
	for r := -1; r <= 7; r++ {
		for c := -1; c <= 7; c++ {
			row, col := topRow+r, leftCol+c
			if row < 0 || row >= dim || col < 0 || col >= dim {
				continue
			}
			if r >= 0 && r < 7 && c >= 0 && c < 7 {
				continue
			}
			matrix.SetLight(row, col)
		}
	}
}

// alignmentPattern is the 5x5 alignment template: a dark ring, a light
// ring, and a single dark center module.
var alignmentPattern = [5][5]bool{
	{true, true, true, true, true},
	{true, false, false, false, true},
	{true, false, true, false, true},
	{true, false, false, false, true},
	{true, true, true, true, true},
}

func placeAlignmentPatterns(matrix *ModuleMatrix, v *version.Version) {
	centers := v.AlignmentPatternCenters
	dim := matrix.Dimension()
	for _, row := range centers {
		for _, col := range centers {
			if overlapsFinder(row, col, dim) {
				continue
			}
			for r := -2; r <= 2; r++ {
				for c := -2; c <= 2; c++ {
					matrix.SetBit(row+r, col+c, alignmentPattern[r+2][c+2])
				}
			}
		}
	}
}

// overlapsFinder reports whether an alignment pattern centered at
// (row, col) would overlap one of the three finder patterns.
func overlapsFinder(row, col, dim int) bool {
	nearStart := func(v int) bool { return v <= 8 }
	nearEnd := func(v int) bool { return v >= dim-9 }
	topLeft := nearStart(row) && nearStart(col)
	topRight := nearStart(row) && nearEnd(col)
	bottomLeft := nearEnd(row) && nearStart(col)
	return topLeft || topRight || bottomLeft
}

func placeTimingPatterns(matrix *ModuleMatrix) {
	dim := matrix.Dimension()
	for i := 8; i < dim-8; i++ {
		dark := i%2 == 0
		if matrix.Get(6, i) == CellUnset {
			matrix.SetBit(6, i, dark)
		}
		if matrix.Get(i, 6) == CellUnset {
			matrix.SetBit(i, 6, dark)
		}
	}
}

func placeDarkModule(matrix *ModuleMatrix, versionNumber int) {
	matrix.SetDark(4*versionNumber+9, 8)
}
