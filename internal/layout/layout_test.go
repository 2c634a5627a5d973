package layout

import (
	"testing"

	"github.com/ashokshau/qriso/internal/version"
	"github.com/stretchr/testify/require"
)

func TestFormatInfoBitsKnownValue(t *testing.T) {
	// EC level M (bits 0x0), mask pattern 0, is a widely published
	// reference value: masked format info 0x5412 unmasked (bch=0),
	// i.e. raw bits 0 XOR mask 0x5412.
	got := formatInfoBits(version.LevelM.Bits(), 0)
	require.Equal(t, formatInfoMask, got)
}

func TestVersionInfoBitsValidVersion7(t *testing.T) {
	bits := versionInfoBits(7)
	require.Equal(t, 7, bits>>12)
}

func TestBuildMatrixDimensionMaskAndDarkModule(t *testing.T) {
	v, err := version.GetVersionForNumber(1)
	require.NoError(t, err)

	data := make([]byte, v.ECBlocksForLevel(version.LevelM).TotalDataCodewords())
	for i := range data {
		data[i] = byte(i)
	}
	ec := make([]byte, v.ECBlocksForLevel(version.LevelM).TotalECCodewords())
	codewords := append(data, ec...)

	matrix, mask := BuildMatrix(v, version.LevelM, codewords, -1)
	require.Equal(t, 21, matrix.Dimension())
	require.GreaterOrEqual(t, mask, 0)
	require.Less(t, mask, 8)

	// The dark module must always render dark regardless of mask.
	require.True(t, matrix.Get(4*v.Number+9, 8).IsDark())
}

func TestApplyMaskLeavesReservedCellsAlone(t *testing.T) {
	v, err := version.GetVersionForNumber(1)
	require.NoError(t, err)
	matrix := NewModuleMatrix(v.DimensionForVersion())
	PlaceFunctionPatterns(matrix, v)
	ReserveFormatInfoAreas(matrix)

	before := matrix.Get(0, 0)
	ApplyMask(matrix, 0)
	require.Equal(t, before, matrix.Get(0, 0))
}

func TestPenaltyRule2DetectsBlock(t *testing.T) {
	m := NewModuleMatrix(4)
	m.SetDataBit(0, 0, true)
	m.SetDataBit(0, 1, true)
	m.SetDataBit(1, 0, true)
	m.SetDataBit(1, 1, true)
	// Rule 2 scores every same-colored 2x2 block, light ones included:
	// the dark block at (0,0) plus the 5 blocks lying wholly in the
	// unset (light) cells, 6 blocks x 3 = 18.
	require.Equal(t, 18, penaltyRule2(m))
}
