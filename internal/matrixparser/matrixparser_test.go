package matrixparser

import (
	"testing"

	"github.com/ashokshau/qriso/internal/bitutil"
	"github.com/ashokshau/qriso/internal/layout"
	"github.com/ashokshau/qriso/internal/version"
	"github.com/stretchr/testify/require"
)

func moduleMatrixToBitMatrix(m *layout.ModuleMatrix) *bitutil.BitMatrix {
	dim := m.Dimension()
	out := bitutil.NewBitMatrixWithSize(dim, dim)
	for row := 0; row < dim; row++ {
		for col := 0; col < dim; col++ {
			if m.Get(row, col).IsDark() {
				out.Set(col, row)
			}
		}
	}
	return out
}

func TestParseRoundTripVersion1(t *testing.T) {
	v, err := version.GetVersionForNumber(1)
	require.NoError(t, err)

	dataSize := v.ECBlocksForLevel(version.LevelQ).TotalDataCodewords()
	ecSize := v.ECBlocksForLevel(version.LevelQ).TotalECCodewords()
	codewords := make([]byte, dataSize+ecSize)
	for i := 0; i < dataSize; i++ {
		codewords[i] = byte(i * 7)
	}

	built, mask := layout.BuildMatrix(v, version.LevelQ, codewords, -1)
	detected := moduleMatrixToBitMatrix(built)

	symbol, err := Parse(detected)
	require.NoError(t, err)
	require.Equal(t, 1, symbol.Version.Number)
	require.Equal(t, version.LevelQ, symbol.Level)
	require.Equal(t, mask, symbol.Mask)
	require.False(t, symbol.Mirrored)
	require.Equal(t, codewords[:dataSize], symbol.Codewords[:dataSize])
}

func TestReadVersionSmallFromDimension(t *testing.T) {
	m := bitutil.NewBitMatrixWithSize(21, 21)
	v, err := ReadVersion(m)
	require.NoError(t, err)
	require.Equal(t, 1, v.Number)
}
