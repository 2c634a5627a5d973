package detector

import (
	"image"
	"image/color"
	"testing"

	"github.com/ashokshau/qriso/internal/layout"
	"github.com/ashokshau/qriso/internal/version"
	"github.com/stretchr/testify/require"
)

// saltAndPepper flips every scale*scale module block at (col, row) to the
// opposite color, simulating print/scan speckle noise that doesn't touch
// the finder or timing patterns.
func saltAndPepper(img *image.Gray, scale int, cols, rows []int) {
	bounds := img.Bounds()
	for k := range cols {
		x0, y0 := cols[k]*scale, rows[k]*scale
		for dy := 0; dy < scale; dy++ {
			for dx := 0; dx < scale; dx++ {
				x, y := x0+dx, y0+dy
				if !(image.Pt(x, y).In(bounds)) {
					continue
				}
				cur := img.GrayAt(x, y)
				if cur.Y > 127 {
					img.SetGray(x, y, color.Gray{Y: 0})
				} else {
					img.SetGray(x, y, color.Gray{Y: 255})
				}
			}
		}
	}
}

// renderMatrix draws a layout.ModuleMatrix at scale pixels per module
// with a quiet-zone border, the same rasterization the root writer.go
// facade performs for real encoded symbols.
func renderMatrix(m *layout.ModuleMatrix, scale, quietModules int) *image.Gray {
	dim := m.Dimension()
	size := (dim + 2*quietModules) * scale
	img := image.NewGray(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	for row := 0; row < dim; row++ {
		for col := 0; col < dim; col++ {
			if !m.Get(row, col).IsDark() {
				continue
			}
			x0 := (col + quietModules) * scale
			y0 := (row + quietModules) * scale
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.SetGray(x0+dx, y0+dy, color.Gray{Y: 0})
				}
			}
		}
	}
	return img
}

func TestDetectRoundTripVersion1(t *testing.T) {
	v, err := version.GetVersionForNumber(1)
	require.NoError(t, err)

	blocks := v.ECBlocksForLevel(version.LevelM)
	data := make([]byte, blocks.TotalDataCodewords())
	for i := range data {
		data[i] = byte(i*31 + 7)
	}
	ec := make([]byte, blocks.TotalECCodewords())
	codewords := append(data, ec...)

	built, mask := layout.BuildMatrix(v, version.LevelM, codewords, -1)
	img := renderMatrix(built, 4, 4)

	cursor := NewCursor(img)
	result, err := cursor.Detect()
	require.NoError(t, err)
	require.Equal(t, 1, result.Symbol.Version.Number)
	require.Equal(t, version.LevelM, result.Symbol.Level)
	require.Equal(t, mask, result.Symbol.Mask)
	require.Equal(t, data, result.Symbol.Codewords[:len(data)])
}

// TestDetectToleratesDataAreaSpeckle exercises the detector against
// something other than a pristine render: a handful of module blocks far
// from the finder, timing, and alignment patterns are flipped. Locating
// the symbol and reading its version/format info only depends on those
// structural patterns, so detection should succeed unaffected even though
// the sampled data codewords are no longer byte-identical to the source
// (correcting those is the root Decoder's job, not the detector's).
func TestDetectToleratesDataAreaSpeckle(t *testing.T) {
	v, err := version.GetVersionForNumber(3)
	require.NoError(t, err)

	blocks := v.ECBlocksForLevel(version.LevelM)
	data := make([]byte, blocks.TotalDataCodewords())
	for i := range data {
		data[i] = byte(i*17 + 3)
	}
	ec := make([]byte, blocks.TotalECCodewords())
	codewords := append(data, ec...)

	built, _ := layout.BuildMatrix(v, version.LevelM, codewords, -1)
	const scale = 4
	img := renderMatrix(built, scale, 4)

	// Modules well clear of the finder patterns (rows/cols 0-7 and 22-28),
	// the timing lines (row/col 6), and the version-3 alignment pattern
	// (centered at module 22).
	saltAndPepper(img, scale, []int{4 + 10, 4 + 12, 4 + 14, 4 + 16}, []int{4 + 10, 4 + 12, 4 + 14, 4 + 16})

	cursor := NewCursor(img)
	result, err := cursor.Detect()
	require.NoError(t, err)
	require.Equal(t, 3, result.Symbol.Version.Number)
	require.Equal(t, version.LevelM, result.Symbol.Level)
}

func TestDetectFailsOnBlankImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 200, 200))
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	_, err := NewCursor(img).Detect()
	require.ErrorIs(t, err, ErrExhausted)
}
