package matrixparser

import (
	"github.com/ashokshau/qriso/internal/bitutil"
	"github.com/ashokshau/qriso/internal/layout"
	"github.com/ashokshau/qriso/internal/version"
)

// ReadCodewords walks detected in the same zig-zag order internal/layout
// used to write it (§8.7.3), skipping the function-pattern and info
// positions that layout reserves, unmasking each bit with maskPattern,
// and packs the result into codeword bytes.
func ReadCodewords(detected *bitutil.BitMatrix, v *version.Version, maskPattern int) []byte {
	dim := v.DimensionForVersion()

	template := layout.NewModuleMatrix(dim)
	layout.PlaceFunctionPatterns(template, v)
	layout.ReserveFormatInfoAreas(template)
	layout.ReserveVersionInfoAreas(template, v)

	formula := layout.MaskFormulas[maskPattern]

	bits := bitutil.NewBitArray(0)
	direction := -1
	col := dim - 1

	for col > 0 {
		if col == 6 {
			col--
		}
		for i := 0; i < dim; i++ {
			row := i
			if direction == -1 {
				row = dim - 1 - i
			}
			for xx := 0; xx < 2; xx++ {
				c := col - xx
				if template.Get(row, c).IsReserved() {
					continue
				}
				dark := detected.Get(c, row)
				if formula(row, c) {
					dark = !dark
				}
				bits.AppendBit(dark)
			}
		}
		direction = -direction
		col -= 2
	}

	return bits.Bytes()
}
