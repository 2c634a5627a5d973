package layout

import "github.com/ashokshau/qriso/internal/bitutil"

// PlaceData walks the matrix in the zig-zag pattern of §8.7.3 (two
// columns at a time, bottom-to-top then top-to-bottom, skipping the
// vertical timing column), writing one data bit into every still-unset
// module. Positions beyond the end of dataBits (remainder bits) are
// written light, mirroring ericlevine/zxinggo's embedDataBits.
func PlaceData(matrix *ModuleMatrix, dataBits *bitutil.BitArray) {
	dim := matrix.Dimension()
	bitIndex := 0
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
				if matrix.Get(row, c) != CellUnset {
					continue
				}
				var bit bool
				if bitIndex < dataBits.Size() {
					bit = dataBits.Get(bitIndex)
					bitIndex++
				}
				matrix.SetDataBit(row, c, bit)
			}
		}
		direction = -direction
		col -= 2
	}
}
