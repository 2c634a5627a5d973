package qriso

import (
	"image"
	"image/color"
	"image/png"
	"io"
)

// WriteOptions configures WriteImage. The zero value renders at 1 pixel
// per module with a 4-module quiet zone, per §8.1.
type WriteOptions struct {
	Scale        int // pixels per module; 0 means 1
	QuietModules int // 0 means 4
}

func (o WriteOptions) normalize() WriteOptions {
	if o.Scale < 1 {
		o.Scale = 1
	}
	if o.QuietModules <= 0 {
		o.QuietModules = 4
	}
	return o
}

// WriteImage rasterizes sym as a PNG, generalizing the teacher's
// WritePNG (hardcoded border of 4, fixed qr.Size field) to any symbol
// dimension and a caller-configurable quiet zone.
func WriteImage(w io.Writer, sym *Symbol, opts WriteOptions) error {
	opts = opts.normalize()
	dim := sym.Dimension()
	size := (dim + 2*opts.QuietModules) * opts.Scale

	img := image.NewPaletted(image.Rect(0, 0, size, size), color.Palette{
		color.White,
		color.Black,
	})
	for i := range img.Pix {
		img.Pix[i] = 0 // index 0 is white
	}

	for row := 0; row < dim; row++ {
		for col := 0; col < dim; col++ {
			if !sym.IsDark(row, col) {
				continue
			}
			startX := (col + opts.QuietModules) * opts.Scale
			startY := (row + opts.QuietModules) * opts.Scale
			for y := 0; y < opts.Scale; y++ {
				for x := 0; x < opts.Scale; x++ {
					img.SetColorIndex(startX+x, startY+y, 1)
				}
			}
		}
	}

	return png.Encode(w, img)
}
