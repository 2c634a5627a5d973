// Package binarize converts a captured image into the black/white module
// grid the decoder works from: a grayscale luminance pass, then either a
// single global threshold (histogram binarization) or a locally adaptive
// one, per §4.7.
package binarize

import "image"

// Source is a grayscale view of a captured image, computed once up
// front so both binarization strategies share the same luminance data.
type Source struct {
	width, height int
	luminances    []byte
}

// NewSource converts img to grayscale using the BT.601 luma weights
// (0.299R + 0.587G + 0.114B), the standard conversion used throughout
// the zxing family of decoders this package's binarizers are modeled on.
func NewSource(img image.Image) *Source {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	luminances := make([]byte, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			// r/g/b are 16-bit; reduce to 8-bit before weighting.
			r8, g8, b8 := r>>8, g>>8, b>>8
			lum := (299*r8 + 587*g8 + 114*b8) / 1000
			luminances[y*width+x] = byte(lum)
		}
	}
	return &Source{width: width, height: height, luminances: luminances}
}

// Width returns the source's pixel width.
func (s *Source) Width() int { return s.width }

// Height returns the source's pixel height.
func (s *Source) Height() int { return s.height }

// At returns the luminance (0-255) at (x, y).
func (s *Source) At(x, y int) byte { return s.luminances[y*s.width+x] }

// Row returns a view of the luminance values for row y.
func (s *Source) Row(y int) []byte { return s.luminances[y*s.width : (y+1)*s.width] }
