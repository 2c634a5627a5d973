package binarize

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func checkerboard(size, cell int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.SetGray(x, y, color.Gray{Y: 20})
			} else {
				img.SetGray(x, y, color.Gray{Y: 230})
			}
		}
	}
	return img
}

func TestHistogramBinarizeCheckerboard(t *testing.T) {
	src := NewSource(checkerboard(64, 8))
	matrix, err := Histogram(src)
	require.NoError(t, err)
	require.True(t, matrix.Get(0, 0))
	require.False(t, matrix.Get(8, 0))
}

func TestHistogramInsufficientContrast(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.SetGray(x, y, color.Gray{Y: 128})
		}
	}
	_, err := Histogram(NewSource(img))
	require.ErrorIs(t, err, ErrInsufficientContrast)
}

func TestAdaptiveBinarizeCheckerboard(t *testing.T) {
	src := NewSource(checkerboard(64, 8))
	matrix := Adaptive(src)
	require.True(t, matrix.Get(0, 0))
	require.False(t, matrix.Get(8, 0))
}
