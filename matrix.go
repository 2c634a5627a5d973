package qriso

import (
	"github.com/ashokshau/qriso/internal/layout"
	"github.com/ashokshau/qriso/internal/version"
)

// ECLevel names an error-correction level, re-exported so callers don't
// need to import internal/version directly.
type ECLevel = version.ECLevel

const (
	LevelL = version.LevelL
	LevelM = version.LevelM
	LevelQ = version.LevelQ
	LevelH = version.LevelH
)

// Symbol is a finished QR code: its module matrix plus the metadata
// encoded into its format and version info. Encoder.Encode returns one;
// WriteImage rasterizes one.
type Symbol struct {
	Matrix  *layout.ModuleMatrix
	Version int
	Level   ECLevel
	Mask    int
}

// Dimension returns the symbol's grid size, 17+4*Version.
func (s *Symbol) Dimension() int {
	return s.Matrix.Dimension()
}

// IsDark reports whether the module at (row, col) renders dark.
func (s *Symbol) IsDark(row, col int) bool {
	return s.Matrix.Get(row, col).IsDark()
}
