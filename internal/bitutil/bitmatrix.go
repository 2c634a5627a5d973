package bitutil

// BitMatrix is a rectangular grid of bits packed 32 to a word, LSB-first
// within each word. Used for both the binarized scan image and the
// sampled module grid handed to the decoder.
type BitMatrix struct {
	width     int
	height    int
	rowSize   int // words per row
	bits      []uint32
}

// NewBitMatrixWithSize returns a cleared width x height BitMatrix.
func NewBitMatrixWithSize(width, height int) *BitMatrix {
	rowSize := (width + 31) / 32
	return &BitMatrix{
		width:   width,
		height:  height,
		rowSize: rowSize,
		bits:    make([]uint32, rowSize*height),
	}
}

// Width returns the matrix width.
func (m *BitMatrix) Width() int { return m.width }

// Height returns the matrix height.
func (m *BitMatrix) Height() int { return m.height }

func (m *BitMatrix) offset(x, y int) (word int, bit uint) {
	return y*m.rowSize + x/32, uint(x % 32)
}

// Get returns whether the cell at (x, y) is dark.
func (m *BitMatrix) Get(x, y int) bool {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return false
	}
	word, bit := m.offset(x, y)
	return (m.bits[word]>>bit)&1 != 0
}

// Set marks the cell at (x, y) as dark.
func (m *BitMatrix) Set(x, y int) {
	word, bit := m.offset(x, y)
	m.bits[word] |= 1 << bit
}

// Unset clears the cell at (x, y).
func (m *BitMatrix) Unset(x, y int) {
	word, bit := m.offset(x, y)
	m.bits[word] &^= 1 << bit
}

// Flip toggles the cell at (x, y).
func (m *BitMatrix) Flip(x, y int) {
	word, bit := m.offset(x, y)
	m.bits[word] ^= 1 << bit
}

// FlipAll toggles every cell in the matrix.
func (m *BitMatrix) FlipAll() {
	for i := range m.bits {
		m.bits[i] = ^m.bits[i]
	}
	// Clear padding bits beyond width so they never read as set.
	if m.width%32 != 0 {
		tailMask := uint32(1)<<(uint(m.width)%32) - 1
		for y := 0; y < m.height; y++ {
			last := y*m.rowSize + m.rowSize - 1
			m.bits[last] &= tailMask
		}
	}
}

// SetRegion marks the width x height rectangle at (x, y) as dark.
func (m *BitMatrix) SetRegion(x, y, width, height int) {
	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			m.Set(x+dx, y+dy)
		}
	}
}

// Clone returns a deep copy of m.
func (m *BitMatrix) Clone() *BitMatrix {
	out := &BitMatrix{width: m.width, height: m.height, rowSize: m.rowSize, bits: make([]uint32, len(m.bits))}
	copy(out.bits, m.bits)
	return out
}

// Transpose returns a new BitMatrix reflected across the main diagonal,
// used by the decoder's mirror-retry state machine (§4.6). Only defined
// for square matrices, which is always the case for a sampled symbol.
func (m *BitMatrix) Transpose() *BitMatrix {
	out := NewBitMatrixWithSize(m.height, m.width)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.Get(x, y) {
				out.Set(y, x)
			}
		}
	}
	return out
}

// Rotate rotates the matrix counterclockwise by 90, 180, or 270 degrees
// (one 90-degree step maps (x, y) to (y, width-1-x)).
func (m *BitMatrix) Rotate(degrees int) {
	switch ((degrees % 360) + 360) % 360 {
	case 90:
		m.rotate90()
	case 180:
		m.rotate180()
	case 270:
		m.rotate90()
		m.rotate90()
		m.rotate90()
	}
}

func (m *BitMatrix) rotate90() {
	newWidth := m.height
	newHeight := m.width
	newRowSize := (newWidth + 31) / 32
	newBits := make([]uint32, newRowSize*newHeight)
	rotated := &BitMatrix{width: newWidth, height: newHeight, rowSize: newRowSize, bits: newBits}
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.Get(x, y) {
				rotated.Set(y, m.width-1-x)
			}
		}
	}
	*m = *rotated
}

func (m *BitMatrix) rotate180() {
	newBits := make([]uint32, len(m.bits))
	rotated := &BitMatrix{width: m.width, height: m.height, rowSize: m.rowSize, bits: newBits}
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.Get(x, y) {
				rotated.Set(m.width-1-x, m.height-1-y)
			}
		}
	}
	*m = *rotated
}
