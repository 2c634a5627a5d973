package bitutil

import "testing"

func TestBitArrayAppendAndGet(t *testing.T) {
	b := NewBitArray(0)
	b.AppendBits(0b1011, 4)
	b.AppendBit(true)
	b.AppendBit(false)

	want := []bool{true, false, true, true, true, false}
	if b.Size() != len(want) {
		t.Fatalf("size = %d, want %d", b.Size(), len(want))
	}
	for i, w := range want {
		if b.Get(i) != w {
			t.Errorf("bit %d = %v, want %v", i, b.Get(i), w)
		}
	}
}

func TestBitArrayToBytes(t *testing.T) {
	b := NewBitArray(0)
	b.AppendBits(0xAB, 8)
	b.AppendBits(0xCD, 8)
	got := b.Bytes()
	want := []byte{0xAB, 0xCD}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("Bytes() = %v, want %v", got, want)
	}
}

func TestBitSourceRoundTrip(t *testing.T) {
	src := NewBitSource([]byte{0xAB, 0xCD, 0xEF})
	if got := src.ReadBits(4); got != 0xA {
		t.Errorf("first nibble = %x, want a", got)
	}
	if got := src.ReadBits(12); got != 0xBCD {
		t.Errorf("next 12 bits = %x, want bcd", got)
	}
	if got := src.ReadBits(8); got != 0xEF {
		t.Errorf("last byte = %x, want ef", got)
	}
	if src.Available() != 0 {
		t.Errorf("available = %d, want 0", src.Available())
	}
}

func TestBitMatrixSetGetFlip(t *testing.T) {
	m := NewBitMatrixWithSize(40, 10)
	m.Set(5, 2)
	if !m.Get(5, 2) {
		t.Fatal("expected (5,2) set")
	}
	m.Flip(5, 2)
	if m.Get(5, 2) {
		t.Fatal("expected (5,2) cleared after flip")
	}
	m.SetRegion(0, 0, 3, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if !m.Get(x, y) {
				t.Errorf("expected (%d,%d) set by SetRegion", x, y)
			}
		}
	}
	clone := m.Clone()
	clone.Flip(0, 0)
	if m.Get(0, 0) == clone.Get(0, 0) {
		t.Fatal("expected clone to be independent of original")
	}
}

func TestBitMatrixTransposeAndRotate(t *testing.T) {
	m := NewBitMatrixWithSize(4, 4)
	m.Set(1, 0)
	tr := m.Transpose()
	if !tr.Get(0, 1) {
		t.Fatal("expected transpose to swap coordinates")
	}

	r := NewBitMatrixWithSize(3, 2)
	r.Set(0, 0)
	r.Rotate(90)
	if r.Width() != 2 || r.Height() != 3 {
		t.Fatalf("rotated dims = %dx%d, want 2x3", r.Width(), r.Height())
	}
}
