package version

import "testing"

func TestDimensionFormula(t *testing.T) {
	for n := 1; n <= 40; n++ {
		v, err := GetVersionForNumber(n)
		if err != nil {
			t.Fatalf("GetVersionForNumber(%d): %v", n, err)
		}
		want := 17 + 4*n
		if got := v.DimensionForVersion(); got != want {
			t.Errorf("version %d: dimension = %d, want %d", n, got, want)
		}
	}
}

func TestVersion1TotalCodewords(t *testing.T) {
	v, _ := GetVersionForNumber(1)
	if v.TotalCodewords != 26 {
		t.Errorf("version 1 total codewords = %d, want 26", v.TotalCodewords)
	}
	blocks := v.ECBlocksForLevel(LevelH)
	if blocks.TotalDataCodewords() != 9 || blocks.TotalECCodewords() != 17 {
		t.Errorf("version 1 level H = %+v", blocks)
	}
}

func TestInterleaveRoundTrip(t *testing.T) {
	data := [][]byte{{1, 2, 3}, {4, 5, 6}, {7, 8}}
	ec := [][]byte{{9, 10}, {11, 12}, {13, 14}}
	stream := Interleave(data, ec)

	sizes := []int{3, 3, 2}
	gotData, gotEC := Deinterleave(stream, sizes, 2)
	for i := range data {
		for j := range data[i] {
			if gotData[i][j] != data[i][j] {
				t.Errorf("data block %d byte %d = %d, want %d", i, j, gotData[i][j], data[i][j])
			}
		}
	}
	for i := range ec {
		for j := range ec[i] {
			if gotEC[i][j] != ec[i][j] {
				t.Errorf("ec block %d byte %d = %d, want %d", i, j, gotEC[i][j], ec[i][j])
			}
		}
	}
}

func TestAlignmentCentersEmptyForV1(t *testing.T) {
	v, _ := GetVersionForNumber(1)
	if len(v.AlignmentPatternCenters) != 0 {
		t.Errorf("version 1 alignment centers = %v, want empty", v.AlignmentPatternCenters)
	}
	v7, _ := GetVersionForNumber(7)
	if len(v7.AlignmentPatternCenters) != 3 {
		t.Errorf("version 7 alignment centers = %v, want 3 entries", v7.AlignmentPatternCenters)
	}
}
