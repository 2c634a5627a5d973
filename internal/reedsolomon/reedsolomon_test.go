package reedsolomon

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	enc := NewEncoder()
	dec := NewDecoder()

	data := []byte("HELLO WORLD, THIS IS A TEST MESSAGE FOR RS")
	const ecCount = 20

	ec := enc.Encode(data, ecCount)
	require.Len(t, ec, ecCount)

	block := append(append([]byte{}, data...), ec...)

	corrupted := append([]byte{}, block...)
	rng := rand.New(rand.NewSource(1))
	maxCorrectable := ecCount / 2
	flipped := map[int]bool{}
	for len(flipped) < maxCorrectable {
		idx := rng.Intn(len(corrupted))
		if flipped[idx] {
			continue
		}
		flipped[idx] = true
		corrupted[idx] ^= 0xFF
	}

	n, err := dec.Correct(corrupted, ecCount)
	require.NoError(t, err)
	require.Equal(t, maxCorrectable, n)
	require.Equal(t, block, corrupted)
}

func TestCorrectNoErrors(t *testing.T) {
	enc := NewEncoder()
	dec := NewDecoder()
	data := []byte{1, 2, 3, 4, 5}
	ec := enc.Encode(data, 10)
	block := append(append([]byte{}, data...), ec...)

	n, err := dec.Correct(block, 10)
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestUncorrectableTooManyErrors(t *testing.T) {
	enc := NewEncoder()
	dec := NewDecoder()
	data := make([]byte, 20)
	for i := range data {
		data[i] = byte(i * 7)
	}
	const ecCount = 10
	ec := enc.Encode(data, ecCount)
	block := append(append([]byte{}, data...), ec...)

	corrupted := append([]byte{}, block...)
	for i := 0; i < ecCount/2+3; i++ {
		corrupted[i] ^= 0xFF
	}

	_, err := dec.Correct(corrupted, ecCount)
	if err == nil {
		matched := true
		for i := range block {
			if block[i] != corrupted[i] {
				matched = false
				break
			}
		}
		require.False(t, matched, "expected either an error or a mismatched block")
	}
}
