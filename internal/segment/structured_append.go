package segment

import (
	"fmt"

	"github.com/ashokshau/qriso/internal/bitutil"
)

// EncodeStructuredAppend appends a structured-append header: a 4-bit
// symbol index, a 4-bit total-count-minus-one, and an 8-bit parity byte
// computed over the full message, per §4.3.
func EncodeStructuredAppend(index, total int, parity byte, bits *bitutil.BitArray) error {
	if total < 1 || total > 16 {
		return fmt.Errorf("segment: structured append total %d out of range [1,16]", total)
	}
	if index < 0 || index >= total {
		return fmt.Errorf("segment: structured append index %d out of range [0,%d)", index, total)
	}
	bits.AppendBits(uint32(index), 4)
	bits.AppendBits(uint32(total-1), 4)
	bits.AppendBits(uint32(parity), 8)
	return nil
}

// DecodeStructuredAppend reads a structured-append header and returns the
// zero-based symbol index, the total symbol count, and the parity byte.
func DecodeStructuredAppend(src *bitutil.BitSource) (index, total int, parity byte, err error) {
	index = src.ReadBits(4)
	total = src.ReadBits(4) + 1
	parity = byte(src.ReadBits(8))
	if index >= total {
		return 0, 0, 0, fmt.Errorf("segment: structured append index %d >= total %d", index, total)
	}
	return index, total, parity, nil
}

// Parity computes the structured-append parity byte: the XOR of every
// byte of the original (pre-segmentation) message.
func Parity(message []byte) byte {
	var p byte
	for _, b := range message {
		p ^= b
	}
	return p
}
