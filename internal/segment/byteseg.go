package segment

import "github.com/ashokshau/qriso/internal/bitutil"

// EncodeByte appends data (already the charset-native byte form) to
// bits as one 8-bit value per byte.
func EncodeByte(data []byte, bits *bitutil.BitArray) {
	for _, b := range data {
		bits.AppendBits(uint32(b), 8)
	}
}

// DecodeByte reads count raw bytes from src and transcodes them from
// charset's native encoding into a UTF-8 string.
func DecodeByte(src *bitutil.BitSource, count int, charset Charset) (string, error) {
	raw := make([]byte, count)
	for i := 0; i < count; i++ {
		raw[i] = byte(src.ReadBits(8))
	}
	return charset.DecodeFromBytes(raw)
}
