package segment

import (
	"fmt"

	"github.com/ashokshau/qriso/internal/bitutil"
)

// alphanumericAlphabet is the 45-character QR alphanumeric set, indexed
// by code value 0..44.
const alphanumericAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

var alphanumericCode [128]int

func init() {
	for i := range alphanumericCode {
		alphanumericCode[i] = -1
	}
	for code, c := range alphanumericAlphabet {
		alphanumericCode[c] = code
	}
}

// AlphanumericCode returns the alphabet index for c, or -1 if c is not a
// valid alphanumeric-mode character.
func AlphanumericCode(c byte) int {
	if c >= 128 {
		return -1
	}
	return alphanumericCode[c]
}

// EncodeAlphanumeric appends content to bits as pairs (11 bits each) with
// a trailing singleton (6 bits) if the length is odd, per §4.3.
func EncodeAlphanumeric(content string, bits *bitutil.BitArray) error {
	n := len(content)
	for i := 0; i < n; {
		c1 := AlphanumericCode(content[i])
		if c1 < 0 {
			return fmt.Errorf("segment: %q is not a valid alphanumeric character", content[i])
		}
		if i+1 < n {
			c2 := AlphanumericCode(content[i+1])
			if c2 < 0 {
				return fmt.Errorf("segment: %q is not a valid alphanumeric character", content[i+1])
			}
			bits.AppendBits(uint32(c1*45+c2), 11)
			i += 2
		} else {
			bits.AppendBits(uint32(c1), 6)
			i++
		}
	}
	return nil
}

// DecodeAlphanumeric reads count characters from src.
func DecodeAlphanumeric(src *bitutil.BitSource, count int) (string, error) {
	out := make([]byte, 0, count)
	for count >= 2 {
		v := src.ReadBits(11)
		if v >= 45*45 {
			return "", fmt.Errorf("segment: invalid alphanumeric pair %d", v)
		}
		out = append(out, alphanumericAlphabet[v/45], alphanumericAlphabet[v%45])
		count -= 2
	}
	if count == 1 {
		v := src.ReadBits(6)
		if v >= 45 {
			return "", fmt.Errorf("segment: invalid alphanumeric code %d", v)
		}
		out = append(out, alphanumericAlphabet[v])
	}
	return string(out), nil
}
