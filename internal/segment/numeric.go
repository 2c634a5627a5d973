package segment

import (
	"fmt"

	"github.com/ashokshau/qriso/internal/bitutil"
)

// EncodeNumeric appends content (which must be all ASCII digits) to bits
// in groups of 3 digits per 10 bits, 2 digits per 7 bits, 1 digit per 4
// bits, per §4.3.
func EncodeNumeric(content string, bits *bitutil.BitArray) error {
	n := len(content)
	for i := 0; i < n; {
		switch {
		case i+3 <= n:
			v, err := digits3(content[i : i+3])
			if err != nil {
				return err
			}
			bits.AppendBits(uint32(v), 10)
			i += 3
		case i+2 <= n:
			v, err := digits2(content[i : i+2])
			if err != nil {
				return err
			}
			bits.AppendBits(uint32(v), 7)
			i += 2
		default:
			v, err := digit1(content[i])
			if err != nil {
				return err
			}
			bits.AppendBits(uint32(v), 4)
			i++
		}
	}
	return nil
}

func digit1(c byte) (int, error) {
	if c < '0' || c > '9' {
		return 0, fmt.Errorf("segment: %q is not a digit", c)
	}
	return int(c - '0'), nil
}

func digits2(s string) (int, error) {
	a, err := digit1(s[0])
	if err != nil {
		return 0, err
	}
	b, err := digit1(s[1])
	if err != nil {
		return 0, err
	}
	return a*10 + b, nil
}

func digits3(s string) (int, error) {
	a, err := digit1(s[0])
	if err != nil {
		return 0, err
	}
	b, err := digit1(s[1])
	if err != nil {
		return 0, err
	}
	c, err := digit1(s[2])
	if err != nil {
		return 0, err
	}
	return a*100+b*10+c, nil
}

// DecodeNumeric reads count digits from src and returns them as a string.
func DecodeNumeric(src *bitutil.BitSource, count int) (string, error) {
	out := make([]byte, 0, count)
	for count >= 3 {
		v := src.ReadBits(10)
		if v >= 1000 {
			return "", fmt.Errorf("segment: invalid numeric triplet %d", v)
		}
		out = append(out, byte('0'+v/100), byte('0'+(v/10)%10), byte('0'+v%10))
		count -= 3
	}
	if count == 2 {
		v := src.ReadBits(7)
		if v >= 100 {
			return "", fmt.Errorf("segment: invalid numeric pair %d", v)
		}
		out = append(out, byte('0'+v/10), byte('0'+v%10))
	} else if count == 1 {
		v := src.ReadBits(4)
		if v >= 10 {
			return "", fmt.Errorf("segment: invalid numeric digit %d", v)
		}
		out = append(out, byte('0'+v))
	}
	return string(out), nil
}
