package segment

import (
	"errors"
	"fmt"

	"github.com/ashokshau/qriso/internal/bitutil"
)

// ErrMalformedDesignator is returned when an ECI header's first byte
// doesn't match any of the 0xx/10/110 prefix forms §4.3 defines. The
// root package aliases this as ErrInvalidEciDesignator.
var ErrMalformedDesignator = errors.New("segment: malformed ECI designator header")

// EncodeECIDesignator appends an ECI header for designator, using the
// 1/2/3-byte variable-length form of §4.3: values below 128 take a
// single byte, below 16384 take two bytes with a 10-prefix, and the rest
// take three bytes with a 110-prefix.
func EncodeECIDesignator(designator int, bits *bitutil.BitArray) error {
	switch {
	case designator < 0:
		return fmt.Errorf("segment: negative ECI designator %d", designator)
	case designator < 1<<7:
		bits.AppendBits(uint32(designator), 8)
	case designator < 1<<14:
		bits.AppendBits(uint32(0x2<<14|designator), 16)
	case designator < 1000000:
		bits.AppendBits(uint32(0x6<<21|designator), 24)
	default:
		return fmt.Errorf("segment: ECI designator %d out of range", designator)
	}
	return nil
}

// DecodeECIDesignator reads a variable-length ECI header from src and
// returns the designator value.
func DecodeECIDesignator(src *bitutil.BitSource) (int, error) {
	first := src.ReadBits(8)
	switch {
	case first&0x80 == 0:
		return first, nil
	case first&0xC0 == 0x80:
		second := src.ReadBits(8)
		return (first&0x3F)<<8 | second, nil
	case first&0xE0 == 0xC0:
		rest := src.ReadBits(16)
		return (first&0x1F)<<16 | rest, nil
	default:
		return 0, fmt.Errorf("%w: header byte %#x", ErrMalformedDesignator, first)
	}
}
