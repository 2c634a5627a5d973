// Package segment implements the per-mode bit-level codecs for QR data
// segments (§4.3): Numeric, Alphanumeric, Byte, Kanji, Hanzi, and the
// control segments ECI, FNC1, and Structured Append.
package segment

import (
	"fmt"

	"github.com/ashokshau/qriso/internal/bitutil"
	"github.com/ashokshau/qriso/internal/mode"
)

// Segment is one mode-tagged chunk of a QR payload.
type Segment struct {
	Mode    mode.Mode
	Charset Charset // meaningful for Mode.Byte (zero value means DefaultCharset) and Mode.ECI (its Designator is encoded)
	Text    string  // UTF-8; for Byte mode this is transcoded via Charset on encode
	AppIndicator byte // meaningful for Mode.FNC1Second only
}

// CharacterCount returns the count this segment's character-count
// indicator must carry: runes for Kanji/Hanzi (one indicator value per
// double-byte character), charset-native bytes for Byte, and characters
// for Numeric/Alphanumeric.
func (s Segment) CharacterCount() (int, error) {
	switch s.Mode {
	case mode.Numeric, mode.Alphanumeric:
		return len(s.Text), nil
	case mode.Byte:
		raw, err := s.charsetOrDefault().EncodeToBytes(s.Text)
		if err != nil {
			return 0, err
		}
		return len(raw), nil
	case mode.Kanji:
		return kanjiCharCount(s.Text)
	case mode.Hanzi:
		return hanziCharCount(s.Text)
	default:
		return 0, nil
	}
}

func (s Segment) charsetOrDefault() Charset {
	if s.Charset == (Charset{}) {
		return DefaultCharset
	}
	return s.Charset
}

// Encode appends this segment's mode indicator, character-count
// indicator, and payload bits to bits, for a symbol of the given version.
func (s Segment) Encode(version int, bits *bitutil.BitArray) error {
	class := mode.ClassForVersion(version)
	bits.AppendBits(uint32(s.Mode.Bits()), 4)

	switch s.Mode {
	case mode.Numeric:
		bits.AppendBits(uint32(len(s.Text)), s.Mode.CharacterCountBits(class))
		return EncodeNumeric(s.Text, bits)
	case mode.Alphanumeric:
		bits.AppendBits(uint32(len(s.Text)), s.Mode.CharacterCountBits(class))
		return EncodeAlphanumeric(s.Text, bits)
	case mode.Byte:
		raw, err := s.charsetOrDefault().EncodeToBytes(s.Text)
		if err != nil {
			return err
		}
		bits.AppendBits(uint32(len(raw)), s.Mode.CharacterCountBits(class))
		EncodeByte(raw, bits)
		return nil
	case mode.Kanji:
		count, err := kanjiCharCount(s.Text)
		if err != nil {
			return err
		}
		bits.AppendBits(uint32(count), s.Mode.CharacterCountBits(class))
		return EncodeKanji(s.Text, bits)
	case mode.Hanzi:
		count, err := hanziCharCount(s.Text)
		if err != nil {
			return err
		}
		bits.AppendBits(uint32(count), s.Mode.CharacterCountBits(class))
		return EncodeHanzi(s.Text, bits)
	case mode.ECI:
		return EncodeECIDesignator(s.Charset.Designator, bits)
	case mode.FNC1First:
		return nil
	case mode.FNC1Second:
		EncodeFNC1Second(s.AppIndicator, bits)
		return nil
	default:
		return fmt.Errorf("segment: unsupported mode %s for encode", s.Mode)
	}
}

func kanjiCharCount(s string) (int, error) {
	raw, err := kanjiCharset.EncodeToBytes(s)
	if err != nil {
		return 0, err
	}
	return len(raw) / 2, nil
}

func hanziCharCount(s string) (int, error) {
	raw, err := hanziCharset.EncodeToBytes(s)
	if err != nil {
		return 0, err
	}
	return len(raw) / 2, nil
}

// DecodeAll reads segments from src until a Terminator mode indicator or
// the bit source is exhausted, mirroring the per-mode dispatch loop used
// by every QR decoder (ericlevine/zxinggo's decoded_bit_stream_parser
// family of decoders, generalized here across mode.Mode).
//
// currentCharset is the Byte-mode charset in effect before any ECI header
// is seen (ISO/IEC 18004 default: ISO-8859-1).
func DecodeAll(src *bitutil.BitSource, version int, currentCharset Charset) ([]Segment, error) {
	class := mode.ClassForVersion(version)
	var segments []Segment

	for src.Available() >= 4 {
		m := mode.Mode(src.ReadBits(4))
		if m == mode.Terminator {
			break
		}

		switch m {
		case mode.Numeric, mode.Alphanumeric, mode.Byte, mode.Kanji, mode.Hanzi:
			count := src.ReadBits(m.CharacterCountBits(class))
			text, err := decodeDataSegment(src, m, count, currentCharset)
			if err != nil {
				return nil, err
			}
			segments = append(segments, Segment{Mode: m, Charset: currentCharset, Text: text})

		case mode.ECI:
			designator, err := DecodeECIDesignator(src)
			if err != nil {
				return nil, err
			}
			cs, err := CharsetForDesignator(designator)
			if err != nil {
				return nil, err
			}
			currentCharset = cs
			segments = append(segments, Segment{Mode: mode.ECI, Charset: cs})

		case mode.FNC1First:
			segments = append(segments, Segment{Mode: mode.FNC1First})

		case mode.FNC1Second:
			indicator := DecodeFNC1Second(src)
			segments = append(segments, Segment{Mode: mode.FNC1Second, AppIndicator: indicator})

		case mode.StructuredApp:
			index, total, parity, err := DecodeStructuredAppend(src)
			if err != nil {
				return nil, err
			}
			segments = append(segments, Segment{
				Mode: mode.StructuredApp,
				Text: fmt.Sprintf("%d/%d;parity=%#02x", index+1, total, parity),
			})

		default:
			return nil, fmt.Errorf("segment: illegal mode indicator %#x", m.Bits())
		}
	}

	return segments, nil
}

func decodeDataSegment(src *bitutil.BitSource, m mode.Mode, count int, charset Charset) (string, error) {
	switch m {
	case mode.Numeric:
		return DecodeNumeric(src, count)
	case mode.Alphanumeric:
		return DecodeAlphanumeric(src, count)
	case mode.Byte:
		return DecodeByte(src, count, charset)
	case mode.Kanji:
		return DecodeKanji(src, count)
	case mode.Hanzi:
		return DecodeHanzi(src, count)
	default:
		return "", fmt.Errorf("segment: %s is not a data-carrying mode", m)
	}
}
