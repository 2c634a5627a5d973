package segment

import (
	"fmt"

	"github.com/ashokshau/qriso/internal/bitutil"
	"golang.org/x/text/encoding/simplifiedchinese"
)

// hanziCharset transcodes between UTF-8 and GBK for Hanzi-mode segments.
// simplifiedchinese.GBK is a superset of the GB2312 subsets Hanzi mode
// addresses (golang.org/x/text/encoding/simplifiedchinese, already pulled
// in for ECI 29 in charset.go).
var hanziCharset = Charset{Label: "GBK", enc: simplifiedchinese.GBK}

// EncodeHanzi transcodes content to GB2312/GBK and appends one 13-bit code
// per double-byte character, per the GB18030 Hanzi-mode extension.
func EncodeHanzi(content string, bits *bitutil.BitArray) error {
	gb, err := hanziCharset.EncodeToBytes(content)
	if err != nil {
		return fmt.Errorf("segment: hanzi transcode: %w", err)
	}
	if len(gb)%2 != 0 {
		return fmt.Errorf("segment: odd-length GBK output, content is not all double-byte")
	}
	for i := 0; i < len(gb); i += 2 {
		code := int(gb[i])<<8 | int(gb[i+1])
		var subtracted int
		switch {
		case code >= 0xA1A1 && code <= 0xAAFE:
			subtracted = code - 0xA1A1
		case code >= 0xB0A1 && code <= 0xFAFE:
			subtracted = code - 0xA6A1
		default:
			return fmt.Errorf("segment: GBK code %#x out of Hanzi-mode range", code)
		}
		value := (subtracted>>8)*0x60 + (subtracted & 0xFF)
		bits.AppendBits(uint32(value), 13)
	}
	return nil
}

// DecodeHanzi reads count 13-bit codes from src and reconstructs the
// original GBK bytes, then transcodes them to UTF-8.
func DecodeHanzi(src *bitutil.BitSource, count int) (string, error) {
	gb := make([]byte, 0, count*2)
	for i := 0; i < count; i++ {
		value := src.ReadBits(13)
		subtracted := ((value / 0x60) << 8) | (value % 0x60)
		var code int
		if subtracted <= 0xAAFE-0xA1A1 {
			code = subtracted + 0xA1A1
		} else {
			code = subtracted + 0xA6A1
		}
		gb = append(gb, byte(code>>8), byte(code&0xFF))
	}
	out, err := hanziCharset.DecodeFromBytes(gb)
	if err != nil {
		return "", fmt.Errorf("segment: hanzi transcode: %w", err)
	}
	return out, nil
}
