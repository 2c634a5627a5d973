package segment

import (
	"fmt"

	"github.com/ashokshau/qriso/internal/bitutil"
	"golang.org/x/text/encoding/japanese"
)

// kanjiCharset transcodes between UTF-8 and Shift-JIS for Kanji-mode
// segments (golang.org/x/text/encoding/japanese, the same package
// ericlevine/zxinggo and inkstray/rsc-qr depend on for this).
var kanjiCharset = Charset{Label: "Shift-JIS", enc: japanese.ShiftJIS}

// EncodeKanji transcodes content to Shift-JIS and appends one 13-bit code
// per double-byte character, per §4.3.
func EncodeKanji(content string, bits *bitutil.BitArray) error {
	sjis, err := kanjiCharset.EncodeToBytes(content)
	if err != nil {
		return fmt.Errorf("segment: kanji transcode: %w", err)
	}
	if len(sjis)%2 != 0 {
		return fmt.Errorf("segment: odd-length Shift-JIS output, content is not all double-byte")
	}
	for i := 0; i < len(sjis); i += 2 {
		code := int(sjis[i])<<8 | int(sjis[i+1])
		var subtracted int
		switch {
		case code >= 0x8140 && code <= 0x9FFC:
			subtracted = code - 0x8140
		case code >= 0xE040 && code <= 0xEBBF:
			subtracted = code - 0xC140
		default:
			return fmt.Errorf("segment: Shift-JIS code %#x out of Kanji-mode range", code)
		}
		value := (subtracted>>8)*0xC0 + (subtracted & 0xFF)
		bits.AppendBits(uint32(value), 13)
	}
	return nil
}

// DecodeKanji reads count 13-bit codes from src and reconstructs the
// original Shift-JIS bytes, then transcodes them to UTF-8.
func DecodeKanji(src *bitutil.BitSource, count int) (string, error) {
	sjis := make([]byte, 0, count*2)
	for i := 0; i < count; i++ {
		value := src.ReadBits(13)
		assembled := ((value / 0xC0) << 8) | (value % 0xC0)
		if assembled < 0x1F00 {
			assembled += 0x8140
		} else {
			assembled += 0xC140
		}
		sjis = append(sjis, byte(assembled>>8), byte(assembled&0xFF))
	}
	out, err := kanjiCharset.DecodeFromBytes(sjis)
	if err != nil {
		return "", fmt.Errorf("segment: kanji transcode: %w", err)
	}
	return out, nil
}
