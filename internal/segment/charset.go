package segment

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

// Charset names an ECI-addressable character encoding for Byte-mode
// segments. The encoding.Encoding values come from golang.org/x/text,
// the same dependency ericlevine/zxinggo and inkstray/rsc-qr pull in for
// exactly this problem (see SPEC_FULL.md domain stack).
type Charset struct {
	Label    string
	Designator int
	enc      encoding.Encoding // nil means "identity" (ASCII/UTF-8)
}

// Name returns the charset's label.
func (c Charset) Name() string { return c.Label }

// Encoding returns the golang.org/x/text encoding to transcode this
// charset's bytes to/from UTF-8, or nil for the identity transform.
func (c Charset) Encoding() encoding.Encoding { return c.enc }

var eciTable = map[int]Charset{
	3:  {Label: "ISO-8859-1", Designator: 3, enc: charmap.ISO8859_1},
	4:  {Label: "ISO-8859-2", Designator: 4, enc: charmap.ISO8859_2},
	5:  {Label: "ISO-8859-3", Designator: 5, enc: charmap.ISO8859_3},
	6:  {Label: "ISO-8859-4", Designator: 6, enc: charmap.ISO8859_4},
	7:  {Label: "ISO-8859-5", Designator: 7, enc: charmap.ISO8859_5},
	8:  {Label: "ISO-8859-6", Designator: 8, enc: charmap.ISO8859_6},
	9:  {Label: "ISO-8859-7", Designator: 9, enc: charmap.ISO8859_7},
	10: {Label: "ISO-8859-8", Designator: 10, enc: charmap.ISO8859_8},
	11: {Label: "ISO-8859-9", Designator: 11, enc: charmap.ISO8859_9},
	13: {Label: "ISO-8859-11", Designator: 13, enc: charmap.Windows874},
	15: {Label: "ISO-8859-13", Designator: 15, enc: charmap.ISO8859_13},
	16: {Label: "ISO-8859-14", Designator: 16, enc: charmap.ISO8859_14},
	17: {Label: "ISO-8859-15", Designator: 17, enc: charmap.ISO8859_15},
	18: {Label: "ISO-8859-16", Designator: 18, enc: charmap.ISO8859_16},
	20: {Label: "Shift-JIS", Designator: 20, enc: japanese.ShiftJIS},
	21: {Label: "Windows-1250", Designator: 21, enc: charmap.Windows1250},
	22: {Label: "Windows-1251", Designator: 22, enc: charmap.Windows1251},
	23: {Label: "Windows-1252", Designator: 23, enc: charmap.Windows1252},
	24: {Label: "Windows-1256", Designator: 24, enc: charmap.Windows1256},
	25: {Label: "UTF-16BE", Designator: 25, enc: unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)},
	26: {Label: "UTF-8", Designator: 26, enc: nil},
	27: {Label: "ASCII", Designator: 27, enc: nil},
	29: {Label: "GB2312", Designator: 29, enc: simplifiedchinese.GBK},
	28: {Label: "Big5", Designator: 28, enc: nil}, // no x/text Big5 encoder; falls back to raw bytes
}

// DefaultCharset is the charset assumed when a Byte segment carries no
// ECI header (plain ISO-8859-1 per ISO/IEC 18004).
var DefaultCharset = eciTable[3]

// UTF8Charset is the charset used for ECI 26 (UTF-8, the common case for
// modern payloads such as URLs).
var UTF8Charset = eciTable[26]

// CharsetForDesignator looks up the Charset for an ECI designator value.
func CharsetForDesignator(designator int) (Charset, error) {
	cs, ok := eciTable[designator]
	if !ok {
		return Charset{}, fmt.Errorf("segment: unknown ECI designator %d", designator)
	}
	return cs, nil
}

// EncodeToBytes transcodes s from UTF-8 into the charset's native byte
// encoding.
func (c Charset) EncodeToBytes(s string) ([]byte, error) {
	if c.enc == nil {
		return []byte(s), nil
	}
	return c.enc.NewEncoder().Bytes([]byte(s))
}

// DecodeFromBytes transcodes raw charset-native bytes into a UTF-8 string.
func (c Charset) DecodeFromBytes(b []byte) (string, error) {
	if c.enc == nil {
		return string(b), nil
	}
	out, err := c.enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("segment: charset %s decode: %w", c.Label, err)
	}
	return string(out), nil
}
