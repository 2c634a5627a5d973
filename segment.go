package qriso

import (
	"github.com/ashokshau/qriso/internal/mode"
	intsegment "github.com/ashokshau/qriso/internal/segment"
)

// Segment is one mode-tagged chunk of a symbol's payload, exposed so
// callers who already know their content's structure (e.g. mixed
// Kanji/Byte text) can build an exact segment list instead of relying on
// chooseSegments' greedy classification.
type Segment = intsegment.Segment

// NumericSegment returns a Numeric-mode segment. content must be all
// ASCII digits.
func NumericSegment(content string) Segment {
	return Segment{Mode: mode.Numeric, Text: content}
}

// AlphanumericSegment returns an Alphanumeric-mode segment. content must
// only use the QR alphanumeric character set (digits, upper-case
// letters, and " $%*+-./:").
func AlphanumericSegment(content string) Segment {
	return Segment{Mode: mode.Alphanumeric, Text: content}
}

// ByteSegment returns a Byte-mode segment encoded with charset (or
// ISO-8859-1 if charset is the zero value).
func ByteSegment(content string, charset intsegment.Charset) Segment {
	return Segment{Mode: mode.Byte, Charset: charset, Text: content}
}

// KanjiSegment returns a Kanji-mode segment. content must be entirely
// representable in Shift-JIS.
func KanjiSegment(content string) Segment {
	return Segment{Mode: mode.Kanji, Text: content}
}

// chooseSegments greedily classifies content into runs of Numeric,
// Alphanumeric, and Byte segments: each character is put in the most
// compact mode it fits, and adjacent characters of the same class are
// merged into one segment. This does not attempt the globally optimal
// segmentation ISO/IEC 18004 Annex J describes, matching the level of
// sophistication of the teacher's original single-mode encoder.
func chooseSegments(content string) []Segment {
	if content == "" {
		return []Segment{{Mode: mode.Byte, Text: ""}}
	}

	classOf := func(c byte) mode.Mode {
		if c >= '0' && c <= '9' {
			return mode.Numeric
		}
		if intsegment.AlphanumericCode(c) >= 0 {
			return mode.Alphanumeric
		}
		return mode.Byte
	}

	var segments []Segment
	runStart := 0
	runClass := classOf(content[0])
	for i := 1; i <= len(content); i++ {
		if i < len(content) && classOf(content[i]) == runClass {
			continue
		}
		segments = append(segments, Segment{Mode: runClass, Text: content[runStart:i]})
		if i < len(content) {
			runStart = i
			runClass = classOf(content[i])
		}
	}
	return segments
}
