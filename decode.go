package qriso

import (
	"errors"
	"fmt"
	"image"

	"github.com/ashokshau/qriso/internal/bitutil"
	"github.com/ashokshau/qriso/internal/detector"
	"github.com/ashokshau/qriso/internal/mode"
	"github.com/ashokshau/qriso/internal/reedsolomon"
	intsegment "github.com/ashokshau/qriso/internal/segment"
	"github.com/ashokshau/qriso/internal/version"
)

// Decoder locates and reads a QR symbol from an image. The zero value is
// ready to use.
type Decoder struct{}

// NewDecoder returns a ready-to-use Decoder.
func NewDecoder() *Decoder { return &Decoder{} }

// StructuredInfo is the structured-append header of a symbol that is one
// part of a multi-symbol message, per §4.3/§6.
type StructuredInfo struct {
	Index  int // 0-based
	Count  int
	Parity byte
}

// FNC1Info names which FNC1 latch (if any) a decoded message opened
// with: either GS1 (first position) or an AIM application indicator
// (second position).
type FNC1Info struct {
	AIM       bool // false means GS1, true means AIM
	Indicator byte // meaningful only when AIM is true
}

// DecodeResult is everything Decode recovers from a symbol, per §6/§8.
type DecodeResult struct {
	Content         string
	Codewords       []byte
	Structured      *StructuredInfo
	Symbology       string
	FNC1            *FNC1Info
	Version         int
	Level           ECLevel
	Mask            int
	Mirror          bool
	CorrectedErrors int
}

// Decode locates a QR symbol in img, corrects its codewords against
// transmission/print damage, and returns its decoded content plus the
// metadata the ISO/IEC 18004 Decoder API carries alongside it.
func (d *Decoder) Decode(img image.Image) (*DecodeResult, error) {
	cursor := detector.NewCursor(img)
	result, err := cursor.Detect()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDetectionExhausted, err)
	}
	symbol := result.Symbol

	data, correctedErrors, err := correctCodewords(symbol.Version, symbol.Level, symbol.Codewords)
	if err != nil {
		return nil, err
	}

	src := bitutil.NewBitSource(data)
	segments, err := intsegment.DecodeAll(src, symbol.Version.Number, intsegment.Charset{})
	if err != nil {
		if errors.Is(err, intsegment.ErrMalformedDesignator) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidEciDesignator, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrIllegalSegment, err)
	}

	out := assembleResult(segments)
	out.Codewords = data
	out.Version = symbol.Version.Number
	out.Level = symbol.Level
	out.Mask = symbol.Mask
	out.Mirror = symbol.Mirrored
	out.CorrectedErrors = correctedErrors

	logger.Debug("qriso: decoded symbol",
		"version", out.Version,
		"level", out.Level.String(),
		"mask", out.Mask,
		"mirrored", out.Mirror,
		"segments", len(segments),
		"correctedErrors", correctedErrors,
	)

	return out, nil
}

// assembleResult concatenates every data-carrying segment's text,
// reverses FNC1's GS1 escaping when a FNC1 latch was present, and
// derives the symbology identifier and structured-append/FNC1 metadata
// from the segment sequence.
func assembleResult(segments []intsegment.Segment) *DecodeResult {
	var fnc1First, fnc1Second, eciPresent bool
	var appIndicator byte
	var structured *StructuredInfo
	text := ""

	for _, seg := range segments {
		switch seg.Mode {
		case mode.Numeric, mode.Alphanumeric, mode.Byte, mode.Kanji, mode.Hanzi:
			text += seg.Text
		case mode.ECI:
			eciPresent = true
		case mode.FNC1First:
			fnc1First = true
		case mode.FNC1Second:
			fnc1Second = true
			appIndicator = seg.AppIndicator
		case mode.StructuredApp:
			structured = parseStructuredText(seg.Text)
		}
	}

	var fnc1 *FNC1Info
	if fnc1First || fnc1Second {
		fnc1 = &FNC1Info{AIM: fnc1Second, Indicator: appIndicator}
		text = string(intsegment.RemoveGS1Escaping([]byte(text)))
	}

	modifier := intsegment.SymbologyModifier(fnc1First, fnc1Second, appIndicator, eciPresent)

	return &DecodeResult{
		Content:    text,
		Structured: structured,
		Symbology:  fmt.Sprintf("]Q%d", modifier),
		FNC1:       fnc1,
	}
}

func parseStructuredText(text string) *StructuredInfo {
	var index, total int
	var parity byte
	if _, err := fmt.Sscanf(text, "%d/%d;parity=0x%x", &index, &total, &parity); err != nil {
		return nil
	}
	return &StructuredInfo{Index: index - 1, Count: total, Parity: parity}
}

// correctCodewords deinterleaves codewords per v/level's block layout,
// Reed-Solomon-corrects each block, and concatenates the corrected data
// codewords, for every block-group layout in the version table (the
// teacher had no decode-side counterpart). It returns the total
// number of byte errors corrected across all blocks.
func correctCodewords(v *version.Version, level version.ECLevel, codewords []byte) ([]byte, int, error) {
	blocks := v.ECBlocksForLevel(level)
	dataSizes := blocks.SplitIntoBlocks()
	dataBlocks, ecBlocks := version.Deinterleave(codewords, dataSizes, blocks.ECCodewordsPerBlock)

	decoder := reedsolomon.NewDecoder()
	out := make([]byte, 0, blocks.TotalDataCodewords())
	totalErrors := 0
	for i, block := range dataBlocks {
		received := append(append([]byte{}, block...), ecBlocks[i]...)
		numErrors, err := decoder.Correct(received, blocks.ECCodewordsPerBlock)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %v", ErrUncorrectable, err)
		}
		totalErrors += numErrors
		out = append(out, received[:len(block)]...)
	}
	return out, totalErrors, nil
}
