package qriso

import (
	"fmt"

	"github.com/ashokshau/qriso/internal/bitutil"
	"github.com/ashokshau/qriso/internal/layout"
	"github.com/ashokshau/qriso/internal/mode"
	"github.com/ashokshau/qriso/internal/reedsolomon"
	intsegment "github.com/ashokshau/qriso/internal/segment"
	"github.com/ashokshau/qriso/internal/version"
)

// padCodewords alternates between these two bytes, per §8.6, to fill any
// data capacity left over after the segments, terminator, and
// byte-alignment padding.
var padCodewords = [2]byte{0xEC, 0x11}

// Options configures an Encoder. The zero value is valid: it encodes at
// EC level L (the zero ECLevel), picks the smallest version that fits, and lets the
// encoder choose the lowest-penalty mask.
type Options struct {
	Level      version.ECLevel
	MinVersion int // 0 means "no minimum"

	// MaskPattern pins the mask pattern (0-7, a valid choice in its own
	// right per §4.5) instead of letting the encoder choose the
	// lowest-penalty one. nil (the zero value) means auto-select; a
	// pointer is used rather than a bare int so that an explicit
	// MaskPattern: 0 can't be confused with "not set".
	MaskPattern *int

	// FNC1 selects GS1 or AIM application-identifier encoding for
	// content, latching a FNC1 marker segment ahead of the classified
	// data segments and escaping '%' per §4.3.
	FNC1 FNC1Mode
	// AppIndicator is the FNC1-second-position application indicator,
	// meaningful only when FNC1 is FNC1AIM.
	AppIndicator byte

	// Segments overrides automatic content classification. When nil,
	// Encode classifies content itself via chooseSegments.
	Segments []Segment
}

// FNC1Mode selects whether and how Encode latches a FNC1 marker segment.
type FNC1Mode int

const (
	FNC1None FNC1Mode = iota
	FNC1GS1
	FNC1AIM
)

func (o Options) normalize() Options {
	if o.MinVersion < 1 {
		o.MinVersion = 1
	}
	return o
}

// maskPatternOrAuto returns the pinned mask pattern, or -1 ("auto") when
// MaskPattern is unset.
func (o Options) maskPatternOrAuto() int {
	if o.MaskPattern == nil {
		return -1
	}
	return *o.MaskPattern
}

// Encoder builds QR symbols from content, following the teacher's
// NewQRCode flow (choose a version, encode segments, error-correct,
// build the matrix) generalized across every version, EC level, and
// segment mode instead of the teacher's versions-1-4, Byte-only subset.
type Encoder struct {
	opts Options
}

// NewEncoder returns an Encoder configured by opts.
func NewEncoder(opts Options) *Encoder {
	return &Encoder{opts: opts.normalize()}
}

// Encode builds a Symbol for content. If opts.Segments was not set,
// content is classified automatically via chooseSegments.
func (e *Encoder) Encode(content string) (*Symbol, error) {
	if e.opts.Level < version.LevelL || e.opts.Level > version.LevelH {
		return nil, ErrIllegalLevel
	}
	if e.opts.MinVersion > 40 {
		return nil, ErrIllegalVersion
	}
	segments := e.opts.Segments
	if segments == nil {
		if e.opts.FNC1 != FNC1None {
			content = string(intsegment.ApplyGS1Escaping([]byte(content)))
		}
		segments = chooseSegments(content)
		switch e.opts.FNC1 {
		case FNC1GS1:
			segments = append([]Segment{{Mode: mode.FNC1First}}, segments...)
		case FNC1AIM:
			segments = append([]Segment{{Mode: mode.FNC1Second, AppIndicator: e.opts.AppIndicator}}, segments...)
		}
	}

	v, bits, err := e.fitVersion(segments)
	if err != nil {
		return nil, err
	}

	capacityBits := v.ECBlocksForLevel(e.opts.Level).TotalDataCodewords() * 8
	terminatorLen := 4
	if remaining := capacityBits - bits.Size(); remaining < terminatorLen {
		terminatorLen = remaining
	}
	bits.AppendBits(0, terminatorLen)
	if rem := bits.Size() % 8; rem != 0 {
		bits.AppendBits(0, 8-rem)
	}
	for i := 0; bits.Size() < capacityBits; i++ {
		bits.AppendBits(uint32(padCodewords[i%2]), 8)
	}

	data := bits.Bytes()
	codewords, err := interleaveWithEC(v, e.opts.Level, data)
	if err != nil {
		return nil, err
	}

	matrix, mask := layout.BuildMatrix(v, e.opts.Level, codewords, e.opts.maskPatternOrAuto())

	logger.Debug("qriso: encoded symbol",
		"version", v.Number,
		"level", e.opts.Level.String(),
		"mask", mask,
		"codewords", len(codewords),
	)

	return &Symbol{Matrix: matrix, Version: v.Number, Level: e.opts.Level, Mask: mask}, nil
}

// fitVersion finds the smallest version >= opts.MinVersion whose data
// capacity (at opts.Level) fits segments, encoding them along the way so
// the caller doesn't have to re-walk the segment list.
func (e *Encoder) fitVersion(segments []Segment) (*version.Version, *bitutil.BitArray, error) {
	for n := e.opts.MinVersion; n <= 40; n++ {
		v, err := version.GetVersionForNumber(n)
		if err != nil {
			return nil, nil, err
		}
		capacityBits := v.ECBlocksForLevel(e.opts.Level).TotalDataCodewords() * 8

		bits := bitutil.NewBitArray(0)
		fits := true
		for _, seg := range segments {
			if err := seg.Encode(n, bits); err != nil {
				return nil, nil, fmt.Errorf("%w: %v", ErrIllegalContent, err)
			}
			if bits.Size() > capacityBits {
				fits = false
				break
			}
		}
		if fits {
			return v, bits, nil
		}
	}
	return nil, nil, ErrDataTooLarge
}

// interleaveWithEC splits data into the version/level's RS blocks,
// computes each block's EC codewords, and interleaves the result per
// §8.7.3, generalizing the teacher's single-block CalculateECCodewords
// call to every block-group layout in the version table.
func interleaveWithEC(v *version.Version, level version.ECLevel, data []byte) ([]byte, error) {
	blocks := v.ECBlocksForLevel(level)
	encoder := reedsolomon.NewEncoder()

	var dataBlocks, ecBlocks [][]byte
	offset := 0
	for _, group := range blocks.Groups {
		for i := 0; i < group.Count; i++ {
			block := data[offset : offset+group.DataCodewords]
			offset += group.DataCodewords
			ec := encoder.Encode(block, blocks.ECCodewordsPerBlock)
			dataBlocks = append(dataBlocks, block)
			ecBlocks = append(ecBlocks, ec)
		}
	}
	return version.Interleave(dataBlocks, ecBlocks), nil
}
