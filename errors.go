package qriso

import (
	"errors"

	intsegment "github.com/ashokshau/qriso/internal/segment"
)

// Sentinel errors of the qriso package. Use errors.Is to test for them;
// wrapped internal errors carry additional detail via %w. Each comment
// says whether Encode or Decode returns the value; Decode reports every
// failure to locate and read a symbol's module grid (binarization,
// finder patterns, format or version info) as ErrDetectionExhausted.
var (
	// ErrIllegalContent is returned when Encode is given content that
	// cannot be represented in any supported segment mode.
	ErrIllegalContent = errors.New("qriso: illegal content for any segment mode")

	// ErrIllegalCharset names an ECI designator or Byte-mode charset that
	// cannot be resolved to a supported encoding. Encode and Decode do not
	// return it: a failed charset transcode in Encode is reported as
	// ErrIllegalContent, and an unknown ECI designator in Decode as
	// ErrIllegalSegment.
	ErrIllegalCharset = errors.New("qriso: illegal or unsupported charset")

	// ErrDataTooLarge is returned when content does not fit within
	// version 40 at the requested error-correction level.
	ErrDataTooLarge = errors.New("qriso: data too large for version 40")

	// ErrIllegalVersion is returned by Encode when Options.MinVersion is
	// above 40 (values below 1 mean "no minimum").
	ErrIllegalVersion = errors.New("qriso: illegal version")

	// ErrIllegalLevel is returned by Encode when Options.Level is not one
	// of L, M, Q, H.
	ErrIllegalLevel = errors.New("qriso: illegal error-correction level")

	// ErrInsufficientContrast names an image whose luminance histogram
	// has no two well-separated peaks to threshold between. Decode does
	// not return it: the detector then uses adaptive binarization alone.
	ErrInsufficientContrast = errors.New("qriso: insufficient image contrast")

	// ErrVersionUnreadable names a grid where neither version info block
	// matches a known version within tolerance. Decode does not return
	// it: the detector skips such a grid and moves to the next candidate.
	ErrVersionUnreadable = errors.New("qriso: version info unreadable")

	// ErrFormatInfoUnreadable names a grid where neither format info block
	// matches a known (level, mask) pair within tolerance. Decode does not
	// return it: the detector skips such a grid and moves to the next
	// candidate.
	ErrFormatInfoUnreadable = errors.New("qriso: format info unreadable")

	// ErrIllegalSegment is returned when a decoded bitstream contains a
	// malformed segment.
	ErrIllegalSegment = errors.New("qriso: illegal segment in decoded bitstream")

	// ErrInvalidEciDesignator is returned when a decoded ECI header's
	// first byte doesn't match any valid prefix form.
	ErrInvalidEciDesignator = intsegment.ErrMalformedDesignator

	// ErrIllegalMode names a decoded bitstream whose mode indicator this
	// library does not support. Decode does not return it: such a
	// bitstream is reported as ErrIllegalSegment.
	ErrIllegalMode = errors.New("qriso: illegal mode indicator")

	// ErrUncorrectable is returned when a codeword block has more errors
	// than its error-correction capacity can recover.
	ErrUncorrectable = errors.New("qriso: uncorrectable codeword block")

	// ErrDetectionExhausted is returned when Decode could not locate a
	// QR symbol in an image under any binarization or mirroring strategy.
	ErrDetectionExhausted = errors.New("qriso: no QR symbol detected in image")
)
