package matrixparser

import (
	"fmt"

	"github.com/ashokshau/qriso/internal/bitutil"
	"github.com/ashokshau/qriso/internal/version"
)

// ParsedSymbol is the result of successfully reading a detected module
// grid: the version and EC level it declares, the mask pattern its
// format info names, the raw (still interleaved) codeword stream, and
// whether the grid had to be read mirrored.
type ParsedSymbol struct {
	Version   *version.Version
	Level     version.ECLevel
	Mask      int
	Codewords []byte
	Mirrored  bool
}

// Parse reads a detected module grid into a ParsedSymbol. Some detectors
// hand back a mirror image of the printed symbol (e.g. when a camera
// sees a QR code through glass); Parse tries the grid as given first,
// then retries against its transpose before giving up, per §4.6's
// TryDirect -> TryMirror -> Fail state machine.
func Parse(detected *bitutil.BitMatrix) (ParsedSymbol, error) {
	if symbol, err := parseOnce(detected, false); err == nil {
		return symbol, nil
	}
	if symbol, err := parseOnce(detected.Transpose(), true); err == nil {
		return symbol, nil
	}
	return ParsedSymbol{}, fmt.Errorf("matrixparser: symbol unreadable direct or mirrored")
}

func parseOnce(detected *bitutil.BitMatrix, mirrored bool) (ParsedSymbol, error) {
	v, err := ReadVersion(detected)
	if err != nil {
		return ParsedSymbol{}, err
	}
	level, mask, err := ReadFormatInfo(detected)
	if err != nil {
		return ParsedSymbol{}, err
	}
	codewords := ReadCodewords(detected, v, mask)
	return ParsedSymbol{Version: v, Level: level, Mask: mask, Codewords: codewords, Mirrored: mirrored}, nil
}
