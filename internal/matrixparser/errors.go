package matrixparser

import "errors"

var (
	errVersionUnreadable    = errors.New("matrixparser: version info unreadable")
	errFormatInfoUnreadable = errors.New("matrixparser: format info unreadable")
	errUncorrectable        = errors.New("matrixparser: uncorrectable codeword block")
)
