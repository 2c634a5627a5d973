package binarize

import "errors"

// ErrInsufficientContrast is returned when a luminance histogram has no
// two well-separated peaks to threshold between.
var ErrInsufficientContrast = errors.New("binarize: insufficient contrast")
