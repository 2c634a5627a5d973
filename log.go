package qriso

import (
	"io"
	"log/slog"
)

// logger is the package-wide diagnostic logger. It is silent by default
// (handler writes to io.Discard); callers that want to see encode/decode
// diagnostics call SetLogger. Grounded on dfbb-im2code's channel
// adapters and router (internal/channel/*.go, internal/router/router.go,
// cmd/im2code/start.go), the one repo in the pack with real logging
// code, which uses log/slog exclusively rather than a third-party
// logger.
var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// SetLogger replaces the package's diagnostic logger. Encode and Decode
// each log one Debug record with the chosen version, level, and mask
// (Decode adds the mirror flag, segment count, and corrected-error
// count); the detector itself does not log.
func SetLogger(l *slog.Logger) {
	logger = l
}
