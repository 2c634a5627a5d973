package qriso

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/ashokshau/qriso/internal/version"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []struct {
		name    string
		content string
		level   version.ECLevel
	}{
		{"short alphanumeric", "HELLO WORLD", version.LevelM},
		{"url byte mode", "https://example.com/path?q=1", version.LevelQ},
		{"numeric", "0123456789012345", version.LevelL},
		{"empty", "", version.LevelM},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sym, err := NewEncoder(Options{Level: tc.level}).Encode(tc.content)
			require.NoError(t, err)
			require.NotNil(t, sym.Matrix)

			var buf bytes.Buffer
			require.NoError(t, WriteImage(&buf, sym, WriteOptions{Scale: 6}))

			img, err := png.Decode(&buf)
			require.NoError(t, err)

			decoded, err := NewDecoder().Decode(img)
			require.NoError(t, err)
			require.Equal(t, tc.content, decoded.Content)
			require.Equal(t, sym.Version, decoded.Version)
			require.Equal(t, tc.level, decoded.Level)
		})
	}
}

func TestEncodeRespectsMinVersion(t *testing.T) {
	sym, err := NewEncoder(Options{Level: LevelM, MinVersion: 5}).Encode("HI")
	require.NoError(t, err)
	require.GreaterOrEqual(t, sym.Version, 5)
}

// TestEncodeHonorsExplicitMaskZero guards against the Go zero-value trap:
// a caller that explicitly asks for mask pattern 0 must get mask 0, not
// the auto-selected mask a nil/unset MaskPattern would produce.
func TestEncodeHonorsExplicitMaskZero(t *testing.T) {
	zero := 0
	sym, err := NewEncoder(Options{Level: LevelM, MaskPattern: &zero}).Encode("HELLO WORLD")
	require.NoError(t, err)
	require.Equal(t, 0, sym.Mask)
}

func TestEncodeAutoSelectsMaskWhenUnset(t *testing.T) {
	sym, err := NewEncoder(Options{Level: LevelM}).Encode("HELLO WORLD")
	require.NoError(t, err)
	require.GreaterOrEqual(t, sym.Mask, 0)
	require.LessOrEqual(t, sym.Mask, 7)
}

func TestEncodeRejectsOversizedContent(t *testing.T) {
	huge := make([]byte, 4000)
	for i := range huge {
		huge[i] = 'A'
	}
	_, err := NewEncoder(Options{Level: LevelH}).Encode(string(huge))
	require.ErrorIs(t, err, ErrDataTooLarge)
}

func TestWriteImageDimensions(t *testing.T) {
	sym, err := NewEncoder(Options{Level: LevelM}).Encode("TEST")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteImage(&buf, sym, WriteOptions{Scale: 3, QuietModules: 2}))

	img, err := png.Decode(&buf)
	require.NoError(t, err)

	wantSize := (sym.Dimension() + 4) * 3
	require.Equal(t, wantSize, img.Bounds().Dx())
	require.Equal(t, wantSize, img.Bounds().Dy())
}
