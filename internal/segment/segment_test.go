package segment

import (
	"testing"

	"github.com/ashokshau/qriso/internal/bitutil"
	"github.com/ashokshau/qriso/internal/mode"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeNumericSegment(t *testing.T) {
	bits := bitutil.NewBitArray(0)
	seg := Segment{Mode: mode.Numeric, Text: "0123456789"}
	require.NoError(t, seg.Encode(1, bits))

	src := bitutil.NewBitSource(bits.Bytes())
	decoded, err := DecodeAll(src, 1, DefaultCharset)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	require.Equal(t, mode.Numeric, decoded[0].Mode)
	require.Equal(t, "0123456789", decoded[0].Text)
}

func TestEncodeDecodeAlphanumericSegment(t *testing.T) {
	bits := bitutil.NewBitArray(0)
	seg := Segment{Mode: mode.Alphanumeric, Text: "HELLO WORLD"}
	require.NoError(t, seg.Encode(1, bits))

	src := bitutil.NewBitSource(bits.Bytes())
	decoded, err := DecodeAll(src, 1, DefaultCharset)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	require.Equal(t, "HELLO WORLD", decoded[0].Text)
}

func TestEncodeDecodeByteSegmentWithECI(t *testing.T) {
	bits := bitutil.NewBitArray(0)
	require.NoError(t, Segment{Mode: mode.ECI, Charset: UTF8Charset}.Encode(5, bits))
	require.NoError(t, Segment{Mode: mode.Byte, Charset: UTF8Charset, Text: "héllo"}.Encode(5, bits))

	src := bitutil.NewBitSource(bits.Bytes())
	decoded, err := DecodeAll(src, 5, DefaultCharset)
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	require.Equal(t, mode.ECI, decoded[0].Mode)
	require.Equal(t, mode.Byte, decoded[1].Mode)
	require.Equal(t, "héllo", decoded[1].Text)
}

func TestEncodeDecodeKanjiSegment(t *testing.T) {
	bits := bitutil.NewBitArray(0)
	seg := Segment{Mode: mode.Kanji, Text: "点茗"}
	require.NoError(t, seg.Encode(1, bits))

	src := bitutil.NewBitSource(bits.Bytes())
	decoded, err := DecodeAll(src, 1, DefaultCharset)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	require.Equal(t, "点茗", decoded[0].Text)
}

func TestEncodeDecodeHanziSegment(t *testing.T) {
	bits := bitutil.NewBitArray(0)
	seg := Segment{Mode: mode.Hanzi, Text: "中文"}
	require.NoError(t, seg.Encode(1, bits))

	src := bitutil.NewBitSource(bits.Bytes())
	decoded, err := DecodeAll(src, 1, DefaultCharset)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	require.Equal(t, "中文", decoded[0].Text)
}

func TestEncodeDecodeFNC1Second(t *testing.T) {
	bits := bitutil.NewBitArray(0)
	require.NoError(t, Segment{Mode: mode.FNC1Second, AppIndicator: 0x42}.Encode(1, bits))

	src := bitutil.NewBitSource(bits.Bytes())
	decoded, err := DecodeAll(src, 1, DefaultCharset)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	require.Equal(t, byte(0x42), decoded[0].AppIndicator)
}

func TestStructuredAppendParity(t *testing.T) {
	bits := bitutil.NewBitArray(0)
	parity := Parity([]byte("hello"))
	require.NoError(t, EncodeStructuredAppend(1, 3, parity, bits))

	src := bitutil.NewBitSource(bits.Bytes())
	index, total, p, err := DecodeStructuredAppend(src)
	require.NoError(t, err)
	require.Equal(t, 1, index)
	require.Equal(t, 3, total)
	require.Equal(t, parity, p)
}

func TestECIDesignatorRoundTrip(t *testing.T) {
	for _, designator := range []int{3, 26, 127, 128, 16383} {
		bits := bitutil.NewBitArray(0)
		require.NoError(t, EncodeECIDesignator(designator, bits))
		src := bitutil.NewBitSource(bits.Bytes())
		got, err := DecodeECIDesignator(src)
		require.NoError(t, err)
		require.Equal(t, designator, got)
	}
}
