package imaging

import (
	"bytes"
	"context"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coopart/internal/apperr"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecodeDimensions(t *testing.T) {
	ctx := context.Background()

	t.Run("png", func(t *testing.T) {
		dim, err := DecodeDimensions(ctx, encodePNG(t, 200, 150), 0)
		require.NoError(t, err)
		assert.Equal(t, Dimensions{Width: 200, Height: 150, Format: "png"}, dim)
	})

	t.Run("jpeg", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, jpeg.Encode(&buf, image.NewGray(image.Rect(0, 0, 31, 17)), nil))
		dim, err := DecodeDimensions(ctx, buf.Bytes(), 0)
		require.NoError(t, err)
		assert.Equal(t, 31, dim.Width)
		assert.Equal(t, 17, dim.Height)
		assert.Equal(t, "jpeg", dim.Format)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := DecodeDimensions(ctx, nil, 0)
		assert.ErrorIs(t, err, apperr.ErrDecodeFailure)
	})

	t.Run("not an image", func(t *testing.T) {
		_, err := DecodeDimensions(ctx, []byte("hello world"), 0)
		assert.ErrorIs(t, err, apperr.ErrDecodeFailure)
	})

	t.Run("canceled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := DecodeDimensions(cctx, encodePNG(t, 1, 1), 0)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestDecode(t *testing.T) {
	img, err := Decode(encodePNG(t, 4, 3), 0)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 3), img.Bounds())

	_, err = Decode([]byte{0x1}, 0)
	assert.ErrorIs(t, err, apperr.ErrDecodeFailure)

	// the header is rejected before any pixel buffer is allocated
	_, err = Decode(withDeclaredSize(t, encodePNG(t, 1, 1), 16000, 16000), 0)
	assert.ErrorIs(t, err, apperr.ErrDecodeFailure)
	assert.Contains(t, err.Error(), "16000x16000")
}

// withDeclaredSize rewrites a PNG's IHDR to claim w x h while keeping the
// original (tiny) pixel data.
func withDeclaredSize(t *testing.T, data []byte, w, h uint32) []byte {
	t.Helper()
	out := bytes.Clone(data)
	require.Equal(t, "IHDR", string(out[12:16]))
	binary.BigEndian.PutUint32(out[16:20], w)
	binary.BigEndian.PutUint32(out[20:24], h)
	binary.BigEndian.PutUint32(out[29:33], crc32.ChecksumIEEE(out[12:29]))
	return out
}

func TestDecodeDimensions_PixelBudget(t *testing.T) {
	ctx := context.Background()
	huge := withDeclaredSize(t, encodePNG(t, 1, 1), 16000, 16000)
	assert.Less(t, len(huge), 200)

	_, err := DecodeDimensions(ctx, huge, 0)
	assert.ErrorIs(t, err, apperr.ErrDecodeFailure)

	_, err = DecodeDimensions(ctx, encodePNG(t, 200, 150), 200*150-1)
	assert.ErrorIs(t, err, apperr.ErrDecodeFailure)

	dim, err := DecodeDimensions(ctx, encodePNG(t, 200, 150), 200*150)
	require.NoError(t, err)
	assert.Equal(t, 200, dim.Width)
}
