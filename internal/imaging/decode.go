// Package imaging decodes uploaded images just far enough to learn their
// natural pixel dimensions, and fully when a preview needs the pixels.
package imaging

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"coopart/internal/apperr"
)

// DefaultMaxPixels is the pixel budget used when none is configured.
const DefaultMaxPixels = 4096 * 4096

// Dimensions is an image's natural size in pixels.
type Dimensions struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
}

// DecodeDimensions reads the image header and returns its natural size.
// It fails with apperr.ErrDecodeFailure for unknown formats, truncated
// headers, zero-sized images and images above maxPixels (width*height).
// A non-positive maxPixels means DefaultMaxPixels.
func DecodeDimensions(ctx context.Context, data []byte, maxPixels int) (Dimensions, error) {
	if err := ctx.Err(); err != nil {
		return Dimensions{}, err
	}
	if len(data) == 0 {
		return Dimensions{}, fmt.Errorf("%w: empty image", apperr.ErrDecodeFailure)
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Dimensions{}, fmt.Errorf("%w: %v", apperr.ErrDecodeFailure, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Dimensions{}, fmt.Errorf("%w: zero-sized %s image", apperr.ErrDecodeFailure, format)
	}
	if err := checkBudget(cfg.Width, cfg.Height, maxPixels); err != nil {
		return Dimensions{}, err
	}
	return Dimensions{Width: cfg.Width, Height: cfg.Height, Format: format}, nil
}

// Decode fully decodes an image. The header is checked against maxPixels
// first so a small payload cannot declare a huge pixel buffer.
func Decode(data []byte, maxPixels int) (image.Image, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrDecodeFailure, err)
	}
	if err := checkBudget(cfg.Width, cfg.Height, maxPixels); err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrDecodeFailure, err)
	}
	return img, nil
}

func checkBudget(w, h, maxPixels int) error {
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}
	if int64(w)*int64(h) > int64(maxPixels) {
		return fmt.Errorf("%w: %dx%d exceeds %d pixels", apperr.ErrDecodeFailure, w, h, maxPixels)
	}
	return nil
}
