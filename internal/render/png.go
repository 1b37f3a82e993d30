package render

import (
	"context"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/gogpu/gg"
	"go.uber.org/zap"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"coopart/internal/imaging"
	"coopart/internal/storage"
)

var (
	background  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	placeholder = color.RGBA{R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff}
)

// RenderPNG rasterizes s and writes it as PNG. Tiles whose image cannot be
// loaded are drawn as grey placeholders.
func (r *Renderer) RenderPNG(ctx context.Context, s Scene, w io.Writer) error {
	dst := image.NewRGBA(image.Rect(0, 0, s.Width, s.Height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	for _, t := range s.Tiles {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.drawTile(ctx, dst, t)
	}
	if s.Editable != nil {
		r.drawTile(ctx, dst, s.Editable.SceneTile)
	}

	dc := gg.NewContextForImage(dst)
	defer dc.Close()
	if e := s.Editable; e != nil {
		if err := drawSelection(dc, e); err != nil {
			return err
		}
	}
	return dc.EncodePNG(w)
}

func (r *Renderer) drawTile(ctx context.Context, dst draw.Image, t SceneTile) {
	src, err := r.loadImage(ctx, t.ImageRef)
	if err != nil {
		r.log.Warn("preview tile image unavailable",
			zap.Int("tile_id", t.TileID),
			zap.String("image", t.ImageRef),
			zap.Error(err),
		)
		src = image.NewUniform(placeholder)
		draw.NearestNeighbor.Transform(dst, tileAffine(t, 1, 1), src, image.Rect(0, 0, 1, 1), draw.Over, nil)
		return
	}
	b := src.Bounds()
	draw.BiLinear.Transform(dst, tileAffine(t, float64(b.Dx()), float64(b.Dy())), src, b, draw.Over, nil)
}

func (r *Renderer) loadImage(ctx context.Context, ref string) (image.Image, error) {
	id, err := storage.ParseRef(ref)
	if err != nil {
		return nil, err
	}
	if r.content == nil {
		return nil, storage.ErrObjectNotFound
	}
	data, err := r.content.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return imaging.Decode(data, r.maxPixels)
}

// tileAffine maps a srcW x srcH source onto the tile's rectangle rotated
// clockwise by R degrees about (X, Y).
func tileAffine(t SceneTile, srcW, srcH float64) f64.Aff3 {
	sx, sy := t.Width/srcW, t.Height/srcH
	sin, cos := math.Sincos(t.R * math.Pi / 180)
	return f64.Aff3{
		cos * sx, -sin * sy, t.X,
		sin * sx, cos * sy, t.Y,
	}
}

func drawSelection(dc *gg.Context, e *EditableTile) error {
	dc.Push()
	defer dc.Pop()

	dc.RotateAbout(e.R*math.Pi/180, e.X, e.Y)
	dc.SetRGB(0, 0.63, 1)
	dc.SetLineWidth(1)
	dc.DrawRectangle(e.X, e.Y, e.Width, e.Height)
	if err := dc.Stroke(); err != nil {
		return err
	}
	dc.Identity()

	for _, h := range e.Handles {
		dc.DrawRectangle(h.X-5, h.Y-5, 10, 10)
		dc.SetRGB(1, 1, 1)
		if err := dc.FillPreserve(); err != nil {
			return err
		}
		dc.SetRGB(0, 0.63, 1)
		if err := dc.Stroke(); err != nil {
			return err
		}
	}
	return nil
}
