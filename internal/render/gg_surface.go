package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/gg"

	"github.com/rook-computer/cdupanel/internal/render/layout"
)

// GGSurface draws through a gogpu/gg software context. Fill and stroke
// failures are held until Image is called.
type GGSurface struct {
	dc  *gg.Context
	err error
}

func NewGGSurface(width, height int) *GGSurface {
	return &GGSurface{dc: gg.NewContext(width, height)}
}

func (s *GGSurface) Size() (int, int) { return s.dc.Width(), s.dc.Height() }

func (s *GGSurface) Clear(c color.Color) {
	s.dc.ClearWithColor(gg.FromColor(c))
}

func (s *GGSurface) FillRect(r layout.Rect, c color.Color) {
	s.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	s.fill("rect", c)
}

func (s *GGSurface) FillRoundedRect(r layout.Rect, radius float64, c color.Color) {
	s.dc.DrawRoundedRectangle(r.X, r.Y, r.W, r.H, clampRadius(r, radius))
	s.fill("rounded rect", c)
}

func (s *GGSurface) FillCircle(cx, cy, radius float64, c color.Color) {
	if radius <= 0 {
		return
	}
	s.dc.DrawCircle(cx, cy, radius)
	s.fill("circle", c)
}

func (s *GGSurface) DrawLine(x1, y1, x2, y2, width float64, c color.Color) {
	if width <= 0 {
		return
	}
	s.dc.SetColor(c)
	s.dc.SetLineWidth(width)
	s.dc.SetLineCap(gg.LineCapButt)
	s.dc.DrawLine(x1, y1, x2, y2)
	if err := s.dc.Stroke(); err != nil && s.err == nil {
		s.err = fmt.Errorf("gg: stroke line: %w", err)
	}
}

func (s *GGSurface) Blit(mask *image.Alpha, at image.Point, c color.Color) {
	if mask == nil || mask.Bounds().Empty() {
		return
	}
	glyphs := image.NewRGBA(image.Rectangle{Max: mask.Bounds().Size()})
	draw.DrawMask(glyphs, glyphs.Bounds(), &image.Uniform{C: c}, image.Point{}, mask, mask.Bounds().Min, draw.Src)
	s.dc.DrawImage(gg.ImageBufFromImage(glyphs), float64(at.X), float64(at.Y))
}

func (s *GGSurface) Image() (image.Image, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.dc.Image(), nil
}

// Close releases the gg context.
func (s *GGSurface) Close() error { return s.dc.Close() }

func (s *GGSurface) fill(what string, c color.Color) {
	s.dc.SetColor(c)
	if err := s.dc.Fill(); err != nil && s.err == nil {
		s.err = fmt.Errorf("gg: fill %s: %w", what, err)
	}
}
