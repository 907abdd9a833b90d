package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/golang/freetype/raster"
	"golang.org/x/image/math/fixed"

	"github.com/rook-computer/cdupanel/internal/render/layout"
)

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498307936

// RasterSurface paints anti-aliased shapes into an in-memory RGBA image
// using the freetype scanline rasterizer.
type RasterSurface struct {
	canvas  *image.RGBA
	r       *raster.Rasterizer
	painter *raster.RGBAPainter
}

func NewRasterSurface(width, height int) *RasterSurface {
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	r := raster.NewRasterizer(width, height)
	r.UseNonZeroWinding = true
	return &RasterSurface{canvas: canvas, r: r, painter: raster.NewRGBAPainter(canvas)}
}

func (s *RasterSurface) Size() (int, int) {
	b := s.canvas.Bounds()
	return b.Dx(), b.Dy()
}

func (s *RasterSurface) Clear(c color.Color) {
	draw.Draw(s.canvas, s.canvas.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
}

func (s *RasterSurface) FillRect(r layout.Rect, c color.Color) {
	s.polygon(c,
		[2]float64{r.X, r.Y},
		[2]float64{r.X + r.W, r.Y},
		[2]float64{r.X + r.W, r.Y + r.H},
		[2]float64{r.X, r.Y + r.H},
	)
}

func (s *RasterSurface) FillRoundedRect(r layout.Rect, radius float64, c color.Color) {
	radius = clampRadius(r, radius)
	if radius <= 0 {
		s.FillRect(r, c)
		return
	}
	x0, y0 := r.X, r.Y
	x1, y1 := r.X+r.W, r.Y+r.H
	k := radius * (1 - kappa)

	s.r.Clear()
	s.r.Start(pt(x0+radius, y0))
	s.r.Add1(pt(x1-radius, y0))
	s.r.Add3(pt(x1-k, y0), pt(x1, y0+k), pt(x1, y0+radius))
	s.r.Add1(pt(x1, y1-radius))
	s.r.Add3(pt(x1, y1-k), pt(x1-k, y1), pt(x1-radius, y1))
	s.r.Add1(pt(x0+radius, y1))
	s.r.Add3(pt(x0+k, y1), pt(x0, y1-k), pt(x0, y1-radius))
	s.r.Add1(pt(x0, y0+radius))
	s.r.Add3(pt(x0, y0+k), pt(x0+k, y0), pt(x0+radius, y0))
	s.paint(c)
}

func (s *RasterSurface) FillCircle(cx, cy, radius float64, c color.Color) {
	if radius <= 0 {
		return
	}
	o := radius * kappa
	s.r.Clear()
	s.r.Start(pt(cx+radius, cy))
	s.r.Add3(pt(cx+radius, cy+o), pt(cx+o, cy+radius), pt(cx, cy+radius))
	s.r.Add3(pt(cx-o, cy+radius), pt(cx-radius, cy+o), pt(cx-radius, cy))
	s.r.Add3(pt(cx-radius, cy-o), pt(cx-o, cy-radius), pt(cx, cy-radius))
	s.r.Add3(pt(cx+o, cy-radius), pt(cx+radius, cy-o), pt(cx+radius, cy))
	s.paint(c)
}

func (s *RasterSurface) DrawLine(x1, y1, x2, y2, width float64, c color.Color) {
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length == 0 || width <= 0 {
		return
	}
	nx, ny := -dy/length*width/2, dx/length*width/2
	s.polygon(c,
		[2]float64{x1 + nx, y1 + ny},
		[2]float64{x2 + nx, y2 + ny},
		[2]float64{x2 - nx, y2 - ny},
		[2]float64{x1 - nx, y1 - ny},
	)
}

func (s *RasterSurface) Blit(mask *image.Alpha, at image.Point, c color.Color) {
	if mask == nil {
		return
	}
	mb := mask.Bounds()
	dst := image.Rectangle{Min: at, Max: at.Add(mb.Size())}
	draw.DrawMask(s.canvas, dst, &image.Uniform{C: c}, image.Point{}, mask, mb.Min, draw.Over)
}

func (s *RasterSurface) Image() (image.Image, error) { return s.canvas, nil }

func (s *RasterSurface) polygon(c color.Color, pts ...[2]float64) {
	if len(pts) < 3 {
		return
	}
	s.r.Clear()
	s.r.Start(pt(pts[0][0], pts[0][1]))
	for _, p := range pts[1:] {
		s.r.Add1(pt(p[0], p[1]))
	}
	s.r.Add1(pt(pts[0][0], pts[0][1]))
	s.paint(c)
}

func (s *RasterSurface) paint(c color.Color) {
	s.painter.SetColor(c)
	s.r.Rasterize(s.painter)
	s.r.Clear()
}

func pt(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(math.Round(x * 64)), Y: fixed.Int26_6(math.Round(y * 64))}
}

func clampRadius(r layout.Rect, radius float64) float64 {
	limit := math.Min(r.W, r.H) / 2
	if radius > limit {
		return limit
	}
	return radius
}
