package render

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/rook-computer/cdupanel/internal/render/layout"
)

// Surface is the drawing target a panel is composed onto. Calls paint in
// order; later calls overdraw earlier ones.
type Surface interface {
	// Size returns the surface size in pixels.
	Size() (width int, height int)

	// Clear replaces every pixel with c, alpha included.
	Clear(c color.Color)

	FillRect(r layout.Rect, c color.Color)
	FillRoundedRect(r layout.Rect, radius float64, c color.Color)
	FillCircle(cx, cy, radius float64, c color.Color)

	// DrawLine strokes a straight segment with butt caps.
	DrawLine(x1, y1, x2, y2, width float64, c color.Color)

	// Blit composites c through mask with its top-left corner at at.
	Blit(mask *image.Alpha, at image.Point, c color.Color)

	// Image returns the finished pixels, or the first error any draw
	// call ran into.
	Image() (image.Image, error)
}

// Backend selects a Surface implementation.
type Backend string

const (
	BackendRaster Backend = "raster"
	BackendGG     Backend = "gg"
)

// ParseBackend accepts the backend names used on the command line.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case "", BackendRaster:
		return BackendRaster, nil
	case BackendGG:
		return BackendGG, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBackend, s)
	}
}

// SurfaceFactory creates an empty surface of the given size.
type SurfaceFactory func(width, height int) Surface

// Factory returns the constructor for b.
func (b Backend) Factory() SurfaceFactory {
	if b == BackendGG {
		return func(w, h int) Surface { return NewGGSurface(w, h) }
	}
	return func(w, h int) Surface { return NewRasterSurface(w, h) }
}
