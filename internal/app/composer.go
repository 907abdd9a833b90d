package app

import (
	"image"
	"io"

	"github.com/rook-computer/cdupanel/internal/app/screens"
	"github.com/rook-computer/cdupanel/internal/render"
	"github.com/rook-computer/cdupanel/internal/render/layout"
)

// Composer turns a canvas, a style and a label set into finished images.
// Each call starts from a fresh surface, so identical inputs give
// identical pixels.
type Composer struct {
	Canvas     layout.Canvas
	Style      render.Style
	Fonts      *render.Fonts
	Labels     []layout.Label
	NewSurface render.SurfaceFactory
	Logger     Logger
}

// Compose lays out the panel, binds the labels and paints screen. Label
// misalignment fails before anything is drawn.
func (c *Composer) Compose(screen screens.Screen) (image.Image, error) {
	logger := c.Logger
	if logger == nil {
		logger = NoopLogger{}
	}

	panel := layout.Compute(c.Canvas)
	keys, err := layout.Bind(panel.Keys, c.Labels)
	if err != nil {
		logger.Errorf("compose", "%s: %v", screen.Name(), err)
		return nil, err
	}

	newSurface := c.NewSurface
	if newSurface == nil {
		newSurface = render.BackendRaster.Factory()
	}
	w, h := c.Canvas.PixelSize()
	surface := newSurface(w, h)
	if closer, ok := surface.(io.Closer); ok {
		defer closer.Close()
	}

	widgets := &render.Widgets{Surface: surface, Style: c.Style, Metrics: panel.Metrics, Fonts: c.Fonts}
	if err := screen.Draw(widgets, screens.Frame{Panel: panel, Keys: keys}); err != nil {
		logger.Errorf("compose", "%s: draw failed: %v", screen.Name(), err)
		return nil, err
	}
	img, err := surface.Image()
	if err != nil {
		logger.Errorf("compose", "%s: surface failed: %v", screen.Name(), err)
		return nil, err
	}
	logger.Infof("compose", "%s composed, %dx%d, %d keys", screen.Name(), w, h, len(keys))
	return img, nil
}

// ComposeFrontPanel paints the complete panel texture.
func (c *Composer) ComposeFrontPanel() (image.Image, error) {
	return c.Compose(screens.FrontPanel{})
}

// ComposeKeysOnly paints the transparent key overlay.
func (c *Composer) ComposeKeysOnly() (image.Image, error) {
	return c.Compose(screens.KeysOnly{})
}
