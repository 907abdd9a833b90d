package screens

import (
	"github.com/rook-computer/cdupanel/internal/render"
	"github.com/rook-computer/cdupanel/internal/render/layout"
)

// Frame is everything a screen needs to paint one image.
type Frame struct {
	Panel layout.Panel
	Keys  []layout.Binding
}

// Screen paints one output image onto the widgets' surface.
type Screen interface {
	Name() string
	Draw(w *render.Widgets, f Frame) error
}

func drawKeys(w *render.Widgets, f Frame) error {
	for _, b := range f.Keys {
		if err := w.DrawSlot(b.Slot, b.Label.Text, w.Metrics.FontSize(b.Label.Font)); err != nil {
			return err
		}
	}
	return nil
}
