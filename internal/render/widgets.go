package render

import (
	"image/color"

	"github.com/rook-computer/cdupanel/internal/render/layout"
)

// Widgets draws panel widgets onto one surface with one style.
type Widgets struct {
	Surface Surface
	Style   Style
	Metrics layout.Metrics
	Fonts   *Fonts
}

// DrawDepthPanel draws an outer rounded rect and a concentric one inset by
// margin, giving a bevelled look.
func (w *Widgets) DrawDepthPanel(r layout.Rect, margin float64, outer, inner color.Color) {
	w.Surface.FillRoundedRect(r, w.Metrics.CornerRadius, outer)
	w.Surface.FillRoundedRect(r.Inset(margin), w.Metrics.CornerRadius, inner)
}

// DrawKey draws a two-tone rectangular key. An empty label draws the
// blank-key placeholder bar across the middle instead of text.
func (w *Widgets) DrawKey(r layout.Rect, label string, size float64) error {
	w.DrawDepthPanel(r, w.Metrics.KeyInset, w.Style.KeyOuter, w.Style.KeyInner)
	cx, cy := r.Center()
	if label == "" {
		w.Surface.DrawLine(r.X+w.Metrics.LineInset, cy, r.X+r.W-w.Metrics.LineInset, cy,
			w.Metrics.LineThickness, w.Style.Text)
		return nil
	}
	return w.drawLabel(label, size, cx, cy)
}

// DrawRoundKey draws a two-tone circular key with an optional label.
func (w *Widgets) DrawRoundKey(cx, cy, radius float64, label string, size float64) error {
	w.Surface.FillCircle(cx, cy, radius, w.Style.KeyOuter)
	w.Surface.FillCircle(cx, cy, radius-w.Metrics.KeyInset, w.Style.KeyInner)
	if label == "" {
		return nil
	}
	return w.drawLabel(label, size, cx, cy)
}

// DrawSlot draws s with label, choosing the key shape from the slot.
func (w *Widgets) DrawSlot(s layout.Slot, label string, size float64) error {
	if s.Shape == layout.ShapeCircle {
		cx, cy := s.Center()
		return w.DrawRoundKey(cx, cy, s.Radius, label, size)
	}
	return w.DrawKey(s.Rect, label, size)
}

func (w *Widgets) drawLabel(label string, size, cx, cy float64) error {
	face, err := w.Fonts.Face(size)
	if err != nil {
		return err
	}
	DrawLabel(w.Surface, face, label, cx, cy, w.Metrics.LineSpacingRel, w.Style.Text)
	return nil
}
