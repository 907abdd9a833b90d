package screens

import (
	"math"

	"github.com/rook-computer/cdupanel/internal/render"
)

// FrontPanel is the full panel texture: plate, screen bezel, the raised
// main-key plate, the EXEC light strip and every key.
type FrontPanel struct{}

func (FrontPanel) Name() string { return "front-panel" }

func (FrontPanel) Draw(w *render.Widgets, f Frame) error {
	s, st, m := w.Surface, w.Style, f.Panel.Metrics

	s.Clear(st.Background)

	bezel := f.Panel.Bezel
	s.FillRoundedRect(bezel, m.BezelRadius, st.BackgroundAccent)
	s.FillRoundedRect(bezel.Inset(m.BezelBorder), math.Max(m.BezelRadius-m.BezelBorder, 0), st.Background)

	plate := f.Panel.MainPlate
	w.DrawDepthPanel(plate, m.PlateDepth, st.BackgroundAccent, st.Background)
	w.DrawDepthPanel(plate.Inset(m.PlateInset), m.PlateDepth, st.BackgroundAccent, st.Background)

	s.FillRect(f.Panel.ExecStrip, st.Black)

	for _, lsk := range f.Panel.LSKs {
		if err := w.DrawKey(lsk.Rect, "", 0); err != nil {
			return err
		}
	}
	return drawKeys(w, f)
}
