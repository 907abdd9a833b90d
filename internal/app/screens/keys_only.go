package screens

import (
	"image/color"

	"github.com/rook-computer/cdupanel/internal/render"
)

// KeysOnly is the hit-area overlay: the labelled keys on a fully
// transparent canvas, with no plate, bezel or line-select keys.
type KeysOnly struct{}

func (KeysOnly) Name() string { return "keys-only" }

func (KeysOnly) Draw(w *render.Widgets, f Frame) error {
	w.Surface.Clear(color.Transparent)
	return drawKeys(w, f)
}
