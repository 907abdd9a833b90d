package render

import (
	"image"
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/rook-computer/cdupanel/internal/render/layout"
)

// LayoutLines returns the top y of each of n stacked lines centred on cy.
//
// A single line is centred on its ink height glyphH. Multi-line blocks use
// lineH per line and spacing between lines. The block is anchored on its
// middle, then corrected by parity: an odd count has its middle line's top
// on cy and moves up by lineH/2; an even count has the middle gap's top on
// cy and moves up by spacing/2. Either way the first top lands at
// cy - (n*lineH + (n-1)*spacing)/2.
func LayoutLines(n int, glyphH, lineH, spacing, cy float64) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{cy - glyphH/2}
	}
	pitch := lineH + spacing
	half := n / 2
	var anchor float64
	if n%2 == 1 {
		anchor = cy - float64(half)*pitch
		anchor -= lineH / 2
	} else {
		anchor = cy - float64(half-1)*pitch - lineH
		anchor -= spacing / 2
	}
	tops := make([]float64, n)
	for i := range tops {
		tops[i] = anchor + float64(i)*pitch
	}
	return tops
}

// DrawLabel centres text on (cx, cy) and returns the ink box of each
// drawn line. Lines are split on "\n" and centred horizontally one by one.
func DrawLabel(s Surface, face font.Face, text string, cx, cy, spacingRel float64, c color.Color) []layout.Rect {
	lines := strings.Split(text, "\n")
	metrics := face.Metrics()
	ascent := fromFixed(metrics.Ascent)
	lineH := ascent + fromFixed(metrics.Descent)

	inks := make([]fixed.Rectangle26_6, len(lines))
	for i, line := range lines {
		inks[i], _ = font.BoundString(face, line)
	}

	var baselines []float64
	if len(lines) == 1 {
		ink := inks[0]
		glyphH := fromFixed(ink.Max.Y - ink.Min.Y)
		top := LayoutLines(1, glyphH, lineH, 0, cy)[0]
		baselines = []float64{top - fromFixed(ink.Min.Y)}
	} else {
		for _, top := range LayoutLines(len(lines), 0, lineH, lineH*spacingRel, cy) {
			baselines = append(baselines, top+ascent)
		}
	}

	boxes := make([]layout.Rect, 0, len(lines))
	for i, line := range lines {
		ink := inks[i]
		if line == "" || ink.Empty() {
			continue
		}
		inkCenter := fromFixed(ink.Min.X+ink.Max.X) / 2
		dot := fixed.Point26_6{X: toFixed(cx - inkCenter), Y: toFixed(baselines[i])}
		abs := ink.Add(dot)
		boxes = append(boxes, layout.Rect{
			X: fromFixed(abs.Min.X),
			Y: fromFixed(abs.Min.Y),
			W: fromFixed(abs.Max.X - abs.Min.X),
			H: fromFixed(abs.Max.Y - abs.Min.Y),
		})

		bounds := image.Rect(abs.Min.X.Floor(), abs.Min.Y.Floor(), abs.Max.X.Ceil(), abs.Max.Y.Ceil())
		mask := image.NewAlpha(bounds)
		d := &font.Drawer{Dst: mask, Src: image.Opaque, Face: face, Dot: dot}
		d.DrawString(line)
		s.Blit(mask, bounds.Min, c)
	}
	return boxes
}

func fromFixed(v fixed.Int26_6) float64 { return float64(v) / 64 }

func toFixed(v float64) fixed.Int26_6 { return fixed.Int26_6(math.Round(v * 64)) }
