package render

import "image/color"

// Style is the fixed palette of the panel art.
type Style struct {
	Background       color.RGBA
	BackgroundAccent color.RGBA
	KeyOuter         color.RGBA
	KeyInner         color.RGBA
	Text             color.RGBA
	Black            color.RGBA
}

// DefaultStyle is the tan plate with charcoal keys and white legends.
var DefaultStyle = Style{
	Background:       color.RGBA{R: 194, G: 156, B: 117, A: 0xFF},
	BackgroundAccent: color.RGBA{R: 177, G: 144, B: 109, A: 0xFF},
	KeyOuter:         color.RGBA{R: 56, G: 58, B: 57, A: 0xFF},
	KeyInner:         color.RGBA{R: 76, G: 78, B: 77, A: 0xFF},
	Text:             color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	Black:            color.RGBA{A: 0xFF},
}
