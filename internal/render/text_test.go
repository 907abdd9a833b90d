package render_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rook-computer/cdupanel/internal/render"
)

func TestLayoutLinesSingle(t *testing.T) {
	tops := render.LayoutLines(1, 12, 20, 5, 100)
	require.Equal(t, []float64{94}, tops)
	require.InDelta(t, 100, tops[0]+12.0/2, 0.5)
}

func TestLayoutLinesTwo(t *testing.T) {
	const lineH, spacing, cy = 20.0, 5.0, 100.0
	tops := render.LayoutLines(2, 0, lineH, spacing, cy)
	require.Len(t, tops, 2)

	c0 := tops[0] + lineH/2
	c1 := tops[1] + lineH/2
	require.InDelta(t, cy, (c0+c1)/2, 1e-9, "midpoint of the two lines sits on the target")
	require.InDelta(t, lineH+spacing, tops[1]-tops[0], 1e-9)
	require.InDelta(t, cy-spacing/2, tops[0]+lineH, 1e-9, "gap straddles the target")
}

func TestLayoutLinesOddCentresMiddleLine(t *testing.T) {
	const lineH, spacing, cy = 18.0, 4.0, 50.0
	tops := render.LayoutLines(3, 0, lineH, spacing, cy)
	require.Len(t, tops, 3)
	require.InDelta(t, cy, tops[1]+lineH/2, 1e-9)

	block := 3*lineH + 2*spacing
	require.InDelta(t, cy-block/2, tops[0], 1e-9)
}

func TestLayoutLinesEmpty(t *testing.T) {
	require.Nil(t, render.LayoutLines(0, 10, 10, 2, 5))
}

func TestDrawLabelSingleLineCentred(t *testing.T) {
	fonts, err := render.LoadFontFile("")
	require.NoError(t, err)
	defer fonts.Close()
	face, err := fonts.Face(24)
	require.NoError(t, err)

	s := render.NewRasterSurface(100, 100)
	boxes := render.DrawLabel(s, face, "A", 50, 40, 0.25, color.White)
	require.Len(t, boxes, 1)

	cx, cy := boxes[0].Center()
	require.InDelta(t, 50, cx, 0.5)
	require.InDelta(t, 40, cy, 0.5)
	require.Greater(t, boxes[0].H, 10.0)

	img, err := s.Image()
	require.NoError(t, err)
	inked := false
	for y := int(boxes[0].Y); y < int(boxes[0].Y+boxes[0].H)+1 && !inked; y++ {
		for x := int(boxes[0].X); x < int(boxes[0].X+boxes[0].W)+1 && !inked; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			inked = a > 0
		}
	}
	require.True(t, inked, "glyph pixels were drawn")
}

func TestDrawLabelTwoLines(t *testing.T) {
	fonts, err := render.LoadFontFile("")
	require.NoError(t, err)
	defer fonts.Close()
	face, err := fonts.Face(16)
	require.NoError(t, err)

	s := render.NewRasterSurface(120, 120)
	boxes := render.DrawLabel(s, face, "INIT\nREF", 60, 60, 0.25, color.White)
	require.Len(t, boxes, 2)

	require.Less(t, boxes[0].Y+boxes[0].H, boxes[1].Y, "first line above second")
	for _, b := range boxes {
		cx, _ := b.Center()
		require.InDelta(t, 60, cx, 0.5)
	}
	require.Less(t, boxes[0].Y, 60.0)
	require.Greater(t, boxes[1].Y+boxes[1].H, 60.0)
}

func TestFontFaceCached(t *testing.T) {
	fonts, err := render.LoadFontFile("")
	require.NoError(t, err)
	defer fonts.Close()

	a, err := fonts.Face(16)
	require.NoError(t, err)
	b, err := fonts.Face(16)
	require.NoError(t, err)
	require.Same(t, a, b)
}
