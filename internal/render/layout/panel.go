package layout

// Proportional constants. Suffix W means a fraction of canvas width,
// suffix H a fraction of canvas height; everything else is relative to
// another derived length.
const (
	lskOffsW         = 0.1
	screenOffsH      = 0.04
	screenHeightH    = 0.43
	screenBorderH    = 25.0 / 900.0
	screenRadiusH    = 15.0 / 900.0
	cornerRadiusH    = 5.0 / 900.0
	lskLatOffsW      = 0.01
	lskVertStepW     = 8 * lskLatOffsW
	lskWidthW        = 0.08
	lskHeightRatio   = 0.7
	lskLineRatio     = 0.2
	lskStartH        = 0.12
	lskLineOffsW     = 0.02
	keyInsetW        = 0.01
	lskPerSide       = 6
	mainStartH       = 0.51
	mainWidthRatio   = 1.5
	mainHeightRatio  = 1.47
	mainLatPitch     = 1.06
	mainVertPitch    = 1.08
	letterWidthW     = 0.075
	letterStartXW    = 0.44
	letterStartYH    = 0.63
	letterPitch      = 1.24
	letterRows       = 6
	letterCols       = 5
	numericStartYH   = 0.75
	numericLatScale  = 1.1
	numericRows      = 4
	numericCols      = 3
	execXW           = 0.76
	execHeightRatio  = 0.7
	execStripInset   = 0.15
	execStripHeight  = 0.1
	plateGrowW       = 0.012
	plateInnerInsetW = 0.0075
	plateDepthW      = 0.006
	mainFontH        = 16.0 / 900.0
	letterFontH      = 24.0 / 900.0
	execFontH        = 12.0 / 900.0
	labelLineSpacing = 0.25
)

// mainRowWidths is the number of main keys in each row, top to bottom.
var mainRowWidths = [...]int{5, 5, 2, 2}

// SlotCount is the number of label-consuming slots Compute produces.
const SlotCount = 5 + 5 + 2 + 2 + letterRows*letterCols + numericRows*numericCols + 1

// Metrics holds the derived lengths the widget renderer needs.
type Metrics struct {
	CornerRadius   float64
	KeyInset       float64
	LineInset      float64
	LineThickness  float64
	BezelBorder    float64
	BezelRadius    float64
	PlateDepth     float64
	PlateInset     float64
	FontMain       float64
	FontLetter     float64
	FontExec       float64
	LineSpacingRel float64
}

// MetricsFor derives the renderer metrics for c.
func MetricsFor(c Canvas) Metrics {
	w, h := c.Width, c.Height
	lskH := lskWidthW * w * lskHeightRatio
	return Metrics{
		CornerRadius:   cornerRadiusH * h,
		KeyInset:       keyInsetW * w,
		LineInset:      lskLineOffsW * w,
		LineThickness:  lskLineRatio * lskH,
		BezelBorder:    screenBorderH * h,
		BezelRadius:    screenRadiusH * h,
		PlateDepth:     plateDepthW * w,
		PlateInset:     plateInnerInsetW * w,
		FontMain:       mainFontH * h,
		FontLetter:     letterFontH * h,
		FontExec:       execFontH * h,
		LineSpacingRel: labelLineSpacing,
	}
}

// FontSize returns the pixel size for a font role.
func (m Metrics) FontSize(role FontRole) float64 {
	switch role {
	case FontLetter:
		return m.FontLetter
	case FontExec:
		return m.FontExec
	default:
		return m.FontMain
	}
}

// Panel is the complete widget table for one canvas.
type Panel struct {
	Canvas    Canvas
	Metrics   Metrics
	Bezel     Rect
	MainPlate Rect
	ExecStrip Rect
	// LSKs lists the left column top to bottom, then the right column.
	LSKs []Slot
	// Keys lists main, letter and numeric keys row-major, then EXEC.
	Keys []Slot
}

// Compute derives every widget placement from c. It is pure: the same
// canvas always yields the same panel.
func Compute(c Canvas) Panel {
	w, h := c.Width, c.Height
	p := Panel{
		Canvas:  c,
		Metrics: MetricsFor(c),
		Bezel: Rect{
			X: w * lskOffsW,
			Y: h * screenOffsH,
			W: w * (1 - 2*lskOffsW),
			H: h * screenHeightH,
		},
	}

	lskW := lskWidthW * w
	lskH := lskHeightRatio * lskW
	p.LSKs = append(lskColumn(GroupLSKLeft, lskLatOffsW*w, lskH, lskW, h, w),
		lskColumn(GroupLSKRight, w-lskLatOffsW*w-lskW, lskH, lskW, h, w)...)

	p.Keys = make([]Slot, 0, SlotCount)

	mainW := mainWidthRatio * lskW
	mainH := mainHeightRatio * lskH
	mainX := lskOffsW * w
	mainY := mainStartH * h
	y := mainY
	for row, n := range mainRowWidths {
		x := mainX
		for col := 0; col < n; col++ {
			p.Keys = append(p.Keys, rectSlot(SlotID{GroupMain, row, col}, x, y, mainW, mainH))
			x += mainW * mainLatPitch
		}
		y += mainH * mainVertPitch
	}

	// The plate sits behind the two full-width rows.
	top := Rect{
		X: mainX,
		Y: mainY,
		W: float64(mainRowWidths[0]-1)*mainW*mainLatPitch + mainW,
		H: mainH*mainVertPitch + mainH,
	}
	p.MainPlate = top.Grow(plateGrowW * w)

	letterW := letterWidthW * w
	letterStep := letterW * letterPitch
	y = letterStartYH * h
	for row := 0; row < letterRows; row++ {
		x := letterStartXW * w
		for col := 0; col < letterCols; col++ {
			p.Keys = append(p.Keys, rectSlot(SlotID{GroupLetter, row, col}, x, y, letterW, letterW))
			x += letterStep
		}
		y += letterStep
	}

	r := letterW / 2
	cy := numericStartYH*h + r
	for row := 0; row < numericRows; row++ {
		cx := lskOffsW*w + r
		for col := 0; col < numericCols; col++ {
			p.Keys = append(p.Keys, circleSlot(SlotID{GroupNumeric, row, col}, cx, cy, r))
			cx += letterStep * numericLatScale
		}
		cy += letterStep
	}

	execH := execHeightRatio * mainH
	execY := mainY + mainH*mainVertPitch + mainH - execH
	exec := rectSlot(SlotID{GroupExec, 0, 0}, execXW*w, execY, mainW, execH)
	p.Keys = append(p.Keys, exec)

	stripH := execStripHeight * exec.Rect.H
	p.ExecStrip = Rect{
		X: exec.Rect.X + execStripInset*exec.Rect.W,
		Y: exec.Rect.Y - 2*stripH,
		W: (1 - 2*execStripInset) * exec.Rect.W,
		H: stripH,
	}
	return p
}

func lskColumn(group Group, x, lskH, lskW, h, w float64) []Slot {
	slots := make([]Slot, 0, lskPerSide)
	y := lskStartH * h
	for row := 0; row < lskPerSide; row++ {
		slots = append(slots, rectSlot(SlotID{group, row, 0}, x, y, lskW, lskH))
		y += lskVertStepW * w
	}
	return slots
}

// SlotsIn returns the slots belonging to group, in order.
func (p Panel) SlotsIn(group Group) []Slot {
	var out []Slot
	for _, list := range [][]Slot{p.LSKs, p.Keys} {
		for _, s := range list {
			if s.ID.Group == group {
				out = append(out, s)
			}
		}
	}
	return out
}
