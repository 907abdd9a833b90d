package layout

import (
	"fmt"
	"image"
	"math"
)

// AspectRatio is the panel width divided by its height.
const AspectRatio = 488.0 / 751.0

// Canvas is the target size the whole panel is derived from.
// Width is kept exact; PixelWidth is what the raster surface uses.
type Canvas struct {
	Width  float64
	Height float64
}

// NewCanvas derives the canvas width from height and the fixed aspect ratio.
func NewCanvas(height int) Canvas {
	h := float64(height)
	return Canvas{Width: h * AspectRatio, Height: h}
}

// PixelSize returns the integer surface size. Width is truncated.
func (c Canvas) PixelSize() (width int, height int) {
	return int(math.Floor(c.Width)), int(math.Floor(c.Height))
}

// Rect is an axis-aligned rectangle in canvas pixels.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) String() string {
	return fmt.Sprintf("(%.2f,%.2f %.2fx%.2f)", r.X, r.Y, r.W, r.H)
}

// Inset shrinks r by margin on all sides.
func (r Rect) Inset(margin float64) Rect {
	if margin <= 0 {
		return r
	}
	return Rect{X: r.X + margin, Y: r.Y + margin, W: r.W - 2*margin, H: r.H - 2*margin}.Normalize()
}

// Grow expands r by margin on all sides.
func (r Rect) Grow(margin float64) Rect {
	return Rect{X: r.X - margin, Y: r.Y - margin, W: r.W + 2*margin, H: r.H + 2*margin}
}

// Normalize ensures W and H are not negative.
func (r Rect) Normalize() Rect {
	if r.W < 0 {
		r.X += r.W / 2
		r.W = 0
	}
	if r.H < 0 {
		r.Y += r.H / 2
		r.H = 0
	}
	return r
}

// Center returns the midpoint of r.
func (r Rect) Center() (x, y float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Union returns the smallest rectangle containing r and o.
func (r Rect) Union(o Rect) Rect {
	minX := math.Min(r.X, o.X)
	minY := math.Min(r.Y, o.Y)
	maxX := math.Max(r.X+r.W, o.X+o.W)
	maxY := math.Max(r.Y+r.H, o.Y+o.H)
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Contains reports whether the point lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Scale multiplies every coordinate by k.
func (r Rect) Scale(k float64) Rect {
	return Rect{X: r.X * k, Y: r.Y * k, W: r.W * k, H: r.H * k}
}

// Bounds returns the integer pixel rectangle covering r.
func (r Rect) Bounds() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.W)), int(math.Ceil(r.Y+r.H)),
	)
}

// Shape selects how a slot is drawn.
type Shape int

const (
	ShapeRect Shape = iota
	ShapeCircle
)

func (s Shape) String() string {
	switch s {
	case ShapeRect:
		return "rect"
	case ShapeCircle:
		return "circle"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Group names a family of widgets on the panel.
type Group string

const (
	GroupLSKLeft  Group = "lsk-left"
	GroupLSKRight Group = "lsk-right"
	GroupMain     Group = "main"
	GroupLetter   Group = "letter"
	GroupNumeric  Group = "numeric"
	GroupExec     Group = "exec"
)

// SlotID identifies one widget position by group, row and column.
type SlotID struct {
	Group Group
	Row   int
	Col   int
}

func (id SlotID) String() string {
	return fmt.Sprintf("%s[%d,%d]", id.Group, id.Row, id.Col)
}

// Slot is the geometry of one widget. For circles, Rect is the bounding square.
type Slot struct {
	ID     SlotID
	Shape  Shape
	Rect   Rect
	Radius float64
}

// Center returns the slot's centre point.
func (s Slot) Center() (x, y float64) {
	return s.Rect.Center()
}

func rectSlot(id SlotID, x, y, w, h float64) Slot {
	return Slot{ID: id, Shape: ShapeRect, Rect: Rect{X: x, Y: y, W: w, H: h}}
}

func circleSlot(id SlotID, cx, cy, r float64) Slot {
	return Slot{ID: id, Shape: ShapeCircle, Rect: Rect{X: cx - r, Y: cy - r, W: 2 * r, H: 2 * r}, Radius: r}
}
