package render

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"time"

	fb "github.com/gonutz/framebuffer"
	xdraw "golang.org/x/image/draw"
)

// DefaultFramebuffer is the device Preview opens.
const DefaultFramebuffer = "/dev/fb0"

// Preview shows a composed image on the Linux framebuffer and keeps it on
// screen until the context is cancelled.
type Preview struct {
	Device string
	Logger interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}

	dev *fb.Device
}

func NewPreview() *Preview { return &Preview{Device: DefaultFramebuffer} }

// Run opens the framebuffer and redraws img at about 30 FPS until ctx is
// done. The framebuffer is closed on return.
func (p *Preview) Run(ctx context.Context, img image.Image) error {
	dev, err := fb.Open(p.Device)
	if err != nil {
		return err
	}
	p.dev = dev
	defer func() {
		p.dev.Close()
		p.dev = nil
	}()
	if p.Logger != nil {
		b := dev.Bounds()
		p.Logger.Infof("fb", "framebuffer open, bounds=%dx%d", b.Dx(), b.Dy())
	}

	frame := FitFrame(img, dev.Bounds())
	ticker := time.NewTicker(time.Second / 30)
	defer ticker.Stop()
	lastLog := time.Now()
	for {
		BlitFrame(dev, frame)
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if p.Logger != nil && time.Since(lastLog) > time.Second {
				p.Logger.Infof("fb", "heartbeat frame")
				lastLog = time.Now()
			}
		}
	}
}

// FitFrame letterboxes img into a black frame of the given bounds,
// preserving its aspect ratio. Transparent pixels show as black.
func FitFrame(img image.Image, bounds image.Rectangle) *image.RGBA {
	frame := image.NewRGBA(image.Rectangle{Max: bounds.Size()})
	draw.Draw(frame, frame.Bounds(), &image.Uniform{C: color.Black}, image.Point{}, draw.Src)

	src := img.Bounds()
	if src.Empty() || frame.Bounds().Empty() {
		return frame
	}
	scale := float64(frame.Bounds().Dx()) / float64(src.Dx())
	if s := float64(frame.Bounds().Dy()) / float64(src.Dy()); s < scale {
		scale = s
	}
	w := int(float64(src.Dx()) * scale)
	h := int(float64(src.Dy()) * scale)
	x := (frame.Bounds().Dx() - w) / 2
	y := (frame.Bounds().Dy() - h) / 2
	xdraw.ApproxBiLinear.Scale(frame, image.Rect(x, y, x+w, y+h), img, src, xdraw.Over, nil)
	return frame
}

// BlitFrame copies frame onto dst pixel by pixel, forcing opaque alpha.
func BlitFrame(dst draw.Image, frame *image.RGBA) {
	b := dst.Bounds()
	fbw, fbh := frame.Bounds().Dx(), frame.Bounds().Dy()
	for y := 0; y < b.Dy() && y < fbh; y++ {
		for x := 0; x < b.Dx() && x < fbw; x++ {
			px := frame.RGBAAt(x, y)
			dst.Set(b.Min.X+x, b.Min.Y+y, color.RGBA{R: px.R, G: px.G, B: px.B, A: 0xFF})
		}
	}
}
