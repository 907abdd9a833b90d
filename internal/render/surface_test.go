package render_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/rook-computer/cdupanel/internal/render"
	"github.com/rook-computer/cdupanel/internal/render/layout"
)

var red = color.RGBA{R: 0xFF, A: 0xFF}

func requireNear(t *testing.T, want color.RGBA, got color.Color, msgAndArgs ...interface{}) {
	t.Helper()
	g := color.RGBAModel.Convert(got).(color.RGBA)
	near := func(a, b uint8) bool {
		d := int(a) - int(b)
		return d >= -1 && d <= 1
	}
	require.True(t, near(want.R, g.R) && near(want.G, g.G) && near(want.B, g.B) && near(want.A, g.A),
		append([]interface{}{"want %v got %v", want, g}, msgAndArgs...)...)
}

func pixel(t *testing.T, s render.Surface, x, y int) color.Color {
	t.Helper()
	img, err := s.Image()
	require.NoError(t, err)
	return img.At(x, y)
}

// SurfaceSuite runs the same drawing checks against every backend.
type SurfaceSuite struct {
	suite.Suite
	backend render.Backend
	s       render.Surface
}

func (s *SurfaceSuite) SetupTest() {
	s.s = s.backend.Factory()(64, 64)
	s.s.Clear(color.Transparent)
}

func (s *SurfaceSuite) TestSize() {
	w, h := s.s.Size()
	require.Equal(s.T(), 64, w)
	require.Equal(s.T(), 64, h)
}

func (s *SurfaceSuite) TestClear() {
	requireNear(s.T(), color.RGBA{}, pixel(s.T(), s.s, 10, 10))
	s.s.Clear(red)
	requireNear(s.T(), red, pixel(s.T(), s.s, 10, 10))
}

func (s *SurfaceSuite) TestFillRect() {
	s.s.FillRect(layout.Rect{X: 10, Y: 10, W: 20, H: 20}, red)
	requireNear(s.T(), red, pixel(s.T(), s.s, 20, 20))
	requireNear(s.T(), color.RGBA{}, pixel(s.T(), s.s, 40, 40))
	requireNear(s.T(), color.RGBA{}, pixel(s.T(), s.s, 5, 20))
}

func (s *SurfaceSuite) TestFillRoundedRectCutsCorners() {
	s.s.FillRoundedRect(layout.Rect{X: 10, Y: 10, W: 40, H: 40}, 12, red)
	requireNear(s.T(), red, pixel(s.T(), s.s, 30, 30))
	requireNear(s.T(), red, pixel(s.T(), s.s, 30, 11))
	requireNear(s.T(), color.RGBA{}, pixel(s.T(), s.s, 10, 10), "corner stays empty")
}

func (s *SurfaceSuite) TestFillCircle() {
	s.s.FillCircle(32, 32, 16, red)
	requireNear(s.T(), red, pixel(s.T(), s.s, 32, 32))
	requireNear(s.T(), red, pixel(s.T(), s.s, 32, 18))
	requireNear(s.T(), color.RGBA{}, pixel(s.T(), s.s, 17, 17), "bounding-box corner")
}

func (s *SurfaceSuite) TestDrawLine() {
	s.s.DrawLine(8, 32, 56, 32, 6, red)
	requireNear(s.T(), red, pixel(s.T(), s.s, 32, 31))
	requireNear(s.T(), red, pixel(s.T(), s.s, 32, 32))
	requireNear(s.T(), color.RGBA{}, pixel(s.T(), s.s, 32, 26))
	requireNear(s.T(), color.RGBA{}, pixel(s.T(), s.s, 4, 32), "butt cap")
}

func (s *SurfaceSuite) TestBlit() {
	mask := image.NewAlpha(image.Rect(100, 100, 104, 104))
	mask.SetAlpha(101, 101, color.Alpha{A: 0xFF})
	s.s.Blit(mask, image.Pt(20, 20), red)
	_, _, _, a := pixel(s.T(), s.s, 21, 21).RGBA()
	require.NotZero(s.T(), a, "masked pixel lands at the offset")
	requireNear(s.T(), color.RGBA{}, pixel(s.T(), s.s, 30, 30))
}

func TestRasterSurface(t *testing.T) {
	suite.Run(t, &SurfaceSuite{backend: render.BackendRaster})
}

func TestGGSurface(t *testing.T) {
	suite.Run(t, &SurfaceSuite{backend: render.BackendGG})
}

func TestParseBackend(t *testing.T) {
	b, err := render.ParseBackend("")
	require.NoError(t, err)
	require.Equal(t, render.BackendRaster, b)

	b, err = render.ParseBackend(" GG ")
	require.NoError(t, err)
	require.Equal(t, render.BackendGG, b)

	_, err = render.ParseBackend("cairo")
	require.ErrorIs(t, err, render.ErrUnknownBackend)
}
