package app_test

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rook-computer/cdupanel/internal/app"
	"github.com/rook-computer/cdupanel/internal/config"
	"github.com/rook-computer/cdupanel/internal/render"
)

func testConfig(dir string) config.Config {
	return config.Config{
		Height:      450,
		OutPath:     filepath.Join(dir, "cdu.png"),
		KeysOutPath: filepath.Join(dir, "cdu_keys.png"),
		Backend:     "raster",
	}
}

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	return img
}

func TestRunWritesBothImages(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	require.NoError(t, app.New(cfg).Run(context.Background()))

	front := decodePNG(t, cfg.OutPath)
	require.Equal(t, image.Rect(0, 0, 292, 450), front.Bounds())
	keys := decodePNG(t, cfg.KeysOutPath)
	require.Equal(t, front.Bounds(), keys.Bounds())

	_, _, _, a := keys.At(1, 1).RGBA()
	require.Zero(t, a, "overlay corner is transparent")
	_, _, _, a = front.At(1, 1).RGBA()
	require.Equal(t, uint32(0xFFFF), a, "front panel is opaque")
}

func TestRunWithoutOverlay(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	cfg.KeysOutPath = ""
	require.NoError(t, app.New(cfg).Run(context.Background()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "cdu.png", entries[0].Name())
}

func TestRunMissingFontWritesNothing(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	cfg.FontPath = filepath.Join(dir, "missing.ttf")

	err := app.New(cfg).Run(context.Background())
	require.ErrorIs(t, err, render.ErrResourceLoad)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestRunUnwritableOutput(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	cfg.OutPath = filepath.Join(dir, "no", "such", "dir", "cdu.png")

	err := app.New(cfg).Run(context.Background())
	require.ErrorIs(t, err, render.ErrSurfaceWrite)
	_, statErr := os.Stat(cfg.KeysOutPath)
	require.True(t, os.IsNotExist(statErr), "overlay is not attempted after a failed write")
}

func TestRunBadLabels(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	cfg.LabelsPath = filepath.Join(dir, "labels.yaml")
	require.NoError(t, os.WriteFile(cfg.LabelsPath, []byte("- group: main\n  text: ONLY\n"), 0o644))

	err := app.New(cfg).Run(context.Background())
	require.Error(t, err)
	_, statErr := os.Stat(cfg.OutPath)
	require.True(t, os.IsNotExist(statErr))
}

func TestRunInvalidConfig(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.Height = -1
	require.ErrorIs(t, app.New(cfg).Run(context.Background()), config.ErrInvalidHeight)
}

func TestRunLogs(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	cfg.KeysOutPath = ""

	logs := &recordingLogger{}
	a := app.New(cfg)
	a.Logger = logs
	require.NoError(t, a.Run(context.Background()))
	require.Contains(t, logs.info, "app: wrote "+cfg.OutPath)
	require.Empty(t, logs.errors)
}

type recordingLogger struct {
	info   []string
	errors []string
}

func (l *recordingLogger) Infof(component, format string, args ...interface{}) {
	l.info = append(l.info, component+": "+fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Errorf(component, format string, args ...interface{}) {
	l.errors = append(l.errors, component+": "+fmt.Sprintf(format, args...))
}
