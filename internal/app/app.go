package app

import (
	"context"
	"image"

	"github.com/rook-computer/cdupanel/internal/config"
	"github.com/rook-computer/cdupanel/internal/render"
	"github.com/rook-computer/cdupanel/internal/render/layout"
)

// App runs one generation: load the font, compose, write, and optionally
// hold the result on the framebuffer.
type App struct {
	Config  config.Config
	Logger  Logger
	Style   render.Style
	Preview *render.Preview
}

func New(cfg config.Config) *App {
	return &App{Config: cfg, Logger: NoopLogger{}, Style: render.DefaultStyle}
}

// Run generates the configured images. Any failure aborts the run; an
// image is only written once it is fully composed.
func (app *App) Run(ctx context.Context) error {
	if err := app.Config.Validate(); err != nil {
		return err
	}
	backend, err := render.ParseBackend(app.Config.Backend)
	if err != nil {
		return err
	}

	fonts, err := render.LoadFontFile(app.Config.FontPath)
	if err != nil {
		app.Logger.Errorf("app", "font load failed: %v", err)
		return err
	}
	defer fonts.Close()
	app.Logger.Infof("app", "font loaded from %s", fonts.Name)

	labels := layout.DefaultLabels()
	if app.Config.LabelsPath != "" {
		labels, err = config.LoadLabels(app.Config.LabelsPath)
		if err != nil {
			app.Logger.Errorf("app", "labels load failed: %v", err)
			return err
		}
		app.Logger.Infof("app", "loaded %d labels from %s", len(labels), app.Config.LabelsPath)
	}

	composer := &Composer{
		Canvas:     layout.NewCanvas(app.Config.Height),
		Style:      app.Style,
		Fonts:      fonts,
		Labels:     labels,
		NewSurface: backend.Factory(),
		Logger:     app.Logger,
	}

	front, err := composer.ComposeFrontPanel()
	if err != nil {
		return err
	}
	if err := app.save(app.Config.OutPath, front); err != nil {
		return err
	}

	if app.Config.KeysOutPath != "" {
		overlay, err := composer.ComposeKeysOnly()
		if err != nil {
			return err
		}
		if err := app.save(app.Config.KeysOutPath, overlay); err != nil {
			return err
		}
	}

	if app.Config.Preview {
		preview := app.Preview
		if preview == nil {
			preview = render.NewPreview()
		}
		if preview.Logger == nil {
			preview.Logger = app.Logger
		}
		if err := preview.Run(ctx, front); err != nil {
			app.Logger.Errorf("fb", "preview failed: %v", err)
			return err
		}
	}
	return nil
}

func (app *App) save(path string, img image.Image) error {
	if err := render.WritePNG(path, img); err != nil {
		app.Logger.Errorf("app", "write failed: %v", err)
		return err
	}
	app.Logger.Infof("app", "wrote %s", path)
	return nil
}
