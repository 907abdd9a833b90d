package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/rook-computer/cdupanel/internal/render"
)

const (
	EnvHeight   = "CDUPANEL_HEIGHT"
	EnvOut      = "CDUPANEL_OUT"
	EnvKeysOut  = "CDUPANEL_KEYS_OUT"
	EnvFont     = "CDUPANEL_FONT"
	EnvLabels   = "CDUPANEL_LABELS"
	EnvBackend  = "CDUPANEL_BACKEND"
	EnvStdioLog = "CDUPANEL_STDIO_LOG"
)

const (
	DefaultHeight  = 900
	DefaultOut     = "cdu.png"
	DefaultKeysOut = "cdu_keys.png"
)

// ErrInvalidHeight is returned for a canvas height that is not positive.
var ErrInvalidHeight = errors.New("config: canvas height must be positive")

// Config contains the settings for one generation run.
type Config struct {
	Height int
	// OutPath receives the front panel image.
	OutPath string
	// KeysOutPath receives the keys-only overlay; empty skips it.
	KeysOutPath string
	// FontPath is the label font; empty uses the embedded font.
	FontPath string
	// LabelsPath is an optional YAML override of the key legends.
	LabelsPath string
	Backend    string
	Preview    bool
	Debug      bool
	StdioLog   string
}

// DefaultConfigFromEnv returns the built-in defaults overridden by any
// CDUPANEL_* environment variables that are set.
func DefaultConfigFromEnv() (Config, error) {
	cfg := Config{
		Height:      DefaultHeight,
		OutPath:     envOr(EnvOut, DefaultOut),
		FontPath:    os.Getenv(EnvFont),
		LabelsPath:  os.Getenv(EnvLabels),
		Backend:     envOr(EnvBackend, string(render.BackendRaster)),
		StdioLog:    os.Getenv(EnvStdioLog),
		KeysOutPath: DefaultKeysOut,
	}
	if v, ok := os.LookupEnv(EnvKeysOut); ok {
		cfg.KeysOutPath = v
	}
	if raw := os.Getenv(EnvHeight); raw != "" {
		h, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be an integer (got %q): %w", EnvHeight, raw, err)
		}
		cfg.Height = h
	}
	return cfg, nil
}

// RegisterFlags binds every setting to fs, using the current values as
// defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Height, "height", c.Height, "canvas height in pixels; width follows the 488:751 aspect ratio; also configurable via "+EnvHeight)
	fs.StringVar(&c.OutPath, "out", c.OutPath, "front panel PNG path; also configurable via "+EnvOut)
	fs.StringVar(&c.KeysOutPath, "keys-out", c.KeysOutPath, "keys-only overlay PNG path, empty to skip; also configurable via "+EnvKeysOut)
	fs.StringVar(&c.FontPath, "font", c.FontPath, "TrueType/OpenType label font, empty for the embedded font; also configurable via "+EnvFont)
	fs.StringVar(&c.LabelsPath, "labels", c.LabelsPath, "YAML file overriding the key legends; also configurable via "+EnvLabels)
	fs.StringVar(&c.Backend, "backend", c.Backend, "surface backend: raster | gg; also configurable via "+EnvBackend)
	fs.BoolVar(&c.Preview, "preview", c.Preview, "show the front panel on the framebuffer until interrupted")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "enable debug logging to ./cdupanel-debug.log")
	fs.StringVar(&c.StdioLog, "stdio-log", c.StdioLog, "redirect stdout+stderr to this file; also configurable via "+EnvStdioLog)
}

// Validate reports the first setting that cannot produce an image.
func (c Config) Validate() error {
	if c.Height <= 0 {
		return fmt.Errorf("%w (got %d)", ErrInvalidHeight, c.Height)
	}
	if c.OutPath == "" {
		return errors.New("config: output path is required")
	}
	if _, err := render.ParseBackend(c.Backend); err != nil {
		return err
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
