package render

import (
	"errors"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"github.com/rook-computer/cdupanel/internal/assets"
)

// labelDPI makes a face's point size equal its pixel size.
const labelDPI = 72

// Fonts owns one parsed font and the faces created from it.
type Fonts struct {
	Name  string
	font  *opentype.Font
	faces map[float64]font.Face
}

// LoadFontFile reads and parses the font at path. An empty path selects
// the embedded font.
func LoadFontFile(path string) (*Fonts, error) {
	if path == "" {
		return ParseFont(assets.FontName, assets.FontTTF)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ResourceLoadError{Path: path, Err: err}
	}
	return ParseFont(path, data)
}

// ParseFont parses TrueType or OpenType data.
func ParseFont(name string, data []byte) (*Fonts, error) {
	if len(data) == 0 {
		return nil, &ResourceLoadError{Path: name, Err: errors.New("empty font data")}
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, &ResourceLoadError{Path: name, Err: err}
	}
	return &Fonts{Name: name, font: f, faces: make(map[float64]font.Face)}, nil
}

// Face returns a face for the given pixel size, creating it on first use.
func (f *Fonts) Face(size float64) (font.Face, error) {
	if face, ok := f.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{Size: size, DPI: labelDPI, Hinting: font.HintingFull})
	if err != nil {
		return nil, &ResourceLoadError{Path: f.Name, Err: err}
	}
	f.faces[size] = face
	return face, nil
}

// Close releases every face created so far.
func (f *Fonts) Close() error {
	var errs []error
	for size, face := range f.faces {
		errs = append(errs, face.Close())
		delete(f.faces, size)
	}
	return errors.Join(errs...)
}
