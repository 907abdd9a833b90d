package render

import (
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// EncodePNG writes img to w with the default compression.
func EncodePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	return enc.Encode(w, img)
}

// WritePNG saves img at path. The image is encoded to a temporary file in
// the same directory and renamed into place, so a failed write never
// leaves a partial image behind.
func WritePNG(path string, img image.Image) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &SurfaceWriteError{Path: path, Err: err}
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = EncodePNG(tmp, img); err != nil {
		return &SurfaceWriteError{Path: path, Err: err}
	}
	if err = tmp.Chmod(0o644); err != nil {
		return &SurfaceWriteError{Path: path, Err: err}
	}
	if err = tmp.Close(); err != nil {
		return &SurfaceWriteError{Path: path, Err: err}
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return &SurfaceWriteError{Path: path, Err: err}
	}
	return nil
}
