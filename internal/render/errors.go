package render

import (
	"errors"
	"fmt"
)

var (
	// ErrResourceLoad is returned when the label font cannot be read or parsed.
	ErrResourceLoad = errors.New("render: font resource could not be loaded")

	// ErrSurfaceWrite is returned when the output image cannot be written.
	ErrSurfaceWrite = errors.New("render: output image could not be written")

	// ErrUnknownBackend is returned for an unrecognised surface backend name.
	ErrUnknownBackend = errors.New("render: unknown surface backend")
)

// ResourceLoadError carries the font path that failed.
type ResourceLoadError struct {
	Path string
	Err  error
}

func (e *ResourceLoadError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrResourceLoad, e.Path, e.Err)
}

func (e *ResourceLoadError) Unwrap() []error { return []error{ErrResourceLoad, e.Err} }

// SurfaceWriteError carries the output path that failed.
type SurfaceWriteError struct {
	Path string
	Err  error
}

func (e *SurfaceWriteError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrSurfaceWrite, e.Path, e.Err)
}

func (e *SurfaceWriteError) Unwrap() []error { return []error{ErrSurfaceWrite, e.Err} }
