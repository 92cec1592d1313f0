// Package imaging resizes bitmaps with high-quality interpolation.
package imaging

import (
	"errors"
	"image"

	"golang.org/x/image/draw"
)

var (
	// ErrNilImage indicates a nil source image.
	ErrNilImage = errors.New("imaging: source image is nil")

	// ErrBadSize indicates a non-positive target width or height.
	ErrBadSize = errors.New("imaging: target size must be positive")
)

// Resize scales the whole of src to exactly width×height pixels with
// Catmull-Rom (bicubic) interpolation. The aspect ratio is not preserved.
// The result is a new image with its origin at (0, 0).
func Resize(src image.Image, width, height int) (*image.NRGBA, error) {
	if src == nil {
		return nil, ErrNilImage
	}
	if width <= 0 || height <= 0 {
		return nil, ErrBadSize
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	return dst, nil
}

// Fit scales src to the largest size that fits in maxWidth×maxHeight while
// keeping its aspect ratio. Neither dimension drops below one pixel.
func Fit(src image.Image, maxWidth, maxHeight int) (*image.NRGBA, error) {
	if src == nil {
		return nil, ErrNilImage
	}
	if maxWidth <= 0 || maxHeight <= 0 {
		return nil, ErrBadSize
	}
	b := src.Bounds()
	if b.Empty() {
		return nil, ErrBadSize
	}

	w, h := maxWidth, b.Dy()*maxWidth/b.Dx()
	if h > maxHeight {
		w, h = b.Dx()*maxHeight/b.Dy(), maxHeight
	}

	return Resize(src, max(w, 1), max(h, 1))
}
