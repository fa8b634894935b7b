// Package imageutil provides the single-channel image type used by the
// imstr pipeline, pure Go decoding into it, and area-averaging resamplers.
package imageutil

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Supported sample depths, in bits.
const (
	Depth8  = 8
	Depth16 = 16
)

// GrayImage wraps a single-channel image with an 8 or 16 bit sample depth.
// The embedded image is either *image.Gray or *image.Gray16 and always has
// its origin at (0, 0). Pipeline stages never modify a GrayImage they were
// given; they return a new one.
type GrayImage struct {
	image.Image
	gray   *image.Gray
	gray16 *image.Gray16
}

// NewGrayImage creates a new GrayImage with the specified dimensions and
// sample depth. It panics on a depth other than Depth8 or Depth16.
func NewGrayImage(width, height, depth int) *GrayImage {
	rect := image.Rect(0, 0, width, height)
	switch depth {
	case Depth8:
		g := image.NewGray(rect)
		return &GrayImage{Image: g, gray: g}
	case Depth16:
		g := image.NewGray16(rect)
		return &GrayImage{Image: g, gray16: g}
	}
	panic(fmt.Sprintf("imageutil: unsupported sample depth %d", depth))
}

// GrayImageFromImage converts any image.Image to a GrayImage of the given
// depth, reducing color with BT.601 luminance.
func GrayImageFromImage(img image.Image, depth int) *GrayImage {
	bounds := img.Bounds()
	gray := NewGrayImage(bounds.Dx(), bounds.Dy(), depth)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			lum := luminance16(img.At(x, y))
			if depth == Depth8 {
				lum = (lum + 128) / 257
			}
			gray.SetSample(x-bounds.Min.X, y-bounds.Min.Y, lum)
		}
	}
	return gray
}

// Width returns the image width.
func (img *GrayImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *GrayImage) Height() int {
	return img.Bounds().Dy()
}

// Depth returns the sample depth in bits.
func (img *GrayImage) Depth() int {
	if img.gray16 != nil {
		return Depth16
	}
	return Depth8
}

// MaxValue returns the largest sample value representable at the image's
// depth.
func (img *GrayImage) MaxValue() uint32 {
	return 1<<uint(img.Depth()) - 1
}

// Sample returns the raw sample at (x, y).
func (img *GrayImage) Sample(x, y int) uint32 {
	if img.gray16 != nil {
		return uint32(img.gray16.Gray16At(x, y).Y)
	}
	return uint32(img.gray.GrayAt(x, y).Y)
}

// SetSample sets the raw sample at (x, y). Values above MaxValue are
// clamped. It is meant for building a new image, not for editing one that
// has already been handed to the pipeline.
func (img *GrayImage) SetSample(x, y int, v uint32) {
	if limit := img.MaxValue(); v > limit {
		v = limit
	}
	if img.gray16 != nil {
		img.gray16.SetGray16(x, y, color.Gray16{Y: uint16(v)})
		return
	}
	img.gray.SetGray(x, y, color.Gray{Y: uint8(v)})
}

// Clone creates a deep copy of the image.
func (img *GrayImage) Clone() *GrayImage {
	clone := NewGrayImage(img.Width(), img.Height(), img.Depth())
	if img.gray16 != nil {
		copy(clone.gray16.Pix, img.gray16.Pix)
	} else {
		copy(clone.gray.Pix, img.gray.Pix)
	}
	return clone
}

// drawable returns the backing image as a draw target.
func (img *GrayImage) drawable() draw.Image {
	if img.gray16 != nil {
		return img.gray16
	}
	return img.gray
}
