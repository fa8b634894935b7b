package imageutil

import (
	"github.com/disintegration/gift"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// ErrInvalidSize is returned when a resampler is asked for an image with
// no pixels.
var ErrInvalidSize = errors.New("resample target must be at least 1x1")

// boxKernel is a unit-width box filter. golang.org/x/image/draw
// widens the support by the shrink factor when downscaling, so every source
// pixel under a destination pixel's footprint counts once and pixels cut by
// the footprint edge count half: the pixel-area relation OpenCV calls
// INTER_AREA. When enlarging it degrades to nearest neighbour, averaging the
// two neighbours on an exact tie.
var boxKernel = &draw.Kernel{
	Support: 1,
	At: func(t float64) float64 {
		switch {
		case t < 0.5:
			return 1
		case t == 0.5:
			return 0.5
		}
		return 0
	},
}

// BoxResampler resizes with an area-averaging box kernel from
// golang.org/x/image/draw.
type BoxResampler struct{}

// Resample implements imstr.Resampler.
func (BoxResampler) Resample(img *GrayImage, width, height int) (*GrayImage, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	dst := NewGrayImage(width, height, img.Depth())
	boxKernel.Scale(dst.drawable(), dst.Bounds(), img.Image, img.Bounds(), draw.Src, nil)
	return dst, nil
}

// GiftResampler resizes with disintegration/gift's box resampling filter.
type GiftResampler struct{}

// Resample implements imstr.Resampler.
func (GiftResampler) Resample(img *GrayImage, width, height int) (*GrayImage, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	g := gift.New(gift.Resize(width, height, gift.BoxResampling))
	dst := NewGrayImage(width, height, img.Depth())
	g.Draw(dst.drawable(), img.Image)
	return dst, nil
}

// NfntResampler resizes with nfnt/resize's bilinear filter. The filter
// support grows with the shrink factor, so every source pixel contributes
// when downscaling.
type NfntResampler struct{}

// Resample implements imstr.Resampler.
func (NfntResampler) Resample(img *GrayImage, width, height int) (*GrayImage, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	out := resize.Resize(uint(width), uint(height), img.Image, resize.Bilinear)
	return GrayImageFromImage(out, img.Depth()), nil
}

func checkSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.Wrapf(ErrInvalidSize, "got %dx%d", width, height)
	}
	return nil
}
