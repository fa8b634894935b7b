package imstr

import (
	"math"

	"github.com/pkg/errors"
	"github.com/wbrown/imstr/imageutil"
)

// MaxSide is the largest width or height an image is resampled to.
const MaxSide = 1 << 15

// side converts a computed dimension to int, saturating far above MaxSide
// so huge factors cannot overflow.
func side(v float64) int {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(v)
}

// ResolveSize returns the size an image of srcWidth x srcHeight is resized
// to before scaling. With neither dimension set the source size is kept.
// With one set, the other follows the source aspect ratio, rounded to the
// nearest pixel. With both set, both are used as given.
func ResolveSize(srcWidth, srcHeight int, width, height *int) (int, int) {
	switch {
	case width == nil && height == nil:
		return srcWidth, srcHeight
	case width == nil:
		w := math.Round(float64(*height) * float64(srcWidth) / float64(srcHeight))
		return side(w), *height
	case height == nil:
		h := math.Round(float64(*width) * float64(srcHeight) / float64(srcWidth))
		return *width, side(h)
	}
	return *width, *height
}

// ScaleSize multiplies both dimensions by scale, rounding down.
func ScaleSize(width, height int, scale float64) (int, int) {
	return side(math.Floor(float64(width) * scale)),
		side(math.Floor(float64(height) * scale))
}

// Resize applies the size policy of cfg to img: resolve width and height,
// resample, then scale and resample again. Steps that would not change the
// size are skipped. Both target sizes are checked before any resampling:
// a zero or negative side fails with ErrEmptyImage, and resampling to a
// side above MaxSide fails with ErrInvalidSize.
func Resize(img *imageutil.GrayImage, cfg Config, r Resampler) (*imageutil.GrayImage, error) {
	srcWidth, srcHeight := img.Width(), img.Height()
	if srcWidth <= 0 || srcHeight <= 0 {
		return nil, errors.Wrapf(ErrEmptyImage, "source is %dx%d", srcWidth, srcHeight)
	}

	width, height := ResolveSize(srcWidth, srcHeight, cfg.Width, cfg.Height)
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrEmptyImage, "resize %dx%d to %dx%d",
			srcWidth, srcHeight, width, height)
	}
	if err := checkMaxSide(srcWidth, srcHeight, width, height); err != nil {
		return nil, err
	}
	scaledWidth, scaledHeight := ScaleSize(width, height, cfg.Scale)
	if scaledWidth <= 0 || scaledHeight <= 0 {
		return nil, errors.Wrapf(ErrEmptyImage, "scale %dx%d by %v to %dx%d",
			width, height, cfg.Scale, scaledWidth, scaledHeight)
	}
	if err := checkMaxSide(width, height, scaledWidth, scaledHeight); err != nil {
		return nil, err
	}

	resized, err := resample(r, img, width, height)
	if err != nil {
		return nil, err
	}
	return resample(r, resized, scaledWidth, scaledHeight)
}

// checkMaxSide rejects resampling to a side above MaxSide. A step that keeps
// the size is never rejected.
func checkMaxSide(width, height, toWidth, toHeight int) error {
	if width == toWidth && height == toHeight {
		return nil
	}
	if toWidth > MaxSide || toHeight > MaxSide {
		return errors.Wrapf(ErrInvalidSize, "resize %dx%d to %dx%d exceeds %d",
			width, height, toWidth, toHeight, MaxSide)
	}
	return nil
}

func resample(r Resampler, img *imageutil.GrayImage, width, height int) (*imageutil.GrayImage, error) {
	if img.Width() == width && img.Height() == height {
		return img, nil
	}
	resized, err := r.Resample(img, width, height)
	if err != nil {
		return nil, errors.Wrapf(err, "resample %dx%d to %dx%d",
			img.Width(), img.Height(), width, height)
	}
	return resized, nil
}
