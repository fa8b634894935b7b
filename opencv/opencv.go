//go:build opencv

// Package opencv provides a decoder and a resampler backed by OpenCV
// through gocv. It needs OpenCV installed and is only built with the
// "opencv" build tag:
//
//	go build -tags opencv ./...
package opencv

import (
	"image"

	"github.com/pkg/errors"
	"github.com/wbrown/imstr/imageutil"
	"gocv.io/x/gocv"
)

// Decoder reads images with cv::imread, keeping 16-bit samples when the
// file has them.
type Decoder struct{}

// Decode implements the converter's decoder.
func (Decoder) Decode(path string) (*imageutil.GrayImage, error) {
	mat := gocv.IMRead(path, gocv.IMReadGrayscale|gocv.IMReadAnyDepth)
	defer mat.Close()
	if mat.Empty() {
		return nil, &imageutil.DecodeError{Path: path, Err: errors.New("could not read image")}
	}
	img, err := matToGray(mat)
	if err != nil {
		return nil, &imageutil.DecodeError{Path: path, Err: err}
	}
	return img, nil
}

// Resampler resizes with INTER_AREA, OpenCV's pixel area relation
// resampling.
type Resampler struct{}

// Resample implements the converter's resampler.
func (Resampler) Resample(img *imageutil.GrayImage, width, height int) (*imageutil.GrayImage, error) {
	if width < 1 || height < 1 {
		return nil, errors.Wrapf(imageutil.ErrInvalidSize, "got %dx%d", width, height)
	}

	src := grayToMat(img)
	defer src.Close()
	dst := gocv.NewMat()
	defer dst.Close()

	gocv.Resize(src, &dst, image.Pt(width, height), 0, 0, gocv.InterpolationArea)
	if dst.Empty() {
		return nil, errors.Errorf("opencv resize to %dx%d failed", width, height)
	}
	return matToGray(dst)
}

// matToGray copies a single channel 8 or 16 bit Mat.
func matToGray(mat gocv.Mat) (*imageutil.GrayImage, error) {
	height, width := mat.Rows(), mat.Cols()

	switch mat.Type() {
	case gocv.MatTypeCV8U:
		img := imageutil.NewGrayImage(width, height, imageutil.Depth8)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				img.SetSample(x, y, uint32(mat.GetUCharAt(y, x)))
			}
		}
		return img, nil
	case gocv.MatTypeCV16U:
		img := imageutil.NewGrayImage(width, height, imageutil.Depth16)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				// CV_16U is read through the signed accessor.
				img.SetSample(x, y, uint32(uint16(mat.GetShortAt(y, x))))
			}
		}
		return img, nil
	}
	return nil, errors.Errorf("unsupported mat type %v", mat.Type())
}

// grayToMat copies img into a new Mat of matching depth. The caller owns
// the Mat.
func grayToMat(img *imageutil.GrayImage) gocv.Mat {
	b := img.Bounds()
	if img.Depth() == imageutil.Depth16 {
		mat := gocv.NewMatWithSize(b.Dy(), b.Dx(), gocv.MatTypeCV16U)
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				mat.SetShortAt(y, x, int16(uint16(img.Sample(b.Min.X+x, b.Min.Y+y))))
			}
		}
		return mat
	}

	mat := gocv.NewMatWithSize(b.Dy(), b.Dx(), gocv.MatTypeCV8U)
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			mat.SetUCharAt(y, x, uint8(img.Sample(b.Min.X+x, b.Min.Y+y)))
		}
	}
	return mat
}
