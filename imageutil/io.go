package imageutil

import (
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	"image/png"
	"os"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"  // Register BMP decoder
	_ "golang.org/x/image/tiff" // Register TIFF decoder
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// DecodeError reports an image that could not be read or decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// LoadGray loads the image at path and reduces it to a single channel.
// Supports PNG, JPEG, GIF, BMP, TIFF and WebP.
func LoadGray(path string) (*GrayImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: errors.Wrap(err, "failed to open image")}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: errors.Wrap(err, "failed to decode image")}
	}

	return ToGrayscale(img), nil
}

// Decoder decodes image files with the standard library and
// golang.org/x/image codecs.
type Decoder struct{}

// Decode implements imstr.Decoder.
func (Decoder) Decode(path string) (*GrayImage, error) {
	return LoadGray(path)
}

// SavePNG saves an image as PNG to the specified path.
func SavePNG(img image.Image, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create file")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "failed to close file")
		}
	}()

	return errors.Wrap(png.Encode(f, img), "failed to encode png")
}
