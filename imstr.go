// Package imstr converts raster images to ASCII art. Each pixel of the
// resized image becomes one character chosen from a density ramp by its
// luminance.
//
// The pipeline is strictly linear:
//
//	decode -> resize -> normalize -> map to ramp -> assemble text
//
// Decoding and resampling are delegated to a Decoder and a Resampler, so
// the same policy runs on the pure Go codecs in imageutil or on OpenCV.
package imstr

import (
	"io"
	"log"

	"github.com/wbrown/imstr/imageutil"
)

// Version is reported by the command line tool.
const Version = "0.0.1"

// Decoder reads an image file into a single-channel image.
type Decoder interface {
	Decode(path string) (*imageutil.GrayImage, error)
}

// Resampler resizes a single-channel image to exactly width x height,
// keeping its sample depth. Implementations should average source pixels
// when shrinking.
type Resampler interface {
	Resample(img *imageutil.GrayImage, width, height int) (*imageutil.GrayImage, error)
}

// Converter runs the conversion pipeline. It keeps no state between calls,
// so one Converter can serve any number of independent conversions.
type Converter struct {
	decoder   Decoder
	resampler Resampler
	logger    *log.Logger
}

// ConverterOption is a functional option for configuring a Converter.
type ConverterOption func(*Converter)

// NewConverter creates a Converter with the given options.
// Defaults: imageutil.Decoder, imageutil.BoxResampler, logging discarded.
func NewConverter(opts ...ConverterOption) *Converter {
	c := &Converter{
		decoder:   imageutil.Decoder{},
		resampler: imageutil.BoxResampler{},
		logger:    log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithDecoder sets the image decoder.
func WithDecoder(d Decoder) ConverterOption {
	return func(c *Converter) {
		c.decoder = d
	}
}

// WithResampler sets the resampler used for both the size and the scale
// step.
func WithResampler(r Resampler) ConverterOption {
	return func(c *Converter) {
		c.resampler = r
	}
}

// WithLogger sets the logger stage progress is reported to.
func WithLogger(l *log.Logger) ConverterOption {
	return func(c *Converter) {
		c.logger = l
	}
}

// ConvertFile decodes the image at path and converts it to text.
func (c *Converter) ConvertFile(path string, cfg Config) (string, error) {
	img, err := c.Decode(path)
	if err != nil {
		return "", err
	}
	return c.Convert(img, cfg)
}

// Decode reads the image at path with the configured decoder.
func (c *Converter) Decode(path string) (*imageutil.GrayImage, error) {
	img, err := c.decoder.Decode(path)
	if err != nil {
		return nil, err
	}
	c.logger.Printf("decoded %s: %dx%d, %d bit", path, img.Width(), img.Height(), img.Depth())
	return img, nil
}

// Convert converts an already decoded image to text.
func (c *Converter) Convert(img *imageutil.GrayImage, cfg Config) (string, error) {
	grid, err := c.Grid(img, cfg)
	if err != nil {
		return "", err
	}
	return Assemble(grid), nil
}

// Grid returns the character grid for img, indexed [row][column]. It has
// one cell per pixel of the resized image.
func (c *Converter) Grid(img *imageutil.GrayImage, cfg Config) ([][]rune, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	resized, err := Resize(img, cfg, c.resampler)
	if err != nil {
		return nil, err
	}
	c.logger.Printf("resized %dx%d to %dx%d", img.Width(), img.Height(),
		resized.Width(), resized.Height())

	ramp := cfg.Ramp()
	c.logger.Printf("mapping with %d character ramp %q", len(ramp), ramp)
	return MapDensity(Normalize(resized), ramp), nil
}
