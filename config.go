package imstr

import (
	"math"

	"github.com/pkg/errors"
)

const (
	// DefaultDensity is the ramp used when none is configured, ordered from
	// sparsest to densest.
	DefaultDensity = ".:-i|=+%O#@"
	// DefaultScale leaves the resolved size unchanged.
	DefaultScale = 1.0
)

var (
	ErrEmptyRamp    = errors.New("density ramp is empty")
	ErrInvalidScale = errors.New("scale must be a positive number")
	ErrInvalidSize  = errors.New("width and height must be between 1 and 32768")
	ErrEmptyImage   = errors.New("image has no pixels")
)

// Config holds the render settings for a single conversion. Build it with
// NewConfig and pass it by value; nothing in this package modifies it.
type Config struct {
	// Scale multiplies both resolved dimensions; results are rounded down.
	Scale float64
	// Width and Height are the target size in pixels (one pixel becomes
	// one character). Nil means unset: with one of them set the other is
	// derived from the source aspect ratio, with both set the image is
	// stretched to exactly that size.
	Width  *int
	Height *int
	// Density is the character ramp, sparsest first.
	Density string
	// Invert reverses Density before mapping.
	Invert bool
}

// Option is a functional option for NewConfig.
type Option func(*Config)

// WithScale sets the uniform scale factor applied after width and height
// are resolved.
func WithScale(scale float64) Option {
	return func(c *Config) {
		c.Scale = scale
	}
}

// WithWidth sets the target width.
func WithWidth(width int) Option {
	return func(c *Config) {
		c.Width = &width
	}
}

// WithHeight sets the target height.
func WithHeight(height int) Option {
	return func(c *Config) {
		c.Height = &height
	}
}

// WithDensity sets the density ramp.
func WithDensity(density string) Option {
	return func(c *Config) {
		c.Density = density
	}
}

// WithInvert reverses the density ramp when set.
func WithInvert(invert bool) Option {
	return func(c *Config) {
		c.Invert = invert
	}
}

// NewConfig returns a validated Config.
// Defaults: Scale=1, Density=DefaultDensity, Width and Height unset,
// Invert=false.
func NewConfig(opts ...Option) (Config, error) {
	cfg := Config{
		Scale:   DefaultScale,
		Density: DefaultDensity,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first setting that cannot produce an image.
func (c Config) Validate() error {
	if c.Density == "" {
		return ErrEmptyRamp
	}
	if !(c.Scale > 0) || math.IsInf(c.Scale, 0) {
		return errors.Wrapf(ErrInvalidScale, "scale %v", c.Scale)
	}
	if c.Width != nil && (*c.Width <= 0 || *c.Width > MaxSide) {
		return errors.Wrapf(ErrInvalidSize, "width %d", *c.Width)
	}
	if c.Height != nil && (*c.Height <= 0 || *c.Height > MaxSide) {
		return errors.Wrapf(ErrInvalidSize, "height %d", *c.Height)
	}
	return nil
}

// Ramp returns the ramp the density mapper uses: the configured density,
// reversed when Invert is set.
func (c Config) Ramp() Ramp {
	ramp := Ramp(c.Density)
	if c.Invert {
		return ramp.Reverse()
	}
	return ramp
}
