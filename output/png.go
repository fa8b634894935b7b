package output

import (
	"image"
	"image/color"
	"image/draw"
	"strings"
	"unicode/utf8"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"github.com/wbrown/imstr/imageutil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// PNGOptions controls how text is rasterised.
type PNGOptions struct {
	// FontSize in points.
	FontSize float64
	// DPI used to convert points to pixels.
	DPI        float64
	Foreground color.Gray
	Background color.Gray
}

// DefaultPNGOptions returns light glyphs on a dark background, matching a
// terminal, at 12 points and 72 DPI.
func DefaultPNGOptions() PNGOptions {
	return PNGOptions{
		FontSize:   12,
		DPI:        72,
		Foreground: color.Gray{Y: 0xff},
		Background: color.Gray{Y: 0x00},
	}
}

// PNG renders text to a PNG file.
type PNG struct {
	path string
	opts PNGOptions
}

// NewPNG returns a sink rendering to path.
func NewPNG(path string, opts PNGOptions) *PNG {
	return &PNG{path: path, opts: opts}
}

// Write implements Sink.
func (p *PNG) Write(text string) error {
	img, err := RenderText(text, p.opts)
	if err != nil {
		return err
	}
	return errors.Wrap(imageutil.SavePNG(img, p.path), "failed to write png output")
}

// RenderText draws text line by line in Go Mono, one fixed cell per
// character, so columns line up the way they do in a terminal. The image
// is as wide as the longest line and as tall as the number of lines.
func RenderText(text string, opts PNGOptions) (*image.Gray, error) {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	cols := 0
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > cols {
			cols = n
		}
	}
	if cols == 0 {
		return nil, errors.New("nothing to render")
	}

	ttf, err := freetype.ParseFont(gomono.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse font")
	}

	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    opts.FontSize,
		DPI:     opts.DPI,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	// Go Mono is monospaced, so any glyph's advance is the cell width.
	advance, ok := face.GlyphAdvance('M')
	if !ok {
		return nil, errors.New("font has no advance for 'M'")
	}
	metrics := face.Metrics()
	cellWidth := advance.Ceil()
	cellHeight := (metrics.Ascent + metrics.Descent).Ceil()
	ascent := metrics.Ascent.Ceil()

	img := image.NewGray(image.Rect(0, 0, cols*cellWidth, len(lines)*cellHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	ctx := freetype.NewContext()
	ctx.SetDPI(opts.DPI)
	ctx.SetFont(ttf)
	ctx.SetFontSize(opts.FontSize)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.NewUniform(opts.Foreground))
	ctx.SetHinting(font.HintingFull)

	for row, line := range lines {
		col := 0
		for _, r := range line {
			pt := freetype.Pt(col*cellWidth, row*cellHeight+ascent)
			if _, err := ctx.DrawString(string(r), pt); err != nil {
				return nil, errors.Wrapf(err, "failed to draw %q", r)
			}
			col++
		}
	}

	return img, nil
}
