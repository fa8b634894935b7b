package imageutil

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrayImage(t *testing.T) {
	img := NewGrayImage(100, 50, Depth8)
	assert.Equal(t, 100, img.Width())
	assert.Equal(t, 50, img.Height())
	assert.Equal(t, Depth8, img.Depth())
	assert.Equal(t, uint32(255), img.MaxValue())

	img16 := NewGrayImage(3, 4, Depth16)
	assert.Equal(t, Depth16, img16.Depth())
	assert.Equal(t, uint32(65535), img16.MaxValue())
	assert.IsType(t, &image.Gray16{}, img16.Image)
}

func TestNewGrayImageRejectsDepth(t *testing.T) {
	assert.Panics(t, func() { NewGrayImage(1, 1, 12) })
}

func TestGrayImageGetSetSample(t *testing.T) {
	img := NewGrayImage(10, 10, Depth8)
	img.SetSample(5, 5, 128)
	assert.Equal(t, uint32(128), img.Sample(5, 5))
	assert.Equal(t, uint8(128), img.gray.Pix[5*img.gray.Stride+5])

	// Out of range values clamp to the depth's maximum
	img.SetSample(1, 1, 1000)
	assert.Equal(t, uint32(255), img.Sample(1, 1))

	img16 := NewGrayImage(2, 2, Depth16)
	img16.SetSample(1, 0, 40000)
	assert.Equal(t, uint32(40000), img16.Sample(1, 0))
}

func TestGrayImageClone(t *testing.T) {
	img := NewGrayImage(10, 10, Depth8)
	img.SetSample(5, 5, 200)

	clone := img.Clone()
	assert.Equal(t, img.Sample(5, 5), clone.Sample(5, 5))

	// Modify clone, original should be unchanged
	clone.SetSample(5, 5, 10)
	assert.Equal(t, uint32(200), img.Sample(5, 5))
}

func TestToGrayscale(t *testing.T) {
	rgba := image.NewRGBA(image.Rect(0, 0, 3, 1))
	rgba.SetRGBA(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	rgba.SetRGBA(1, 0, color.RGBA{R: 0, G: 0, B: 0, A: 255})
	rgba.SetRGBA(2, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})

	gray := ToGrayscale(rgba)
	require.Equal(t, Depth8, gray.Depth())
	assert.Equal(t, uint32(255), gray.Sample(0, 0), "white")
	assert.Equal(t, uint32(0), gray.Sample(1, 0), "black")
	// Red is 0.299 * 255 = 76.245
	assert.InDelta(t, 76, float64(gray.Sample(2, 0)), 1, "red")
}

func TestToGrayscaleKeepsGrayValues(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 256, 1))
	for x := 0; x < 256; x++ {
		src.SetGray(x, 0, color.Gray{Y: uint8(x)})
	}
	gray := ToGrayscale(src)
	for x := 0; x < 256; x++ {
		assert.Equal(t, uint32(x), gray.Sample(x, 0))
	}
}

func TestToGrayscaleSixteenBit(t *testing.T) {
	src := image.NewNRGBA64(image.Rect(0, 0, 2, 1))
	src.SetNRGBA64(0, 0, color.NRGBA64{R: 0xffff, G: 0xffff, B: 0xffff, A: 0xffff})
	src.SetNRGBA64(1, 0, color.NRGBA64{R: 1000, G: 1000, B: 1000, A: 0xffff})

	gray := ToGrayscale(src)
	require.Equal(t, Depth16, gray.Depth())
	assert.Equal(t, uint32(0xffff), gray.Sample(0, 0))
	assert.Equal(t, uint32(1000), gray.Sample(1, 0))
}

func TestToGrayscaleIgnoresAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 0})
	assert.Equal(t, uint32(255), ToGrayscale(src).Sample(0, 0))
}

func TestToGrayscaleOffsetBounds(t *testing.T) {
	src := image.NewGray(image.Rect(10, 20, 12, 21))
	src.SetGray(11, 20, color.Gray{Y: 99})

	gray := ToGrayscale(src)
	assert.Equal(t, 2, gray.Width())
	assert.Equal(t, 1, gray.Height())
	assert.Equal(t, uint32(99), gray.Sample(1, 0))
}

func TestLoadGray(t *testing.T) {
	tmpDir := t.TempDir()
	img := CreateGradientImage(64, 32)

	pngPath := filepath.Join(tmpDir, "gradient.png")
	require.NoError(t, SavePNG(img.Image, pngPath))

	loaded, err := LoadGray(pngPath)
	require.NoError(t, err)
	assert.Equal(t, Depth8, loaded.Depth())
	// PNG should be lossless
	assert.Zero(t, CalculateMSEGray(img, loaded))
}

func TestLoadGraySixteenBit(t *testing.T) {
	tmpDir := t.TempDir()
	img := CreateSolidImage(4, 4, Depth16, 51234)

	pngPath := filepath.Join(tmpDir, "deep.png")
	require.NoError(t, SavePNG(img.Image, pngPath))

	loaded, err := Decoder{}.Decode(pngPath)
	require.NoError(t, err)
	assert.Equal(t, Depth16, loaded.Depth())
	assert.Equal(t, uint32(51234), loaded.Sample(3, 3))
}

func TestLoadGrayErrors(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := LoadGray(filepath.Join(tmpDir, "missing.png"))
	require.Error(t, err)
	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, filepath.Join(tmpDir, "missing.png"), decodeErr.Path)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	textPath := filepath.Join(tmpDir, "notes.txt")
	require.NoError(t, os.WriteFile(textPath, []byte("not an image"), 0644))
	_, err = LoadGray(textPath)
	require.Error(t, err)
	assert.True(t, errors.As(err, &decodeErr))
	assert.True(t, errors.Is(err, image.ErrFormat))
}

func TestCalculateMSEGray(t *testing.T) {
	img1 := CreateSolidImage(10, 10, Depth8, 0)
	img2 := CreateSolidImage(10, 10, Depth8, 10)

	assert.Zero(t, CalculateMSEGray(img1, img1.Clone()))
	assert.Equal(t, 100.0, CalculateMSEGray(img1, img2))
	assert.Equal(t, uint32(10), CalculateMaxDiff(img1, img2))
}
