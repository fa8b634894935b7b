package imageutil

import "math"

// CreateGradientImage creates a horizontal 8 bit gradient test image,
// black on the left edge and white on the right.
func CreateGradientImage(width, height int) *GrayImage {
	img := NewGrayImage(width, height, Depth8)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetSample(x, y, uint32(255*x/(width-1)))
		}
	}
	return img
}

// CreateVerticalGradientImage creates a vertical 8 bit gradient test image.
func CreateVerticalGradientImage(width, height int) *GrayImage {
	img := NewGrayImage(width, height, Depth8)
	for y := 0; y < height; y++ {
		v := uint32(255 * y / (height - 1))
		for x := 0; x < width; x++ {
			img.SetSample(x, y, v)
		}
	}
	return img
}

// CreateCheckerboardImage creates an 8 bit black and white checkerboard.
func CreateCheckerboardImage(width, height, squareSize int) *GrayImage {
	img := NewGrayImage(width, height, Depth8)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if ((x/squareSize)+(y/squareSize))%2 == 0 {
				img.SetSample(x, y, 255)
			}
		}
	}
	return img
}

// CreateSolidImage creates an image filled with a single sample value.
func CreateSolidImage(width, height, depth int, v uint32) *GrayImage {
	img := NewGrayImage(width, height, depth)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetSample(x, y, v)
		}
	}
	return img
}

// CreateImageFromRows builds an image from row-major samples. All rows
// must have the same length.
func CreateImageFromRows(depth int, rows [][]uint32) *GrayImage {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}
	img := NewGrayImage(width, height, depth)
	for y, row := range rows {
		for x, v := range row {
			img.SetSample(x, y, v)
		}
	}
	return img
}

// CalculateMSEGray calculates the Mean Squared Error between two grayscale
// images, in raw sample units.
func CalculateMSEGray(img1, img2 *GrayImage) float64 {
	if img1.Width() != img2.Width() || img1.Height() != img2.Height() {
		return math.MaxFloat64
	}

	width, height := img1.Width(), img1.Height()
	var sumSq float64
	count := float64(width * height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			d := float64(img1.Sample(x, y)) - float64(img2.Sample(x, y))
			sumSq += d * d
		}
	}

	return sumSq / count
}

// CalculateMaxDiff calculates the maximum sample difference between two
// images.
func CalculateMaxDiff(img1, img2 *GrayImage) uint32 {
	if img1.Width() != img2.Width() || img1.Height() != img2.Height() {
		return math.MaxUint32
	}

	var maxDiff uint32
	for y := 0; y < img1.Height(); y++ {
		for x := 0; x < img1.Width(); x++ {
			a, b := img1.Sample(x, y), img2.Sample(x, y)
			d := a - b
			if b > a {
				d = b - a
			}
			if d > maxDiff {
				maxDiff = d
			}
		}
	}
	return maxDiff
}
