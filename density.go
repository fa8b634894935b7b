package imstr

import (
	"strings"

	"github.com/wbrown/imstr/imageutil"
)

// Normalize maps every sample of img to [0, 1] by dividing it by the
// largest value its depth can hold (255 for 8 bit, 65535 for 16 bit).
// The result is indexed [y][x].
func Normalize(img *imageutil.GrayImage) [][]float64 {
	width, height := img.Width(), img.Height()
	maxValue := float64(img.MaxValue())

	rows := make([][]float64, height)
	for y := 0; y < height; y++ {
		rows[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			rows[y][x] = float64(img.Sample(x, y)) / maxValue
		}
	}
	return rows
}

// MapDensity replaces every normalized intensity with its ramp character.
// The grid has the same shape as intensities.
func MapDensity(intensities [][]float64, ramp Ramp) [][]rune {
	grid := make([][]rune, len(intensities))
	for y, row := range intensities {
		grid[y] = make([]rune, len(row))
		for x, v := range row {
			grid[y][x] = ramp.Char(v)
		}
	}
	return grid
}

// Assemble joins the grid into text: each row's characters in column order
// followed by a single '\n', including the last row.
func Assemble(grid [][]rune) string {
	size := 0
	for _, row := range grid {
		size += len(row) + 1
	}

	var b strings.Builder
	b.Grow(size)
	for _, row := range grid {
		for _, c := range row {
			b.WriteRune(c)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
