package imageutil

import (
	"image"
	"image/color"
)

// ToGrayscale converts a decoded image to a GrayImage. Sources with 16 bit
// channels (Gray16, RGBA64, NRGBA64) keep 16 bit samples; everything else
// becomes 8 bit.
func ToGrayscale(img image.Image) *GrayImage {
	return GrayImageFromImage(img, depthOf(img.ColorModel()))
}

// depthOf reports the sample depth a color model carries.
func depthOf(m color.Model) int {
	switch m {
	case color.Gray16Model, color.RGBA64Model, color.NRGBA64Model:
		return Depth16
	}
	return Depth8
}

// luminance16 returns the 16 bit luminance of c using the standard
// formula Y = 0.299*R + 0.587*G + 0.114*B (BT.601, as in OpenCV's
// COLOR_BGR2GRAY). Alpha is ignored the way OpenCV ignores it when reading
// grayscale, so non-premultiplied colors are read as stored.
func luminance16(c color.Color) uint32 {
	var n color.NRGBA64
	switch v := c.(type) {
	case color.NRGBA:
		n = color.NRGBA64{R: uint16(v.R) * 0x101, G: uint16(v.G) * 0x101, B: uint16(v.B) * 0x101}
	case color.NRGBA64:
		n = v
	default:
		n = color.NRGBA64Model.Convert(c).(color.NRGBA64)
	}
	lum := (299*uint32(n.R) + 587*uint32(n.G) + 114*uint32(n.B) + 500) / 1000
	if lum > 0xffff {
		lum = 0xffff
	}
	return lum
}
