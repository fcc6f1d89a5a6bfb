package flagrgb

import (
	"errors"
	"image"
	"image/color"
	"strconv"
)

// ErrEmptyImage is returned when an image has no pixels to average.
var ErrEmptyImage = errors.New("image has no pixels")

// RGB is a normalized color. Each channel is in [0, 1].
type RGB [3]float64

// AverageColor returns the per-channel mean of all pixels in img, normalized to [0, 1]
// and rounded to 4 decimal places. Alpha is dropped, not composited.
func AverageColor(img image.Image) (RGB, error) {
	b := img.Bounds()
	n := b.Dx() * b.Dy()
	if n <= 0 {
		return RGB{}, ErrEmptyImage
	}
	var sum [3]uint64
	switch src := img.(type) {
	case *image.NRGBA:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			i := src.PixOffset(b.Min.X, y)
			for x := b.Min.X; x < b.Max.X; x++ {
				sum[0] += uint64(src.Pix[i])
				sum[1] += uint64(src.Pix[i+1])
				sum[2] += uint64(src.Pix[i+2])
				i += 4
			}
		}
	case *image.NRGBA64:
		// 16-bit channels are big-endian; the high byte is the 8-bit value.
		for y := b.Min.Y; y < b.Max.Y; y++ {
			i := src.PixOffset(b.Min.X, y)
			for x := b.Min.X; x < b.Max.X; x++ {
				sum[0] += uint64(src.Pix[i])
				sum[1] += uint64(src.Pix[i+2])
				sum[2] += uint64(src.Pix[i+4])
				i += 8
			}
		}
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				r, g, b := straightRGB(img.At(x, y))
				sum[0] += uint64(r)
				sum[1] += uint64(g)
				sum[2] += uint64(b)
			}
		}
	}
	var rgb RGB
	for i := range sum {
		mean := float64(sum[i]) / float64(n)
		rgb[i] = round4(mean / 255)
	}
	return rgb, nil
}

// straightRGB returns the stored 8-bit channels of c. Non-premultiplied colors are read
// as is so that transparent pixels keep their color.
func straightRGB(c color.Color) (r, g, b uint8) {
	switch c := c.(type) {
	case color.NRGBA:
		return c.R, c.G, c.B
	case color.NRGBA64:
		return uint8(c.R >> 8), uint8(c.G >> 8), uint8(c.B >> 8)
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return n.R, n.G, n.B
}

// round4 rounds v to 4 decimal places using correctly rounded decimal conversion
// (ties to even on the exact binary value).
func round4(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 4, 64), 64)
	if err != nil {
		return v
	}
	return r
}
