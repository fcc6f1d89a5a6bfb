package flagrgb

import (
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func uniform(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	fill(img, img.Bounds(), c)
	return img
}

// fill sets the pixels in r to c without compositing, so transparent colors keep their channels.
func fill(img *image.NRGBA, r image.Rectangle, c color.Color) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, n)
		}
	}
}

// stripes returns an image of n vertical (or horizontal) stripes alternating a and b.
func stripes(w, h, n int, vertical bool, a, b color.Color) *image.NRGBA {
	img := uniform(w, h, a)
	for i := 1; i < n; i += 2 {
		if vertical {
			fill(img, image.Rect(i*w/n, 0, (i+1)*w/n, h), b)
		} else {
			fill(img, image.Rect(0, i*h/n, w, (i+1)*h/n), b)
		}
	}
	return img
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func writeJPEG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, nil); err != nil {
		t.Fatal(err)
	}
}

// newFlagsDir creates the flag images used by most tests:
// New_York (10,20,30), North_Dakota (white) and Ohio (half black, half white).
func newFlagsDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "New_York.png"), uniform(4, 3, color.NRGBA{R: 10, G: 20, B: 30, A: 255}))
	writePNG(t, filepath.Join(dir, "North_Dakota.png"), uniform(4, 3, color.White))
	writePNG(t, filepath.Join(dir, "Ohio.png"), stripes(2, 1, 2, true, color.Black, color.White))
	return dir
}

// messages is a slog.Handler collecting log messages.
type messages chan string

func (m messages) Enabled(context.Context, slog.Level) bool { return true }

func (m messages) Handle(_ context.Context, r slog.Record) error {
	select {
	case m <- r.Message:
	default:
	}
	return nil
}

func (m messages) WithAttrs([]slog.Attr) slog.Handler { return m }

func (m messages) WithGroup(string) slog.Handler { return m }
