package flagrgb

import (
	"context"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFitSize(t *testing.T) {
	tests := []struct {
		srcW, srcH   int
		maxW, maxH   int
		wantW, wantH int
	}{
		{1024, 614, 128, 80, 128, 76},
		{1024, 512, 128, 80, 128, 64},
		{100, 200, 128, 80, 40, 80},
		{50, 30, 128, 80, 50, 30},
		{1000, 1, 128, 80, 128, 1},
		{1, 1000, 128, 80, 1, 80},
		{0, 500, 128, 80, 0, 0},
		{500, 0, 128, 80, 0, 0},
	}
	for _, tt := range tests {
		w, h := fitSize(tt.srcW, tt.srcH, tt.maxW, tt.maxH)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("fitSize(%d, %d, %d, %d) = (%d, %d), want (%d, %d)", tt.srcW, tt.srcH, tt.maxW, tt.maxH, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestThumbnailEmpty(t *testing.T) {
	for _, r := range []image.Rectangle{image.Rect(0, 0, 0, 500), image.Rect(0, 0, 500, 0)} {
		got := Thumbnail(image.NewNRGBA(r), 128, 80)
		if !got.Bounds().Empty() {
			t.Errorf("Thumbnail(%v) bounds = %v, want empty", r, got.Bounds())
		}
	}
}

func TestGenerateThumbnails(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "Kansas.png"), uniform(200, 100, color.NRGBA{B: 255, A: 255}))
	writePNG(t, filepath.Join(dir, "Ohio.png"), uniform(40, 20, color.White))
	thumbs := filepath.Join(t.TempDir(), "thumbnails")

	c, err := New(dir, WithThumbnailDir(thumbs))
	if err != nil {
		t.Fatal(err)
	}
	missing, err := c.MissingThumbnails()
	if err != nil {
		t.Fatal(err)
	}
	if len(missing) != 2 {
		t.Errorf("got %d missing thumbnails, want 2", len(missing))
	}

	if err := c.GenerateThumbnails(context.Background(), DefaultThumbnailWidth, DefaultThumbnailHeight); err != nil {
		t.Fatal(err)
	}

	want := map[string]image.Point{
		"Kansas.png": {128, 64},
		"Ohio.png":   {40, 20},
	}
	for name, size := range want {
		img, err := DecodeFile(filepath.Join(thumbs, name))
		if err != nil {
			t.Fatal(err)
		}
		if got := img.Bounds().Size(); got != size {
			t.Errorf("%s: got size %v, want %v", name, got, size)
		}
	}

	missing, err = c.MissingThumbnails()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string(nil), missing); diff != "" {
		t.Errorf("MissingThumbnails() mismatch (-want +got):\n%s", diff)
	}

	// the manifest points at the generated thumbnails
	m, err := c.Convert(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range m {
		if _, err := DecodeFile(filepath.FromSlash(r.Thumbnail)); err != nil {
			t.Errorf("%s: %v", r.State, err)
		}
	}
}

func TestGenerateThumbnailsError(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "Ohio.png"), uniform(4, 4, color.White))
	tests := []struct {
		name          string
		thumbnailsDir string
		width, height int
	}{
		{"no thumbnail directory", "", 128, 80},
		{"zero width", t.TempDir(), 0, 80},
		{"negative height", t.TempDir(), 128, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(dir, WithThumbnailDir(tt.thumbnailsDir))
			if err != nil {
				t.Fatal(err)
			}
			if err := c.GenerateThumbnails(context.Background(), tt.width, tt.height); err == nil {
				t.Error("want error")
			}
		})
	}
}
