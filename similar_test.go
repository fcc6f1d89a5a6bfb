package flagrgb

import (
	"context"
	"image/color"
	"path/filepath"
	"testing"
)

func TestSimilar(t *testing.T) {
	dir := t.TempDir()
	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}
	alabama := stripes(64, 64, 8, false, red, color.White)
	writePNG(t, filepath.Join(dir, "Alabama.png"), alabama)
	writePNG(t, filepath.Join(dir, "Colorado.png"), stripes(64, 64, 2, true, blue, color.White))
	writePNG(t, filepath.Join(dir, "Georgia.png"), stripes(64, 64, 16, true, red, blue))
	query := filepath.Join(t.TempDir(), "query.png")
	writePNG(t, query, alabama)

	c, err := New(dir)
	if err != nil {
		t.Fatal(err)
	}

	all, err := c.Similar(context.Background(), query, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d matches, want 3", len(all))
	}
	if all[0].State != "Alabama" || all[0].Distance != 0 {
		t.Errorf("got %+v, want Alabama with distance 0 first", all[0])
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Distance > all[i].Distance {
			t.Errorf("matches are not sorted by distance: %+v", all)
		}
	}

	top, err := c.Similar(context.Background(), query, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 2 {
		t.Errorf("got %d matches, want 2", len(top))
	}
}

func TestSimilarMissingQuery(t *testing.T) {
	c, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Similar(context.Background(), filepath.Join(t.TempDir(), "missing.png"), 0); err == nil {
		t.Error("want error")
	}
}
