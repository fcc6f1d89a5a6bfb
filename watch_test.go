package flagrgb

import (
	"context"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatch(t *testing.T) {
	dir := newFlagsDir(t)
	out := filepath.Join(t.TempDir(), "flags_data.json")
	msgs := make(messages, 100)
	c, err := New(dir, WithLogger(slog.New(msgs)))
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- c.Watch(ctx, out)
	}()
	waitFor := func(msg string) {
		t.Helper()
		timeout := time.After(10 * time.Second)
		for {
			select {
			case m := <-msgs:
				if m == msg {
					return
				}
			case err := <-done:
				t.Fatalf("Watch returned before %q: %v", msg, err)
			case <-timeout:
				t.Fatalf("timed out waiting for %q", msg)
			}
		}
	}

	waitFor("waiting for changes")
	m, err := ReadManifest(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(m) != 3 {
		t.Fatalf("got %d records, want 3", len(m))
	}

	// rename into place so the watcher never sees a partial image
	tmp := filepath.Join(dir, "Utah.tmp")
	writePNG(t, tmp, uniform(2, 2, color.Black))
	if err := os.Rename(tmp, filepath.Join(dir, "Utah.png")); err != nil {
		t.Fatal(err)
	}
	waitFor("waiting for changes")
	m, err = ReadManifest(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(m) != 4 {
		t.Fatalf("got %d records, want 4", len(m))
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch() error = %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestWatchStopsOnFailure(t *testing.T) {
	c, err := New(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Watch(context.Background(), filepath.Join(t.TempDir(), "flags_data.json")); err == nil {
		t.Error("want error")
	}
}
