package flagrgb

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/k1LoW/errors"
)

const watchDebounce = 300 * time.Millisecond

// Watch runs the conversion once, then reruns the whole conversion whenever a flag image
// in the flag directory is created, written, removed or renamed.
// It returns nil when ctx is done and stops at the first failed run.
func (c *Converter) Watch(ctx context.Context, out string) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if err := c.Run(ctx, out); err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close()
	if err := w.Add(c.flagsDir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", c.flagsDir, err)
	}
	c.logger.Info("waiting for changes", slog.String("dir", c.flagsDir))

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !c.qualifies(filepath.Base(ev.Name)) || ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			c.logger.Debug("detected change", slog.String("file", ev.Name), slog.String("op", ev.Op.String()))
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
			} else {
				timer.Reset(watchDebounce)
			}
			fire = timer.C
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("failed to watch %s: %w", c.flagsDir, err)
		case <-fire:
			fire = nil
			if ctx.Err() != nil {
				return nil
			}
			if err := c.Run(ctx, out); err != nil {
				return err
			}
			c.logger.Info("waiting for changes", slog.String("dir", c.flagsDir))
		}
	}
}
