package flagrgb

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/k1LoW/errors"
)

// DefaultExtension is the file name suffix of the flag images to convert.
const DefaultExtension = ".png"

// Converter computes the manifest for a directory of flag images.
type Converter struct {
	flagsDir      string
	thumbnailsDir string
	ext           string
	sortByLabel   bool
	logger        *slog.Logger
}

type Option func(*Converter) error

// WithThumbnailDir sets the directory the thumbnail paths of the manifest point at.
func WithThumbnailDir(dir string) Option {
	return func(c *Converter) error {
		c.thumbnailsDir = dir
		return nil
	}
}

// WithExtension sets the file name suffix of the images to convert. The match is case-sensitive.
func WithExtension(ext string) Option {
	return func(c *Converter) error {
		if ext == "" {
			return fmt.Errorf("extension must not be empty")
		}
		c.ext = ext
		return nil
	}
}

// WithSortByLabel sorts the manifest by label instead of keeping directory order.
func WithSortByLabel(v bool) Option {
	return func(c *Converter) error {
		c.sortByLabel = v
		return nil
	}
}

// WithLogger sets the logger. A nil logger keeps the default, which discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) error {
		if logger == nil {
			return nil
		}
		c.logger = logger
		return nil
	}
}

// New creates a new Converter for flagsDir.
func New(flagsDir string, opts ...Option) (_ *Converter, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if flagsDir == "" {
		return nil, fmt.Errorf("flag directory is required")
	}
	c := &Converter{
		flagsDir: flagsDir,
		ext:      DefaultExtension,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// FlagsDir returns the directory being converted.
func (c *Converter) FlagsDir() string {
	return c.flagsDir
}

// ThumbnailsDir returns the thumbnail directory.
func (c *Converter) ThumbnailsDir() string {
	return c.thumbnailsDir
}

// Files returns the names of the flag images in the flag directory, in directory order.
// Subdirectories and names without the extension are skipped.
func (c *Converter) Files() (_ []string, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	entries, err := os.ReadDir(c.flagsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read flag directory %s: %w", c.flagsDir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !c.qualifies(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// ThumbnailPath returns the thumbnail path recorded for the flag file name.
// The directory is kept as given, a leading "./" included.
func (c *Converter) ThumbnailPath(name string) string {
	dir := filepath.ToSlash(c.thumbnailsDir)
	if dir == "" || strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return dir + "/" + name
}

// Convert decodes every flag image and returns the manifest.
// The first image that fails to decode aborts the whole conversion.
func (c *Converter) Convert(ctx context.Context) (_ Manifest, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	names, err := c.Files()
	if err != nil {
		return nil, err
	}
	m := make(Manifest, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r, err := c.convert(name)
		if err != nil {
			c.logger.Error("failed to convert flag", slog.String("file", name), slog.String("error", err.Error()))
			return nil, err
		}
		c.logger.Info("converted flag", slog.String("state", r.State), slog.Any("rgb", r.RGB[:]))
		m = append(m, r)
	}
	if c.sortByLabel {
		m.SortByLabel()
	}
	c.logger.Info("convert completed", slog.Int("count", len(m)))
	return m, nil
}

// Run converts the flag directory and writes the manifest to out, overwriting it.
// Nothing is written when the conversion fails.
func (c *Converter) Run(ctx context.Context, out string) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	m, err := c.Convert(ctx)
	if err != nil {
		return err
	}
	if err := m.Write(out); err != nil {
		return err
	}
	c.logger.Info("wrote manifest", slog.String("path", out), slog.Int("count", len(m)))
	return nil
}

func (c *Converter) convert(name string) (Record, error) {
	path := filepath.Join(c.flagsDir, name)
	img, err := DecodeFile(path)
	if err != nil {
		return Record{}, err
	}
	rgb, err := AverageColor(img)
	if err != nil {
		return Record{}, fmt.Errorf("failed to compute average color of %s: %w", path, err)
	}
	return Record{
		State:     Label(name, c.ext),
		RGB:       rgb,
		Thumbnail: c.ThumbnailPath(name),
	}, nil
}

func (c *Converter) qualifies(name string) bool {
	return strings.HasSuffix(name, c.ext)
}
