package flagrgb

import (
	"context"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/k1LoW/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

const (
	DefaultThumbnailWidth  = 128
	DefaultThumbnailHeight = 80
)

// GenerateThumbnails writes a scaled copy of every flag image to the thumbnail directory,
// under the same file name the manifest records.
func (c *Converter) GenerateThumbnails(ctx context.Context, width, height int) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if width < 1 || height < 1 {
		return fmt.Errorf("invalid thumbnail size: %dx%d", width, height)
	}
	if c.thumbnailsDir == "" {
		return fmt.Errorf("thumbnail directory is not set")
	}
	names, err := c.Files()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(c.thumbnailsDir, 0o755); err != nil {
		return fmt.Errorf("failed to create thumbnail directory %s: %w", c.thumbnailsDir, err)
	}
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.generateThumbnail(name, width, height); err != nil {
			c.logger.Error("failed to generate thumbnail", slog.String("file", name), slog.String("error", err.Error()))
			return err
		}
		c.logger.Info("generated thumbnail", slog.String("path", c.ThumbnailPath(name)))
	}
	c.logger.Info("thumbnail completed", slog.Int("count", len(names)))
	return nil
}

// MissingThumbnails returns the thumbnail paths of the manifest that do not exist.
func (c *Converter) MissingThumbnails() (_ []string, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	names, err := c.Files()
	if err != nil {
		return nil, err
	}
	var missing []string
	for _, name := range names {
		p := c.ThumbnailPath(name)
		if _, err := os.Stat(filepath.FromSlash(p)); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to stat thumbnail %s: %w", p, err)
			}
			missing = append(missing, p)
		}
	}
	return missing, nil
}

func (c *Converter) generateThumbnail(name string, width, height int) (err error) {
	src, err := DecodeFile(filepath.Join(c.flagsDir, name))
	if err != nil {
		return err
	}
	if src.Bounds().Empty() {
		return fmt.Errorf("failed to generate thumbnail of %s: %w", name, ErrEmptyImage)
	}
	dst := Thumbnail(src, width, height)
	path := filepath.Join(c.thumbnailsDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create thumbnail %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close thumbnail %s: %w", path, cerr)
		}
	}()
	if err := encodeImage(f, dst, filepath.Ext(name)); err != nil {
		return fmt.Errorf("failed to encode thumbnail %s: %w", path, err)
	}
	return nil
}

// Thumbnail scales src to fit inside width x height, keeping its aspect ratio.
// Images that already fit are copied at their original size. An empty src gives
// an empty thumbnail.
func Thumbnail(src image.Image, width, height int) *image.RGBA {
	b := src.Bounds()
	w, h := fitSize(b.Dx(), b.Dy(), width, height)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Rect, src, b, draw.Src, nil)
	return dst
}

func fitSize(srcW, srcH, maxW, maxH int) (int, int) {
	if srcW <= 0 || srcH <= 0 {
		return 0, 0
	}
	if srcW <= maxW && srcH <= maxH {
		return srcW, srcH
	}
	w, h := maxW, srcH*maxW/srcW
	if h > maxH {
		w, h = srcW*maxH/srcH, maxH
	}
	return max(w, 1), max(h, 1)
}

func encodeImage(w io.Writer, img image.Image, ext string) error {
	switch strings.ToLower(ext) {
	case ".png":
		return png.Encode(w, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
	case ".gif":
		return gif.Encode(w, img, nil)
	case ".bmp":
		return bmp.Encode(w, img)
	case ".tif", ".tiff":
		return tiff.Encode(w, img, nil)
	default:
		return fmt.Errorf("unsupported thumbnail format: %s", ext)
	}
}
