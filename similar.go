package flagrgb

import (
	"cmp"
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/corona10/goimagehash"
	"github.com/k1LoW/errors"
)

// Match is a flag ranked by perceptual similarity to a query image.
type Match struct {
	State    string `json:"state"`
	Path     string `json:"path"`
	Distance int    `json:"distance"` // Hamming distance between perceptual hashes
}

// Similar returns up to n flags closest to the image at query, nearest first.
// n <= 0 returns every flag.
func (c *Converter) Similar(ctx context.Context, query string, n int) (_ []Match, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	qh, err := perceptionHash(query)
	if err != nil {
		return nil, err
	}
	names, err := c.Files()
	if err != nil {
		return nil, err
	}
	matches := make([]Match, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := filepath.Join(c.flagsDir, name)
		h, err := perceptionHash(path)
		if err != nil {
			return nil, err
		}
		d, err := qh.Distance(h)
		if err != nil {
			return nil, fmt.Errorf("failed to compare %s with %s: %w", path, query, err)
		}
		matches = append(matches, Match{
			State:    Label(name, c.ext),
			Path:     path,
			Distance: d,
		})
	}
	slices.SortFunc(matches, func(a, b Match) int {
		if a.Distance != b.Distance {
			return cmp.Compare(a.Distance, b.Distance)
		}
		return strings.Compare(a.State, b.State)
	})
	if n > 0 && len(matches) > n {
		matches = matches[:n]
	}
	return matches, nil
}

func perceptionHash(path string) (*goimagehash.ImageHash, error) {
	img, err := DecodeFile(path)
	if err != nil {
		return nil, err
	}
	h, err := goimagehash.PerceptionHash(img)
	if err != nil {
		return nil, fmt.Errorf("failed to compute perceptual hash of %s: %w", path, err)
	}
	return h, nil
}
