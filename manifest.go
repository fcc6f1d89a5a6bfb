package flagrgb

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/k1LoW/errors"
)

// Manifest is the ordered list of records written as one JSON document.
type Manifest []Record

// Marshal encodes the manifest as a JSON array indented with 2 spaces.
// HTML characters are written as is and there is no trailing newline.
func (m Manifest) Marshal() ([]byte, error) {
	if m == nil {
		m = Manifest{}
	}
	buf := new(bytes.Buffer)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Write writes the manifest to path, replacing any existing file.
// The content goes to a temporary file in the same directory which is then renamed,
// so readers never see a partial manifest.
func (m Manifest) Write(path string) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	b, err := m.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file for %s: %w", path, err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write manifest %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", path, err)
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		return fmt.Errorf("failed to chmod manifest %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", path, err)
	}
	return nil
}

// SortByLabel sorts the records by state, keeping the relative order of equal labels.
func (m Manifest) SortByLabel() {
	slices.SortStableFunc(m, func(a, b Record) int {
		return strings.Compare(a.State, b.State)
	})
}

// ReadManifest reads a manifest written by Write.
func ReadManifest(path string) (_ Manifest, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	var m Manifest
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal manifest %s: %w", path, err)
	}
	return m, nil
}
