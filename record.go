package flagrgb

import (
	"math"
	"strconv"
	"strings"
)

// Record is one entry of the manifest.
type Record struct {
	// Display label derived from the file name
	State string `json:"state"`
	// Average color, red/green/blue
	RGB RGB `json:"rgb"`
	// Path to the thumbnail; never checked for existence
	Thumbnail string `json:"thumbnail"`
}

// Label derives the display label from a flag file name by stripping ext and
// replacing underscores with spaces.
//
//	Label("North_Dakota.png", ".png") // "North Dakota"
func Label(name, ext string) string {
	return strings.ReplaceAll(strings.TrimSuffix(name, ext), "_", " ")
}

// MarshalJSON writes integral channel values with a trailing ".0" (1 -> 1.0) so
// manifests stay byte-compatible with consumers that expect float literals.
func (c RGB) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, 32)
	b = append(b, '[')
	for i, v := range c {
		if i > 0 {
			b = append(b, ',')
		}
		b = appendFloat(b, v)
	}
	return append(b, ']'), nil
}

func appendFloat(b []byte, v float64) []byte {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return append(b, "null"...)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	b = append(b, s...)
	if !strings.Contains(s, ".") {
		b = append(b, ".0"...)
	}
	return b
}
