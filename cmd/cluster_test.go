package cmd

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"github.com/k1LoW/flagrgb"
	"github.com/k1LoW/flagrgb/kmeans"
)

func TestGroupClusters(t *testing.T) {
	m := flagrgb.Manifest{
		{State: "Alaska", RGB: flagrgb.RGB{0.1, 0.2, 0.6}},
		{State: "Ohio", RGB: flagrgb.RGB{0.7, 0.2, 0.2}},
		{State: "Texas", RGB: flagrgb.RGB{0.6, 0.3, 0.3}},
	}
	res := &kmeans.Result{
		Assignments: []int{1, 0, 0},
		Centroids:   []kmeans.Point{{0.65, 0.25, 0.25}, {0.1, 0.2, 0.6}, {1, 1, 1}},
	}
	got := groupClusters(m, res)
	want := []clusterGroup{
		{Centroid: flagrgb.RGB{0.65, 0.25, 0.25}, States: []string{"Ohio", "Texas"}},
		{Centroid: flagrgb.RGB{0.1, 0.2, 0.6}, States: []string{"Alaska"}},
		{Centroid: flagrgb.RGB{1, 1, 1}, States: []string{}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("groupClusters() mismatch (-want +got):\n%s", diff)
	}
}

func TestPrintClusters(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() {
		color.NoColor = noColor
	})

	buf := new(bytes.Buffer)
	printClusters(buf, []clusterGroup{
		{Centroid: flagrgb.RGB{0.654, 0.25, 0.25}, States: []string{"Ohio", "Texas"}},
		{Centroid: flagrgb.RGB{1, 1, 1}, States: []string{}},
	})
	want := `Cluster 1 (R: 0.65, G: 0.25, B: 0.25)
  Ohio
  Texas
Cluster 2 (R: 1.00, G: 1.00, B: 1.00)
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("printClusters() mismatch (-want +got):\n%s", diff)
	}
}
