/*
Copyright © 2025 Ken'ichiro Oyama <k1lowxb@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/fatih/color"
	"github.com/k1LoW/flagrgb"
	"github.com/k1LoW/flagrgb/kmeans"
	"github.com/spf13/cobra"
)

var (
	clusters   int
	maxIter    int
	seed       uint64
	clusterOut string
)

var palette = []*color.Color{
	color.New(color.FgRed, color.Bold),
	color.New(color.FgGreen, color.Bold),
	color.New(color.FgBlue, color.Bold),
	color.New(color.FgYellow, color.Bold),
	color.New(color.FgMagenta, color.Bold),
	color.New(color.FgCyan, color.Bold),
	color.New(color.FgHiMagenta, color.Bold),
	color.New(color.FgHiYellow, color.Bold),
}

type clusterGroup struct {
	Centroid flagrgb.RGB `json:"centroid"`
	States   []string    `json:"states"`
}

var clusterCmd = &cobra.Command{
	Use:   "cluster [MANIFEST]",
	Short: "group the flags of a manifest by color with k-means",
	Long: `group the flags of a manifest by color with k-means.

If MANIFEST is omitted, the output file is read.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		path := s.output
		if len(args) > 0 {
			path = args[0]
		}
		m, err := flagrgb.ReadManifest(path)
		if err != nil {
			return err
		}
		points := make([]kmeans.Point, len(m))
		for i, r := range m {
			points[i] = kmeans.Point(r.RGB)
		}
		var rng kmeans.Rand
		if cmd.Flags().Changed("seed") {
			rng = rand.New(rand.NewPCG(seed, seed))
		}
		res, err := kmeans.Cluster(points, s.clusters, maxIter, rng)
		if err != nil {
			return err
		}
		groups := groupClusters(m, res)
		printClusters(cmd.OutOrStdout(), groups)
		if clusterOut == "" {
			return nil
		}
		b, err := json.MarshalIndent(groups, "", "  ")
		if err != nil {
			return err
		}
		return os.WriteFile(clusterOut, b, 0o644)
	},
}

func groupClusters(m flagrgb.Manifest, res *kmeans.Result) []clusterGroup {
	groups := make([]clusterGroup, len(res.Centroids))
	for i, c := range res.Centroids {
		groups[i] = clusterGroup{
			Centroid: flagrgb.RGB(c),
			States:   []string{},
		}
	}
	for i, r := range m {
		g := res.Assignments[i]
		groups[g].States = append(groups[g].States, r.State)
	}
	return groups
}

func printClusters(w io.Writer, groups []clusterGroup) {
	for i, g := range groups {
		c := palette[i%len(palette)]
		_, _ = c.Fprintf(w, "Cluster %d", i+1)
		_, _ = fmt.Fprintf(w, " (R: %.2f, G: %.2f, B: %.2f)\n", g.Centroid[0], g.Centroid[1], g.Centroid[2])
		for _, state := range g.States {
			_, _ = fmt.Fprintf(w, "  %s\n", state)
		}
	}
}

func init() {
	rootCmd.AddCommand(clusterCmd)
	clusterCmd.Flags().IntVarP(&clusters, "clusters", "k", defaultClusters, "number of clusters")
	clusterCmd.Flags().IntVarP(&maxIter, "max-iter", "", 100, "maximum number of iterations")
	clusterCmd.Flags().Uint64VarP(&seed, "seed", "", 0, "random seed for the initial centroids")
	clusterCmd.Flags().StringVarP(&clusterOut, "out", "", "", "write the clusters as JSON to this file")
}
