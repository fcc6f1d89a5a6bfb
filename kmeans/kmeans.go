// Package kmeans groups colors with Lloyd's k-means algorithm.
package kmeans

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// Point is a color in RGB space.
type Point [3]float64

// Rand picks the initial centroids. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

type Result struct {
	// Assignments[i] is the cluster index of points[i]
	Assignments []int
	Centroids   []Point
}

// Cluster partitions points into k clusters.
//
// The initial centroids are k points picked at random (with replacement). Each
// iteration assigns every point to its nearest centroid and moves every centroid to
// the mean of its members; a cluster that lost all of its members keeps its centroid.
// It stops when the centroids no longer move or after maxIter iterations.
func Cluster(points []Point, k, maxIter int, rng Rand) (*Result, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("no points to cluster")
	}
	if k < 1 {
		return nil, fmt.Errorf("invalid number of clusters: %d", k)
	}
	if maxIter < 1 {
		return nil, fmt.Errorf("invalid number of iterations: %d", maxIter)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	centroids := make([]Point, k)
	for i := range centroids {
		centroids[i] = points[rng.IntN(len(points))]
	}
	assignments := make([]int, len(points))
	for range maxIter {
		for i, p := range points {
			assignments[i] = nearest(p, centroids)
		}
		next := make([]Point, k)
		counts := make([]int, k)
		for i, p := range points {
			c := assignments[i]
			for j := range p {
				next[c][j] += p[j]
			}
			counts[c]++
		}
		for i := range next {
			if counts[i] == 0 {
				next[i] = centroids[i]
				continue
			}
			for j := range next[i] {
				next[i][j] /= float64(counts[i])
			}
		}
		converged := slices.Equal(centroids, next)
		centroids = next
		if converged {
			break
		}
	}
	return &Result{
		Assignments: assignments,
		Centroids:   centroids,
	}, nil
}

// nearest returns the index of the centroid closest to p. The first of equally close centroids wins.
func nearest(p Point, centroids []Point) int {
	best := 0
	bestDist := distance2(p, centroids[0])
	for i := 1; i < len(centroids); i++ {
		if d := distance2(p, centroids[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func distance2(a, b Point) float64 {
	var d float64
	for i := range a {
		diff := a[i] - b[i]
		d += diff * diff
	}
	return d
}
