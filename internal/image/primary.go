package image

import (
	"fmt"
	"image"
	"math"
	"math/rand"

	"github.com/jmylchreest/huetone/internal/colour"
)

const (
	// maxSamples caps the pixels fed into clustering.
	maxSamples = 2000

	// clusterCount is the number of k-means clusters to form before
	// selecting the primary.
	clusterCount = 5

	maxIterations = 20
	convergence   = 2.0
)

// PrimaryFromImage derives a primary hex colour from an image. Pixels are
// sampled, clustered with k-means in RGB space, and the cluster that best
// balances dominance and saturation wins; a fully grey image yields its
// dominant grey.
func PrimaryFromImage(img image.Image) (string, error) {
	if img == nil {
		return "", fmt.Errorf("image cannot be nil")
	}

	points := samplePixels(img)
	if len(points) == 0 {
		return "", fmt.Errorf("no pixels found in image")
	}

	k := clusterCount
	if k > len(points) {
		k = len(points)
	}
	centroids, weights := kmeans(points, k)

	best := 0
	bestScore := -1.0
	for i, c := range centroids {
		score := weights[i] * (0.2 + saturationOf(c))
		if score > bestScore {
			bestScore = score
			best = i
		}
	}

	return centroids[best].hex(), nil
}

// point3D represents a point in 3D RGB colour space.
type point3D struct {
	R, G, B float64
}

// distance calculates the Euclidean distance between two points in RGB space.
func (p point3D) distance(other point3D) float64 {
	dr := p.R - other.R
	dg := p.G - other.G
	db := p.B - other.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

func (p point3D) hex() string {
	rgb := colour.RGB{R: clampChannel(p.R), G: clampChannel(p.G), B: clampChannel(p.B)}
	return rgb.Hex()
}

func clampChannel(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(v))))
}

// saturationOf returns the HSL saturation of a centroid in [0, 1].
func saturationOf(p point3D) float64 {
	hsl, err := colour.HexToHSL(p.hex())
	if err != nil {
		return 0
	}
	return float64(hsl.S) / 100.0
}

// samplePixels samples pixels from the image as RGB points. Large images are
// grid-sampled down to maxSamples for performance.
func samplePixels(img image.Image) []point3D {
	bounds := img.Bounds()
	totalPixels := bounds.Dx() * bounds.Dy()

	step := 1
	if totalPixels > maxSamples {
		step = max(int(math.Sqrt(float64(totalPixels)/float64(maxSamples))), 1)
	}

	points := make([]point3D, 0, min(totalPixels, maxSamples))
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r, g, b, _ := img.At(x, y).RGBA()
			points = append(points, point3D{
				R: float64(r >> 8),
				G: float64(g >> 8),
				B: float64(b >> 8),
			})
			if len(points) >= maxSamples {
				return points
			}
		}
	}
	return points
}

// kmeans performs k-means clustering on the sampled points.
// Returns centroids and their weights (relative cluster sizes).
func kmeans(points []point3D, k int) ([]point3D, []float64) {
	centroids := initialCentroids(points, k)
	assignments := make([]int, len(points))

	for iter := 0; iter < maxIterations; iter++ {
		changed := 0
		for i, point := range points {
			nearest := nearestCentroid(point, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}

		// If very few assignments changed, we have converged.
		if float64(changed)/float64(len(points)) < 0.01 {
			break
		}

		newCentroids := recalculateCentroids(points, assignments, k)

		totalMovement := 0.0
		for i := range centroids {
			totalMovement += centroids[i].distance(newCentroids[i])
		}
		centroids = newCentroids

		if totalMovement/float64(k) < convergence {
			break
		}
	}

	weights := make([]float64, k)
	for _, assignment := range assignments {
		weights[assignment]++
	}
	total := float64(len(assignments))
	for i := range weights {
		weights[i] /= total
	}

	return centroids, weights
}

// initialCentroids seeds centroids with k-means++: the first is random, each
// subsequent pick is weighted by squared distance to the nearest existing
// centroid.
func initialCentroids(points []point3D, k int) []point3D {
	centroids := make([]point3D, 0, k)
	centroids = append(centroids, points[rand.Intn(len(points))])

	for len(centroids) < k {
		distances := make([]float64, len(points))
		totalDistance := 0.0
		for i, point := range points {
			minDist := math.MaxFloat64
			for _, centroid := range centroids {
				if d := point.distance(centroid); d < minDist {
					minDist = d
				}
			}
			distances[i] = minDist * minDist
			totalDistance += distances[i]
		}

		if totalDistance == 0 {
			// Remaining points coincide with existing centroids.
			last := centroids[len(centroids)-1]
			centroids = append(centroids, point3D{R: last.R + 0.1, G: last.G + 0.1, B: last.B + 0.1})
			continue
		}

		target := rand.Float64() * totalDistance
		cumulative := 0.0
		for i, dist := range distances {
			cumulative += dist
			if cumulative >= target {
				centroids = append(centroids, points[i])
				break
			}
		}
	}

	return centroids
}

// nearestCentroid finds the index of the nearest centroid to a point.
func nearestCentroid(point point3D, centroids []point3D) int {
	minDist := math.MaxFloat64
	nearest := 0
	for i, centroid := range centroids {
		if d := point.distance(centroid); d < minDist {
			minDist = d
			nearest = i
		}
	}
	return nearest
}

// recalculateCentroids recalculates centroid positions from assigned points.
func recalculateCentroids(points []point3D, assignments []int, k int) []point3D {
	sums := make([]point3D, k)
	counts := make([]int, k)

	for i, point := range points {
		cluster := assignments[i]
		sums[cluster].R += point.R
		sums[cluster].G += point.G
		sums[cluster].B += point.B
		counts[cluster]++
	}

	centroids := make([]point3D, k)
	for i := 0; i < k; i++ {
		if counts[i] > 0 {
			centroids[i] = point3D{
				R: sums[i].R / float64(counts[i]),
				G: sums[i].G / float64(counts[i]),
				B: sums[i].B / float64(counts[i]),
			}
		} else {
			// Empty cluster - reseed randomly.
			centroids[i] = points[rand.Intn(len(points))]
		}
	}
	return centroids
}
