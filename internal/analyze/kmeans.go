package analyze

import (
	"errors"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	kmeansSeed     = 42
	kmeansRestarts = 10
	kmeansMaxIter  = 300
	kmeansTol      = 1e-4
)

var errNoFeatures = errors.New("no features to cluster")

// runKMeans labels each row of data with one of k clusters. Centers are
// seeded with weighted sampling, Lloyd iterations run until the centers
// settle, and the best of several restarts wins on inertia. The fixed
// seed keeps identical inputs producing identical labels.
func runKMeans(data *mat.Dense, k int) ([]int, error) {
	rows, cols := data.Dims()
	if rows == 0 || cols == 0 {
		return nil, errNoFeatures
	}
	if k <= 0 {
		k = 1
	}
	if k > rows {
		k = rows
	}

	rng := rand.New(rand.NewSource(kmeansSeed))

	var bestLabels []int
	bestInertia := math.Inf(1)
	for run := 0; run < kmeansRestarts; run++ {
		labels, inertia := lloyd(data, k, rng)
		if inertia < bestInertia {
			bestInertia = inertia
			bestLabels = labels
		}
	}
	return bestLabels, nil
}

func lloyd(data *mat.Dense, k int, rng *rand.Rand) ([]int, float64) {
	rows, cols := data.Dims()
	centers := seedCenters(data, k, rng)
	labels := make([]int, rows)

	for iter := 0; iter < kmeansMaxIter; iter++ {
		for i := 0; i < rows; i++ {
			labels[i] = nearestCenter(data.RawRowView(i), centers)
		}

		next := make([][]float64, k)
		counts := make([]int, k)
		for c := range next {
			next[c] = make([]float64, cols)
		}
		for i := 0; i < rows; i++ {
			c := labels[i]
			counts[c]++
			floats.Add(next[c], data.RawRowView(i))
		}
		for c := range next {
			if counts[c] == 0 {
				// an emptied cluster adopts the worst-fitting point
				next[c] = farthestPoint(data, centers, labels)
				continue
			}
			floats.Scale(1/float64(counts[c]), next[c])
		}

		shift := 0.0
		for c := range centers {
			shift += sqDist(centers[c], next[c])
		}
		centers = next
		if shift <= kmeansTol {
			break
		}
	}

	inertia := 0.0
	for i := 0; i < rows; i++ {
		c := nearestCenter(data.RawRowView(i), centers)
		labels[i] = c
		inertia += sqDist(data.RawRowView(i), centers[c])
	}
	return labels, inertia
}

// seedCenters picks the first center uniformly and the rest with
// probability proportional to squared distance from the nearest chosen
// center, which spreads the initial centers across the data.
func seedCenters(data *mat.Dense, k int, rng *rand.Rand) [][]float64 {
	rows, _ := data.Dims()
	centers := make([][]float64, 0, k)
	centers = append(centers, cloneRow(data, rng.Intn(rows)))

	dist := make([]float64, rows)
	for len(centers) < k {
		total := 0.0
		for i := 0; i < rows; i++ {
			dist[i] = sqDist(data.RawRowView(i), centers[0])
			for _, c := range centers[1:] {
				if d := sqDist(data.RawRowView(i), c); d < dist[i] {
					dist[i] = d
				}
			}
			total += dist[i]
		}
		if total == 0 {
			// every remaining point coincides with a center
			centers = append(centers, cloneRow(data, rng.Intn(rows)))
			continue
		}
		target := rng.Float64() * total
		idx, acc := 0, 0.0
		for ; idx < rows-1; idx++ {
			acc += dist[idx]
			if acc >= target {
				break
			}
		}
		centers = append(centers, cloneRow(data, idx))
	}
	return centers
}

func nearestCenter(point []float64, centers [][]float64) int {
	best, bestDist := 0, math.Inf(1)
	for c, center := range centers {
		if d := sqDist(point, center); d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best
}

func farthestPoint(data *mat.Dense, centers [][]float64, labels []int) []float64 {
	rows, _ := data.Dims()
	worst, worstDist := 0, -1.0
	for i := 0; i < rows; i++ {
		if d := sqDist(data.RawRowView(i), centers[labels[i]]); d > worstDist {
			worstDist = d
			worst = i
		}
	}
	return cloneRow(data, worst)
}

func sqDist(a, b []float64) float64 {
	d := floats.Distance(a, b, 2)
	return d * d
}

func cloneRow(data *mat.Dense, i int) []float64 {
	row := data.RawRowView(i)
	out := make([]float64, len(row))
	copy(out, row)
	return out
}
