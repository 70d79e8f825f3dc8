package model

import (
	"math/rand"
	"sort"
)

const smoteNeighbors = 5

// Oversample balances a binary training set by synthesizing minority-class
// rows: each synthetic row is a random interpolation between a minority row
// and one of its k nearest minority neighbors. Only ever applied to the
// training split.
func Oversample(x [][]float64, y []int, rng *rand.Rand) ([][]float64, []int) {
	var zero, one [][]float64
	for i, label := range y {
		if label == 0 {
			zero = append(zero, x[i])
		} else {
			one = append(one, x[i])
		}
	}
	minority, majority := zero, one
	minorityLabel := 0
	if len(one) < len(zero) {
		minority, majority = one, zero
		minorityLabel = 1
	}
	need := len(majority) - len(minority)
	if need <= 0 || len(minority) < 2 {
		return x, y
	}

	outX := make([][]float64, 0, len(x)+need)
	outY := make([]int, 0, len(y)+need)
	outX = append(outX, x...)
	outY = append(outY, y...)

	for i := 0; i < need; i++ {
		base := minority[rng.Intn(len(minority))]
		neighbors := nearestNeighbors(base, minority, smoteNeighbors)
		neighbor := neighbors[rng.Intn(len(neighbors))]
		gap := rng.Float64()
		synthetic := make([]float64, len(base))
		for d := range base {
			synthetic[d] = base[d] + gap*(neighbor[d]-base[d])
		}
		outX = append(outX, synthetic)
		outY = append(outY, minorityLabel)
	}
	return outX, outY
}

// nearestNeighbors returns up to k rows of pool closest to base by
// Euclidean distance, excluding base itself when present.
func nearestNeighbors(base []float64, pool [][]float64, k int) [][]float64 {
	type scored struct {
		row  []float64
		dist float64
	}
	candidates := make([]scored, 0, len(pool))
	for _, row := range pool {
		d := squaredDistance(base, row)
		if d == 0 {
			continue
		}
		candidates = append(candidates, scored{row: row, dist: d})
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].dist < candidates[j].dist })
	if k > len(candidates) {
		k = len(candidates)
	}
	out := make([][]float64, 0, k)
	for _, c := range candidates[:k] {
		out = append(out, c.row)
	}
	if len(out) == 0 {
		// All pool rows coincide with base; interpolating between
		// identical points is a no-op but keeps the caller simple.
		out = append(out, base)
	}
	return out
}

func squaredDistance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
