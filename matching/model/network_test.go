package model

import (
	"math"
	"math/rand"
	"testing"
)

// fixedNetwork builds a tiny hand-solvable network:
// one hidden ReLU unit feeding one sigmoid unit.
func fixedNetwork() *Network {
	return &Network{Layers: []Dense{
		{Weights: [][]float64{{2, -1}}, Biases: []float64{0.5}},
		{Weights: [][]float64{{1}}, Biases: []float64{-1}},
	}}
}

func TestForwardPassMath(t *testing.T) {
	n := fixedNetwork()

	// hidden = relu(2*1 + -1*1 + 0.5) = 1.5; out = sigmoid(1.5 - 1)
	got := n.Predict([]float64{1, 1})
	want := 1 / (1 + math.Exp(-0.5))
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Predict = %v, want %v", got, want)
	}

	// hidden pre-activation negative -> relu clamps -> out = sigmoid(-1)
	got = n.Predict([]float64{0, 1})
	want = 1 / (1 + math.Exp(1))
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Predict with clamped hidden = %v, want %v", got, want)
	}
}

func TestInputGradientMatchesNumericGradient(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	n := NewNetwork(4, rng)
	row := []float64{0.3, -1.2, 0.8, 0.1}

	analytic := n.InputGradient(row)

	const h = 1e-6
	for i := range row {
		bumped := append([]float64(nil), row...)
		bumped[i] += h
		dipped := append([]float64(nil), row...)
		dipped[i] -= h
		numeric := (n.Predict(bumped) - n.Predict(dipped)) / (2 * h)
		if math.Abs(analytic[i]-numeric) > 1e-5 {
			t.Errorf("gradient[%d] = %v, numeric %v", i, analytic[i], numeric)
		}
	}
}

func TestFitLearnsSeparableData(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	// Linearly separable clusters around (-2,-2) and (2,2).
	var x [][]float64
	var y []float64
	for i := 0; i < 120; i++ {
		label := float64(i % 2)
		center := -2.0
		if label == 1 {
			center = 2.0
		}
		x = append(x, []float64{center + rng.NormFloat64()*0.3, center + rng.NormFloat64()*0.3})
		y = append(y, label)
	}
	trainX, trainY := x[:100], y[:100]
	valX, valY := x[100:], y[100:]

	n := NewNetwork(2, rng)
	epochs := n.fit(trainX, trainY, valX, valY, rng)
	if epochs == 0 {
		t.Fatal("fit ran zero epochs")
	}

	correct := 0
	for i, row := range valX {
		pred := 0.0
		if n.Predict(row) >= 0.5 {
			pred = 1
		}
		if pred == valY[i] {
			correct++
		}
	}
	if correct < len(valX)*9/10 {
		t.Errorf("validation accuracy %d/%d, want >= 90%%", correct, len(valX))
	}
}

func TestPredictOutputsInUnitInterval(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	n := NewNetwork(5, rng)
	for i := 0; i < 50; i++ {
		row := make([]float64, 5)
		for j := range row {
			row[j] = rng.NormFloat64() * 10
		}
		p := n.Predict(row)
		if p < 0 || p > 1 || math.IsNaN(p) {
			t.Fatalf("Predict = %v, want within [0,1]", p)
		}
	}
}

func TestOversampleBalancesClasses(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	var x [][]float64
	var y []int
	for i := 0; i < 20; i++ {
		x = append(x, []float64{float64(i), float64(i) * 2})
		y = append(y, 0)
	}
	for i := 0; i < 5; i++ {
		x = append(x, []float64{100 + float64(i), 200 + float64(i)})
		y = append(y, 1)
	}

	ox, oy := Oversample(x, y, rng)
	zeros, ones := 0, 0
	for _, label := range oy {
		if label == 0 {
			zeros++
		} else {
			ones++
		}
	}
	if zeros != ones {
		t.Errorf("classes after resampling: %d vs %d, want balanced", zeros, ones)
	}
	if len(ox) != len(oy) {
		t.Fatalf("matrix/labels length mismatch: %d vs %d", len(ox), len(oy))
	}
	// Synthetic minority rows must interpolate within the minority cloud.
	for i := len(x); i < len(ox); i++ {
		if oy[i] != 1 {
			t.Fatalf("synthetic row %d labeled %d, want minority class", i, oy[i])
		}
		if ox[i][0] < 100 || ox[i][0] > 105 {
			t.Errorf("synthetic row %d outside minority range: %v", i, ox[i])
		}
	}
}
