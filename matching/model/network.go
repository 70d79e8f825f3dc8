package model

import (
	"math"
	"math/rand"
)

// Layer sizes of the match classifier. The head is a single sigmoid unit.
var hiddenSizes = []int{64, 32, 16}

// Dropout rates per hidden layer; the last hidden layer keeps everything.
var dropoutRates = []float64{0.4, 0.2, 0}

// Dense is one fully connected layer: Weights[out][in] plus a bias per
// output unit.
type Dense struct {
	Weights [][]float64 `json:"weights"`
	Biases  []float64   `json:"biases"`
}

// Network is the feed-forward match classifier. Hidden layers use ReLU,
// the output unit sigmoid.
type Network struct {
	Layers []Dense `json:"layers"`
}

// NewNetwork builds a network for the given input width with He-style
// weight initialization.
func NewNetwork(inputDim int, rng *rand.Rand) *Network {
	sizes := append([]int{inputDim}, hiddenSizes...)
	sizes = append(sizes, 1)
	layers := make([]Dense, len(sizes)-1)
	for l := 0; l < len(sizes)-1; l++ {
		in, out := sizes[l], sizes[l+1]
		scale := math.Sqrt(2.0 / float64(in))
		w := make([][]float64, out)
		for o := range w {
			w[o] = make([]float64, in)
			for i := range w[o] {
				w[o][i] = rng.NormFloat64() * scale
			}
		}
		layers[l] = Dense{Weights: w, Biases: make([]float64, out)}
	}
	return &Network{Layers: layers}
}

// InputDim returns the feature width the network was built for.
func (n *Network) InputDim() int {
	if len(n.Layers) == 0 || len(n.Layers[0].Weights) == 0 {
		return 0
	}
	return len(n.Layers[0].Weights[0])
}

func sigmoid(z float64) float64 { return 1 / (1 + math.Exp(-z)) }

// forwardPass runs one row through the network and keeps the
// pre-activations and activations of every layer for backprop.
// dropMasks is nil at inference time; during training each hidden layer's
// mask holds the inverted-dropout keep scaling (0 for dropped units).
type forwardState struct {
	activations [][]float64 // activations[0] is the input row
	preacts     [][]float64
}

func (n *Network) forwardPass(row []float64, dropMasks [][]float64) forwardState {
	state := forwardState{
		activations: make([][]float64, len(n.Layers)+1),
		preacts:     make([][]float64, len(n.Layers)),
	}
	state.activations[0] = row
	current := row
	for l, layer := range n.Layers {
		z := make([]float64, len(layer.Weights))
		for o, w := range layer.Weights {
			sum := layer.Biases[o]
			for i, v := range current {
				sum += w[i] * v
			}
			z[o] = sum
		}
		state.preacts[l] = z
		a := make([]float64, len(z))
		if l == len(n.Layers)-1 {
			a[0] = sigmoid(z[0])
		} else {
			for o, v := range z {
				if v > 0 {
					a[o] = v
				}
			}
			if dropMasks != nil && dropMasks[l] != nil {
				for o := range a {
					a[o] *= dropMasks[l][o]
				}
			}
		}
		state.activations[l+1] = a
		current = a
	}
	return state
}

// Predict returns the raw sigmoid output for one standardized row.
func (n *Network) Predict(row []float64) float64 {
	state := n.forwardPass(row, nil)
	return state.activations[len(state.activations)-1][0]
}

// InputGradient returns d(output)/d(input) for one standardized row,
// used by the expected-gradients explainer.
func (n *Network) InputGradient(row []float64) []float64 {
	state := n.forwardPass(row, nil)
	last := len(n.Layers) - 1
	out := state.activations[last+1][0]

	// Start from the derivative of the sigmoid output w.r.t. its
	// pre-activation, then walk the layers backwards.
	delta := []float64{out * (1 - out)}
	for l := last; l >= 0; l-- {
		layer := n.Layers[l]
		prev := make([]float64, len(layer.Weights[0]))
		for o, w := range layer.Weights {
			for i := range prev {
				prev[i] += delta[o] * w[i]
			}
		}
		if l > 0 {
			for i, z := range state.preacts[l-1] {
				if z <= 0 {
					prev[i] = 0
				}
			}
		}
		delta = prev
	}
	return delta
}

// gradients accumulates per-layer weight and bias gradients for a batch.
type gradients struct {
	weights [][][]float64
	biases  [][]float64
}

func newGradients(n *Network) *gradients {
	g := &gradients{
		weights: make([][][]float64, len(n.Layers)),
		biases:  make([][]float64, len(n.Layers)),
	}
	for l, layer := range n.Layers {
		g.weights[l] = make([][]float64, len(layer.Weights))
		for o := range layer.Weights {
			g.weights[l][o] = make([]float64, len(layer.Weights[o]))
		}
		g.biases[l] = make([]float64, len(layer.Biases))
	}
	return g
}

// backprop adds the binary cross-entropy gradients for one example into g
// and returns the example's loss. target is 0 or 1.
func (n *Network) backprop(row []float64, target float64, dropMasks [][]float64, g *gradients) float64 {
	state := n.forwardPass(row, dropMasks)
	last := len(n.Layers) - 1
	out := state.activations[last+1][0]
	loss := bceLoss(out, target)

	// Sigmoid + BCE collapse to (out - target) at the head.
	delta := []float64{out - target}
	for l := last; l >= 0; l-- {
		layer := n.Layers[l]
		input := state.activations[l]
		for o := range layer.Weights {
			g.biases[l][o] += delta[o]
			for i, v := range input {
				g.weights[l][o][i] += delta[o] * v
			}
		}
		if l == 0 {
			break
		}
		prev := make([]float64, len(input))
		for o, w := range layer.Weights {
			for i := range prev {
				prev[i] += delta[o] * w[i]
			}
		}
		for i, z := range state.preacts[l-1] {
			if z <= 0 {
				prev[i] = 0
			}
		}
		if dropMasks != nil && dropMasks[l-1] != nil {
			for i := range prev {
				prev[i] *= dropMasks[l-1][i]
			}
		}
		delta = prev
	}
	return loss
}

const lossEpsilon = 1e-7

func bceLoss(pred, target float64) float64 {
	p := math.Min(math.Max(pred, lossEpsilon), 1-lossEpsilon)
	return -(target*math.Log(p) + (1-target)*math.Log(1-p))
}

// Loss returns the mean binary cross-entropy over a standardized set.
func (n *Network) Loss(rows [][]float64, targets []float64) float64 {
	if len(rows) == 0 {
		return 0
	}
	var sum float64
	for i, row := range rows {
		sum += bceLoss(n.Predict(row), targets[i])
	}
	return sum / float64(len(rows))
}

// clone deep-copies the network, used to snapshot the best weights during
// early stopping.
func (n *Network) clone() *Network {
	layers := make([]Dense, len(n.Layers))
	for l, layer := range n.Layers {
		w := make([][]float64, len(layer.Weights))
		for o := range layer.Weights {
			w[o] = append([]float64(nil), layer.Weights[o]...)
		}
		layers[l] = Dense{Weights: w, Biases: append([]float64(nil), layer.Biases...)}
	}
	return &Network{Layers: layers}
}
