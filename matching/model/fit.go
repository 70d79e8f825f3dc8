package model

import (
	"math"
	"math/rand"

	"github.com/decisionhr/talentrank/pkg/logx"
)

const (
	batchSize         = 32
	maxEpochs         = 100
	earlyStopPatience = 5
	learningRate      = 0.001
	adamBeta1         = 0.9
	adamBeta2         = 0.999
	adamEpsilon       = 1e-8
)

// adam carries first and second moment estimates per parameter.
type adam struct {
	mW, vW [][][]float64
	mB, vB [][]float64
	step   int
}

func newAdam(n *Network) *adam {
	a := &adam{
		mW: make([][][]float64, len(n.Layers)),
		vW: make([][][]float64, len(n.Layers)),
		mB: make([][]float64, len(n.Layers)),
		vB: make([][]float64, len(n.Layers)),
	}
	for l, layer := range n.Layers {
		a.mW[l] = make([][]float64, len(layer.Weights))
		a.vW[l] = make([][]float64, len(layer.Weights))
		for o := range layer.Weights {
			a.mW[l][o] = make([]float64, len(layer.Weights[o]))
			a.vW[l][o] = make([]float64, len(layer.Weights[o]))
		}
		a.mB[l] = make([]float64, len(layer.Biases))
		a.vB[l] = make([]float64, len(layer.Biases))
	}
	return a
}

func (a *adam) update(n *Network, g *gradients, batch int) {
	a.step++
	scale := 1 / float64(batch)
	bc1 := 1 - math.Pow(adamBeta1, float64(a.step))
	bc2 := 1 - math.Pow(adamBeta2, float64(a.step))
	for l := range n.Layers {
		for o := range n.Layers[l].Weights {
			for i := range n.Layers[l].Weights[o] {
				grad := g.weights[l][o][i] * scale
				a.mW[l][o][i] = adamBeta1*a.mW[l][o][i] + (1-adamBeta1)*grad
				a.vW[l][o][i] = adamBeta2*a.vW[l][o][i] + (1-adamBeta2)*grad*grad
				n.Layers[l].Weights[o][i] -= learningRate * (a.mW[l][o][i] / bc1) / (math.Sqrt(a.vW[l][o][i]/bc2) + adamEpsilon)
			}
			grad := g.biases[l][o] * scale
			a.mB[l][o] = adamBeta1*a.mB[l][o] + (1-adamBeta1)*grad
			a.vB[l][o] = adamBeta2*a.vB[l][o] + (1-adamBeta2)*grad*grad
			n.Layers[l].Biases[o] -= learningRate * (a.mB[l][o] / bc1) / (math.Sqrt(a.vB[l][o]/bc2) + adamEpsilon)
		}
	}
}

// dropoutMasks draws inverted-dropout masks for the hidden layers.
func dropoutMasks(rng *rand.Rand) [][]float64 {
	masks := make([][]float64, len(hiddenSizes))
	for l, size := range hiddenSizes {
		rate := dropoutRates[l]
		if rate == 0 {
			continue
		}
		mask := make([]float64, size)
		keep := 1 - rate
		for o := range mask {
			if rng.Float64() < keep {
				mask[o] = 1 / keep
			}
		}
		masks[l] = mask
	}
	return masks
}

// fit trains the network with mini-batch Adam and early stopping on
// validation loss, restoring the best weights seen.
func (n *Network) fit(trainX [][]float64, trainY []float64, valX [][]float64, valY []float64, rng *rand.Rand) int {
	optimizer := newAdam(n)
	bestLoss := math.Inf(1)
	var bestWeights *Network
	sinceBest := 0
	epochs := 0

	order := make([]int, len(trainX))
	for i := range order {
		order[i] = i
	}

	for epoch := 1; epoch <= maxEpochs; epoch++ {
		epochs = epoch
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

		for start := 0; start < len(order); start += batchSize {
			end := start + batchSize
			if end > len(order) {
				end = len(order)
			}
			grads := newGradients(n)
			for _, idx := range order[start:end] {
				masks := dropoutMasks(rng)
				n.backprop(trainX[idx], trainY[idx], masks, grads)
			}
			optimizer.update(n, grads, end-start)
		}

		valLoss := n.Loss(valX, valY)
		if valLoss < bestLoss {
			bestLoss = valLoss
			bestWeights = n.clone()
			sinceBest = 0
		} else {
			sinceBest++
			if sinceBest >= earlyStopPatience {
				logx.Infof("training stopped at epoch %d, best validation loss %.4f", epoch, bestLoss)
				break
			}
		}
	}

	if bestWeights != nil {
		n.Layers = bestWeights.Layers
	}
	return epochs
}
