// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand/v2"

	"github.com/born-ml/convnet/internal/nn"
	"github.com/born-ml/convnet/internal/parallel"
	"github.com/born-ml/convnet/tensor"
)

// Layers

// Convolutional represents an N-dimensional convolutional layer.
type Convolutional = nn.Convolutional

// NewConvolutional creates a convolutional layer with He initialization.
//
// Example:
//
//	conv := nn.NewConvolutional(tensor.Shape{5, 5}, 8, tensor.Shape{28, 28}, rand.NewPCG(1, 2))
func NewConvolutional(filterShape tensor.Shape, depth int, inputShape tensor.Shape, src rand.Source) *Convolutional {
	return nn.NewConvolutional(filterShape, depth, inputShape, src)
}

// ParallelConfig controls how cross-correlation maps are spread over goroutines.
type ParallelConfig = parallel.Config

// DefaultParallelConfig returns one worker per CPU.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// CrossCorrelationMap slides filter over base (zero padded by padding) and
// returns the inner product at every placement, shaped as outShape.
func CrossCorrelationMap(base, filter *tensor.Tensor, outShape tensor.Shape, padding []int, cfg ParallelConfig) *tensor.Tensor {
	return nn.CrossCorrelationMap(base, filter, outShape, padding, cfg)
}

// Initialization

// He returns standard-normal samples scaled by sqrt(2/fanIn).
func He(shape tensor.Shape, fanIn int, src rand.Source) *tensor.Tensor {
	return nn.He(shape, fanIn, src)
}

// Loss functions

// Loss is an elementwise loss function.
type Loss = nn.Loss

// CrossEntropy is the binary cross-entropy loss.
type CrossEntropy = nn.CrossEntropy

// NewCrossEntropy creates a cross-entropy loss.
func NewCrossEntropy() CrossEntropy {
	return nn.NewCrossEntropy()
}

// MSE is the squared error loss.
type MSE = nn.MSE

// NewMSE creates a squared error loss.
func NewMSE() MSE {
	return nn.NewMSE()
}

// LossByName returns the loss registered under name ("cross-entropy" or "mse").
func LossByName(name string) (Loss, error) {
	return nn.LossByName(name)
}

// Containers

// Sequential chains layers for forward and backward passes.
type Sequential = nn.Sequential

// NewSequential creates a new Sequential container.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewConvolutional(tensor.Shape{3, 3}, 4, tensor.Shape{12, 12}, src),
//	    nn.NewConvolutional(tensor.Shape{3, 3, 4}, 2, tensor.Shape{10, 10, 4}, src),
//	)
func NewSequential(layers ...Layer) *Sequential {
	return nn.NewSequential(layers...)
}
