// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the N-dimensional convolutional layer and its training
// glue.
//
// # Overview
//
// This package contains:
//   - Layers: Convolutional (any rank, no bias, trained by plain gradient descent)
//   - Loss functions: CrossEntropy, MSE
//   - Utilities: Sequential, Layer interface, Parameter
//   - Primitives: CrossCorrelationMap
//
// # Basic Usage
//
//	import (
//	    "math/rand/v2"
//
//	    "github.com/born-ml/convnet/nn"
//	    "github.com/born-ml/convnet/tensor"
//	)
//
//	func main() {
//	    src := rand.NewPCG(1, 2)
//
//	    // 8 filters of 5x5 over a 28x28 input
//	    model := nn.NewSequential(
//	        nn.NewConvolutional(tensor.Shape{5, 5}, 8, tensor.Shape{28, 28}, src),
//	    )
//
//	    // One training step with squared error
//	    loss := model.TrainStep(input, target, nn.NewMSE(), 0.01)
//	}
//
// # Convolutional
//
// Input of shape S, filters of shape F (padded with trailing 1s to the rank
// of S) and depth D produce an output of shape (S - F + 1) ++ [D]:
//
//	conv := nn.NewConvolutional(tensor.Shape{3, 3}, 4, tensor.Shape{8, 8}, nil)
//	out := conv.Forward(x)             // [6, 6, 4]
//	dx := conv.Backward(dOut, 0.01)    // [8, 8], filters updated
//
// Backward must follow a Forward call; otherwise it panics with
// ErrNoRecentInput.
//
// # Loss Functions
//
// CrossEntropy: binary cross-entropy over probabilities
//
//	l := nn.NewCrossEntropy().Loss(expected, actual)
//
// MSE: squared error for regression
//
//	d := nn.NewMSE().Derivative(expected, actual)
//
// # Parameter Management
//
// Access the filter banks and their latest gradients:
//
//	for _, param := range model.Parameters() {
//	    fmt.Println(param.Name(), param.Tensor().Shape())
//	}
package nn
