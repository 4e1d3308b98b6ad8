// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/convnet/internal/nn"
)

// Layer is the forward/backward contract shared by every layer.
//
//	output := layer.Forward(input)
//	inputGrad := layer.Backward(outputGrad, learningRate)
//
// Backward updates the layer's parameters and returns the gradient with
// respect to the most recent Forward input.
type Layer = nn.Layer

// ErrNoRecentInput is raised when Backward is called before any Forward.
var ErrNoRecentInput = nn.ErrNoRecentInput
