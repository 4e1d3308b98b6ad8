// Package nn implements the convolutional layer and the small amount of glue
// around it.
//
// This package provides:
//   - Layer interface: forward/backward contract shared by all layers
//   - Parameter: learnable tensor with its most recent gradient
//   - CrossCorrelationMap: parallel sliding-window inner product
//   - Convolutional: N-dimensional convolutional layer with gradient descent
//   - Loss functions: CrossEntropy, MSE
//   - Sequential: container chaining layers for a training step
package nn

import (
	"errors"

	"github.com/born-ml/convnet/internal/tensor"
)

// ErrNoRecentInput is raised when Backward is called before any Forward.
var ErrNoRecentInput = errors.New("backward called before forward: no recent input")

// Layer is the interface every layer in a network implements.
//
// Layers are driven by a single goroutine: Forward, then Backward for the
// same step. Concurrent Backward calls on one layer are not supported.
type Layer interface {
	// Forward computes the layer output and remembers input for the next
	// Backward call.
	Forward(input *tensor.Tensor) *tensor.Tensor

	// Backward takes the gradient of the loss with respect to the most
	// recent output, updates the layer's parameters by gradient descent and
	// returns the gradient with respect to the most recent input.
	Backward(outputGrad *tensor.Tensor, learningRate float64) *tensor.Tensor

	// OutputShape returns the shape of the tensor produced by Forward.
	OutputShape() tensor.Shape
}
