package nn

import (
	"fmt"
	"math"

	"github.com/born-ml/convnet/internal/tensor"
)

// Loss is an elementwise loss function.
//
// Both methods take equal-length expected and actual values and return a
// tensor of shape {n} with one entry per element. A length mismatch panics.
type Loss interface {
	// Loss computes the per-element loss.
	Loss(expected, actual []float64) *tensor.Tensor

	// Derivative computes the per-element derivative of the loss with
	// respect to actual.
	Derivative(expected, actual []float64) *tensor.Tensor
}

// CrossEntropy is the binary cross-entropy loss over probabilities in [0, 1].
//
// For each element:
//
//	expected == 1: loss = -ln(a),    derivative = -1/a
//	otherwise:     loss = -ln(1-a),  derivative = 1/(1-a)
//
// An actual value of exactly 0 or 1 yields an infinite loss or derivative;
// clipping is left to the caller.
type CrossEntropy struct{}

// NewCrossEntropy creates a cross-entropy loss.
func NewCrossEntropy() CrossEntropy {
	return CrossEntropy{}
}

// Loss computes the per-element cross-entropy loss.
func (CrossEntropy) Loss(expected, actual []float64) *tensor.Tensor {
	return elementwise("cross-entropy", expected, actual, func(e, a float64) float64 {
		if e == 1 {
			return -math.Log(a)
		}
		return -math.Log(1 - a)
	})
}

// Derivative computes the per-element derivative of the cross-entropy loss.
func (CrossEntropy) Derivative(expected, actual []float64) *tensor.Tensor {
	return elementwise("cross-entropy", expected, actual, func(e, a float64) float64 {
		if e == 1 {
			return -1 / a
		}
		return 1 / (1 - a)
	})
}

// MSE is the squared error loss: (a - e)², derivative 2(a - e).
type MSE struct{}

// NewMSE creates a squared error loss.
func NewMSE() MSE {
	return MSE{}
}

// Loss computes the per-element squared error.
func (MSE) Loss(expected, actual []float64) *tensor.Tensor {
	return elementwise("mse", expected, actual, func(e, a float64) float64 {
		return (a - e) * (a - e)
	})
}

// Derivative computes the per-element derivative of the squared error.
func (MSE) Derivative(expected, actual []float64) *tensor.Tensor {
	return elementwise("mse", expected, actual, func(e, a float64) float64 {
		return 2 * (a - e)
	})
}

// LossByName returns the loss registered under name ("cross-entropy" or "mse").
func LossByName(name string) (Loss, error) {
	switch name {
	case "cross-entropy", "crossentropy", "ce":
		return NewCrossEntropy(), nil
	case "mse":
		return NewMSE(), nil
	default:
		return nil, fmt.Errorf("unknown loss %q (want cross-entropy or mse)", name)
	}
}

func elementwise(name string, expected, actual []float64, f func(e, a float64) float64) *tensor.Tensor {
	if len(expected) != len(actual) {
		panic(fmt.Errorf("%s: %d expected values vs %d actual: %w", name, len(expected), len(actual), tensor.ErrShapeMismatch))
	}
	if len(expected) == 0 {
		panic(fmt.Sprintf("%s: no values", name))
	}
	out := tensor.Zeros(tensor.Shape{len(expected)})
	values := out.Data()
	for i := range values {
		values[i] = f(expected[i], actual[i])
	}
	return out
}
