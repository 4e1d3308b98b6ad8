// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"math/rand/v2"

	"github.com/born-ml/convnet/internal/tensor"
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Tensor is a dense row-major float64 tensor.
type Tensor = tensor.Tensor

// Regions iterates the windows of a tensor.
type Regions = tensor.Regions

// Errors reported by tensor operations.
var (
	ErrShapeMismatch      = tensor.ErrShapeMismatch
	ErrDegenerateGeometry = tensor.ErrDegenerateGeometry
)

// New creates a tensor with the given shape, copying values.
func New(shape Shape, values []float64) (*Tensor, error) {
	return tensor.New(shape, values)
}

// Zeros creates a zero-filled tensor.
func Zeros(shape Shape) *Tensor {
	return tensor.Zeros(shape)
}

// Full creates a tensor with every element set to value.
func Full(shape Shape, value float64) *Tensor {
	return tensor.Full(shape, value)
}

// Randn creates a tensor of standard-normal samples drawn from src.
// A nil src draws from the global source.
func Randn(shape Shape, src rand.Source) *Tensor {
	return tensor.Zeros(shape).RandomSND(src)
}

// Stack stacks equally shaped tensors along a new axis.
func Stack(tensors []*Tensor, axis int) *Tensor {
	return tensor.Stack(tensors, axis)
}

// NewRegions creates a window iterator over base.
//
// Returns ErrDegenerateGeometry if the window does not fit the padded base.
func NewRegions(base *Tensor, window Shape, padding []int) (*Regions, error) {
	return tensor.NewRegions(base, window, padding)
}
