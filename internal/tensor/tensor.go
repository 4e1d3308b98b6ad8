// Package tensor implements the dense N-dimensional arrays used by the
// convolution engine, together with the region iterator that slides
// fixed-shape windows across them.
//
// Tensors are value-like: every operation returns a new tensor and leaves its
// receiver untouched. Values are float64, stored row-major (last axis fastest).
package tensor

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two fault classes raised by tensor operations.
// Operations that can only fail through programmer error panic with an error
// wrapping one of these, so callers can still match them with errors.Is
// after a recover.
var (
	ErrShapeMismatch      = errors.New("shape mismatch")
	ErrDegenerateGeometry = errors.New("degenerate geometry")
)

// Tensor is a dense N-dimensional array of float64 values.
//
// Example:
//
//	t, err := tensor.New(tensor.Shape{2, 2}, []float64{1, 2, 3, 4})
//	flipped := t.Flip() // [[4, 3], [2, 1]]
type Tensor struct {
	shape  Shape
	values []float64
}

// New creates a tensor from a shape and a flat row-major slice of values.
// The values are copied.
func New(shape Shape, values []float64) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if shape.NumElements() != len(values) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d: %w",
			shape, shape.NumElements(), len(values), ErrShapeMismatch)
	}
	data := make([]float64, len(values))
	copy(data, values)
	return &Tensor{shape: shape.Clone(), values: data}, nil
}

// wrap builds a tensor around an already sized buffer without copying.
func wrap(shape Shape, values []float64) *Tensor {
	return &Tensor{shape: shape, values: values}
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// Rank returns the number of axes.
func (t *Tensor) Rank() int {
	return len(t.shape)
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return len(t.values)
}

// Data returns the flat row-major values.
//
// WARNING: the slice aliases the tensor's storage.
func (t *Tensor) Data() []float64 {
	return t.values
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor) At(indices ...int) float64 {
	return t.values[t.shape.Offset(indices)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor) Set(value float64, indices ...int) {
	t.values[t.shape.Offset(indices)] = value
}

// Clone creates a deep copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	data := make([]float64, len(t.values))
	copy(data, t.values)
	return wrap(t.shape.Clone(), data)
}

// Equal reports whether both tensors have the same shape and identical values.
func (t *Tensor) Equal(other *Tensor) bool {
	if !t.shape.Equal(other.shape) {
		return false
	}
	for i, v := range t.values {
		if other.values[i] != v {
			return false
		}
	}
	return true
}

// String returns a human-readable representation of the tensor.
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor[float64]%v", t.shape)
}

// mustMatch panics with ErrShapeMismatch unless both shapes are equal.
func mustMatch(op string, a, b Shape) {
	if !a.Equal(b) {
		panic(fmt.Errorf("%s: %v vs %v: %w", op, a, b, ErrShapeMismatch))
	}
}
