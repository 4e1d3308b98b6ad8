package tensor

import (
	"gonum.org/v1/gonum/floats"
)

// Add returns t + scale*other elementwise.
// Both tensors must have identical shapes.
//
// Example:
//
//	updated := filters.Add(grads, -learningRate) // gradient descent step
func (t *Tensor) Add(other *Tensor, scale float64) *Tensor {
	mustMatch("add", t.shape, other.shape)
	out := make([]float64, len(t.values))
	floats.AddScaledTo(out, t.values, scale, other.values)
	return wrap(t.shape.Clone(), out)
}

// Scale returns t multiplied elementwise by s.
func (t *Tensor) Scale(s float64) *Tensor {
	out := make([]float64, len(t.values))
	floats.ScaleTo(out, s, t.values)
	return wrap(t.shape.Clone(), out)
}

// InnerProduct returns the sum of elementwise products of two identically
// shaped tensors.
func (t *Tensor) InnerProduct(other *Tensor) float64 {
	mustMatch("inner product", t.shape, other.shape)
	return floats.Dot(t.values, other.values)
}

// Sum returns the sum of all elements.
func (t *Tensor) Sum() float64 {
	return floats.Sum(t.values)
}

// Mean returns the arithmetic mean of all elements.
func (t *Tensor) Mean() float64 {
	return floats.Sum(t.values) / float64(len(t.values))
}
