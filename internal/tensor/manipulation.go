package tensor

import (
	"fmt"
	"slices"
)

// Flip reverses t along every axis (a 180° rotation in each dimension).
//
// In row-major layout reversing every axis is the same as reversing the
// flat buffer.
//
// Example:
//
//	[[1, 2], [3, 4]] -> [[4, 3], [2, 1]]
func (t *Tensor) Flip() *Tensor {
	out := make([]float64, len(t.values))
	copy(out, t.values)
	slices.Reverse(out)
	return wrap(t.shape.Clone(), out)
}

// Reshape returns a copy of t viewed with a new shape holding the same
// number of elements.
func (t *Tensor) Reshape(shape Shape) *Tensor {
	if err := shape.Validate(); err != nil {
		panic(fmt.Errorf("reshape: %w", err))
	}
	if shape.NumElements() != len(t.values) {
		panic(fmt.Errorf("reshape: %v has %d elements, %v needs %d: %w",
			t.shape, len(t.values), shape, shape.NumElements(), ErrShapeMismatch))
	}
	out := make([]float64, len(t.values))
	copy(out, t.values)
	return wrap(shape.Clone(), out)
}

// Append concatenates other after t along an existing axis.
//
// Both tensors must have the same rank and the same size on every other axis.
//
// Example:
//
//	a := tensor.Zeros(tensor.Shape{2, 3})
//	b := tensor.Zeros(tensor.Shape{2, 5})
//	c := a.Append(b, 1) // Shape{2, 8}
func (t *Tensor) Append(other *Tensor, axis int) *Tensor {
	if axis < 0 || axis >= len(t.shape) {
		panic(fmt.Sprintf("append: axis %d out of range for rank %d", axis, len(t.shape)))
	}
	if len(t.shape) != len(other.shape) {
		panic(fmt.Errorf("append: rank %d vs %d: %w", len(t.shape), len(other.shape), ErrShapeMismatch))
	}
	for i := range t.shape {
		if i != axis && t.shape[i] != other.shape[i] {
			panic(fmt.Errorf("append along axis %d: %v vs %v: %w", axis, t.shape, other.shape, ErrShapeMismatch))
		}
	}

	shape := t.shape.Clone()
	shape[axis] += other.shape[axis]

	// Each outer index owns one contiguous block from t followed by one from other.
	outer := t.shape[:axis].NumElements()
	blockA := t.shape[axis:].NumElements()
	blockB := other.shape[axis:].NumElements()

	out := make([]float64, 0, len(t.values)+len(other.values))
	for o := 0; o < outer; o++ {
		out = append(out, t.values[o*blockA:(o+1)*blockA]...)
		out = append(out, other.values[o*blockB:(o+1)*blockB]...)
	}
	return wrap(shape, out)
}

// Stack joins equally shaped tensors along a new axis inserted at position
// axis (0 <= axis <= rank). The result is allocated once and filled slice by
// slice, so tensors[k] becomes index k along the new axis.
//
// Example:
//
//	maps := []*Tensor{m0, m1, m2}  // each Shape{3, 3}
//	Stack(maps, 2)                 // Shape{3, 3, 3}, m1 at [:, :, 1]
func Stack(tensors []*Tensor, axis int) *Tensor {
	if len(tensors) == 0 {
		panic("stack: at least one tensor required")
	}
	base := tensors[0].shape
	if axis < 0 || axis > len(base) {
		panic(fmt.Sprintf("stack: axis %d out of range for rank %d", axis, len(base)))
	}
	for _, t := range tensors[1:] {
		mustMatch("stack", base, t.shape)
	}

	shape := make(Shape, 0, len(base)+1)
	shape = append(shape, base[:axis]...)
	shape = append(shape, len(tensors))
	shape = append(shape, base[axis:]...)

	outer := base[:axis].NumElements()
	inner := base[axis:].NumElements()
	n := len(tensors)

	out := make([]float64, shape.NumElements())
	for k, t := range tensors {
		for o := 0; o < outer; o++ {
			dst := (o*n + k) * inner
			copy(out[dst:dst+inner], t.values[o*inner:(o+1)*inner])
		}
	}
	return wrap(shape, out)
}
