package tensor

import "fmt"

// Shape represents the dimensions of a tensor.
// Axis 0 is the outermost axis; the last axis varies fastest in memory.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid (all dimensions > 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// Append returns a copy of the shape with dims appended as new trailing axes.
//
// Example:
//
//	Shape{3, 3}.Append(8) // Shape{3, 3, 8}
func (s Shape) Append(dims ...int) Shape {
	out := make(Shape, 0, len(s)+len(dims))
	out = append(out, s...)
	return append(out, dims...)
}

// PadTo returns a copy of the shape extended with trailing 1s up to rank.
// Shapes that already have rank or more axes are returned unchanged (copied).
func (s Shape) PadTo(rank int) Shape {
	out := s.Clone()
	for len(out) < rank {
		out = append(out, 1)
	}
	return out
}

// Offset converts a multi-dimensional index into a flat row-major offset.
// The index must have exactly one entry per axis and lie within bounds.
func (s Shape) Offset(index []int) int {
	if len(index) != len(s) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(s), len(index)))
	}
	offset := 0
	for i, idx := range index {
		if idx < 0 || idx >= s[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, s[i]))
		}
		offset = offset*s[i] + idx
	}
	return offset
}

// Unravel converts a flat row-major offset back into a multi-dimensional index,
// writing it into dst (which must have one entry per axis).
func (s Shape) Unravel(offset int, dst []int) {
	for i := len(s) - 1; i >= 0; i-- {
		dst[i] = offset % s[i]
		offset /= s[i]
	}
}
