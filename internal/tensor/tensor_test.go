package tensor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helpers

func assertEqualShape(t *testing.T, expected, actual Shape, msg string) {
	t.Helper()
	if !expected.Equal(actual) {
		t.Errorf("%s: expected shape %v, got %v", msg, expected, actual)
	}
}

// mustNew creates a tensor from a slice, failing the test on error.
func mustNew(t *testing.T, shape Shape, values []float64) *Tensor {
	t.Helper()
	tensor, err := New(shape, values)
	require.NoError(t, err)
	return tensor
}

// assertInvariant checks that the value count matches the shape.
func assertInvariant(t *testing.T, tensor *Tensor) {
	t.Helper()
	assert.Equal(t, tensor.Shape().NumElements(), len(tensor.Data()), "values/shape mismatch for %v", tensor)
	assert.NoError(t, tensor.Shape().Validate())
}

// panicErr runs f and returns the error it panicked with, if any.
func panicErr(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
			}
		}
	}()
	f()
	return nil
}

// Shape Tests

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{5}, 5},
		{Shape{3, 4}, 12},
		{Shape{2, 3, 4}, 24},
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("%v.NumElements() = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	assert.NoError(t, Shape{2, 3}.Validate())
	assert.Error(t, Shape{2, 0}.Validate())
	assert.Error(t, Shape{-1, 3}.Validate())
}

func TestShapeComputeStrides(t *testing.T) {
	assert.Equal(t, []int{12, 4, 1}, Shape{2, 3, 4}.ComputeStrides())
	assert.Equal(t, []int{1}, Shape{7}.ComputeStrides())
	assert.Empty(t, Shape{}.ComputeStrides())
}

func TestShapeHelpers(t *testing.T) {
	s := Shape{3, 3}
	assertEqualShape(t, Shape{3, 3, 8}, s.Append(8), "Append")
	assertEqualShape(t, Shape{3, 3}, s, "Append must not modify receiver")
	assertEqualShape(t, Shape{3, 3, 1, 1}, s.PadTo(4), "PadTo")
	assertEqualShape(t, Shape{3, 3}, s.PadTo(1), "PadTo shorter rank")

	shape := Shape{2, 3, 4}
	idx := make([]int, 3)
	for off := 0; off < shape.NumElements(); off++ {
		shape.Unravel(off, idx)
		assert.Equal(t, off, shape.Offset(idx))
	}
	assert.Panics(t, func() { shape.Offset([]int{2, 0, 0}) })
	assert.Panics(t, func() { shape.Offset([]int{0, 0}) })
}

// Tensor Tests

func TestNew(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6}
	tensor := mustNew(t, Shape{2, 3}, values)

	assertEqualShape(t, Shape{2, 3}, tensor.Shape(), "New shape")
	assert.Equal(t, 2, tensor.Rank())
	assert.Equal(t, 6, tensor.NumElements())
	assert.Equal(t, 6.0, tensor.At(1, 2))
	assertInvariant(t, tensor)

	// Values are copied.
	values[0] = 100
	assert.Equal(t, 1.0, tensor.At(0, 0))
}

func TestNewErrors(t *testing.T) {
	_, err := New(Shape{2, 3}, []float64{1, 2, 3})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShapeMismatch))

	_, err = New(Shape{2, 0}, nil)
	assert.Error(t, err)
}

func TestSetAndClone(t *testing.T) {
	a := Zeros(Shape{2, 2})
	a.Set(7, 1, 0)
	assert.Equal(t, []float64{0, 0, 7, 0}, a.Data())

	b := a.Clone()
	b.Set(1, 0, 0)
	assert.Equal(t, 0.0, a.At(0, 0), "clone must not share storage")
	assert.False(t, a.Equal(b))
	assert.True(t, a.Equal(a.Clone()))
}

func TestString(t *testing.T) {
	assert.Equal(t, "Tensor[float64][2 3]", Zeros(Shape{2, 3}).String())
}
