package tensor

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeros(t *testing.T) {
	tensor := Zeros(Shape{3, 4})
	assertEqualShape(t, Shape{3, 4}, tensor.Shape(), "Zeros shape")
	assertInvariant(t, tensor)
	for i, v := range tensor.Data() {
		if v != 0 {
			t.Errorf("Zeros[%d] = %v, want 0", i, v)
		}
	}

	assert.Panics(t, func() { Zeros(Shape{3, 0}) })
}

func TestFull(t *testing.T) {
	tensor := Full(Shape{2, 2}, 3.5)
	assert.Equal(t, []float64{3.5, 3.5, 3.5, 3.5}, tensor.Data())
}

func TestZerosLike(t *testing.T) {
	src := mustNew(t, Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	z := src.ZerosLike()

	assertEqualShape(t, src.Shape(), z.Shape(), "ZerosLike shape")
	assert.Equal(t, 0.0, z.Sum())
	assert.Equal(t, 21.0, src.Sum(), "receiver must be untouched")
}

func TestRandomSND(t *testing.T) {
	shape := Shape{100, 50}
	tensor := Zeros(shape).RandomSND(rand.NewPCG(1, 2))

	assertEqualShape(t, shape, tensor.Shape(), "RandomSND shape")
	assertInvariant(t, tensor)

	// Mean ~0, std ~1 over 5000 samples.
	mean := tensor.Mean()
	assert.InDelta(t, 0, mean, 0.1)

	var sumSq float64
	for _, v := range tensor.Data() {
		sumSq += (v - mean) * (v - mean)
	}
	std := math.Sqrt(sumSq / float64(tensor.NumElements()))
	assert.InDelta(t, 1, std, 0.1)
}

func TestRandomSNDDeterministic(t *testing.T) {
	a := Zeros(Shape{4, 4}).RandomSND(rand.NewPCG(7, 7))
	b := Zeros(Shape{4, 4}).RandomSND(rand.NewPCG(7, 7))
	assert.True(t, a.Equal(b), "same seed must give same samples")
}
