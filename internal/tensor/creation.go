package tensor

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Zeros creates a tensor filled with zeros.
// Panics if the shape is invalid.
//
// Example:
//
//	t := tensor.Zeros(tensor.Shape{3, 4})
func Zeros(shape Shape) *Tensor {
	if err := shape.Validate(); err != nil {
		panic(err)
	}
	return wrap(shape.Clone(), make([]float64, shape.NumElements()))
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float64) *Tensor {
	t := Zeros(shape)
	for i := range t.values {
		t.values[i] = value
	}
	return t
}

// ZerosLike returns a zero-filled tensor with the same shape as t.
func (t *Tensor) ZerosLike() *Tensor {
	return Zeros(t.shape)
}

// RandomSND returns a tensor with the same shape as t whose values are
// independent standard-normal samples.
// A nil src draws from the global math/rand/v2 source.
//
// Example:
//
//	src := rand.NewPCG(1, 2)
//	w := tensor.Zeros(tensor.Shape{3, 3, 8}).RandomSND(src)
func (t *Tensor) RandomSND(src rand.Source) *Tensor {
	dist := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	out := t.ZerosLike()
	for i := range out.values {
		out.values[i] = dist.Rand()
	}
	return out
}
