package nn

import (
	"math"
	"math/rand/v2"

	"github.com/born-ml/convnet/internal/tensor"
)

// He initialization for weights (He et al. 2015, arXiv:1502.01852).
//
// Draws standard-normal samples and scales them by sqrt(2/fanIn).
// A nil src draws from the global source.
func He(shape tensor.Shape, fanIn int, src rand.Source) *tensor.Tensor {
	scale := math.Sqrt(2) / math.Sqrt(float64(fanIn))
	return tensor.Zeros(shape).RandomSND(src).Scale(scale)
}
