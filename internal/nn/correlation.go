package nn

import (
	"fmt"

	"github.com/born-ml/convnet/internal/parallel"
	"github.com/born-ml/convnet/internal/tensor"
)

// CrossCorrelationMap slides filter across base (virtually zero-padded by
// padding on each side of each axis) and returns a tensor of shape outShape
// holding the inner product at every window position, in row-major order.
//
// Each output element is an independent work item scheduled through
// parallel.For; workers only read base and filter and write their own slot.
//
// outShape must hold exactly as many elements as there are window positions.
// A mismatch panics with tensor.ErrShapeMismatch, degenerate geometry with
// tensor.ErrDegenerateGeometry.
//
// Example:
//
//	// 5x5 input, 3x3 filter, no padding -> 3x3 map
//	m := nn.CrossCorrelationMap(input, filter, tensor.Shape{3, 3}, nil, parallel.DefaultConfig())
func CrossCorrelationMap(base, filter *tensor.Tensor, outShape tensor.Shape, padding []int, cfg parallel.Config) *tensor.Tensor {
	regions := mustRegions(base, filter.Shape(), padding)
	if regions.Len() != outShape.NumElements() {
		panic(fmt.Errorf("cross-correlation: %d windows of %v over %v (padding %v) do not fill output %v: %w",
			regions.Len(), filter.Shape(), base.Shape(), padding, outShape, tensor.ErrShapeMismatch))
	}

	out := tensor.Zeros(outShape)
	values := out.Data()
	parallel.For(len(values), func(i int) {
		values[i] = regions.InnerProduct(i, filter)
	}, cfg)

	return out
}

// mustRegions builds a region iterator, panicking on invalid geometry.
func mustRegions(base *tensor.Tensor, window tensor.Shape, padding []int) *tensor.Regions {
	r, err := tensor.NewRegions(base, window, padding)
	if err != nil {
		panic(err)
	}
	return r
}
