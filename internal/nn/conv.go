package nn

import (
	"fmt"
	"math/rand/v2"

	"github.com/born-ml/convnet/internal/parallel"
	"github.com/born-ml/convnet/internal/tensor"
)

// Convolutional is an N-dimensional convolutional layer without bias.
//
// The layer owns a single filter bank of shape filterShape ++ [depth]; the
// last axis indexes the individual filters. Forward produces one
// cross-correlation map per filter and stacks them along a new trailing
// depth axis:
//
// Input shape:  inputShape                       (rank r)
// Filter bank:  filterShape ++ [depth]           (rank r+1)
// Output shape: (inputShape - filterShape + 1) ++ [depth]
//
// Example:
//
//	// 28x28 image, 8 filters of 5x5
//	conv := nn.NewConvolutional(tensor.Shape{5, 5}, 8, tensor.Shape{28, 28}, nil)
//	out := conv.Forward(img)          // [24, 24, 8]
//	grad := conv.Backward(dOut, 0.01) // [28, 28], filters updated
type Convolutional struct {
	filters     *Parameter
	filterShape tensor.Shape // padded with trailing 1s to the input rank
	depth       int
	inputShape  tensor.Shape
	ccMapSize   tensor.Shape // shape of one filter's map
	outputShape tensor.Shape // ccMapSize ++ [depth]
	gradPadding []int        // filterShape - 1, turns the input gradient into a full convolution

	recentInput *tensor.Tensor

	parallel parallel.Config
}

// NewConvolutional creates a convolutional layer with He initialization.
//
// Parameters:
//   - filterShape: Size of each filter; padded with trailing 1s up to the input rank
//   - depth: Number of filters
//   - inputShape: Shape of the tensors passed to Forward
//   - src: Random source for filter initialization (nil uses the global source)
//
// Initialization: standard-normal samples scaled by sqrt(2)/sqrt(product(inputShape)).
//
// Panics on invalid shapes, depth <= 0, or a filter that does not fit the input.
func NewConvolutional(filterShape tensor.Shape, depth int, inputShape tensor.Shape, src rand.Source) *Convolutional {
	if depth <= 0 {
		panic(fmt.Sprintf("conv: invalid depth %d", depth))
	}
	if err := inputShape.Validate(); err != nil || len(inputShape) == 0 {
		panic(fmt.Sprintf("conv: invalid input shape %v", inputShape))
	}
	if err := filterShape.Validate(); err != nil {
		panic(fmt.Sprintf("conv: invalid filter shape %v: %v", filterShape, err))
	}
	if len(filterShape) > len(inputShape) {
		panic(fmt.Errorf("conv: filter %v has more axes than input %v: %w", filterShape, inputShape, tensor.ErrShapeMismatch))
	}

	rank := len(inputShape)
	fs := filterShape.PadTo(rank)

	ccMapSize := make(tensor.Shape, rank)
	gradPadding := make([]int, rank)
	for k := range ccMapSize {
		ccMapSize[k] = inputShape[k] - fs[k] + 1
		if ccMapSize[k] <= 0 {
			panic(fmt.Errorf("conv: filter %v does not fit input %v: %w", fs, inputShape, tensor.ErrDegenerateGeometry))
		}
		gradPadding[k] = fs[k] - 1
	}

	bank := He(fs.Append(depth), inputShape.NumElements(), src)

	return &Convolutional{
		filters:     NewParameter("conv.filters", bank),
		filterShape: fs,
		depth:       depth,
		inputShape:  inputShape.Clone(),
		ccMapSize:   ccMapSize,
		outputShape: ccMapSize.Append(depth),
		gradPadding: gradPadding,
		parallel:    parallel.DefaultConfig(),
	}
}

// SetParallel sets how cross-correlation maps are parallelized.
func (c *Convolutional) SetParallel(cfg parallel.Config) {
	c.parallel = cfg
}

// Forward computes one cross-correlation map per filter and stacks them
// along the trailing depth axis; filter i's map is depth slice i.
//
// The input is retained for the next Backward call.
func (c *Convolutional) Forward(input *tensor.Tensor) *tensor.Tensor {
	if !input.Shape().Equal(c.inputShape) {
		panic(fmt.Errorf("conv: input %v, expected %v: %w", input.Shape(), c.inputShape, tensor.ErrShapeMismatch))
	}
	c.recentInput = input

	maps := make([]*tensor.Tensor, 0, c.depth)
	for filters := c.filterRegions(); filters.HasNext(); {
		maps = append(maps, CrossCorrelationMap(input, filters.Next(), c.ccMapSize, nil, c.parallel))
	}

	return tensor.Stack(maps, len(c.ccMapSize))
}

// Backward computes the filter and input gradients for the most recent
// Forward call, then updates the filters: filters -= learningRate * filterGrads.
//
// For each depth slice g of outputGrad and the matching filter f:
//
//	filterGrad[slice] = CrossCorrelationMap(input, g)
//	inputGrad        += CrossCorrelationMap(g, flip(f), padding = filterShape - 1)
//
// The filter bank is replaced only after every slice has been processed.
// Panics with ErrNoRecentInput if Forward was never called and with
// tensor.ErrShapeMismatch if outputGrad does not have the output shape.
func (c *Convolutional) Backward(outputGrad *tensor.Tensor, learningRate float64) *tensor.Tensor {
	if c.recentInput == nil {
		panic(fmt.Errorf("conv: %w", ErrNoRecentInput))
	}
	if !outputGrad.Shape().Equal(c.outputShape) {
		panic(fmt.Errorf("conv: output gradient %v, expected %v: %w", outputGrad.Shape(), c.outputShape, tensor.ErrShapeMismatch))
	}
	if learningRate < 0 {
		panic(fmt.Sprintf("conv: negative learning rate %v", learningRate))
	}

	slices := mustRegions(outputGrad, c.ccMapSize, nil)
	filters := c.filterRegions()

	filterGrads := make([]*tensor.Tensor, 0, c.depth)
	inputGrad := c.recentInput.ZerosLike()

	for slices.HasNext() && filters.HasNext() {
		g := slices.Next()
		f := filters.Next()

		filterGrads = append(filterGrads, CrossCorrelationMap(c.recentInput, g, c.filterShape, nil, c.parallel))

		contribution := CrossCorrelationMap(g, f.Flip(), c.inputShape, c.gradPadding, c.parallel)
		inputGrad = inputGrad.Add(contribution, 1)
	}

	c.filters.SetGrad(tensor.Stack(filterGrads, len(c.filterShape)))
	c.filters.Descend(learningRate)

	return inputGrad
}

// filterRegions iterates the filter bank one filter at a time.
func (c *Convolutional) filterRegions() *tensor.Regions {
	return mustRegions(c.filters.Tensor(), c.filterShape, nil)
}

// Filters returns each filter of the bank in iteration order.
func (c *Convolutional) Filters() []*tensor.Tensor {
	out := make([]*tensor.Tensor, 0, c.depth)
	for filters := c.filterRegions(); filters.HasNext(); {
		out = append(out, filters.Next())
	}
	return out
}

// SetFilters replaces the whole filter bank. bank must have shape
// FilterShape() ++ [Depth()].
func (c *Convolutional) SetFilters(bank *tensor.Tensor) {
	c.filters.SetTensor(bank)
}

// Parameters returns all trainable parameters.
func (c *Convolutional) Parameters() []*Parameter {
	return []*Parameter{c.filters}
}

// OutputShape returns the shape produced by Forward.
func (c *Convolutional) OutputShape() tensor.Shape {
	return c.outputShape.Clone()
}

// InputShape returns the shape Forward expects.
func (c *Convolutional) InputShape() tensor.Shape {
	return c.inputShape.Clone()
}

// FilterShape returns the shape of a single filter.
func (c *Convolutional) FilterShape() tensor.Shape {
	return c.filterShape.Clone()
}

// Depth returns the number of filters.
func (c *Convolutional) Depth() int {
	return c.depth
}

// String returns a string representation of the layer.
func (c *Convolutional) String() string {
	return fmt.Sprintf("Convolutional(input=%v, filter=%v, depth=%d, output=%v)",
		c.inputShape, c.filterShape, c.depth, c.outputShape)
}
