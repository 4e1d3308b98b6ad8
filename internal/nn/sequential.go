package nn

import (
	"fmt"

	"github.com/born-ml/convnet/internal/tensor"
)

// Sequential is a container that chains multiple layers together.
//
// Each layer's output becomes the next layer's input; gradients flow back
// through the layers in reverse order.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewConvolutional(tensor.Shape{3, 3}, 4, tensor.Shape{12, 12}, nil),
//	    nn.NewConvolutional(tensor.Shape{3, 3, 4}, 2, tensor.Shape{10, 10, 4}, nil),
//	)
//
//	loss := model.TrainStep(input, target, nn.NewMSE(), 0.01)
type Sequential struct {
	layers []Layer
}

// NewSequential creates a new Sequential container.
func NewSequential(layers ...Layer) *Sequential {
	return &Sequential{
		layers: layers,
	}
}

// Forward applies all layers in sequence.
func (s *Sequential) Forward(input *tensor.Tensor) *tensor.Tensor {
	output := input

	for _, layer := range s.layers {
		output = layer.Forward(output)
	}

	return output
}

// Backward propagates outputGrad through the layers in reverse order,
// updating each one, and returns the gradient with respect to the input.
func (s *Sequential) Backward(outputGrad *tensor.Tensor, learningRate float64) *tensor.Tensor {
	grad := outputGrad

	for i := len(s.layers) - 1; i >= 0; i-- {
		grad = s.layers[i].Backward(grad, learningRate)
	}

	return grad
}

// OutputShape returns the output shape of the last layer.
//
// Panics if the container is empty.
func (s *Sequential) OutputShape() tensor.Shape {
	if len(s.layers) == 0 {
		panic("Sequential.OutputShape: no layers")
	}
	return s.layers[len(s.layers)-1].OutputShape()
}

// TrainStep runs one forward and backward pass for a single sample and
// returns the mean loss measured before the update.
//
// expected must hold as many values as the network output; its shape is
// otherwise ignored.
func (s *Sequential) TrainStep(input, expected *tensor.Tensor, loss Loss, learningRate float64) float64 {
	output := s.Forward(input)
	if expected.NumElements() != output.NumElements() {
		panic(fmt.Errorf("Sequential.TrainStep: expected %v for output %v: %w",
			expected.Shape(), output.Shape(), tensor.ErrShapeMismatch))
	}

	l := loss.Loss(expected.Data(), output.Data())
	grad := loss.Derivative(expected.Data(), output.Data()).Reshape(output.Shape())
	s.Backward(grad, learningRate)

	return l.Mean()
}

// Add appends a layer to the sequence.
func (s *Sequential) Add(layer Layer) {
	s.layers = append(s.layers, layer)
}

// Len returns the number of layers in the sequence.
func (s *Sequential) Len() int {
	return len(s.layers)
}

// Layers returns the layers in forward order.
func (s *Sequential) Layers() []Layer {
	out := make([]Layer, len(s.layers))
	copy(out, s.layers)
	return out
}

// Layer returns the layer at the given index.
//
// Panics if index is out of bounds.
func (s *Sequential) Layer(index int) Layer {
	if index < 0 || index >= len(s.layers) {
		panic("Sequential.Layer: index out of bounds")
	}
	return s.layers[index]
}

// Parameters returns all trainable parameters of layers that expose them.
func (s *Sequential) Parameters() []*Parameter {
	type parameterized interface {
		Parameters() []*Parameter
	}

	var params []*Parameter
	for _, layer := range s.layers {
		if p, ok := layer.(parameterized); ok {
			params = append(params, p.Parameters()...)
		}
	}
	return params
}
