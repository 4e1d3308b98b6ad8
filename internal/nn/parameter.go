package nn

import (
	"fmt"

	"github.com/born-ml/convnet/internal/tensor"
)

// Parameter represents a trainable parameter in a neural network.
//
// The owning layer replaces the tensor after each gradient step and records
// the gradient it used, so callers can inspect both between steps.
//
// Example:
//
//	filters := nn.NewParameter("conv.filters", bank)
//	w := filters.Tensor()
//	g := filters.Grad() // nil until the first backward pass
type Parameter struct {
	name   string         // Parameter name (e.g., "conv.filters")
	tensor *tensor.Tensor // The parameter tensor
	grad   *tensor.Tensor // Gradient from the most recent backward pass
}

// NewParameter creates a new trainable parameter.
func NewParameter(name string, t *tensor.Tensor) *Parameter {
	return &Parameter{
		name:   name,
		tensor: t,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter) Tensor() *tensor.Tensor {
	return p.tensor
}

// SetTensor replaces the parameter tensor. The shape must not change.
func (p *Parameter) SetTensor(t *tensor.Tensor) {
	if !t.Shape().Equal(p.tensor.Shape()) {
		panic(fmt.Errorf("parameter %s: %v vs %v: %w", p.name, p.tensor.Shape(), t.Shape(), tensor.ErrShapeMismatch))
	}
	p.tensor = t
}

// Grad returns the gradient tensor.
//
// Returns nil if no gradient has been computed yet (before backward pass).
func (p *Parameter) Grad() *tensor.Tensor {
	return p.grad
}

// SetGrad sets the gradient tensor.
func (p *Parameter) SetGrad(grad *tensor.Tensor) {
	p.grad = grad
}

// ZeroGrad clears the gradient tensor.
func (p *Parameter) ZeroGrad() {
	p.grad = nil
}

// Descend applies one gradient descent step using the stored gradient:
// tensor = tensor - lr*grad. Does nothing if no gradient is stored.
func (p *Parameter) Descend(lr float64) {
	if p.grad == nil {
		return
	}
	p.tensor = p.tensor.Add(p.grad, -lr)
}
