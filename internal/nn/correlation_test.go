package nn

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/born-ml/convnet/internal/parallel"
	"github.com/born-ml/convnet/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

func mustTensor(t *testing.T, shape tensor.Shape, values []float64) *tensor.Tensor {
	t.Helper()
	x, err := tensor.New(shape, values)
	require.NoError(t, err)
	return x
}

func randomTensor(shape tensor.Shape, seed uint64) *tensor.Tensor {
	return tensor.Zeros(shape).RandomSND(rand.NewPCG(seed, seed+1))
}

// arange5x5 returns a 5x5 tensor holding 0..24 in row-major order.
func arange5x5(t *testing.T) *tensor.Tensor {
	t.Helper()
	values := make([]float64, 25)
	for i := range values {
		values[i] = float64(i)
	}
	return mustTensor(t, tensor.Shape{5, 5}, values)
}

func identity3x3(t *testing.T) *tensor.Tensor {
	t.Helper()
	return mustTensor(t, tensor.Shape{3, 3}, []float64{
		0, 0, 0,
		0, 1, 0,
		0, 0, 0,
	})
}

// TestCrossCorrelationMap_Values tests a hand-computed map.
func TestCrossCorrelationMap_Values(t *testing.T) {
	base := mustTensor(t, tensor.Shape{3, 3}, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	filter := mustTensor(t, tensor.Shape{2, 2}, []float64{
		1, 0,
		0, -1,
	})

	out := CrossCorrelationMap(base, filter, tensor.Shape{2, 2}, nil, parallel.DefaultConfig())

	// Each window: top-left - bottom-right = -4.
	assert.Equal(t, []float64{-4, -4, -4, -4}, out.Data())
}

// TestCrossCorrelationMap_Identity tests that a centered unit filter extracts
// the central block.
func TestCrossCorrelationMap_Identity(t *testing.T) {
	base := arange5x5(t)
	out := CrossCorrelationMap(base, identity3x3(t), tensor.Shape{3, 3}, nil, parallel.DefaultConfig())

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, base.At(i+1, j+1), out.At(i, j))
		}
	}
}

// TestCrossCorrelationMap_Padded tests a full correlation over a zero-padded base.
func TestCrossCorrelationMap_Padded(t *testing.T) {
	base := mustTensor(t, tensor.Shape{2, 2}, []float64{1, 2, 3, 4})
	filter := mustTensor(t, tensor.Shape{2, 2}, []float64{1, 1, 1, 1})

	out := CrossCorrelationMap(base, filter, tensor.Shape{3, 3}, []int{1, 1}, parallel.DefaultConfig())

	want := []float64{
		1, 3, 2,
		4, 10, 6,
		3, 7, 4,
	}
	assert.Equal(t, want, out.Data())
}

// TestCrossCorrelationMap_Linearity tests linearity in the filter.
func TestCrossCorrelationMap_Linearity(t *testing.T) {
	cases := []struct {
		name    string
		base    tensor.Shape
		filter  tensor.Shape
		out     tensor.Shape
		padding []int
	}{
		{"1d", tensor.Shape{9}, tensor.Shape{4}, tensor.Shape{6}, nil},
		{"2d", tensor.Shape{6, 7}, tensor.Shape{3, 2}, tensor.Shape{4, 6}, nil},
		{"2d padded", tensor.Shape{4, 4}, tensor.Shape{3, 3}, tensor.Shape{6, 6}, []int{2, 2}},
		{"3d", tensor.Shape{4, 4, 3}, tensor.Shape{2, 3, 3}, tensor.Shape{3, 2, 1}, nil},
	}

	for i, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := parallel.DefaultConfig()
			base := randomTensor(tc.base, uint64(10*i))
			f1 := randomTensor(tc.filter, uint64(10*i+2))
			f2 := randomTensor(tc.filter, uint64(10*i+4))

			sum := CrossCorrelationMap(base, f1.Add(f2, 1), tc.out, tc.padding, cfg)
			separate := CrossCorrelationMap(base, f1, tc.out, tc.padding, cfg).
				Add(CrossCorrelationMap(base, f2, tc.out, tc.padding, cfg), 1)

			assert.InDeltaSlice(t, separate.Data(), sum.Data(), 1e-9)
		})
	}
}

// TestCrossCorrelationMap_ParallelMatchesSequential tests that worker count
// does not change the result.
func TestCrossCorrelationMap_ParallelMatchesSequential(t *testing.T) {
	base := randomTensor(tensor.Shape{20, 20}, 1)
	filter := randomTensor(tensor.Shape{5, 5}, 2)

	seq := CrossCorrelationMap(base, filter, tensor.Shape{18, 18}, []int{1, 1}, parallel.Sequential())
	par := CrossCorrelationMap(base, filter, tensor.Shape{18, 18}, []int{1, 1},
		parallel.Config{Enabled: true, NumWorkers: 7, MinChunkSize: 1})

	assert.True(t, seq.Equal(par))
}

// TestCrossCorrelationMap_Faults tests that invalid geometry fails fast.
func TestCrossCorrelationMap_Faults(t *testing.T) {
	base := arange5x5(t)
	filter := identity3x3(t)
	cfg := parallel.DefaultConfig()

	t.Run("output too small", func(t *testing.T) {
		err := panicErr(func() { CrossCorrelationMap(base, filter, tensor.Shape{2, 2}, nil, cfg) })
		require.Error(t, err)
		assert.True(t, errors.Is(err, tensor.ErrShapeMismatch))
	})

	t.Run("output too large", func(t *testing.T) {
		err := panicErr(func() { CrossCorrelationMap(base, filter, tensor.Shape{4, 4}, nil, cfg) })
		require.Error(t, err)
		assert.True(t, errors.Is(err, tensor.ErrShapeMismatch))
	})

	t.Run("degenerate geometry", func(t *testing.T) {
		big := randomTensor(tensor.Shape{6, 6}, 3)
		err := panicErr(func() { CrossCorrelationMap(base, big, tensor.Shape{1}, nil, cfg) })
		require.Error(t, err)
		assert.True(t, errors.Is(err, tensor.ErrDegenerateGeometry))
	})
}

func BenchmarkCrossCorrelationMap(b *testing.B) {
	base := randomTensor(tensor.Shape{64, 64}, 1)
	filter := randomTensor(tensor.Shape{5, 5}, 2)
	out := tensor.Shape{60, 60}

	b.Run("parallel", func(b *testing.B) {
		cfg := parallel.DefaultConfig()
		for i := 0; i < b.N; i++ {
			CrossCorrelationMap(base, filter, out, nil, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		cfg := parallel.Sequential()
		for i := 0; i < b.N; i++ {
			CrossCorrelationMap(base, filter, out, nil, cfg)
		}
	})
}
