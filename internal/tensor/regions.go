package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Regions slides a fixed-shape window across a base tensor with stride 1 on
// every axis, optionally over a virtual zero-padded extension of the base.
//
// Windows are produced in row-major order of their origin (last axis
// fastest). Along axis k there are B[k] + 2*P[k] - W[k] + 1 positions.
//
// A window may have fewer axes than the base; the missing trailing axes are
// treated as size 1 and dropped from the yielded tensors. Iterating a filter
// bank of shape [3, 3, depth] with window [3, 3] therefore yields each of the
// depth filters in turn.
//
// The cursor methods (HasNext, Next, Coord, Index) are single-use and not
// restartable. The random-access methods (Len, At, InnerProduct) only read the
// base tensor and are safe for concurrent use.
//
// Example:
//
//	r, err := tensor.NewRegions(input, tensor.Shape{3, 3}, []int{1, 1})
//	for r.HasNext() {
//	    w := r.Next() // Shape{3, 3}
//	}
type Regions struct {
	base    *Tensor
	window  Shape // shape of yielded windows
	full    Shape // window extended with trailing 1s to the base rank
	padding []int // per-axis padding, base rank entries
	counts  Shape // window positions along each axis
	strides []int // base strides
	total   int

	next  int
	coord []int
}

// NewRegions creates a region iterator over base.
//
// window must have at most as many axes as base. padding may be nil or
// shorter than the base rank; missing entries are zero. Returns an error
// wrapping ErrDegenerateGeometry if any axis would have no window position.
func NewRegions(base *Tensor, window Shape, padding []int) (*Regions, error) {
	rank := base.Rank()
	if rank == 0 {
		return nil, fmt.Errorf("regions: base must have at least one axis: %w", ErrShapeMismatch)
	}
	if len(window) > rank {
		return nil, fmt.Errorf("regions: window %v has more axes than base %v: %w", window, base.shape, ErrShapeMismatch)
	}
	if err := window.Validate(); err != nil {
		return nil, fmt.Errorf("regions: invalid window: %w", err)
	}
	if len(padding) > rank {
		return nil, fmt.Errorf("regions: padding %v has more axes than base %v: %w", padding, base.shape, ErrShapeMismatch)
	}

	full := window.PadTo(rank)
	pad := make([]int, rank)
	copy(pad, padding)

	counts := make(Shape, rank)
	for k := range counts {
		if pad[k] < 0 {
			return nil, fmt.Errorf("regions: negative padding %d on axis %d: %w", pad[k], k, ErrDegenerateGeometry)
		}
		counts[k] = base.shape[k] + 2*pad[k] - full[k] + 1
		if counts[k] <= 0 {
			return nil, fmt.Errorf("regions: window %v does not fit base %v with padding %v on axis %d: %w",
				window, base.shape, pad, k, ErrDegenerateGeometry)
		}
	}

	return &Regions{
		base:    base,
		window:  window.Clone(),
		full:    full,
		padding: pad,
		counts:  counts,
		strides: base.shape.ComputeStrides(),
		total:   counts.NumElements(),
	}, nil
}

// Len returns the total number of windows.
func (r *Regions) Len() int {
	return r.total
}

// Counts returns the number of window positions along each base axis.
func (r *Regions) Counts() Shape {
	return r.counts.Clone()
}

// WindowShape returns the shape of the yielded windows.
func (r *Regions) WindowShape() Shape {
	return r.window.Clone()
}

// HasNext reports whether Next will yield another window.
func (r *Regions) HasNext() bool {
	return r.next < r.total
}

// Next returns the next window. Panics once the iterator is exhausted.
func (r *Regions) Next() *Tensor {
	if !r.HasNext() {
		panic("regions: iterator exhausted")
	}
	if r.coord == nil {
		r.coord = make([]int, len(r.counts))
	}
	r.counts.Unravel(r.next, r.coord)
	w := r.At(r.next)
	r.next++
	return w
}

// Index returns the position in scan order of the window last returned by
// Next, or -1 before the first call.
func (r *Regions) Index() int {
	return r.next - 1
}

// Coord returns the origin of the window last returned by Next, one entry
// per base axis, counted in window positions. Returns nil before the first call.
func (r *Regions) Coord() []int {
	if r.coord == nil {
		return nil
	}
	return append([]int(nil), r.coord...)
}

// At materializes window i. Elements that fall in the padded margin are zero.
func (r *Regions) At(i int) *Tensor {
	r.checkIndex(i)
	out := make([]float64, r.window.NumElements())
	r.visit(i, func(winOff int, seg []float64) {
		copy(out[winOff:], seg)
	})
	return wrap(r.window.Clone(), out)
}

// InnerProduct returns the inner product of window i with filter without
// materializing the window. filter must have the window shape.
func (r *Regions) InnerProduct(i int, filter *Tensor) float64 {
	r.checkIndex(i)
	mustMatch("region inner product", r.window, filter.shape)
	var sum float64
	r.visit(i, func(winOff int, seg []float64) {
		sum += floats.Dot(seg, filter.values[winOff:winOff+len(seg)])
	})
	return sum
}

func (r *Regions) checkIndex(i int) {
	if i < 0 || i >= r.total {
		panic(fmt.Sprintf("regions: window index %d out of range [0, %d)", i, r.total))
	}
}

// visit calls fn for every run of window elements along the last axis that
// lies inside the real base bounds. winOff is the flat offset of the run's
// first element within the window, seg the matching contiguous base values.
// Runs that fall entirely in the padded margin are skipped.
func (r *Regions) visit(i int, fn func(winOff int, seg []float64)) {
	rank := len(r.full)
	last := rank - 1

	origin := make([]int, rank)
	r.counts.Unravel(i, origin)

	// Clip the last axis once; it is the same for every row.
	rowLen := r.full[last]
	start := origin[last] - r.padding[last]
	lo := max(0, -start)
	hi := min(rowLen, r.base.shape[last]-start)
	if lo >= hi {
		return
	}

	rowShape := r.full[:last]
	rows := rowShape.NumElements()
	rowCoord := make([]int, last)

rowLoop:
	for row := 0; row < rows; row++ {
		rowShape.Unravel(row, rowCoord)
		off := start
		for k := 0; k < last; k++ {
			b := origin[k] + rowCoord[k] - r.padding[k]
			if b < 0 || b >= r.base.shape[k] {
				continue rowLoop
			}
			off += b * r.strides[k]
		}
		fn(row*rowLen+lo, r.base.values[off+lo:off+hi])
	}
}
