// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides dense N-dimensional float64 tensors and the region
// iterator used by the convolution engine.
//
// # Overview
//
// This package provides:
//   - Tensor: row-major tensor of any rank with value semantics
//   - Regions: sliding-window iterator over a tensor, with zero padding
//   - Sentinel errors for shape and geometry faults
//
// # Basic Usage
//
//	x, err := tensor.New(tensor.Shape{2, 2}, []float64{1, 2, 3, 4})
//	if err != nil {
//	    return err
//	}
//	y := x.Flip()          // [[4 3] [2 1]]
//	z := x.Add(y, 0.5)     // x + 0.5*y
//	s := x.InnerProduct(y) // 1*4 + 2*3 + 3*2 + 4*1
//
// Operations never mutate their receiver; each returns a new tensor.
//
// # Regions
//
// Regions walks every placement of a window over a base tensor in row-major
// order. The number of placements along axis k is base[k] + 2*padding[k] -
// window[k] + 1; positions outside the base read as zero:
//
//	regions, err := tensor.NewRegions(x, tensor.Shape{2, 2}, []int{1, 1})
//	for regions.HasNext() {
//	    w := regions.Next() // 2x2 window, origin regions.Coord()
//	}
//
// A window with fewer axes than the base treats the missing trailing axes as
// size 1 and drops them from the yielded windows. Iterating a bank of shape
// [3, 3, depth] with window [3, 3] therefore yields its depth filters.
package tensor
