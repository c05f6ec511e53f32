// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides N-dimensional shapes, offsets and axis iteration
// over flat row-major buffers.
//
// # Overview
//
// A tensor here is a flat buffer plus a Shape. The package provides:
//   - Row-major offsets and the linear/multi-index codec
//   - View: a non-owning window with an optional active axis
//   - Iterator: a strided cursor along one fiber of a View
//   - RawTensor: a type-erased, reference-counted buffer with dtype metadata
//
// # Axis Iteration
//
// Setting an axis partitions the buffer into fibers. The dimensions other than
// the axis form the output space; every output index o selects one fiber and
// Begin(o)/End(o) bound it:
//
//	data := []float32{1, 2, 3, 4, 5, 6}
//	v := tensor.NewAxisView(data, tensor.Shape{2, 3}, 1)
//
//	for o := 0; o < v.OutputSize(); o++ {
//	    var sum float32
//	    for it, end := v.Begin(o), v.End(o); !it.Equal(end); it.Next() {
//	        sum += it.Value()
//	    }
//	    // o=0: 6, o=1: 15
//	}
//
// Fiber(o) yields the same elements as an iter.Seq:
//
//	for x := range v.Fiber(0) {
//	    fmt.Println(x)
//	}
//
// Without an axis, Begin/End bound the whole flattened buffer for any output
// index.
//
// # Supported Data Types
//
//   - int32, int64 (signed integers)
//   - float32, float64 (floating-point)
//   - complex128 (DFT results)
//
// # Thread Safety
//
// Views are safe for concurrent reads. SetAxis and ClearAxis must not race
// with iteration.
package tensor
