// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package batching_test

import (
	"fmt"

	"github.com/born-ml/vmap/batching"
	"github.com/born-ml/vmap/tensor"
)

func ExampleAddBatchDim() {
	x, _ := tensor.Empty(tensor.Shape{2, 3, 5, 7}, tensor.Float32, tensor.CPU)

	var levels batching.Levels
	outer, exitOuter := levels.Enter()
	defer exitOuter()
	inner, exitInner := levels.Enter()
	defer exitInner()

	bx, _ := batching.AddBatchDim(x, outer, 0) // hides physical dim 0
	bx, _ = batching.AddBatchDim(bx, inner, 1) // hides logical dim 1, physical dim 2

	bt := batching.UnsafeGetBatched(bx)
	fmt.Println(bt.Bdims())
	fmt.Println(bx.Sizes())
	for d := 0; d < bx.Dim(); d++ {
		actual, _ := bt.ActualDim(d, true)
		fmt.Printf("%d -> %d\n", d, actual)
	}

	_, err := bt.Strides()
	fmt.Println(err)

	// Output:
	// [(lvl=1, dim=0), (lvl=2, dim=2)]
	// [3 7]
	// 0 -> 1
	// 1 -> 3
	// Strides: operation not supported on a batched tensor; the tensor has private batch dimensions
}
