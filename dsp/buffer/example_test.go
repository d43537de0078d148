package buffer_test

import (
	"fmt"

	"github.com/cwbudde/algo-vocoder/dsp/buffer"
)

func ExampleAccumulator() {
	acc := buffer.NewAccumulator(8)
	acc.Add([]float64{1, 1, 1})
	fmt.Println(acc.Pop())

	acc.Add([]float64{10, 10})
	for acc.Remaining() > 0 {
		fmt.Print(acc.Pop(), " ")
	}
	fmt.Println()
	// Output:
	// 1
	// 11 11
}

func ExampleHistory() {
	h := buffer.NewHistory(3)
	for _, v := range []float64{1, 2, 3, 4} {
		h.Push(v)
	}

	frame := make([]float64, 3)
	h.CopyTo(frame)
	fmt.Println(frame)
	// Output:
	// [2 3 4]
}
