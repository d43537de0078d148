package synthesis_test

import (
	"fmt"

	"github.com/cwbudde/algo-vocoder/vocoder"
	"github.com/cwbudde/algo-vocoder/vocoder/synthesis"
)

func ExampleXorshift128() {
	x := synthesis.NewXorshift128(vocoder.DefaultNoiseSeed)
	fmt.Println(x.Uint32(), x.Uint32())
	// Output:
	// 1254528582 3297231672
}
