package fft

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

type algoKernel struct {
	size    int
	plan    *algofft.Plan[complex128]
	scratch []complex128
}

func newAlgoFFT(size int) (Kernel, error) {
	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("fft: failed to create algo-fft plan: %w", err)
	}

	return &algoKernel{
		size:    size,
		plan:    plan,
		scratch: make([]complex128, size),
	}, nil
}

func (k *algoKernel) Size() int    { return k.size }
func (k *algoKernel) Name() string { return string(BackendAlgoFFT) }

func (k *algoKernel) Forward(re, im []float64) {
	checkLen(k.Name(), k.size, re, im)
	pack(k.scratch, re, im)

	if err := k.plan.Forward(k.scratch, k.scratch); err != nil {
		panic(fmt.Errorf("fft: forward transform failed: %w", err))
	}

	unpack(re, im, k.scratch, 1)
}

// Inverse relies on algo-fft normalizing its inverse by 1/n.
func (k *algoKernel) Inverse(re, im []float64) {
	checkLen(k.Name(), k.size, re, im)
	pack(k.scratch, re, im)

	if err := k.plan.Inverse(k.scratch, k.scratch); err != nil {
		panic(fmt.Errorf("fft: inverse transform failed: %w", err))
	}

	unpack(re, im, k.scratch, 1)
}
