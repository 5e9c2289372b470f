package wfc

import (
	"math"

	"github.com/hearthforge/tilekernel/internal/kernelutil"
)

// entropyOf computes the Shannon entropy of mask's set bits weighted by
// weights, plus a tiny uniform noise draw in [0, 0.001) that breaks exact
// ties deterministically under the seeded PRNG. Returns 0 if mask has at
// most one set bit or the weight sum is zero.
func entropyOf(mask byte, weights []float64, rng *kernelutil.RNG) float64 {
	if kernelutil.Popcount(mask) <= 1 {
		return 0
	}

	var sum float64
	for b := 0; b < len(weights); b++ {
		if mask&(1<<uint(b)) != 0 {
			sum += weights[b]
		}
	}
	if sum == 0 {
		return 0
	}

	var entropy float64
	for b := 0; b < len(weights); b++ {
		if mask&(1<<uint(b)) == 0 {
			continue
		}
		w := weights[b]
		if w <= 0 {
			continue
		}
		p := w / sum
		entropy -= p * math.Log(p)
	}

	return entropy + rng.Float64()*0.001
}

// weightedChoice picks one set bit of mask, weighted by weights. If every
// set bit's weight is zero, it falls back to a uniform choice among them.
func weightedChoice(mask byte, weights []float64, rng *kernelutil.RNG) int {
	var total float64
	var bits []int
	for b := 0; b < len(weights); b++ {
		if mask&(1<<uint(b)) != 0 {
			bits = append(bits, b)
			if weights[b] > 0 {
				total += weights[b]
			}
		}
	}

	if total == 0 {
		return bits[int(rng.Float64()*float64(len(bits)))%len(bits)]
	}

	r := rng.Float64() * total
	var cum float64
	for _, b := range bits {
		w := weights[b]
		if w <= 0 {
			continue
		}
		cum += w
		if cum >= r {
			return b
		}
	}

	return bits[len(bits)-1]
}
