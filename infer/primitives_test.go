package infer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arlenvance/beliefprop/infer"
)

// S-marginalize: a positive-sum vector normalizes to 1; a vector that
// sums to <= 0 (every combined factor underflowed) is left unchanged
// rather than replaced by a uniform distribution.
func TestMarginalize_PositiveSumNormalizes(t *testing.T) {
	out := infer.Marginalize([]float64{2, 2})
	require.InDeltaSlice(t, []float64{0.5, 0.5}, out, 1e-12)
}

func TestMarginalize_ZeroSumLeftUnchanged(t *testing.T) {
	out := infer.Marginalize([]float64{0, 0, 0})
	require.Equal(t, []float64{0, 0, 0}, out)
}

func TestMarginalize_NegativeSumLeftUnchanged(t *testing.T) {
	out := infer.Marginalize([]float64{-1, -1})
	require.Equal(t, []float64{-1, -1}, out)
}
