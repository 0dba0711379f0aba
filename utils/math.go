package utils

import (
	"cosmossdk.io/math"

	"github.com/xstakelabs/xstake/types"
)

// MulDiv computes floor(amount * numerator / denominator) for uint64 inputs.
// The intermediate product is carried in math.Int, so amount * numerator can
// never overflow; the result is checked back into 64 bits.
//
// Returns types.ErrDivisionByZero when denominator is zero. Callers are
// expected to guard degenerate denominators (the bootstrap rule) before
// calling; this check is a backstop, not a policy.
//
// Returns types.ErrArithmeticOverflow when the floored result exceeds
// math.MaxUint64. That only happens when numerator/denominator is large
// enough to push the result out of range, which correct callers never do,
// but it is checked rather than assumed.
func MulDiv(amount, numerator, denominator uint64) (uint64, error) {
	if denominator == 0 {
		return 0, types.ErrDivisionByZero.Wrap("denominator is zero")
	}

	product := math.NewIntFromUint64(amount).Mul(math.NewIntFromUint64(numerator))
	result := product.Quo(math.NewIntFromUint64(denominator))
	if !result.IsUint64() {
		return 0, types.ErrArithmeticOverflow.Wrapf("%d * %d / %d does not fit in 64 bits", amount, numerator, denominator)
	}
	return result.Uint64(), nil
}
