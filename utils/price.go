package utils

import (
	"strconv"

	"github.com/xstakelabs/xstake/types"
)

// PriceScale is the constant fixed-point scale for the share/base exchange
// rate: a fixed price of 1_000_000_000 means one share redeems for exactly
// one base unit. The scale is independent of the base asset's own decimals
// so that price feeds are comparable across vaults.
const PriceScale = uint64(1_000_000_000)

// ComputePrice returns the current exchange rate as a fixed-point integer
// and a human-readable decimal string.
//
// A zero share supply is the degenerate bootstrap state and yields (0, "0").
// The display string comes from floating-point division and exists purely
// for humans; settlement math must use the fixed value or the share/redeem
// formulas directly.
func ComputePrice(baseBalance, shareSupply uint64) (types.PriceSnapshot, error) {
	if shareSupply == 0 {
		return types.PriceSnapshot{Fixed: 0, Display: "0"}, nil
	}

	fixed, err := MulDiv(baseBalance, PriceScale, shareSupply)
	if err != nil {
		return types.PriceSnapshot{}, err
	}

	display := strconv.FormatFloat(float64(baseBalance)/float64(shareSupply), 'f', -1, 64)
	return types.PriceSnapshot{Fixed: fixed, Display: display}, nil
}
