package utils

import (
	"github.com/xstakelabs/xstake/types"
)

// CalculateSharesForDeposit returns the number of shares to issue for a
// deposit, priced on balances read before the deposit is transferred in.
//
// Bootstrap rule: if either the base balance or the share supply is zero the
// deposit mints 1:1. The "or" is deliberate. A vault whose shares were all
// redeemed while its balance was topped up externally has supply zero with a
// nonzero balance; proportional math would divide by zero or mint zero
// shares, so the vault resets to par value instead.
//
// Proportional rule: shares = floor(deposit * totalShares / totalBase).
// Flooring here means a deposit can never dilute existing holders beyond
// integer rounding: the post-operation price is always >= the pre-operation
// price.
func CalculateSharesForDeposit(deposit, totalShares, totalBase uint64) (uint64, error) {
	if deposit == 0 {
		return 0, types.ErrInvalidRequest.Wrap("deposit amount must be positive")
	}

	if totalBase == 0 || totalShares == 0 {
		return deposit, nil
	}

	return MulDiv(deposit, totalShares, totalBase)
}

// CalculateBaseForShares returns the base-asset amount released for burning
// shares, priced on balances read before the burn.
//
// base = floor(shares * totalBase / totalShares). Because a redeemer can
// never burn more shares than exist, shares <= totalShares, and therefore
// the floored result is <= totalBase: the payout cannot exceed the vault's
// holdings by construction, without any clamp.
//
// A zero share supply is unreachable when burns are bounded by supply, but
// it is rejected explicitly as types.ErrDivisionByZero rather than assumed
// away.
func CalculateBaseForShares(shares, totalShares, totalBase uint64) (uint64, error) {
	if shares == 0 {
		return 0, types.ErrInvalidRequest.Wrap("share amount must be positive")
	}
	if totalShares == 0 {
		return 0, types.ErrDivisionByZero.Wrap("share supply is zero")
	}

	return MulDiv(shares, totalBase, totalShares)
}
