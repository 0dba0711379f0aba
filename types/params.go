package types

import (
	fmt "fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Params holds the deployment-specific module configuration. Base-asset
// identities differ between networks, so they are injected through state
// rather than compiled in.
type Params struct {
	// AllowedDenoms restricts which base-asset denoms may have vaults
	// initialized for them. An empty list allows any valid denom.
	AllowedDenoms []string `json:"allowed_denoms,omitempty"`
}

// DefaultParams returns the default module parameters: no denom restriction.
func DefaultParams() Params {
	return Params{}
}

// Validate checks every configured denom.
func (p Params) Validate() error {
	seen := make(map[string]bool, len(p.AllowedDenoms))
	for _, denom := range p.AllowedDenoms {
		if err := sdk.ValidateDenom(denom); err != nil {
			return fmt.Errorf("invalid allowed denom %q: %w", denom, err)
		}
		if seen[denom] {
			return fmt.Errorf("duplicate allowed denom %q", denom)
		}
		seen[denom] = true
	}
	return nil
}

// DenomAllowed reports whether a vault may be initialized for the denom.
func (p Params) DenomAllowed(denom string) bool {
	if len(p.AllowedDenoms) == 0 {
		return true
	}
	for _, d := range p.AllowedDenoms {
		if d == denom {
			return true
		}
	}
	return false
}
