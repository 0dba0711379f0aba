package types

import fmt "fmt"

// GenesisState is the exported/imported module state.
type GenesisState struct {
	Params Params  `json:"params"`
	Vaults []Vault `json:"vaults,omitempty"`
}

// DefaultGenesisState returns the default genesis state
func DefaultGenesisState() *GenesisState {
	return &GenesisState{Params: DefaultParams()}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	seen := make(map[string]bool, len(gs.Vaults))
	for i, vault := range gs.Vaults {
		if err := vault.Validate(); err != nil {
			return fmt.Errorf("invalid vault at index %d: %w", i, err)
		}
		if seen[vault.Denom] {
			return fmt.Errorf("duplicate vault for denom %q", vault.Denom)
		}
		seen[vault.Denom] = true
	}
	return nil
}
