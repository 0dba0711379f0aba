package types

import (
	context "context"
	fmt "fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgServer is the transaction-handling surface of the module.
type MsgServer interface {
	// InitializeVault creates the vault and share mint for a base-asset denom.
	InitializeVault(goCtx context.Context, msg *MsgInitializeVault) (*MsgInitializeVaultResponse, error)
	// Stake deposits base asset and mints proportional shares.
	Stake(goCtx context.Context, msg *MsgStake) (*MsgStakeResponse, error)
	// Unstake burns shares and releases proportional base asset.
	Unstake(goCtx context.Context, msg *MsgUnstake) (*MsgUnstakeResponse, error)
	// EmitPrice emits the current price snapshot without mutating anything.
	EmitPrice(goCtx context.Context, msg *MsgEmitPrice) (*MsgEmitPriceResponse, error)
}

// MsgInitializeVault creates the vault and share mint for Denom in their
// bootstrap (zero balance, zero supply) state.
type MsgInitializeVault struct {
	// Denom is the base-asset denom to custody.
	Denom string `json:"denom"`
	// Payer covers the storage cost of the new records.
	Payer string `json:"payer"`
}

type MsgInitializeVaultResponse struct {
	VaultAddress string `json:"vault_address"`
	MintAddress  string `json:"mint_address"`
	ShareDenom   string `json:"share_denom"`
}

// MsgStake deposits Amount of Denom from Depositor into the vault.
type MsgStake struct {
	Denom     string `json:"denom"`
	Depositor string `json:"depositor"`
	Amount    uint64 `json:"amount"`
}

type MsgStakeResponse struct {
	SharesIssued uint64 `json:"shares_issued"`
}

// MsgUnstake burns Shares of the vault's share denom from Redeemer.
type MsgUnstake struct {
	Denom    string `json:"denom"`
	Redeemer string `json:"redeemer"`
	Shares   uint64 `json:"shares"`
}

type MsgUnstakeResponse struct {
	BaseReleased uint64 `json:"base_released"`
}

// MsgEmitPrice reports the current price snapshot for Denom's vault.
type MsgEmitPrice struct {
	Denom string `json:"denom"`
}

type MsgEmitPriceResponse struct {
	Price PriceSnapshot `json:"price"`
}

// ValidateBasic performs stateless validation of MsgInitializeVault.
func (m MsgInitializeVault) ValidateBasic() error {
	if err := sdk.ValidateDenom(m.Denom); err != nil {
		return fmt.Errorf("invalid denom: %q: %w", m.Denom, err)
	}
	if _, err := sdk.AccAddressFromBech32(m.Payer); err != nil {
		return fmt.Errorf("invalid payer address: %q: %w", m.Payer, err)
	}
	return nil
}

// ValidateBasic performs stateless validation of MsgStake.
func (m MsgStake) ValidateBasic() error {
	if err := sdk.ValidateDenom(m.Denom); err != nil {
		return fmt.Errorf("invalid denom: %q: %w", m.Denom, err)
	}
	if _, err := sdk.AccAddressFromBech32(m.Depositor); err != nil {
		return fmt.Errorf("invalid depositor address: %q: %w", m.Depositor, err)
	}
	if m.Amount == 0 {
		return fmt.Errorf("stake amount must be positive")
	}
	return nil
}

// ValidateBasic performs stateless validation of MsgUnstake.
func (m MsgUnstake) ValidateBasic() error {
	if err := sdk.ValidateDenom(m.Denom); err != nil {
		return fmt.Errorf("invalid denom: %q: %w", m.Denom, err)
	}
	if _, err := sdk.AccAddressFromBech32(m.Redeemer); err != nil {
		return fmt.Errorf("invalid redeemer address: %q: %w", m.Redeemer, err)
	}
	if m.Shares == 0 {
		return fmt.Errorf("unstake share amount must be positive")
	}
	return nil
}

// ValidateBasic performs stateless validation of MsgEmitPrice.
func (m MsgEmitPrice) ValidateBasic() error {
	if err := sdk.ValidateDenom(m.Denom); err != nil {
		return fmt.Errorf("invalid denom: %q: %w", m.Denom, err)
	}
	return nil
}
