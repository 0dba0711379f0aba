package types

import (
	fmt "fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Vault binds a base-asset denom to its derived custody account and share
// mint. Both addresses are derived once at creation and persisted together
// with the salts that produced them; every later operation re-verifies the
// binding instead of re-deriving fresh identities.
type Vault struct {
	// Denom is the base-asset denom held in custody.
	Denom string `json:"denom"`
	// ShareDenom is the denom of the shares issued against deposits.
	ShareDenom string `json:"share_denom"`
	// Decimals mirrors the base asset's decimal precision, copied at creation.
	Decimals uint32 `json:"decimals"`
	// VaultAddress is the derived custody authority holding the base asset.
	VaultAddress string `json:"vault_address"`
	// VaultSalt reproduces VaultAddress under the vault domain tag.
	VaultSalt uint8 `json:"vault_salt"`
	// MintAddress is the derived identity of the share mint.
	MintAddress string `json:"mint_address"`
	// MintSalt reproduces MintAddress under the mint domain tag.
	MintSalt uint8 `json:"mint_salt"`
}

// NewVault derives both authorities for the given base denom and returns the
// assembled vault record.
func NewVault(baseDenom string, decimals uint32) (*Vault, error) {
	vaultAddr, vaultSalt, err := DeriveAuthority(VaultAuthorityTag, baseDenom)
	if err != nil {
		return nil, err
	}
	mintAddr, mintSalt, err := DeriveAuthority(MintAuthorityTag, baseDenom)
	if err != nil {
		return nil, err
	}

	return &Vault{
		Denom:        baseDenom,
		ShareDenom:   ShareDenom(baseDenom),
		Decimals:     decimals,
		VaultAddress: vaultAddr.String(),
		VaultSalt:    vaultSalt,
		MintAddress:  mintAddr.String(),
		MintSalt:     mintSalt,
	}, nil
}

// Validate checks the vault's fields and proves that both stored authorities
// still reproduce from their salts.
func (v Vault) Validate() error {
	if err := sdk.ValidateDenom(v.Denom); err != nil {
		return fmt.Errorf("invalid base denom: %w", err)
	}
	if err := sdk.ValidateDenom(v.ShareDenom); err != nil {
		return fmt.Errorf("invalid share denom: %w", err)
	}
	if v.ShareDenom != ShareDenom(v.Denom) {
		return fmt.Errorf("share denom %q is not bound to base denom %q", v.ShareDenom, v.Denom)
	}

	vaultAddr, err := sdk.AccAddressFromBech32(v.VaultAddress)
	if err != nil {
		return fmt.Errorf("invalid vault address: %w", err)
	}
	mintAddr, err := sdk.AccAddressFromBech32(v.MintAddress)
	if err != nil {
		return fmt.Errorf("invalid mint address: %w", err)
	}

	if err := VerifyAuthority(VaultAuthorityTag, v.Denom, v.VaultSalt, vaultAddr); err != nil {
		return err
	}
	if err := VerifyAuthority(MintAuthorityTag, v.Denom, v.MintSalt, mintAddr); err != nil {
		return err
	}

	return nil
}

// GetVaultAccAddress returns the custody address as an sdk.AccAddress.
// The vault must have been validated.
func (v Vault) GetVaultAccAddress() sdk.AccAddress {
	return sdk.MustAccAddressFromBech32(v.VaultAddress)
}

// GetMintAccAddress returns the share-mint address as an sdk.AccAddress.
// The vault must have been validated.
func (v Vault) GetMintAccAddress() sdk.AccAddress {
	return sdk.MustAccAddressFromBech32(v.MintAddress)
}
