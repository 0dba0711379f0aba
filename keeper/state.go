package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"

	"github.com/xstakelabs/xstake/types"
)

// GetVault retrieves the vault record for a base-asset denom.
func (k *Keeper) GetVault(ctx context.Context, denom string) (types.Vault, error) {
	vault, err := k.Vaults.Get(ctx, denom)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.Vault{}, types.ErrVaultNotFound.Wrapf("no vault for denom %q", denom)
		}
		return types.Vault{}, err
	}
	return vault, nil
}

// HasVault reports whether a vault exists for the denom.
func (k *Keeper) HasVault(ctx context.Context, denom string) (bool, error) {
	return k.Vaults.Has(ctx, denom)
}

// SetVault validates and persists a vault record.
// NOTE: should only be called by genesis and at vault creation.
func (k *Keeper) SetVault(ctx context.Context, vault types.Vault) error {
	if err := vault.Validate(); err != nil {
		return err
	}
	return k.Vaults.Set(ctx, vault.Denom, vault)
}

// GetVaults is a helper function for retrieving all vaults from state.
func (k *Keeper) GetVaults(ctx context.Context) ([]types.Vault, error) {
	vaults := []types.Vault{}

	err := k.Vaults.Walk(ctx, nil, func(key string, val types.Vault) (stop bool, err error) {
		vaults = append(vaults, val)
		return false, nil
	})

	return vaults, err
}

// CurrentBaseBalance reads the vault's base-asset holdings from the ledger.
// The value is never cached; every caller observes the live balance.
func (k *Keeper) CurrentBaseBalance(ctx context.Context, vault types.Vault) (uint64, error) {
	balance := k.BankKeeper.GetBalance(ctx, vault.GetVaultAccAddress(), vault.Denom)
	if !balance.Amount.IsUint64() {
		return 0, types.ErrArithmeticOverflow.Wrapf("vault balance %s does not fit in 64 bits", balance.Amount)
	}
	return balance.Amount.Uint64(), nil
}

// CurrentShareSupply reads the outstanding share supply from the ledger.
func (k *Keeper) CurrentShareSupply(ctx context.Context, vault types.Vault) (uint64, error) {
	supply := k.BankKeeper.GetSupply(ctx, vault.ShareDenom)
	if !supply.Amount.IsUint64() {
		return 0, types.ErrArithmeticOverflow.Wrapf("share supply %s does not fit in 64 bits", supply.Amount)
	}
	return supply.Amount.Uint64(), nil
}

// ledgerState snapshots balance and supply together, the required read
// between before/after price observations.
func (k *Keeper) ledgerState(ctx context.Context, vault types.Vault) (baseBalance, shareSupply uint64, err error) {
	if baseBalance, err = k.CurrentBaseBalance(ctx, vault); err != nil {
		return 0, 0, err
	}
	if shareSupply, err = k.CurrentShareSupply(ctx, vault); err != nil {
		return 0, 0, err
	}
	return baseBalance, shareSupply, nil
}
