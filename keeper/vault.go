package keeper

import (
	fmt "fmt"

	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	"github.com/xstakelabs/xstake/types"
	"github.com/xstakelabs/xstake/utils"
)

// InitializeVault creates the vault and share mint for a base-asset denom.
//
// Both addresses are derived deterministically from the denom, so the pairing
// is discoverable without any index. The operation must observe the bootstrap
// state: a zero base balance at the derived custody address and a zero share
// supply. Re-running it, or running it against an address that already holds
// funds, fails with ErrAlreadyInitialized.
func (k *Keeper) InitializeVault(ctx sdk.Context, denom string, payer sdk.AccAddress) (*types.Vault, error) {
	params, err := k.Params.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read module params: %w", err)
	}
	if !params.DenomAllowed(denom) {
		return nil, types.ErrInvalidRequest.Wrapf("denom %q is not an allowed base asset", denom)
	}

	exists, err := k.HasVault(ctx, denom)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, types.ErrAlreadyInitialized.Wrapf("vault for denom %q already exists", denom)
	}

	vault, err := types.NewVault(denom, k.baseAssetDecimals(ctx, denom))
	if err != nil {
		return nil, fmt.Errorf("failed to derive vault authorities: %w", err)
	}

	baseBalance, shareSupply, err := k.ledgerState(ctx, *vault)
	if err != nil {
		return nil, err
	}
	if baseBalance != 0 || shareSupply != 0 {
		return nil, types.ErrAlreadyInitialized.Wrapf(
			"vault for denom %q is not in bootstrap state: balance %d, supply %d", denom, baseBalance, shareSupply)
	}

	if err := k.SetVault(ctx, *vault); err != nil {
		return nil, fmt.Errorf("failed to store new vault: %w", err)
	}

	k.registerShareMetadata(ctx, *vault)

	k.getLogger(ctx).Info("vault initialized",
		"denom", vault.Denom,
		"share_denom", vault.ShareDenom,
		"vault_address", vault.VaultAddress,
		"mint_address", vault.MintAddress,
	)
	k.emitEvent(ctx, types.NewVaultInitializedEvent(*vault, payer.String()))
	return vault, nil
}

// Stake deposits base asset into the vault and mints proportional shares to
// the depositor.
//
// Shares are priced on the ledger state read before the deposit is
// transferred in: the share mint happens first, then the deposit moves into
// custody. Both effects commit atomically with the surrounding transaction;
// any failure discards everything.
func (k *Keeper) Stake(ctx sdk.Context, denom string, depositor sdk.AccAddress, amount uint64) (uint64, error) {
	vault, err := k.GetVault(ctx, denom)
	if err != nil {
		return 0, err
	}

	if err := verifyBindings(vault); err != nil {
		return 0, err
	}

	baseBalance, shareSupply, err := k.ledgerState(ctx, vault)
	if err != nil {
		return 0, err
	}

	shares, err := utils.CalculateSharesForDeposit(amount, shareSupply, baseBalance)
	if err != nil {
		return 0, err
	}

	shareCoins := sdk.NewCoins(sdk.NewCoin(vault.ShareDenom, sdkmath.NewIntFromUint64(shares)))
	if err := k.BankKeeper.MintCoins(ctx, types.ModuleName, shareCoins); err != nil {
		return 0, err
	}
	if err := k.BankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, depositor, shareCoins); err != nil {
		return 0, err
	}

	depositCoins := sdk.NewCoins(sdk.NewCoin(vault.Denom, sdkmath.NewIntFromUint64(amount)))
	if err := k.BankKeeper.SendCoins(ctx, depositor, vault.GetVaultAccAddress(), depositCoins); err != nil {
		return 0, err
	}

	k.emitEvent(ctx, types.NewStakeEvent(vault.Denom, depositor.String(), amount, shares))
	k.notifyPriceChange(ctx, vault, baseBalance, shareSupply)
	return shares, nil
}

// Unstake burns shares from the redeemer and releases the proportional slice
// of the vault's base-asset holdings.
//
// The payout is priced on the ledger state read before the burn. Because the
// redeemer cannot burn more shares than exist, floor(shares * balance /
// supply) is bounded by the balance; no clamp is applied. Both stored
// authority bindings are re-proven before anything touches the ledger.
func (k *Keeper) Unstake(ctx sdk.Context, denom string, redeemer sdk.AccAddress, shares uint64) (uint64, error) {
	vault, err := k.GetVault(ctx, denom)
	if err != nil {
		return 0, err
	}

	if err := verifyBindings(vault); err != nil {
		return 0, err
	}

	baseBalance, shareSupply, err := k.ledgerState(ctx, vault)
	if err != nil {
		return 0, err
	}

	payout, err := utils.CalculateBaseForShares(shares, shareSupply, baseBalance)
	if err != nil {
		return 0, err
	}

	shareCoins := sdk.NewCoins(sdk.NewCoin(vault.ShareDenom, sdkmath.NewIntFromUint64(shares)))
	if err := k.BankKeeper.SendCoinsFromAccountToModule(ctx, redeemer, types.ModuleName, shareCoins); err != nil {
		return 0, err
	}
	if err := k.BankKeeper.BurnCoins(ctx, types.ModuleName, shareCoins); err != nil {
		return 0, err
	}

	payoutCoins := sdk.NewCoins(sdk.NewCoin(vault.Denom, sdkmath.NewIntFromUint64(payout)))
	if err := k.BankKeeper.SendCoins(ctx, vault.GetVaultAccAddress(), redeemer, payoutCoins); err != nil {
		return 0, err
	}

	k.emitEvent(ctx, types.NewUnstakeEvent(vault.Denom, redeemer.String(), shares, payout))
	k.notifyPriceChange(ctx, vault, baseBalance, shareSupply)
	return payout, nil
}

// verifyBindings re-proves both stored authority bindings of a vault record.
// Every operation that moves coins calls this before its first ledger access:
// a record whose custody or mint address does not reproduce from its salt is
// spoofed and must not direct deposits, mints, burns, or payouts.
func verifyBindings(vault types.Vault) error {
	if err := types.VerifyAuthority(types.VaultAuthorityTag, vault.Denom, vault.VaultSalt, vault.GetVaultAccAddress()); err != nil {
		return err
	}
	return types.VerifyAuthority(types.MintAuthorityTag, vault.Denom, vault.MintSalt, vault.GetMintAccAddress())
}

// EmitPrice publishes the current price snapshot for a vault without
// mutating anything.
func (k *Keeper) EmitPrice(ctx sdk.Context, denom string) (types.PriceSnapshot, error) {
	vault, err := k.GetVault(ctx, denom)
	if err != nil {
		return types.PriceSnapshot{}, err
	}

	price, err := k.CurrentPrice(ctx, vault)
	if err != nil {
		return types.PriceSnapshot{}, err
	}

	k.emitEvent(ctx, types.NewPriceEvent(vault.Denom, price))
	return price, nil
}

// CurrentPrice computes the price snapshot from live ledger state.
func (k *Keeper) CurrentPrice(ctx sdk.Context, vault types.Vault) (types.PriceSnapshot, error) {
	baseBalance, shareSupply, err := k.ledgerState(ctx, vault)
	if err != nil {
		return types.PriceSnapshot{}, err
	}
	return utils.ComputePrice(baseBalance, shareSupply)
}

// notifyPriceChange emits the before/after price notification for a mutating
// operation. The before snapshot comes from the balances the operation was
// priced on; the after snapshot from a fresh ledger read. Delivery is
// best-effort: a failure is logged and never propagated, since the transfer
// has already happened.
func (k *Keeper) notifyPriceChange(ctx sdk.Context, vault types.Vault, baseBefore, supplyBefore uint64) {
	oldPrice, err := utils.ComputePrice(baseBefore, supplyBefore)
	if err != nil {
		k.getLogger(ctx).Error("failed to compute pre-operation price", "denom", vault.Denom, "err", err)
		return
	}

	baseAfter, supplyAfter, err := k.ledgerState(ctx, vault)
	if err != nil {
		k.getLogger(ctx).Error("failed to refresh ledger state for price notification", "denom", vault.Denom, "err", err)
		return
	}
	newPrice, err := utils.ComputePrice(baseAfter, supplyAfter)
	if err != nil {
		k.getLogger(ctx).Error("failed to compute post-operation price", "denom", vault.Denom, "err", err)
		return
	}

	k.emitEvent(ctx, types.NewPriceChangeEvent(vault.Denom, oldPrice, newPrice))
}

// baseAssetDecimals resolves the base asset's decimal precision from its bank
// metadata, defaulting to zero when the chain carries none. The value is
// copied onto the vault record once and mirrored on the share metadata; it
// never feeds settlement math.
func (k *Keeper) baseAssetDecimals(ctx sdk.Context, denom string) uint32 {
	metadata, found := k.BankKeeper.GetDenomMetaData(ctx, denom)
	if !found {
		return 0
	}
	for _, unit := range metadata.DenomUnits {
		if unit.Denom == metadata.Display {
			return unit.Exponent
		}
	}
	return 0
}

// registerShareMetadata records bank metadata for the share denom, mirroring
// the base asset's precision so wallets render shares like the asset they
// wrap.
func (k *Keeper) registerShareMetadata(ctx sdk.Context, vault types.Vault) {
	display := vault.ShareDenom
	units := []*banktypes.DenomUnit{{Denom: vault.ShareDenom, Exponent: 0}}
	if vault.Decimals > 0 {
		display = "x" + vault.Denom
		units = append(units, &banktypes.DenomUnit{Denom: display, Exponent: vault.Decimals})
	}

	k.BankKeeper.SetDenomMetaData(ctx, banktypes.Metadata{
		Description: fmt.Sprintf("staked claim on the %s vault", vault.Denom),
		Base:        vault.ShareDenom,
		Display:     display,
		Name:        fmt.Sprintf("x%s", vault.Denom),
		Symbol:      fmt.Sprintf("X%s", vault.Denom),
		DenomUnits:  units,
	})
}
