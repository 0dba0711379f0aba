package types

import (
	"strconv"

	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	EventTypeVaultInitialized = "vault_initialized"
	EventTypeStake            = "stake"
	EventTypeUnstake          = "unstake"
	EventTypePriceChange      = "price_change"
	EventTypePrice            = "price"

	AttributeKeyDenom           = "denom"
	AttributeKeyShareDenom      = "share_denom"
	AttributeKeyVaultAddress    = "vault_address"
	AttributeKeyMintAddress     = "mint_address"
	AttributeKeyPayer           = "payer"
	AttributeKeyDepositor       = "depositor"
	AttributeKeyRedeemer        = "redeemer"
	AttributeKeyAmountIn        = "amount_in"
	AttributeKeyAmountOut       = "amount_out"
	AttributeKeySharesIssued    = "shares_issued"
	AttributeKeySharesBurned    = "shares_burned"
	AttributeKeyOldPriceFixed   = "old_price_fixed"
	AttributeKeyOldPriceDisplay = "old_price_display"
	AttributeKeyNewPriceFixed   = "new_price_fixed"
	AttributeKeyNewPriceDisplay = "new_price_display"
	AttributeKeyPriceFixed      = "price_fixed"
	AttributeKeyPriceDisplay    = "price_display"
	AttributeKeyPriceDelta      = "price_delta"
)

// PriceDelta returns the signed change between two fixed-point price
// snapshots as a decimal string.
func PriceDelta(oldPrice, newPrice PriceSnapshot) string {
	return sdkmath.NewIntFromUint64(newPrice.Fixed).Sub(sdkmath.NewIntFromUint64(oldPrice.Fixed)).String()
}

// NewVaultInitializedEvent creates the event emitted when a vault and its
// share mint are created.
func NewVaultInitializedEvent(vault Vault, payer string) sdk.Event {
	return sdk.NewEvent(EventTypeVaultInitialized,
		sdk.NewAttribute(AttributeKeyDenom, vault.Denom),
		sdk.NewAttribute(AttributeKeyShareDenom, vault.ShareDenom),
		sdk.NewAttribute(AttributeKeyVaultAddress, vault.VaultAddress),
		sdk.NewAttribute(AttributeKeyMintAddress, vault.MintAddress),
		sdk.NewAttribute(AttributeKeyPayer, payer),
	)
}

// NewStakeEvent creates the event emitted after a deposit mints shares.
func NewStakeEvent(denom, depositor string, amountIn, sharesIssued uint64) sdk.Event {
	return sdk.NewEvent(EventTypeStake,
		sdk.NewAttribute(AttributeKeyDenom, denom),
		sdk.NewAttribute(AttributeKeyDepositor, depositor),
		sdk.NewAttribute(AttributeKeyAmountIn, strconv.FormatUint(amountIn, 10)),
		sdk.NewAttribute(AttributeKeySharesIssued, strconv.FormatUint(sharesIssued, 10)),
	)
}

// NewUnstakeEvent creates the event emitted after a share burn releases base asset.
func NewUnstakeEvent(denom, redeemer string, sharesBurned, amountOut uint64) sdk.Event {
	return sdk.NewEvent(EventTypeUnstake,
		sdk.NewAttribute(AttributeKeyDenom, denom),
		sdk.NewAttribute(AttributeKeyRedeemer, redeemer),
		sdk.NewAttribute(AttributeKeySharesBurned, strconv.FormatUint(sharesBurned, 10)),
		sdk.NewAttribute(AttributeKeyAmountOut, strconv.FormatUint(amountOut, 10)),
	)
}

// NewPriceChangeEvent creates the before/after price notification emitted
// after every mutating operation.
func NewPriceChangeEvent(denom string, oldPrice, newPrice PriceSnapshot) sdk.Event {
	return sdk.NewEvent(EventTypePriceChange,
		sdk.NewAttribute(AttributeKeyDenom, denom),
		sdk.NewAttribute(AttributeKeyOldPriceFixed, strconv.FormatUint(oldPrice.Fixed, 10)),
		sdk.NewAttribute(AttributeKeyOldPriceDisplay, oldPrice.Display),
		sdk.NewAttribute(AttributeKeyNewPriceFixed, strconv.FormatUint(newPrice.Fixed, 10)),
		sdk.NewAttribute(AttributeKeyNewPriceDisplay, newPrice.Display),
		sdk.NewAttribute(AttributeKeyPriceDelta, PriceDelta(oldPrice, newPrice)),
	)
}

// NewPriceEvent creates the standalone price snapshot notification.
func NewPriceEvent(denom string, price PriceSnapshot) sdk.Event {
	return sdk.NewEvent(EventTypePrice,
		sdk.NewAttribute(AttributeKeyDenom, denom),
		sdk.NewAttribute(AttributeKeyPriceFixed, strconv.FormatUint(price.Fixed, 10)),
		sdk.NewAttribute(AttributeKeyPriceDisplay, price.Display),
	)
}
