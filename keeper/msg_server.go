package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/xstakelabs/xstake/types"
)

var _ types.MsgServer = &msgServer{}

type msgServer struct {
	*Keeper
}

func NewMsgServer(keeper *Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

// InitializeVault creates the vault and share mint for a base-asset denom.
func (k msgServer) InitializeVault(goCtx context.Context, msg *types.MsgInitializeVault) (*types.MsgInitializeVaultResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidRequest.Wrap(err.Error())
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	payer := sdk.MustAccAddressFromBech32(msg.Payer)
	vault, err := k.Keeper.InitializeVault(ctx, msg.Denom, payer)
	if err != nil {
		return nil, err
	}

	return &types.MsgInitializeVaultResponse{
		VaultAddress: vault.VaultAddress,
		MintAddress:  vault.MintAddress,
		ShareDenom:   vault.ShareDenom,
	}, nil
}

// Stake deposits base asset into a vault in exchange for shares.
func (k msgServer) Stake(goCtx context.Context, msg *types.MsgStake) (*types.MsgStakeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidRequest.Wrap(err.Error())
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	depositor := sdk.MustAccAddressFromBech32(msg.Depositor)
	shares, err := k.Keeper.Stake(ctx, msg.Denom, depositor, msg.Amount)
	if err != nil {
		return nil, err
	}

	return &types.MsgStakeResponse{SharesIssued: shares}, nil
}

// Unstake burns shares for a proportional slice of the vault's holdings.
func (k msgServer) Unstake(goCtx context.Context, msg *types.MsgUnstake) (*types.MsgUnstakeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidRequest.Wrap(err.Error())
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	redeemer := sdk.MustAccAddressFromBech32(msg.Redeemer)
	released, err := k.Keeper.Unstake(ctx, msg.Denom, redeemer, msg.Shares)
	if err != nil {
		return nil, err
	}

	return &types.MsgUnstakeResponse{BaseReleased: released}, nil
}

// EmitPrice reports the current price snapshot for a vault.
func (k msgServer) EmitPrice(goCtx context.Context, msg *types.MsgEmitPrice) (*types.MsgEmitPriceResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidRequest.Wrap(err.Error())
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	price, err := k.Keeper.EmitPrice(ctx, msg.Denom)
	if err != nil {
		return nil, err
	}

	return &types.MsgEmitPriceResponse{Price: price}, nil
}
