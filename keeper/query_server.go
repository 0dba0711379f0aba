package keeper

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/xstakelabs/xstake/types"
)

var _ types.QueryServer = &queryServer{}

type queryServer struct {
	*Keeper
}

// NewQueryServer creates a new QueryServer for the module.
func NewQueryServer(keeper *Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

// Vault returns the configuration of a specific vault.
func (k queryServer) Vault(goCtx context.Context, req *types.QueryVaultRequest) (*types.QueryVaultResponse, error) {
	if req == nil || req.Denom == "" {
		return nil, status.Error(codes.InvalidArgument, "denom must be provided")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	vault, err := k.GetVault(ctx, req.Denom)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "vault for denom %q not found", req.Denom)
	}

	return &types.QueryVaultResponse{Vault: vault}, nil
}

// Vaults returns all vaults.
func (k queryServer) Vaults(goCtx context.Context, req *types.QueryVaultsRequest) (*types.QueryVaultsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	vaults, err := k.GetVaults(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryVaultsResponse{Vaults: vaults}, nil
}

// Price returns the current price snapshot for a vault.
func (k queryServer) Price(goCtx context.Context, req *types.QueryPriceRequest) (*types.QueryPriceResponse, error) {
	if req == nil || req.Denom == "" {
		return nil, status.Error(codes.InvalidArgument, "denom must be provided")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	vault, err := k.GetVault(ctx, req.Denom)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "vault for denom %q not found", req.Denom)
	}

	price, err := k.CurrentPrice(ctx, vault)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryPriceResponse{Price: price}, nil
}
