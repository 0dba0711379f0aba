package keeper

import (
	fmt "fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/xstakelabs/xstake/types"
)

// InitGenesis initializes the xstake module state from genesis.
func (k Keeper) InitGenesis(ctx sdk.Context, genState *types.GenesisState) {
	if genState == nil {
		return
	}

	if err := genState.Validate(); err != nil {
		panic(fmt.Errorf("invalid xstake genesis state: %w", err))
	}

	if err := k.Params.Set(ctx, genState.Params); err != nil {
		panic(err)
	}

	for i, vault := range genState.Vaults {
		if err := k.SetVault(ctx, vault); err != nil {
			panic(fmt.Errorf("failed to store vault at index %d: %w", i, err))
		}
	}
}

// ExportGenesis exports the current state of the xstake module.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	params, err := k.Params.Get(ctx)
	if err != nil {
		panic(fmt.Errorf("failed to get xstake module params: %w", err))
	}

	vaults, err := k.GetVaults(ctx)
	if err != nil {
		panic(fmt.Errorf("failed to read vaults: %w", err))
	}

	return &types.GenesisState{
		Params: params,
		Vaults: vaults,
	}
}
