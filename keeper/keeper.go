package keeper

import (
	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/xstakelabs/xstake/types"
)

type Keeper struct {
	schema collections.Schema

	BankKeeper types.BankKeeper

	Params collections.Item[types.Params]
	Vaults collections.Map[string, types.Vault]
}

func NewKeeper(
	storeService store.KVStoreService,
	bankKeeper types.BankKeeper,
) *Keeper {
	builder := collections.NewSchemaBuilder(storeService)

	keeper := &Keeper{
		BankKeeper: bankKeeper,
		Params:     collections.NewItem(builder, types.ParamsKeyPrefix, types.ParamsName, types.JSONValueCodec[types.Params]("params")),
		Vaults:     collections.NewMap(builder, types.VaultsKeyPrefix, types.VaultsName, collections.StringKey, types.JSONValueCodec[types.Vault]("vault")),
	}

	schema, err := builder.Build()
	if err != nil {
		panic(err)
	}

	keeper.schema = schema
	return keeper
}

// getLogger returns a logger with xstake module context.
func (k Keeper) getLogger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

// emitEvent publishes a notification on the block event stream. Notifications
// are observability only and can never fail the surrounding operation.
func (k Keeper) emitEvent(ctx sdk.Context, event sdk.Event) {
	ctx.EventManager().EmitEvent(event)
}
