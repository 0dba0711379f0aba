package mocks

import (
	"context"
	fmt "fmt"
	"testing"
	"time"

	"cosmossdk.io/core/header"
	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"

	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	"github.com/xstakelabs/xstake/keeper"
	"github.com/xstakelabs/xstake/types"
)

// NewXStakeKeeper returns an instance of the Keeper backed by an in-memory
// store and an in-memory bank, with default genesis applied.
func NewXStakeKeeper(t testing.TB) (sdk.Context, *keeper.Keeper, *BankKeeper) {
	key := storetypes.NewKVStoreKey(types.ModuleName)
	tkey := storetypes.NewTransientStoreKey(fmt.Sprintf("transient_%s", types.ModuleName))
	wrapper := testutil.DefaultContextWithDB(t, key, tkey)

	bank := NewBankKeeper()
	k := keeper.NewKeeper(runtime.NewKVStoreService(key), bank)

	ctx := wrapper.Ctx.WithHeaderInfo(header.Info{Time: time.Now().UTC()})
	k.InitGenesis(ctx, types.DefaultGenesisState())
	return ctx, k, bank
}

// BankKeeper is an in-memory implementation of the module's expected bank
// interface. Balance and supply mutations behave like the real bank keeper:
// sends fail on insufficient spendable balance, mints and burns go through a
// module account.
type BankKeeper struct {
	balances map[string]sdk.Coins
	supply   sdk.Coins
	metadata map[string]banktypes.Metadata
}

var _ types.BankKeeper = (*BankKeeper)(nil)

func NewBankKeeper() *BankKeeper {
	return &BankKeeper{
		balances: map[string]sdk.Coins{},
		metadata: map[string]banktypes.Metadata{},
	}
}

// FundAccount mints coins directly to an address, bypassing the module
// account. Tests use it both to seed depositors and to simulate external
// vault appreciation ("donations").
func (b *BankKeeper) FundAccount(addr sdk.AccAddress, amt sdk.Coins) {
	b.balances[addr.String()] = b.balances[addr.String()].Add(amt...)
	b.supply = b.supply.Add(amt...)
}

func (b *BankKeeper) MintCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	moduleAddr := authtypes.NewModuleAddress(moduleName)
	b.balances[moduleAddr.String()] = b.balances[moduleAddr.String()].Add(amt...)
	b.supply = b.supply.Add(amt...)
	return nil
}

func (b *BankKeeper) BurnCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	moduleAddr := authtypes.NewModuleAddress(moduleName)
	balance := b.balances[moduleAddr.String()]
	if !amt.IsAllLTE(balance) {
		return fmt.Errorf("module %s balance %s is smaller than %s: insufficient funds", moduleName, balance, amt)
	}
	b.balances[moduleAddr.String()] = balance.Sub(amt...)
	b.supply = b.supply.Sub(amt...)
	return nil
}

func (b *BankKeeper) SendCoins(_ context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	balance := b.balances[fromAddr.String()]
	if !amt.IsAllLTE(balance) {
		return fmt.Errorf("spendable balance %s is smaller than %s: insufficient funds", balance, amt)
	}
	b.balances[fromAddr.String()] = balance.Sub(amt...)
	b.balances[toAddr.String()] = b.balances[toAddr.String()].Add(amt...)
	return nil
}

func (b *BankKeeper) SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return b.SendCoins(ctx, authtypes.NewModuleAddress(senderModule), recipientAddr, amt)
}

func (b *BankKeeper) SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return b.SendCoins(ctx, senderAddr, authtypes.NewModuleAddress(recipientModule), amt)
}

func (b *BankKeeper) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	amt := b.balances[addr.String()].AmountOf(denom)
	return sdk.Coin{Denom: denom, Amount: amt}
}

func (b *BankKeeper) GetSupply(_ context.Context, denom string) sdk.Coin {
	return sdk.Coin{Denom: denom, Amount: b.supply.AmountOf(denom)}
}

func (b *BankKeeper) GetDenomMetaData(_ context.Context, denom string) (banktypes.Metadata, bool) {
	metadata, found := b.metadata[denom]
	return metadata, found
}

func (b *BankKeeper) SetDenomMetaData(_ context.Context, denomMetaData banktypes.Metadata) {
	b.metadata[denomMetaData.Base] = denomMetaData
}

// NewIntCoins is a small helper for building sdk.Coins from a uint64 amount.
func NewIntCoins(denom string, amount uint64) sdk.Coins {
	return sdk.NewCoins(sdk.NewCoin(denom, sdkmath.NewIntFromUint64(amount)))
}
