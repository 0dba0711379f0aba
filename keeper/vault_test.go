package keeper_test

import (
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	"github.com/xstakelabs/xstake/types"
	"github.com/xstakelabs/xstake/utils"
	"github.com/xstakelabs/xstake/utils/mocks"
)

func (s *TestSuite) TestInitializeVault() {
	vault, err := s.k.InitializeVault(s.ctx, "ustep", s.depositor.Bytes)
	s.Require().NoError(err)
	s.Require().NotNil(vault)

	s.Assert().Equal("ustep", vault.Denom)
	s.Assert().Equal("x/ustep", vault.ShareDenom)
	s.Assert().Equal(types.GetVaultAddress("ustep").String(), vault.VaultAddress)
	s.Assert().Equal(types.GetMintAddress("ustep").String(), vault.MintAddress)

	stored, err := s.k.GetVault(s.ctx, "ustep")
	s.Require().NoError(err)
	s.Assert().Equal(*vault, stored)

	metadata, found := s.bank.GetDenomMetaData(s.ctx, "x/ustep")
	s.Require().True(found, "share denom metadata should be registered")
	s.Assert().Equal("x/ustep", metadata.Base)

	event := s.findEvent(types.EventTypeVaultInitialized)
	s.assertAttribute(event, types.AttributeKeyDenom, "ustep")
	s.assertAttribute(event, types.AttributeKeyShareDenom, "x/ustep")
	s.assertAttribute(event, types.AttributeKeyVaultAddress, vault.VaultAddress)
	s.assertAttribute(event, types.AttributeKeyMintAddress, vault.MintAddress)
	s.assertAttribute(event, types.AttributeKeyPayer, s.depositor.Bech32)
}

func (s *TestSuite) TestInitializeVaultCopiesBaseAssetDecimals() {
	s.bank.SetDenomMetaData(s.ctx, banktypes.Metadata{
		Base:    "ustep",
		Display: "step",
		DenomUnits: []*banktypes.DenomUnit{
			{Denom: "ustep", Exponent: 0},
			{Denom: "step", Exponent: 6},
		},
	})

	vault := s.initVault("ustep")
	s.Assert().Equal(uint32(6), vault.Decimals)

	metadata, found := s.bank.GetDenomMetaData(s.ctx, "x/ustep")
	s.Require().True(found)
	s.Assert().Equal("xustep", metadata.Display)
}

func (s *TestSuite) TestInitializeVaultTwiceFails() {
	s.initVault("ustep")

	_, err := s.k.InitializeVault(s.ctx, "ustep", s.depositor.Bytes)
	s.Require().ErrorIs(err, types.ErrAlreadyInitialized)
}

func (s *TestSuite) TestInitializeVaultDenomNotAllowed() {
	err := s.k.Params.Set(s.ctx, types.Params{AllowedDenoms: []string{"uatom"}})
	s.Require().NoError(err)

	_, err = s.k.InitializeVault(s.ctx, "ustep", s.depositor.Bytes)
	s.Require().ErrorIs(err, types.ErrInvalidRequest)

	vault, err := s.k.InitializeVault(s.ctx, "uatom", s.depositor.Bytes)
	s.Require().NoError(err)
	s.Assert().Equal("uatom", vault.Denom)
}

func (s *TestSuite) TestInitializeVaultRejectsNonEmptyCustody() {
	s.bank.FundAccount(types.GetVaultAddress("ustep"), mocks.NewIntCoins("ustep", 25))

	_, err := s.k.InitializeVault(s.ctx, "ustep", s.depositor.Bytes)
	s.Require().ErrorIs(err, types.ErrAlreadyInitialized)
	s.Assert().ErrorContains(err, "not in bootstrap state")
}

func (s *TestSuite) TestStakeBootstrapMintsOneToOne() {
	vault := s.initVault("ustep")

	shares := s.fundAndStake("ustep", 500)
	s.Assert().Equal(uint64(500), shares, "first deposit should mint 1:1")

	s.Assert().Equal(uint64(500), s.vaultBalance(vault))
	s.Assert().Equal(uint64(500), s.shareSupply(vault))
	s.Assert().Equal(uint64(500), s.balanceOf(s.depositor.Bytes, vault.ShareDenom))
	s.Assert().Equal(uint64(0), s.balanceOf(s.depositor.Bytes, vault.Denom))

	event := s.findEvent(types.EventTypeStake)
	s.assertAttribute(event, types.AttributeKeyDenom, "ustep")
	s.assertAttribute(event, types.AttributeKeyDepositor, s.depositor.Bech32)
	s.assertAttribute(event, types.AttributeKeyAmountIn, "500")
	s.assertAttribute(event, types.AttributeKeySharesIssued, "500")
}

func (s *TestSuite) TestStakeProportionalAfterAppreciation() {
	vault := s.initVault("ustep")
	s.fundAndStake("ustep", 500)
	s.donate(vault, 500)

	s.Require().Equal(uint64(1000), s.vaultBalance(vault))
	s.Require().Equal(uint64(500), s.shareSupply(vault))

	shares := s.fundAndStake("ustep", 100)
	s.Assert().Equal(uint64(50), shares, "100 deposited at a 2.0 price should mint 50 shares")

	s.Assert().Equal(uint64(1100), s.vaultBalance(vault))
	s.Assert().Equal(uint64(550), s.shareSupply(vault))
}

func (s *TestSuite) TestStakeFlooringFavorsVault() {
	vault := s.initVault("ustep")
	s.fundAndStake("ustep", 3)
	s.donate(vault, 4)

	// 5 * 3 / 7 = 2 remainder 1; the remainder stays with existing holders.
	shares := s.fundAndStake("ustep", 5)
	s.Assert().Equal(uint64(2), shares)
}

func (s *TestSuite) TestStakeVaultNotFound() {
	_, err := s.k.Stake(s.ctx, "ustep", s.depositor.Bytes, 100)
	s.Require().ErrorIs(err, types.ErrVaultNotFound)
}

func (s *TestSuite) TestStakeInsufficientDepositorFunds() {
	s.initVault("ustep")

	_, err := s.k.Stake(s.ctx, "ustep", s.depositor.Bytes, 100)
	s.Require().Error(err)
	s.Assert().ErrorContains(err, "insufficient funds")
}

func (s *TestSuite) TestStakeZeroAmount() {
	s.initVault("ustep")

	_, err := s.k.Stake(s.ctx, "ustep", s.depositor.Bytes, 0)
	s.Require().ErrorIs(err, types.ErrInvalidRequest)
}

func (s *TestSuite) TestStakeRejectsTamperedBindings() {
	tests := []struct {
		name   string
		mutate func(v *types.Vault)
	}{
		{
			name:   "substituted mint address",
			mutate: func(v *types.Vault) { v.MintAddress = utils.TestAddress().Bech32 },
		},
		{
			name:   "substituted vault address",
			mutate: func(v *types.Vault) { v.VaultAddress = utils.TestAddress().Bech32 },
		},
		{
			name:   "tampered mint salt",
			mutate: func(v *types.Vault) { v.MintSalt-- },
		},
		{
			name:   "tampered vault salt",
			mutate: func(v *types.Vault) { v.VaultSalt-- },
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			vault := s.initVault("ustep")

			// A spoofed record cannot pass SetVault, so plant it directly in state.
			tampered := vault
			tc.mutate(&tampered)
			s.Require().NoError(s.k.Vaults.Set(s.ctx, tampered.Denom, tampered))

			s.bank.FundAccount(s.depositor.Bytes, mocks.NewIntCoins("ustep", 100))
			_, err := s.k.Stake(s.ctx, "ustep", s.depositor.Bytes, 100)
			s.Require().ErrorIs(err, types.ErrBindingMismatch)

			s.Assert().Equal(uint64(0), s.shareSupply(vault), "no shares may be minted against a spoofed record")
			s.Assert().Equal(uint64(100), s.balanceOf(s.depositor.Bytes, "ustep"), "the deposit must not leave the depositor")
			s.Assert().Equal(uint64(0), s.balanceOf(tampered.GetVaultAccAddress(), "ustep"), "nothing may reach a substituted custody address")
		})
	}
}

func (s *TestSuite) TestUnstakeProportionalPayout() {
	vault := s.initVault("ustep")
	s.fundAndStake("ustep", 500)
	s.donate(vault, 500)
	s.fundAndStake("ustep", 100)

	// Holdings 1100, supply 550. Redeeming 50 shares pays out 100.
	payout, err := s.k.Unstake(s.ctx, "ustep", s.depositor.Bytes, 50)
	s.Require().NoError(err)
	s.Assert().Equal(uint64(100), payout)

	s.Assert().Equal(uint64(1000), s.vaultBalance(vault))
	s.Assert().Equal(uint64(500), s.shareSupply(vault))
	s.Assert().Equal(uint64(100), s.balanceOf(s.depositor.Bytes, vault.Denom))

	event := s.findEvent(types.EventTypeUnstake)
	s.assertAttribute(event, types.AttributeKeyDenom, "ustep")
	s.assertAttribute(event, types.AttributeKeyRedeemer, s.depositor.Bech32)
	s.assertAttribute(event, types.AttributeKeySharesBurned, "50")
	s.assertAttribute(event, types.AttributeKeyAmountOut, "100")
}

func (s *TestSuite) TestUnstakeFullRedemptionDrainsVault() {
	vault := s.initVault("ustep")
	shares := s.fundAndStake("ustep", 750)
	s.donate(vault, 250)

	payout, err := s.k.Unstake(s.ctx, "ustep", s.depositor.Bytes, shares)
	s.Require().NoError(err)
	s.Assert().Equal(uint64(1000), payout, "the sole holder redeems the whole holdings, yield included")

	s.Assert().Equal(uint64(0), s.vaultBalance(vault))
	s.Assert().Equal(uint64(0), s.shareSupply(vault))
}

func (s *TestSuite) TestRestakeAfterFullRedemptionBootstraps() {
	vault := s.initVault("ustep")
	shares := s.fundAndStake("ustep", 400)
	_, err := s.k.Unstake(s.ctx, "ustep", s.depositor.Bytes, shares)
	s.Require().NoError(err)

	// Supply is back to zero but a donation leaves the custody account
	// funded. The next deposit still mints 1:1 and inherits the stray funds.
	s.donate(vault, 60)
	minted := s.fundAndStake("ustep", 40)
	s.Assert().Equal(uint64(40), minted)
	s.Assert().Equal(uint64(100), s.vaultBalance(vault))
	s.Assert().Equal(uint64(40), s.shareSupply(vault))
}

func (s *TestSuite) TestUnstakeMoreThanHeld() {
	s.initVault("ustep")
	s.fundAndStake("ustep", 100)

	_, err := s.k.Unstake(s.ctx, "ustep", s.depositor.Bytes, 101)
	s.Require().Error(err)
	s.Assert().ErrorContains(err, "insufficient funds")
}

func (s *TestSuite) TestUnstakeWithZeroSupply() {
	s.initVault("ustep")

	_, err := s.k.Unstake(s.ctx, "ustep", s.depositor.Bytes, 10)
	s.Require().ErrorIs(err, types.ErrDivisionByZero)
}

func (s *TestSuite) TestUnstakeVaultNotFound() {
	_, err := s.k.Unstake(s.ctx, "ustep", s.redeemer.Bytes, 10)
	s.Require().ErrorIs(err, types.ErrVaultNotFound)
}

func (s *TestSuite) TestUnstakeRejectsTamperedBindings() {
	tests := []struct {
		name   string
		mutate func(v *types.Vault)
	}{
		{
			name:   "substituted vault address",
			mutate: func(v *types.Vault) { v.VaultAddress = utils.TestAddress().Bech32 },
		},
		{
			name:   "substituted mint address",
			mutate: func(v *types.Vault) { v.MintAddress = utils.TestAddress().Bech32 },
		},
		{
			name:   "tampered vault salt",
			mutate: func(v *types.Vault) { v.VaultSalt-- },
		},
		{
			name:   "tampered mint salt",
			mutate: func(v *types.Vault) { v.MintSalt-- },
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			vault := s.initVault("ustep")
			s.fundAndStake("ustep", 100)

			tampered := vault
			tc.mutate(&tampered)
			s.Require().NoError(s.k.Vaults.Set(s.ctx, tampered.Denom, tampered))

			_, err := s.k.Unstake(s.ctx, "ustep", s.depositor.Bytes, 50)
			s.Require().ErrorIs(err, types.ErrBindingMismatch)

			s.Assert().Equal(uint64(100), s.shareSupply(vault), "no shares may be burned against a spoofed record")
			s.Assert().Equal(uint64(100), s.vaultBalance(vault), "custody must not release anything")
		})
	}
}

func (s *TestSuite) TestPriceChangeEventOnStake() {
	s.initVault("ustep")
	s.fundAndStake("ustep", 500)

	event := s.findEvent(types.EventTypePriceChange)
	s.assertAttribute(event, types.AttributeKeyDenom, "ustep")
	s.assertAttribute(event, types.AttributeKeyOldPriceFixed, "0")
	s.assertAttribute(event, types.AttributeKeyOldPriceDisplay, "0")
	s.assertAttribute(event, types.AttributeKeyNewPriceFixed, "1000000000")
	s.assertAttribute(event, types.AttributeKeyNewPriceDisplay, "1")
	s.assertAttribute(event, types.AttributeKeyPriceDelta, "1000000000")
}

func (s *TestSuite) TestPriceChangeEventOnUnstake() {
	vault := s.initVault("ustep")
	s.fundAndStake("ustep", 500)
	s.donate(vault, 500)

	_, err := s.k.Unstake(s.ctx, "ustep", s.depositor.Bytes, 250)
	s.Require().NoError(err)

	// Payouts are proportional, so redemption leaves the price at 2.0.
	event := s.findEvent(types.EventTypePriceChange)
	s.assertAttribute(event, types.AttributeKeyOldPriceFixed, "2000000000")
	s.assertAttribute(event, types.AttributeKeyNewPriceFixed, "2000000000")
	s.assertAttribute(event, types.AttributeKeyPriceDelta, "0")
}

func (s *TestSuite) TestEmitPrice() {
	vault := s.initVault("ustep")

	price, err := s.k.EmitPrice(s.ctx, "ustep")
	s.Require().NoError(err)
	s.Assert().Equal(uint64(0), price.Fixed)
	s.Assert().Equal("0", price.Display)

	s.fundAndStake("ustep", 500)
	s.donate(vault, 500)

	price, err = s.k.EmitPrice(s.ctx, "ustep")
	s.Require().NoError(err)
	s.Assert().Equal(2*utils.PriceScale, price.Fixed)
	s.Assert().Equal("2", price.Display)

	event := s.findEvent(types.EventTypePrice)
	s.assertAttribute(event, types.AttributeKeyDenom, "ustep")
	s.assertAttribute(event, types.AttributeKeyPriceFixed, "2000000000")
	s.assertAttribute(event, types.AttributeKeyPriceDisplay, "2")
}

func (s *TestSuite) TestEmitPriceVaultNotFound() {
	_, err := s.k.EmitPrice(s.ctx, "ustep")
	s.Require().ErrorIs(err, types.ErrVaultNotFound)
}

func (s *TestSuite) TestIndependentVaultsDoNotInteract() {
	stepVault := s.initVault("ustep")
	atomVault := s.initVault("uatom")

	s.fundAndStake("ustep", 500)
	s.donate(stepVault, 500)
	s.fundAndStake("uatom", 300)

	s.Assert().Equal(uint64(1000), s.vaultBalance(stepVault))
	s.Assert().Equal(uint64(500), s.shareSupply(stepVault))
	s.Assert().Equal(uint64(300), s.vaultBalance(atomVault))
	s.Assert().Equal(uint64(300), s.shareSupply(atomVault))
}
