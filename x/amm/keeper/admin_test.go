package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/meridian-chain/meridian/testutil/keeper"
	"github.com/meridian-chain/meridian/x/amm/types"
)

func TestPauseModule(t *testing.T) {
	t.Run("pause blocks mutations, reads keep working", func(t *testing.T) {
		k, ctx, bank := keepertest.AmmKeeper(t)
		poolID := fundAndCreatePool(t, k, ctx, bank)

		require.NoError(t, k.PauseModule(ctx, keepertest.Authority.String()))
		require.True(t, k.IsPaused(ctx))

		_, err := k.CreatePool(ctx, creator, denomA, "umerc",
			math.NewInt(1_000_000), math.NewInt(1_000_000), 30)
		require.ErrorIs(t, err, types.ErrPaused)

		bank.FundAccount(trader, sdk.NewCoins(sdk.NewCoin(denomA, math.NewInt(1_000_000))))
		_, err = k.ExecuteSwap(ctx, trader, poolID, denomA, denomB,
			math.NewInt(1_000_000), math.ZeroInt())
		require.ErrorIs(t, err, types.ErrPaused)

		_, err = k.AddLiquidity(ctx, creator, poolID,
			math.NewInt(1_000_000), math.NewInt(2_000_000), math.ZeroInt())
		require.ErrorIs(t, err, types.ErrPaused)

		_, err = k.RemoveLiquidity(ctx, creator, poolID,
			math.NewInt(1_000), math.ZeroInt(), math.ZeroInt())
		require.ErrorIs(t, err, types.ErrPaused)

		_, err = k.InitiateSwap(ctx, trader, denomA, targetToken, targetChain,
			math.NewInt(1_000), targetAddress, 144)
		require.ErrorIs(t, err, types.ErrPaused)

		// reads are unaffected
		pool, err := k.GetPool(ctx, poolID)
		require.NoError(t, err)
		require.Equal(t, math.NewInt(100_000_000), pool.ReserveA)

		_, err = k.QuoteSwapOutput(ctx, poolID, denomA, math.NewInt(1_000_000))
		require.NoError(t, err)

		require.NoError(t, k.UnpauseModule(ctx, keepertest.Authority.String()))
		require.False(t, k.IsPaused(ctx))

		_, err = k.ExecuteSwap(ctx, trader, poolID, denomA, denomB,
			math.NewInt(1_000_000), math.ZeroInt())
		require.NoError(t, err)
	})

	t.Run("double pause and double unpause are rejected", func(t *testing.T) {
		k, ctx, _ := keepertest.AmmKeeper(t)

		require.ErrorIs(t, k.UnpauseModule(ctx, keepertest.Authority.String()), types.ErrNotPaused)

		require.NoError(t, k.PauseModule(ctx, keepertest.Authority.String()))
		require.ErrorIs(t, k.PauseModule(ctx, keepertest.Authority.String()), types.ErrPaused)
	})

	t.Run("only the authority may pause", func(t *testing.T) {
		k, ctx, _ := keepertest.AmmKeeper(t)

		require.ErrorIs(t, k.PauseModule(ctx, trader.String()), types.ErrUnauthorized)
		require.False(t, k.IsPaused(ctx))
	})
}

func TestSetProtocolFee(t *testing.T) {
	k, ctx, _ := keepertest.AmmKeeper(t)

	require.NoError(t, k.SetProtocolFee(ctx, keepertest.Authority.String(), 10))

	params, err := k.GetParams(ctx)
	require.NoError(t, err)
	require.Equal(t, uint32(10), params.ProtocolFeeBps)

	err = k.SetProtocolFee(ctx, keepertest.Authority.String(), types.MaxFeeBps+1)
	require.ErrorIs(t, err, types.ErrInvalidFee)

	err = k.SetProtocolFee(ctx, trader.String(), 10)
	require.ErrorIs(t, err, types.ErrUnauthorized)

	// failed updates leave params untouched
	params, err = k.GetParams(ctx)
	require.NoError(t, err)
	require.Equal(t, uint32(10), params.ProtocolFeeBps)
}

func TestSetFeeRecipient(t *testing.T) {
	k, ctx, _ := keepertest.AmmKeeper(t)

	recipient := keepertest.TestAddress(9)
	require.NoError(t, k.SetFeeRecipient(ctx, keepertest.Authority.String(), recipient.String()))

	params, err := k.GetParams(ctx)
	require.NoError(t, err)
	require.Equal(t, recipient.String(), params.FeeRecipient)

	err = k.SetFeeRecipient(ctx, keepertest.Authority.String(), "not-an-address")
	require.ErrorIs(t, err, types.ErrInvalidAddress)

	err = k.SetFeeRecipient(ctx, trader.String(), recipient.String())
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestDeactivatePool(t *testing.T) {
	k, ctx, bank := keepertest.AmmKeeper(t)
	poolID := fundAndCreatePool(t, k, ctx, bank)

	err := k.DeactivatePool(ctx, trader.String(), poolID)
	require.ErrorIs(t, err, types.ErrUnauthorized)

	require.NoError(t, k.DeactivatePool(ctx, keepertest.Authority.String(), poolID))

	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	require.False(t, pool.Active)

	err = k.DeactivatePool(ctx, keepertest.Authority.String(), poolID)
	require.ErrorIs(t, err, types.ErrPoolInactive)

	err = k.DeactivatePool(ctx, keepertest.Authority.String(), 99)
	require.ErrorIs(t, err, types.ErrPoolNotFound)
}

func TestEmergencyWithdraw(t *testing.T) {
	t.Run("requires pause, authority, and sufficient custody", func(t *testing.T) {
		k, ctx, bank := keepertest.AmmKeeper(t)
		fundAndCreatePool(t, k, ctx, bank)

		recipient := keepertest.TestAddress(9)

		err := k.EmergencyWithdraw(ctx, keepertest.Authority.String(), denomA,
			math.NewInt(1_000), recipient.String())
		require.ErrorIs(t, err, types.ErrNotPaused)

		require.NoError(t, k.PauseModule(ctx, keepertest.Authority.String()))

		err = k.EmergencyWithdraw(ctx, trader.String(), denomA,
			math.NewInt(1_000), recipient.String())
		require.ErrorIs(t, err, types.ErrUnauthorized)

		err = k.EmergencyWithdraw(ctx, keepertest.Authority.String(), denomA,
			math.NewInt(999_000_000_000), recipient.String())
		require.ErrorIs(t, err, types.ErrInsufficientBalance)

		require.NoError(t, k.EmergencyWithdraw(ctx, keepertest.Authority.String(), denomA,
			math.NewInt(1_000), recipient.String()))
		require.Equal(t, math.NewInt(1_000), bank.BalanceOf(recipient, denomA))
	})

	t.Run("recovers stranded bridge escrow", func(t *testing.T) {
		k, ctx, bank := keepertest.AmmKeeper(t)
		swapID, ctx := initiateTestSwap(t, k, ctx, bank)

		require.NoError(t, k.CancelSwap(ctx.WithBlockHeight(244), trader, swapID))
		require.NoError(t, k.PauseModule(ctx, keepertest.Authority.String()))

		require.NoError(t, k.EmergencyWithdraw(ctx, keepertest.Authority.String(), denomA,
			math.NewInt(5_000_000), trader.String()))
		require.Equal(t, math.NewInt(5_000_000), bank.BalanceOf(trader, denomA))
		require.Equal(t, math.ZeroInt(), bank.BalanceOf(k.GetModuleAddress(), denomA))
	})
}
