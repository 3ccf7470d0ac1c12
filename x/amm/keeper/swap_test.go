package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/meridian-chain/meridian/testutil/keeper"
	"github.com/meridian-chain/meridian/x/amm/types"
)

func TestQuoteSwapOutput(t *testing.T) {
	k, ctx, bank := keepertest.AmmKeeper(t)
	poolID := fundAndCreatePool(t, k, ctx, bank)

	t.Run("constant product quote with fee", func(t *testing.T) {
		// effectiveIn = 10_000_000 * 9700 / 10000 = 9_700_000
		// out = 9_700_000 * 200_000_000 / 109_700_000 = 17_684_594 (floor)
		out, err := k.QuoteSwapOutput(ctx, poolID, denomA, math.NewInt(10_000_000))
		require.NoError(t, err)
		require.Equal(t, math.NewInt(17_684_594), out)
	})

	t.Run("quote is a pure read", func(t *testing.T) {
		before, err := k.GetPool(ctx, poolID)
		require.NoError(t, err)

		_, err = k.QuoteSwapOutput(ctx, poolID, denomA, math.NewInt(10_000_000))
		require.NoError(t, err)

		after, err := k.GetPool(ctx, poolID)
		require.NoError(t, err)
		require.Equal(t, before.ReserveA, after.ReserveA)
		require.Equal(t, before.ReserveB, after.ReserveB)
	})

	t.Run("rejects bad inputs", func(t *testing.T) {
		_, err := k.QuoteSwapOutput(ctx, poolID, denomA, math.ZeroInt())
		require.ErrorIs(t, err, types.ErrInvalidAmount)

		_, err = k.QuoteSwapOutput(ctx, poolID, "unknown", math.NewInt(1_000))
		require.ErrorIs(t, err, types.ErrInvalidToken)

		_, err = k.QuoteSwapOutput(ctx, 99, denomA, math.NewInt(1_000))
		require.ErrorIs(t, err, types.ErrPoolNotFound)
	})

	t.Run("rejects input too small to price", func(t *testing.T) {
		// one unit at 300 bps fee truncates to zero effective input
		_, err := k.QuoteSwapOutput(ctx, poolID, denomA, math.NewInt(1))
		require.ErrorIs(t, err, types.ErrInsufficientLiquidity)
	})
}

func TestExecuteSwap(t *testing.T) {
	t.Run("execution matches the quote at the same height", func(t *testing.T) {
		k, ctx, bank := keepertest.AmmKeeper(t)
		poolID := fundAndCreatePool(t, k, ctx, bank)

		amountIn := math.NewInt(10_000_000)
		bank.FundAccount(trader, sdk.NewCoins(sdk.NewCoin(denomA, amountIn)))

		quoted, err := k.QuoteSwapOutput(ctx, poolID, denomA, amountIn)
		require.NoError(t, err)

		result, err := k.ExecuteSwap(ctx, trader, poolID, denomA, denomB, amountIn, quoted)
		require.NoError(t, err)
		require.Equal(t, quoted, result.AmountOut)
		require.Equal(t, math.NewInt(17_684_594), result.AmountOut)
		require.Equal(t, math.NewInt(300_000), result.PoolFee)
		// no fee recipient configured, so no protocol fee is taken
		require.True(t, result.ProtocolFee.IsZero())
		require.True(t, result.PriceImpactBps.IsPositive())

		require.Equal(t, math.ZeroInt(), bank.BalanceOf(trader, denomA))
		require.Equal(t, quoted, bank.BalanceOf(trader, denomB))

		pool, err := k.GetPool(ctx, poolID)
		require.NoError(t, err)
		require.Equal(t, math.NewInt(110_000_000), pool.ReserveA)
		require.Equal(t, math.NewInt(200_000_000).Sub(quoted), pool.ReserveB)
	})

	t.Run("constant product never decreases", func(t *testing.T) {
		k, ctx, bank := keepertest.AmmKeeper(t)
		poolID := fundAndCreatePool(t, k, ctx, bank)

		bank.FundAccount(trader, sdk.NewCoins(sdk.NewCoin(denomA, math.NewInt(50_000_000))))

		before, err := k.GetPool(ctx, poolID)
		require.NoError(t, err)
		oldProduct := before.ReserveA.Mul(before.ReserveB)

		_, err = k.ExecuteSwap(ctx, trader, poolID, denomA, denomB,
			math.NewInt(50_000_000), math.ZeroInt())
		require.NoError(t, err)

		after, err := k.GetPool(ctx, poolID)
		require.NoError(t, err)
		require.True(t, after.ReserveA.Mul(after.ReserveB).GTE(oldProduct))
	})

	t.Run("protocol fee is forwarded when a recipient is set", func(t *testing.T) {
		k, ctx, bank := keepertest.AmmKeeper(t)
		poolID := fundAndCreatePool(t, k, ctx, bank)

		recipient := keepertest.TestAddress(9)
		require.NoError(t, k.SetFeeRecipient(ctx, keepertest.Authority.String(), recipient.String()))

		amountIn := math.NewInt(10_000_000)
		bank.FundAccount(trader, sdk.NewCoins(sdk.NewCoin(denomA, amountIn)))

		result, err := k.ExecuteSwap(ctx, trader, poolID, denomA, denomB, amountIn, math.ZeroInt())
		require.NoError(t, err)

		// 5 bps of 10_000_000
		require.Equal(t, math.NewInt(5_000), result.ProtocolFee)
		require.Equal(t, math.NewInt(5_000), bank.BalanceOf(recipient, denomA))

		// protocol fee left the reserves
		pool, err := k.GetPool(ctx, poolID)
		require.NoError(t, err)
		require.Equal(t, math.NewInt(109_995_000), pool.ReserveA)

		acc, err := k.GetProtocolFees(ctx, denomA)
		require.NoError(t, err)
		require.Equal(t, math.NewInt(5_000), acc.TotalCollected)
	})

	t.Run("protocol fee above the pool fee does not block swaps", func(t *testing.T) {
		k, ctx, bank := keepertest.AmmKeeper(t)

		// a 0 bps pool with the default 5 bps protocol fee active
		bank.FundAccount(creator, sdk.NewCoins(
			sdk.NewCoin(denomA, math.NewInt(100_000_000)),
			sdk.NewCoin(denomB, math.NewInt(200_000_000)),
		))
		pool, err := k.CreatePool(ctx, creator, denomA, denomB,
			math.NewInt(100_000_000), math.NewInt(200_000_000), 0)
		require.NoError(t, err)

		recipient := keepertest.TestAddress(9)
		require.NoError(t, k.SetFeeRecipient(ctx, keepertest.Authority.String(), recipient.String()))

		amountIn := math.NewInt(10_000_000)
		bank.FundAccount(trader, sdk.NewCoins(sdk.NewCoin(denomA, amountIn)))

		quoted, err := k.QuoteSwapOutput(ctx, pool.Id, denomA, amountIn)
		require.NoError(t, err)
		// 10_000_000 * 200_000_000 / 110_000_000, no pool fee
		require.Equal(t, math.NewInt(18_181_818), quoted)

		result, err := k.ExecuteSwap(ctx, trader, pool.Id, denomA, denomB,
			amountIn, quoted)
		require.NoError(t, err)
		require.Equal(t, quoted, result.AmountOut)
		require.Equal(t, math.NewInt(5_000), result.ProtocolFee)
		require.True(t, result.PoolFee.IsZero())

		after, err := k.GetPool(ctx, pool.Id)
		require.NoError(t, err)
		require.Equal(t, math.NewInt(109_995_000), after.ReserveA)
		require.Equal(t, math.NewInt(181_818_182), after.ReserveB)
	})

	t.Run("slippage failure leaves state untouched", func(t *testing.T) {
		k, ctx, bank := keepertest.AmmKeeper(t)
		poolID := fundAndCreatePool(t, k, ctx, bank)

		amountIn := math.NewInt(10_000_000)
		bank.FundAccount(trader, sdk.NewCoins(sdk.NewCoin(denomA, amountIn)))

		_, err := k.ExecuteSwap(ctx, trader, poolID, denomA, denomB,
			amountIn, math.NewInt(18_000_000))
		require.ErrorIs(t, err, types.ErrSlippageTooHigh)

		require.Equal(t, amountIn, bank.BalanceOf(trader, denomA))
		pool, err := k.GetPool(ctx, poolID)
		require.NoError(t, err)
		require.Equal(t, math.NewInt(100_000_000), pool.ReserveA)
		require.Equal(t, math.NewInt(200_000_000), pool.ReserveB)
	})

	t.Run("rejects mismatched pair", func(t *testing.T) {
		k, ctx, bank := keepertest.AmmKeeper(t)
		poolID := fundAndCreatePool(t, k, ctx, bank)

		bank.FundAccount(trader, sdk.NewCoins(sdk.NewCoin(denomA, math.NewInt(1_000_000))))

		_, err := k.ExecuteSwap(ctx, trader, poolID, denomA, "unknown",
			math.NewInt(1_000_000), math.ZeroInt())
		require.ErrorIs(t, err, types.ErrInvalidToken)

		_, err = k.ExecuteSwap(ctx, trader, poolID, denomA, denomA,
			math.NewInt(1_000_000), math.ZeroInt())
		require.ErrorIs(t, err, types.ErrInvalidToken)
	})

	t.Run("rejects inactive pool", func(t *testing.T) {
		k, ctx, bank := keepertest.AmmKeeper(t)
		poolID := fundAndCreatePool(t, k, ctx, bank)

		require.NoError(t, k.DeactivatePool(ctx, keepertest.Authority.String(), poolID))

		bank.FundAccount(trader, sdk.NewCoins(sdk.NewCoin(denomA, math.NewInt(1_000_000))))
		_, err := k.ExecuteSwap(ctx, trader, poolID, denomA, denomB,
			math.NewInt(1_000_000), math.ZeroInt())
		require.ErrorIs(t, err, types.ErrPoolInactive)
	})

	t.Run("fails when trader cannot cover the input", func(t *testing.T) {
		k, ctx, bank := keepertest.AmmKeeper(t)
		poolID := fundAndCreatePool(t, k, ctx, bank)

		_, err := k.ExecuteSwap(ctx, trader, poolID, denomA, denomB,
			math.NewInt(1_000_000), math.ZeroInt())
		require.ErrorIs(t, err, types.ErrInsufficientBalance)
	})
}

func TestPriceImpact(t *testing.T) {
	k, ctx, bank := keepertest.AmmKeeper(t)
	poolID := fundAndCreatePool(t, k, ctx, bank)

	small, err := k.PriceImpact(ctx, poolID, denomA, math.NewInt(1_000_000))
	require.NoError(t, err)
	large, err := k.PriceImpact(ctx, poolID, denomA, math.NewInt(50_000_000))
	require.NoError(t, err)

	require.True(t, small.IsPositive())
	require.True(t, large.GT(small))

	_, err = k.PriceImpact(ctx, poolID, denomA, math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInvalidAmount)
}
