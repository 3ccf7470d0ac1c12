package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/meridian-chain/meridian/testutil/keeper"
)

func TestFeeAccumulators(t *testing.T) {
	t.Run("untouched keys read as zeroed accumulators", func(t *testing.T) {
		k, ctx, _ := keepertest.AmmKeeper(t)

		acc, err := k.GetPoolFees(ctx, 42)
		require.NoError(t, err)
		require.Equal(t, uint64(42), acc.PoolId)
		require.True(t, acc.TotalFeesA.IsZero())
		require.True(t, acc.TotalFeesB.IsZero())

		pacc, err := k.GetProtocolFees(ctx, denomA)
		require.NoError(t, err)
		require.Equal(t, denomA, pacc.Token)
		require.True(t, pacc.TotalCollected.IsZero())
	})

	t.Run("pool fees accumulate per input side", func(t *testing.T) {
		k, ctx, bank := keepertest.AmmKeeper(t)
		poolID := fundAndCreatePool(t, k, ctx, bank)

		bank.FundAccount(trader, sdk.NewCoins(
			sdk.NewCoin(denomA, math.NewInt(20_000_000)),
			sdk.NewCoin(denomB, math.NewInt(20_000_000)),
		))

		// 300 bps of 10_000_000 per swap
		_, err := k.ExecuteSwap(ctx, trader, poolID, denomA, denomB,
			math.NewInt(10_000_000), math.ZeroInt())
		require.NoError(t, err)

		acc, err := k.GetPoolFees(ctx, poolID)
		require.NoError(t, err)
		require.Equal(t, math.NewInt(300_000), acc.TotalFeesA)
		require.True(t, acc.TotalFeesB.IsZero())
		require.Equal(t, ctx.BlockHeight(), acc.LastUpdatedBlock)

		_, err = k.ExecuteSwap(ctx, trader, poolID, denomA, denomB,
			math.NewInt(10_000_000), math.ZeroInt())
		require.NoError(t, err)

		acc, err = k.GetPoolFees(ctx, poolID)
		require.NoError(t, err)
		require.Equal(t, math.NewInt(600_000), acc.TotalFeesA)

		// swapping the other way lands on the B side
		_, err = k.ExecuteSwap(ctx, trader, poolID, denomB, denomA,
			math.NewInt(10_000_000), math.ZeroInt())
		require.NoError(t, err)

		acc, err = k.GetPoolFees(ctx, poolID)
		require.NoError(t, err)
		require.Equal(t, math.NewInt(600_000), acc.TotalFeesA)
		require.Equal(t, math.NewInt(300_000), acc.TotalFeesB)
	})

	t.Run("protocol fees accumulate per token", func(t *testing.T) {
		k, ctx, bank := keepertest.AmmKeeper(t)
		poolID := fundAndCreatePool(t, k, ctx, bank)

		recipient := keepertest.TestAddress(9)
		require.NoError(t, k.SetFeeRecipient(ctx, keepertest.Authority.String(), recipient.String()))

		bank.FundAccount(trader, sdk.NewCoins(sdk.NewCoin(denomA, math.NewInt(20_000_000))))

		// 5 bps of 10_000_000 per swap
		for i := 0; i < 2; i++ {
			_, err := k.ExecuteSwap(ctx, trader, poolID, denomA, denomB,
				math.NewInt(10_000_000), math.ZeroInt())
			require.NoError(t, err)
		}

		acc, err := k.GetProtocolFees(ctx, denomA)
		require.NoError(t, err)
		require.Equal(t, math.NewInt(10_000), acc.TotalCollected)
		require.Equal(t, math.NewInt(10_000), bank.BalanceOf(recipient, denomA))
	})
}
