package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/meridian-chain/meridian/testutil/keeper"
	"github.com/meridian-chain/meridian/x/amm/types"
)

func TestGetProtocolInfo(t *testing.T) {
	k, ctx, bank := keepertest.AmmKeeper(t)
	fundAndCreatePool(t, k, ctx, bank)

	info, err := k.GetProtocolInfo(ctx)
	require.NoError(t, err)
	require.False(t, info.Paused)
	require.Equal(t, uint64(2), info.NextPoolId)
	require.Equal(t, uint64(1), info.NextSwapId)
	require.Equal(t, uint64(1), info.TotalPools)
	require.Equal(t, uint32(5), info.Params.ProtocolFeeBps)
}

func TestGetPoolStats(t *testing.T) {
	k, ctx, bank := keepertest.AmmKeeper(t)
	poolID := fundAndCreatePool(t, k, ctx, bank)

	stats, err := k.GetPoolStats(ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, poolID, stats.PoolId)
	require.Equal(t, math.NewInt(100_000_000), stats.ReserveA)
	require.Equal(t, math.NewInt(200_000_000), stats.ReserveB)
	// 1 A buys 2 B at PricePrecision scaling
	require.Equal(t, math.NewInt(2_000_000), stats.SpotPriceAB)
	require.Equal(t, math.NewInt(500_000), stats.SpotPriceBA)
	require.True(t, stats.TotalFeesA.IsZero())
	require.True(t, stats.Active)

	_, err = k.GetPoolStats(ctx, 99)
	require.ErrorIs(t, err, types.ErrPoolNotFound)
}

func TestGetPoolHealth(t *testing.T) {
	k, ctx, bank := keepertest.AmmKeeper(t)
	poolID := fundAndCreatePool(t, k, ctx, bank)

	health, err := k.GetPoolHealth(ctx, poolID)
	require.NoError(t, err)
	require.True(t, health.Active)
	require.True(t, health.HasLiquidity)
	require.True(t, health.Balanced)

	// skew the reserves past the imbalance threshold
	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	pool.ReserveA = math.NewInt(1)
	require.NoError(t, k.SetPool(ctx, pool))

	health, err = k.GetPoolHealth(ctx, poolID)
	require.NoError(t, err)
	require.False(t, health.Balanced)
}

func TestGetPoolsRange(t *testing.T) {
	k, ctx, bank := keepertest.AmmKeeper(t)

	denoms := []string{"tokb", "tokc", "tokd", "toke", "tokf", "tokg", "tokh"}
	coins := sdk.NewCoins(sdk.NewCoin("toka", math.NewInt(1_000_000_000)))
	for _, d := range denoms {
		coins = coins.Add(sdk.NewCoin(d, math.NewInt(1_000_000_000)))
	}
	bank.FundAccount(creator, coins)

	for _, d := range denoms {
		_, err := k.CreatePool(ctx, creator, "toka", d,
			math.NewInt(1_000_000), math.NewInt(1_000_000), 30)
		require.NoError(t, err)
	}

	t.Run("window is capped", func(t *testing.T) {
		pools, err := k.GetPoolsRange(ctx, 1, 7)
		require.NoError(t, err)
		require.Len(t, pools, types.PoolsRangeWindow)
		require.Equal(t, uint64(1), pools[0].Id)
		require.Equal(t, uint64(types.PoolsRangeWindow), pools[len(pools)-1].Id)
	})

	t.Run("missing ids are skipped", func(t *testing.T) {
		pools, err := k.GetPoolsRange(ctx, 6, 20)
		require.NoError(t, err)
		require.Len(t, pools, 2)
	})

	t.Run("sub-window ranges are returned whole", func(t *testing.T) {
		pools, err := k.GetPoolsRange(ctx, 2, 3)
		require.NoError(t, err)
		require.Len(t, pools, 2)
	})
}
