package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/meridian-chain/meridian/testutil/keeper"
	"github.com/meridian-chain/meridian/x/amm/types"
)

func TestCreatePool(t *testing.T) {
	t.Run("initial pool gets geometric mean shares", func(t *testing.T) {
		k, ctx, bank := keepertest.AmmKeeper(t)

		poolID := fundAndCreatePool(t, k, ctx, bank)
		require.Equal(t, uint64(1), poolID)

		pool, err := k.GetPool(ctx, poolID)
		require.NoError(t, err)
		require.Equal(t, denomA, pool.TokenA)
		require.Equal(t, denomB, pool.TokenB)
		require.Equal(t, math.NewInt(100_000_000), pool.ReserveA)
		require.Equal(t, math.NewInt(200_000_000), pool.ReserveB)
		// floor(sqrt(100_000_000 * 200_000_000))
		require.Equal(t, math.NewInt(141_421_356), pool.TotalShares)
		require.Equal(t, uint32(300), pool.FeeRateBps)
		require.True(t, pool.Active)
		require.Equal(t, creator.String(), pool.Creator)

		shares, err := k.GetLiquidity(ctx, poolID, creator)
		require.NoError(t, err)
		require.Equal(t, pool.TotalShares, shares)

		// deposits moved into module custody
		require.Equal(t, math.NewInt(100_000_000), bank.BalanceOf(k.GetModuleAddress(), denomA))
		require.Equal(t, math.NewInt(200_000_000), bank.BalanceOf(k.GetModuleAddress(), denomB))

		require.Equal(t, uint64(1), k.GetTotalPoolsCount(ctx))
		require.Equal(t, uint64(2), k.PeekNextPoolID(ctx))
	})

	t.Run("reversed token order maps to the same canonical pool", func(t *testing.T) {
		k, ctx, bank := keepertest.AmmKeeper(t)

		bank.FundAccount(creator, sdk.NewCoins(
			sdk.NewCoin(denomA, math.NewInt(1_000_000_000)),
			sdk.NewCoin(denomB, math.NewInt(1_000_000_000)),
		))

		// tokens passed B-first; amounts follow their tokens into canonical order
		pool, err := k.CreatePool(ctx, creator, denomB, denomA,
			math.NewInt(200_000_000), math.NewInt(100_000_000), 300)
		require.NoError(t, err)
		require.Equal(t, denomA, pool.TokenA)
		require.Equal(t, denomB, pool.TokenB)
		require.Equal(t, math.NewInt(100_000_000), pool.ReserveA)
		require.Equal(t, math.NewInt(200_000_000), pool.ReserveB)
	})

	t.Run("duplicate pair rejected in either order", func(t *testing.T) {
		k, ctx, bank := keepertest.AmmKeeper(t)

		fundAndCreatePool(t, k, ctx, bank)

		_, err := k.CreatePool(ctx, creator, denomA, denomB,
			math.NewInt(1_000_000), math.NewInt(1_000_000), 100)
		require.ErrorIs(t, err, types.ErrAlreadyExists)

		_, err = k.CreatePool(ctx, creator, denomB, denomA,
			math.NewInt(1_000_000), math.NewInt(1_000_000), 100)
		require.ErrorIs(t, err, types.ErrAlreadyExists)
	})

	t.Run("rejects dust deposits", func(t *testing.T) {
		k, ctx, bank := keepertest.AmmKeeper(t)

		bank.FundAccount(creator, sdk.NewCoins(
			sdk.NewCoin(denomA, math.NewInt(1_000_000)),
			sdk.NewCoin(denomB, math.NewInt(1_000_000)),
		))

		// both sides below the default minimum initial liquidity of 1000
		_, err := k.CreatePool(ctx, creator, denomA, denomB,
			math.NewInt(10), math.NewInt(10), 300)
		require.ErrorIs(t, err, types.ErrInsufficientLiquidity)
	})

	t.Run("rejects invalid arguments", func(t *testing.T) {
		k, ctx, bank := keepertest.AmmKeeper(t)

		bank.FundAccount(creator, sdk.NewCoins(
			sdk.NewCoin(denomA, math.NewInt(1_000_000_000)),
			sdk.NewCoin(denomB, math.NewInt(1_000_000_000)),
		))

		_, err := k.CreatePool(ctx, creator, denomA, denomA,
			math.NewInt(1_000_000), math.NewInt(1_000_000), 300)
		require.ErrorIs(t, err, types.ErrInvalidToken)

		_, err = k.CreatePool(ctx, creator, denomA, "",
			math.NewInt(1_000_000), math.NewInt(1_000_000), 300)
		require.ErrorIs(t, err, types.ErrInvalidToken)

		_, err = k.CreatePool(ctx, creator, denomA, denomB,
			math.ZeroInt(), math.NewInt(1_000_000), 300)
		require.ErrorIs(t, err, types.ErrInvalidAmount)

		_, err = k.CreatePool(ctx, creator, denomA, denomB,
			math.NewInt(1_000_000), math.NewInt(1_000_000), types.MaxFeeBps+1)
		require.ErrorIs(t, err, types.ErrInvalidFee)
	})

	t.Run("fails when creator cannot cover the deposit", func(t *testing.T) {
		k, ctx, _ := keepertest.AmmKeeper(t)

		_, err := k.CreatePool(ctx, trader, denomA, denomB,
			math.NewInt(1_000_000), math.NewInt(1_000_000), 300)
		require.ErrorIs(t, err, types.ErrInsufficientBalance)

		require.Equal(t, uint64(0), k.GetTotalPoolsCount(ctx))
	})
}

func TestFindPoolID(t *testing.T) {
	k, ctx, bank := keepertest.AmmKeeper(t)
	poolID := fundAndCreatePool(t, k, ctx, bank)

	id, err := k.FindPoolID(ctx, denomA, denomB)
	require.NoError(t, err)
	require.Equal(t, poolID, id)

	id, err = k.FindPoolID(ctx, denomB, denomA)
	require.NoError(t, err)
	require.Equal(t, poolID, id)

	_, err = k.FindPoolID(ctx, denomA, "unknown")
	require.ErrorIs(t, err, types.ErrPoolNotFound)
}

func TestGetPool(t *testing.T) {
	k, ctx, _ := keepertest.AmmKeeper(t)

	_, err := k.GetPool(ctx, 42)
	require.ErrorIs(t, err, types.ErrPoolNotFound)
}

func TestGetAllPools(t *testing.T) {
	k, ctx, bank := keepertest.AmmKeeper(t)

	bank.FundAccount(creator, sdk.NewCoins(
		sdk.NewCoin(denomA, math.NewInt(1_000_000_000)),
		sdk.NewCoin(denomB, math.NewInt(1_000_000_000)),
		sdk.NewCoin("umerc", math.NewInt(1_000_000_000)),
	))

	_, err := k.CreatePool(ctx, creator, denomA, denomB,
		math.NewInt(10_000_000), math.NewInt(10_000_000), 30)
	require.NoError(t, err)
	_, err = k.CreatePool(ctx, creator, denomA, "umerc",
		math.NewInt(10_000_000), math.NewInt(10_000_000), 30)
	require.NoError(t, err)

	pools, err := k.GetAllPools(ctx)
	require.NoError(t, err)
	require.Len(t, pools, 2)
	require.Equal(t, uint64(2), k.GetTotalPoolsCount(ctx))
}
