package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/meridian-chain/meridian/testutil/keeper"
	"github.com/meridian-chain/meridian/x/amm/keeper"
)

const (
	denomA = "umera"
	denomB = "umerb"
)

var (
	creator = keepertest.TestAddress(1)
	trader  = keepertest.TestAddress(2)
)

// fundAndCreatePool funds the creator and opens the standard test pool:
// 100M denomA, 200M denomB, 300 bps fee.
func fundAndCreatePool(t *testing.T, k keeper.Keeper, ctx sdk.Context, bank *keepertest.MockBankKeeper) uint64 {
	t.Helper()

	bank.FundAccount(creator, sdk.NewCoins(
		sdk.NewCoin(denomA, math.NewInt(1_000_000_000)),
		sdk.NewCoin(denomB, math.NewInt(1_000_000_000)),
	))

	pool, err := k.CreatePool(ctx, creator, denomA, denomB,
		math.NewInt(100_000_000), math.NewInt(200_000_000), 300)
	require.NoError(t, err)
	return pool.Id
}
