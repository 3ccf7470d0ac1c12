package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	storemetrics "cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/meridian-chain/meridian/x/amm/types"
)

func newStoreOnlyKeeper(t *testing.T) (Keeper, sdk.Context) {
	t.Helper()

	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), storemetrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	k := NewKeeper(storeKey, nil, "authority", nil)
	ctx := sdk.NewContext(stateStore, cmtproto.Header{Height: 1}, false, log.NewNopLogger())
	return *k, ctx
}

func TestGetPoolsRangeSurfacesDecodeErrors(t *testing.T) {
	k, ctx := newStoreOnlyKeeper(t)

	pool := &types.Pool{
		Id:          1,
		TokenA:      "umera",
		TokenB:      "umerb",
		ReserveA:    math.NewInt(1_000_000),
		ReserveB:    math.NewInt(2_000_000),
		TotalShares: math.NewInt(1_414_213),
		FeeRateBps:  30,
		Active:      true,
	}
	require.NoError(t, k.SetPool(ctx, pool))

	// a record that is not valid JSON must fail the whole range read
	k.getStore(ctx).Set(PoolKey(2), []byte("not json"))

	_, err := k.GetPoolsRange(ctx, 1, 3)
	require.Error(t, err)
	require.NotErrorIs(t, err, types.ErrPoolNotFound)

	// plain gaps are still skipped, not errors
	pools, err := k.GetPoolsRange(ctx, 3, 5)
	require.NoError(t, err)
	require.Empty(t, pools)
}
