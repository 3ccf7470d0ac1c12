package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/meridian-chain/meridian/x/amm/keeper"
	"github.com/meridian-chain/meridian/x/amm/types"
)

// TestAddress returns a deterministic 20-byte test account address
func TestAddress(index byte) sdk.AccAddress {
	addr := make([]byte, 20)
	for i := range addr {
		addr[i] = index
	}
	return sdk.AccAddress(addr)
}

// Authority is the admin account used by the test keeper
var Authority = TestAddress(0xFF)

// AmmKeeper creates a test keeper for the AMM module backed by an in-memory
// store and mock bank
func AmmKeeper(t testing.TB) (keeper.Keeper, sdk.Context, *MockBankKeeper) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	memStoreKey := storetypes.NewMemoryStoreKey(types.MemStoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(memStoreKey, storetypes.StoreTypeMemory, nil)
	require.NoError(t, stateStore.LoadLatestVersion())

	bank := NewMockBankKeeper()
	k := keeper.NewKeeper(
		storeKey,
		bank,
		Authority.String(),
		nil,
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{Height: 1}, false, log.NewNopLogger())

	require.NoError(t, k.InitGenesis(ctx, *types.DefaultGenesis()))

	return *k, ctx, bank
}
