package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/meridian-chain/meridian/x/amm/types"
)

// RelayerAuthority decides which accounts may attest cross-chain swap
// completion. The default implementation accepts only the module authority;
// chains running an external relayer set swap this out at wiring time.
type RelayerAuthority interface {
	IsRelayer(ctx context.Context, addr string) bool
}

// Keeper of the amm store
type Keeper struct {
	storeKey   storetypes.StoreKey
	bankKeeper types.BankKeeper
	authority  string
	relayer    RelayerAuthority
	metrics    *Metrics

	// moduleAddressCache avoids recomputing the escrow address in hot paths
	moduleAddressCache sdk.AccAddress
}

// NewKeeper creates a new amm Keeper instance. The authority is the only
// account allowed to perform admin operations; when relayer is nil the
// authority doubles as the sole relayer.
func NewKeeper(
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	authority string,
	relayer RelayerAuthority,
) *Keeper {
	k := &Keeper{
		storeKey:           key,
		bankKeeper:         bankKeeper,
		authority:          authority,
		relayer:            relayer,
		metrics:            NewMetrics(),
		moduleAddressCache: authtypes.NewModuleAddress(types.ModuleName),
	}
	if k.relayer == nil {
		k.relayer = authorityRelayer{authority: authority}
	}
	return k
}

// getStore returns the KVStore for the amm module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// GetAuthority returns the module's admin account address
func (k Keeper) GetAuthority() string {
	return k.authority
}

// GetModuleAddress returns the cached module escrow account address.
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return k.moduleAddressCache
}

// Logger returns a module-tagged logger
func (k Keeper) Logger(ctx context.Context) log.Logger {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.Logger().With("module", "x/"+types.ModuleName)
}

// authorityRelayer is the default RelayerAuthority: admin-only.
type authorityRelayer struct {
	authority string
}

func (r authorityRelayer) IsRelayer(_ context.Context, addr string) bool {
	return addr == r.authority
}
