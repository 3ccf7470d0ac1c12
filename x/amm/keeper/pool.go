package keeper

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/amm/types"
)

// MaxIterationLimit is the maximum number of items to return in unbounded queries
const MaxIterationLimit = 100

// GetNextPoolID returns the next pool ID and increments the counter
func (k Keeper) GetNextPoolID(ctx context.Context) (uint64, error) {
	store := k.getStore(ctx)
	bz := store.Get(PoolCountKey)

	var poolID uint64
	if bz == nil {
		poolID = 1
	} else {
		poolID = binary.BigEndian.Uint64(bz)
	}

	nextBz := make([]byte, 8)
	binary.BigEndian.PutUint64(nextBz, poolID+1)
	store.Set(PoolCountKey, nextBz)

	return poolID, nil
}

// PeekNextPoolID returns the counter without incrementing it
func (k Keeper) PeekNextPoolID(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(PoolCountKey)
	if bz == nil {
		return 1
	}
	return binary.BigEndian.Uint64(bz)
}

// SetNextPoolID sets the next pool ID counter
func (k Keeper) SetNextPoolID(ctx context.Context, poolID uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, poolID)
	store.Set(PoolCountKey, bz)
}

// GetTotalPoolsCount returns the total number of pools in O(1) time.
func (k Keeper) GetTotalPoolsCount(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(TotalPoolsKey)
	if bz == nil {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}

// SetTotalPoolsCount sets the total pools count.
func (k Keeper) SetTotalPoolsCount(ctx context.Context, count uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, count)
	store.Set(TotalPoolsKey, bz)
}

// IncrementTotalPoolsCount increments the pool count by 1.
func (k Keeper) IncrementTotalPoolsCount(ctx context.Context) {
	k.SetTotalPoolsCount(ctx, k.GetTotalPoolsCount(ctx)+1)
}

// CreatePool creates a new liquidity pool for an unordered token pair.
// Tokens are stored lexicographically ordered. Initial shares are the
// geometric mean of the deposits, so the bootstrap price carries no
// dependence on an arbitrary user-chosen share count.
func (k Keeper) CreatePool(ctx context.Context, creator sdk.AccAddress, tokenA, tokenB string, amountA, amountB math.Int, feeRateBps uint32) (*types.Pool, error) {
	if err := k.RequireNotPaused(ctx); err != nil {
		return nil, err
	}

	if tokenA == "" || tokenB == "" {
		return nil, types.ErrInvalidToken.Wrap("token denoms cannot be empty")
	}
	if tokenA == tokenB {
		return nil, types.ErrInvalidToken.Wrap("cannot create pool with identical tokens")
	}
	if amountA.IsNil() || !amountA.IsPositive() {
		return nil, types.ErrInvalidAmount.Wrap("amount A must be positive")
	}
	if amountB.IsNil() || !amountB.IsPositive() {
		return nil, types.ErrInvalidAmount.Wrap("amount B must be positive")
	}
	if feeRateBps > types.MaxFeeBps {
		return nil, types.ErrInvalidFee.Wrapf("fee rate %d exceeds %d bps", feeRateBps, types.MaxFeeBps)
	}

	// Canonical ordering: tokenA < tokenB lexicographically
	if tokenA > tokenB {
		tokenA, tokenB = tokenB, tokenA
		amountA, amountB = amountB, amountA
	}

	if _, err := k.GetPoolByTokens(ctx, tokenA, tokenB); err == nil {
		return nil, types.ErrAlreadyExists.Wrapf("pool already exists for token pair %s/%s", tokenA, tokenB)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, fmt.Errorf("CreatePool: get params: %w", err)
	}

	// Dust pools have trivially manipulable prices
	if amountA.LT(params.MinInitialLiquidity) {
		return nil, types.ErrInsufficientLiquidity.Wrapf(
			"amount A %s below minimum initial liquidity %s", amountA, params.MinInitialLiquidity)
	}
	if amountB.LT(params.MinInitialLiquidity) {
		return nil, types.ErrInsufficientLiquidity.Wrapf(
			"amount B %s below minimum initial liquidity %s", amountB, params.MinInitialLiquidity)
	}

	// initialShares = floor(sqrt(amountA * amountB))
	product := amountA.Mul(amountB)
	sqrtShares, err := math.LegacyNewDecFromInt(product).ApproxSqrt()
	if err != nil {
		return nil, types.ErrInvalidAmount.Wrapf("failed to calculate square root: %v", err)
	}
	initialShares := sqrtShares.TruncateInt()
	if !initialShares.IsPositive() {
		return nil, types.ErrInsufficientLiquidity.Wrap("initial shares would be zero")
	}

	poolID, err := k.GetNextPoolID(ctx)
	if err != nil {
		return nil, fmt.Errorf("CreatePool: get next pool ID: %w", err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	pool := &types.Pool{
		Id:             poolID,
		TokenA:         tokenA,
		TokenB:         tokenB,
		ReserveA:       amountA,
		ReserveB:       amountB,
		TotalShares:    initialShares,
		FeeRateBps:     feeRateBps,
		CreatedAtBlock: sdkCtx.BlockHeight(),
		Active:         true,
		Creator:        creator.String(),
	}

	if err := pool.Validate(); err != nil {
		return nil, fmt.Errorf("CreatePool: validate pool state: %w", err)
	}

	// Escrow both deposits before any state is written
	coins := sdk.NewCoins(sdk.NewCoin(tokenA, amountA), sdk.NewCoin(tokenB, amountB))
	if err := k.bankKeeper.SendCoins(ctx, creator, k.GetModuleAddress(), coins); err != nil {
		return nil, types.ErrInsufficientBalance.Wrapf("failed to escrow initial deposits: %v", err)
	}

	if err := k.SetPool(ctx, pool); err != nil {
		return nil, fmt.Errorf("CreatePool: save pool: %w", err)
	}
	if err := k.SetPoolByTokens(ctx, tokenA, tokenB, poolID); err != nil {
		return nil, fmt.Errorf("CreatePool: set pool by tokens index: %w", err)
	}
	if err := k.SetLiquidity(ctx, poolID, creator, initialShares); err != nil {
		return nil, fmt.Errorf("CreatePool: set creator liquidity: %w", err)
	}
	k.IncrementTotalPoolsCount(ctx)

	k.metrics.PoolsTotal.Set(float64(k.GetTotalPoolsCount(ctx)))
	k.metrics.PoolCreations.Inc()

	sdkCtx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypePoolCreated,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyCreator, creator.String()),
			sdk.NewAttribute(types.AttributeKeyTokenA, tokenA),
			sdk.NewAttribute(types.AttributeKeyTokenB, tokenB),
			sdk.NewAttribute(types.AttributeKeyAmountA, amountA.String()),
			sdk.NewAttribute(types.AttributeKeyAmountB, amountB.String()),
			sdk.NewAttribute(types.AttributeKeyShares, initialShares.String()),
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			sdk.NewAttribute(sdk.AttributeKeySender, creator.String()),
		),
	})

	return pool, nil
}

// GetPool retrieves a pool by its unique numeric ID.
// Returns ErrPoolNotFound if the pool does not exist.
func (k Keeper) GetPool(ctx context.Context, poolID uint64) (*types.Pool, error) {
	store := k.getStore(ctx)
	bz := store.Get(PoolKey(poolID))
	if bz == nil {
		return nil, types.ErrPoolNotFound.Wrapf("pool %d not found", poolID)
	}

	var pool types.Pool
	if err := json.Unmarshal(bz, &pool); err != nil {
		return nil, fmt.Errorf("GetPool: unmarshal pool %d: %w", poolID, err)
	}
	return &pool, nil
}

// SetPool saves a pool to the store
func (k Keeper) SetPool(ctx context.Context, pool *types.Pool) error {
	store := k.getStore(ctx)
	bz, err := json.Marshal(pool)
	if err != nil {
		return fmt.Errorf("SetPool: marshal pool %d: %w", pool.Id, err)
	}
	store.Set(PoolKey(pool.Id), bz)
	return nil
}

// GetPoolByTokens retrieves a pool by its token pair (order-independent).
func (k Keeper) GetPoolByTokens(ctx context.Context, tokenA, tokenB string) (*types.Pool, error) {
	if tokenA > tokenB {
		tokenA, tokenB = tokenB, tokenA
	}

	store := k.getStore(ctx)
	bz := store.Get(PoolByTokensKey(tokenA, tokenB))
	if bz == nil {
		return nil, types.ErrPoolNotFound.Wrapf("pool not found for token pair %s/%s", tokenA, tokenB)
	}

	poolID := binary.BigEndian.Uint64(bz)
	return k.GetPool(ctx, poolID)
}

// FindPoolID resolves an unordered token pair to a pool ID without loading
// the full record.
func (k Keeper) FindPoolID(ctx context.Context, tokenA, tokenB string) (uint64, error) {
	if tokenA > tokenB {
		tokenA, tokenB = tokenB, tokenA
	}

	store := k.getStore(ctx)
	bz := store.Get(PoolByTokensKey(tokenA, tokenB))
	if bz == nil {
		return 0, types.ErrPoolNotFound.Wrapf("pool not found for token pair %s/%s", tokenA, tokenB)
	}
	return binary.BigEndian.Uint64(bz), nil
}

// SetPoolByTokens indexes a pool by its token pair
func (k Keeper) SetPoolByTokens(ctx context.Context, tokenA, tokenB string, poolID uint64) error {
	if tokenA > tokenB {
		tokenA, tokenB = tokenB, tokenA
	}

	store := k.getStore(ctx)
	poolIDBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(poolIDBytes, poolID)
	store.Set(PoolByTokensKey(tokenA, tokenB), poolIDBytes)
	return nil
}

// IteratePools iterates over all pools in ID order
func (k Keeper) IteratePools(ctx context.Context, cb func(pool types.Pool) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, PoolKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pool types.Pool
		if err := json.Unmarshal(iterator.Value(), &pool); err != nil {
			return fmt.Errorf("IteratePools: unmarshal pool: %w", err)
		}
		if cb(pool) {
			break
		}
	}
	return nil
}

// GetAllPools returns all pools, capped at MaxIterationLimit
func (k Keeper) GetAllPools(ctx context.Context) ([]types.Pool, error) {
	pools := make([]types.Pool, 0, MaxIterationLimit)
	err := k.IteratePools(ctx, func(pool types.Pool) bool {
		if len(pools) >= MaxIterationLimit {
			return true
		}
		pools = append(pools, pool)
		return false
	})
	return pools, err
}
