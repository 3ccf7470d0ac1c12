package keeper

import (
	"context"
	"errors"
	"fmt"

	"cosmossdk.io/math"

	"github.com/meridian-chain/meridian/x/amm/types"
)

// GetProtocolInfo returns a snapshot of global module state
func (k Keeper) GetProtocolInfo(ctx context.Context) (*types.ProtocolInfo, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, fmt.Errorf("GetProtocolInfo: get params: %w", err)
	}

	return &types.ProtocolInfo{
		Params:     params,
		Paused:     k.IsPaused(ctx),
		NextPoolId: k.PeekNextPoolID(ctx),
		NextSwapId: k.PeekNextSwapID(ctx),
		TotalPools: k.GetTotalPoolsCount(ctx),
	}, nil
}

// GetPoolStats returns a pool's reserves, shares, accumulated fees and spot
// prices. Prices are scaled by PricePrecision; a zero price means the
// opposite reserve rounds below the precision floor.
func (k Keeper) GetPoolStats(ctx context.Context, poolID uint64) (*types.PoolStats, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return nil, err
	}

	fees, err := k.GetPoolFees(ctx, poolID)
	if err != nil {
		return nil, err
	}

	precision := math.NewInt(types.PricePrecision)
	spotAB := math.ZeroInt()
	spotBA := math.ZeroInt()
	if pool.ReserveA.IsPositive() && pool.ReserveB.IsPositive() {
		spotAB = pool.ReserveB.Mul(precision).Quo(pool.ReserveA)
		spotBA = pool.ReserveA.Mul(precision).Quo(pool.ReserveB)
	}

	return &types.PoolStats{
		PoolId:         pool.Id,
		TokenA:         pool.TokenA,
		TokenB:         pool.TokenB,
		ReserveA:       pool.ReserveA,
		ReserveB:       pool.ReserveB,
		TotalShares:    pool.TotalShares,
		FeeRateBps:     pool.FeeRateBps,
		SpotPriceAB:    spotAB,
		SpotPriceBA:    spotBA,
		TotalFeesA:     fees.TotalFeesA,
		TotalFeesB:     fees.TotalFeesB,
		Active:         pool.Active,
		CreatedAtBlock: pool.CreatedAtBlock,
	}, nil
}

// GetPoolHealth reports whether a pool is usable: active, holding both
// reserves, and not pathologically imbalanced (neither reserve more than
// 1000x the other).
func (k Keeper) GetPoolHealth(ctx context.Context, poolID uint64) (*types.PoolHealth, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return nil, err
	}

	hasLiquidity := pool.ReserveA.IsPositive() && pool.ReserveB.IsPositive()

	balanced := false
	if hasLiquidity {
		ratioLimit := math.NewInt(1000)
		balanced = pool.ReserveA.LTE(pool.ReserveB.Mul(ratioLimit)) &&
			pool.ReserveB.LTE(pool.ReserveA.Mul(ratioLimit))
	}

	return &types.PoolHealth{
		PoolId:       pool.Id,
		Active:       pool.Active,
		HasLiquidity: hasLiquidity,
		Balanced:     balanced,
	}, nil
}

// GetPoolsRange returns pools with IDs in [startID, endID], clamped to
// PoolsRangeWindow entries. Missing IDs in the range are skipped.
func (k Keeper) GetPoolsRange(ctx context.Context, startID, endID uint64) ([]types.Pool, error) {
	if startID == 0 || endID < startID {
		return nil, types.ErrInvalidAmount.Wrapf("invalid range [%d, %d]", startID, endID)
	}

	if endID-startID+1 > types.PoolsRangeWindow {
		endID = startID + types.PoolsRangeWindow - 1
	}

	pools := make([]types.Pool, 0, types.PoolsRangeWindow)
	for id := startID; id <= endID; id++ {
		pool, err := k.GetPool(ctx, id)
		if err != nil {
			// gaps in the id sequence are expected; anything else is a
			// store problem the caller must see
			if errors.Is(err, types.ErrPoolNotFound) {
				continue
			}
			return nil, err
		}
		pools = append(pools, *pool)
	}
	return pools, nil
}
