package keeper

import (
	"context"
)

// EndBlocker is called at the end of every block. It refreshes the pool
// count gauge so the metric survives process restarts without a swap.
func (k Keeper) EndBlocker(ctx context.Context) error {
	k.metrics.PoolsTotal.Set(float64(k.GetTotalPoolsCount(ctx)))
	return nil
}
