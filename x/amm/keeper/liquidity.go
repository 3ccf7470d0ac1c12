package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/amm/types"
)

// GetLiquidity returns a provider's share balance in a pool, zero if none.
func (k Keeper) GetLiquidity(ctx context.Context, poolID uint64, provider sdk.AccAddress) (math.Int, error) {
	store := k.getStore(ctx)
	bz := store.Get(LiquidityKey(poolID, provider))
	if bz == nil {
		return math.ZeroInt(), nil
	}

	var shares math.Int
	if err := shares.Unmarshal(bz); err != nil {
		return math.Int{}, fmt.Errorf("GetLiquidity: unmarshal shares: %w", err)
	}
	return shares, nil
}

// SetLiquidity writes a provider's share balance; zero deletes the record.
func (k Keeper) SetLiquidity(ctx context.Context, poolID uint64, provider sdk.AccAddress, shares math.Int) error {
	store := k.getStore(ctx)
	key := LiquidityKey(poolID, provider)

	if shares.IsZero() {
		store.Delete(key)
		return nil
	}
	if shares.IsNegative() {
		return types.ErrInvalidAmount.Wrapf("negative shares %s", shares)
	}

	bz, err := shares.Marshal()
	if err != nil {
		return fmt.Errorf("SetLiquidity: marshal shares: %w", err)
	}
	store.Set(key, bz)
	return nil
}

// IterateLiquidityByPool visits every position in a pool. The provider
// address is the key suffix after the 8-byte pool ID.
func (k Keeper) IterateLiquidityByPool(ctx context.Context, poolID uint64, cb func(provider sdk.AccAddress, shares math.Int) (stop bool)) error {
	store := k.getStore(ctx)
	prefix := LiquidityKeyByPoolPrefix(poolID)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var shares math.Int
		if err := shares.Unmarshal(iterator.Value()); err != nil {
			return fmt.Errorf("IterateLiquidityByPool: unmarshal shares: %w", err)
		}
		provider := sdk.AccAddress(iterator.Key()[len(prefix):])
		if cb(provider, shares) {
			break
		}
	}
	return nil
}

// AddLiquidity deposits both tokens at the pool's current ratio and mints
// shares. The desired amounts are upper bounds; the actual deposit preserves
// the reserve ratio, so at most one side is used in full.
func (k Keeper) AddLiquidity(ctx context.Context, provider sdk.AccAddress, poolID uint64, amountADesired, amountBDesired, minSharesOut math.Int) (*types.AddLiquidityResult, error) {
	if err := k.RequireNotPaused(ctx); err != nil {
		return nil, err
	}
	if amountADesired.IsNil() || !amountADesired.IsPositive() {
		return nil, types.ErrInvalidAmount.Wrap("amount A must be positive")
	}
	if amountBDesired.IsNil() || !amountBDesired.IsPositive() {
		return nil, types.ErrInvalidAmount.Wrap("amount B must be positive")
	}
	if minSharesOut.IsNil() || minSharesOut.IsNegative() {
		return nil, types.ErrInvalidAmount.Wrap("min shares cannot be negative")
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return nil, err
	}
	if !pool.Active {
		return nil, types.ErrPoolInactive.Wrapf("pool %d is deactivated", poolID)
	}
	if !pool.ReserveA.IsPositive() || !pool.ReserveB.IsPositive() || !pool.TotalShares.IsPositive() {
		return nil, types.ErrInsufficientLiquidity.Wrapf("pool %d has no liquidity to match", poolID)
	}

	// Preserve the current ratio: take one desired amount in full and scale
	// the other down.
	finalA := amountADesired
	finalB := amountADesired.Mul(pool.ReserveB).Quo(pool.ReserveA)
	if finalB.GT(amountBDesired) {
		finalA = amountBDesired.Mul(pool.ReserveA).Quo(pool.ReserveB)
		finalB = amountBDesired
	}
	if !finalA.IsPositive() || !finalB.IsPositive() {
		return nil, types.ErrInvalidAmount.Wrap("deposit rounds to zero on one side")
	}

	sharesA := finalA.Mul(pool.TotalShares).Quo(pool.ReserveA)
	sharesB := finalB.Mul(pool.TotalShares).Quo(pool.ReserveB)
	minted := math.MinInt(sharesA, sharesB)

	if !minted.IsPositive() {
		return nil, types.ErrInvalidAmount.Wrap("deposit too small to mint shares")
	}
	if minted.LT(minSharesOut) {
		return nil, types.ErrSlippageTooHigh.Wrapf("minted shares %s below minimum %s", minted, minSharesOut)
	}

	coins := sdk.NewCoins(sdk.NewCoin(pool.TokenA, finalA), sdk.NewCoin(pool.TokenB, finalB))
	if err := k.bankKeeper.SendCoins(ctx, provider, k.GetModuleAddress(), coins); err != nil {
		return nil, types.ErrInsufficientBalance.Wrapf("failed to escrow deposit: %v", err)
	}

	pool.ReserveA = pool.ReserveA.Add(finalA)
	pool.ReserveB = pool.ReserveB.Add(finalB)
	pool.TotalShares = pool.TotalShares.Add(minted)
	if err := k.SetPool(ctx, pool); err != nil {
		return nil, fmt.Errorf("AddLiquidity: save pool: %w", err)
	}

	existing, err := k.GetLiquidity(ctx, poolID, provider)
	if err != nil {
		return nil, err
	}
	if err := k.SetLiquidity(ctx, poolID, provider, existing.Add(minted)); err != nil {
		return nil, err
	}

	poolLabel := fmt.Sprintf("%d", poolID)
	k.metrics.LiquidityAdded.WithLabelValues(poolLabel, pool.TokenA).Add(float64(finalA.Int64()))
	k.metrics.LiquidityAdded.WithLabelValues(poolLabel, pool.TokenB).Add(float64(finalB.Int64()))

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAddLiquidity,
			sdk.NewAttribute(types.AttributeKeyPoolID, poolLabel),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyAmountA, finalA.String()),
			sdk.NewAttribute(types.AttributeKeyAmountB, finalB.String()),
			sdk.NewAttribute(types.AttributeKeyShares, minted.String()),
		),
	)

	return &types.AddLiquidityResult{
		SharesMinted: minted,
		AmountA:      finalA,
		AmountB:      finalB,
	}, nil
}

// RemoveLiquidity burns shares and pays out the proportional slice of both
// reserves. Truncation residue stays in the pool for remaining providers.
func (k Keeper) RemoveLiquidity(ctx context.Context, provider sdk.AccAddress, poolID uint64, shares, minAmountA, minAmountB math.Int) (*types.RemoveLiquidityResult, error) {
	if err := k.RequireNotPaused(ctx); err != nil {
		return nil, err
	}
	if shares.IsNil() || !shares.IsPositive() {
		return nil, types.ErrInvalidAmount.Wrap("shares must be positive")
	}
	if minAmountA.IsNil() || minAmountA.IsNegative() || minAmountB.IsNil() || minAmountB.IsNegative() {
		return nil, types.ErrInvalidAmount.Wrap("minimum amounts cannot be negative")
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return nil, err
	}
	if !pool.Active {
		return nil, types.ErrPoolInactive.Wrapf("pool %d is deactivated", poolID)
	}

	position, err := k.GetLiquidity(ctx, poolID, provider)
	if err != nil {
		return nil, err
	}
	if position.LT(shares) {
		return nil, types.ErrInsufficientShares.Wrapf("position %s below requested %s", position, shares)
	}

	amountA := shares.Mul(pool.ReserveA).Quo(pool.TotalShares)
	amountB := shares.Mul(pool.ReserveB).Quo(pool.TotalShares)

	if amountA.LT(minAmountA) {
		return nil, types.ErrSlippageTooHigh.Wrapf("amount A %s below minimum %s", amountA, minAmountA)
	}
	if amountB.LT(minAmountB) {
		return nil, types.ErrSlippageTooHigh.Wrapf("amount B %s below minimum %s", amountB, minAmountB)
	}

	pool.ReserveA = pool.ReserveA.Sub(amountA)
	pool.ReserveB = pool.ReserveB.Sub(amountB)
	pool.TotalShares = pool.TotalShares.Sub(shares)
	if err := k.SetPool(ctx, pool); err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: save pool: %w", err)
	}

	if err := k.SetLiquidity(ctx, poolID, provider, position.Sub(shares)); err != nil {
		return nil, err
	}

	var payout sdk.Coins
	if amountA.IsPositive() {
		payout = payout.Add(sdk.NewCoin(pool.TokenA, amountA))
	}
	if amountB.IsPositive() {
		payout = payout.Add(sdk.NewCoin(pool.TokenB, amountB))
	}
	if !payout.Empty() {
		if err := k.bankKeeper.SendCoins(ctx, k.GetModuleAddress(), provider, payout); err != nil {
			return nil, fmt.Errorf("RemoveLiquidity: pay out: %w", err)
		}
	}

	poolLabel := fmt.Sprintf("%d", poolID)
	k.metrics.LiquidityRemoved.WithLabelValues(poolLabel, pool.TokenA).Add(float64(amountA.Int64()))
	k.metrics.LiquidityRemoved.WithLabelValues(poolLabel, pool.TokenB).Add(float64(amountB.Int64()))

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRemoveLiquidity,
			sdk.NewAttribute(types.AttributeKeyPoolID, poolLabel),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
			sdk.NewAttribute(types.AttributeKeyAmountA, amountA.String()),
			sdk.NewAttribute(types.AttributeKeyAmountB, amountB.String()),
		),
	)

	return &types.RemoveLiquidityResult{
		AmountA: amountA,
		AmountB: amountB,
	}, nil
}
