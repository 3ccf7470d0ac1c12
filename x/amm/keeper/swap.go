package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/amm/types"
)

// bpsDenominator is the basis-point scale shared by all fee math.
var bpsDenominator = math.NewInt(types.MaxFeeBps)

// calcSwapOutput is the canonical constant-product pricing formula. Both the
// public quote and swap execution go through it, so a quote at height H
// equals the execution output at height H.
//
//	effectiveIn = amountIn * (10000 - feeRateBps) / 10000
//	amountOut   = effectiveIn * reserveOut / (reserveIn + effectiveIn)
//
// All divisions truncate toward zero.
func calcSwapOutput(pool *types.Pool, tokenIn string, amountIn math.Int) (amountOut, reserveIn, reserveOut math.Int, err error) {
	switch tokenIn {
	case pool.TokenA:
		reserveIn, reserveOut = pool.ReserveA, pool.ReserveB
	case pool.TokenB:
		reserveIn, reserveOut = pool.ReserveB, pool.ReserveA
	default:
		return math.Int{}, math.Int{}, math.Int{}, types.ErrInvalidToken.Wrapf(
			"token %s is not part of pool %d", tokenIn, pool.Id)
	}

	if !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return math.Int{}, math.Int{}, math.Int{}, types.ErrInsufficientLiquidity.Wrapf(
			"pool %d has empty reserves", pool.Id)
	}

	feeFactor := bpsDenominator.SubRaw(int64(pool.FeeRateBps))
	effectiveIn := amountIn.Mul(feeFactor).Quo(bpsDenominator)

	denominator := reserveIn.Add(effectiveIn)
	if !denominator.IsPositive() {
		return math.Int{}, math.Int{}, math.Int{}, types.ErrInsufficientLiquidity.Wrap(
			"zero denominator in swap calculation")
	}

	amountOut = effectiveIn.Mul(reserveOut).Quo(denominator)
	if !amountOut.IsPositive() {
		return math.Int{}, math.Int{}, math.Int{}, types.ErrInsufficientLiquidity.Wrapf(
			"input %s too small to produce output", amountIn)
	}
	if amountOut.GTE(reserveOut) {
		return math.Int{}, math.Int{}, math.Int{}, types.ErrInsufficientLiquidity.Wrapf(
			"output %s would drain reserve %s", amountOut, reserveOut)
	}

	return amountOut, reserveIn, reserveOut, nil
}

// QuoteSwapOutput returns the output amount a swap would produce at current
// reserves. Pure read, no state change.
func (k Keeper) QuoteSwapOutput(ctx context.Context, poolID uint64, tokenIn string, amountIn math.Int) (math.Int, error) {
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return math.Int{}, types.ErrInvalidAmount.Wrap("amount in must be positive")
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.Int{}, err
	}

	amountOut, _, _, err := calcSwapOutput(pool, tokenIn, amountIn)
	if err != nil {
		return math.Int{}, err
	}
	return amountOut, nil
}

// PriceImpact returns the relative change in the pool's implied exchange
// rate a trade of amountIn would cause, in basis points.
func (k Keeper) PriceImpact(ctx context.Context, poolID uint64, tokenIn string, amountIn math.Int) (math.Int, error) {
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return math.Int{}, types.ErrInvalidAmount.Wrap("amount in must be positive")
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.Int{}, err
	}

	amountOut, reserveIn, reserveOut, err := calcSwapOutput(pool, tokenIn, amountIn)
	if err != nil {
		return math.Int{}, err
	}

	return priceImpactBps(reserveIn, reserveOut, amountIn, amountOut)
}

// priceImpactBps compares the implied rate before and after a simulated
// trade. Rates carry PricePrecision scaling to survive integer division.
func priceImpactBps(reserveIn, reserveOut, amountIn, amountOut math.Int) (math.Int, error) {
	precision := math.NewInt(types.PricePrecision)

	currentPrice := reserveOut.Mul(precision).Quo(reserveIn)
	if !currentPrice.IsPositive() {
		return math.Int{}, types.ErrInsufficientLiquidity.Wrap("current price rounds to zero")
	}

	newReserveIn := reserveIn.Add(amountIn)
	newReserveOut := reserveOut.Sub(amountOut)
	newPrice := newReserveOut.Mul(precision).Quo(newReserveIn)

	return newPrice.Sub(currentPrice).Abs().Mul(bpsDenominator).Quo(currentPrice), nil
}

// ExecuteSwap performs a swap against a pool. The protocol fee slice is
// forwarded to the fee recipient; the pool fee stays in the reserves for
// liquidity providers. Reserves can never be fully drained.
func (k Keeper) ExecuteSwap(ctx context.Context, trader sdk.AccAddress, poolID uint64, tokenIn, tokenOut string, amountIn, minAmountOut math.Int) (*types.SwapResult, error) {
	if err := k.RequireNotPaused(ctx); err != nil {
		return nil, err
	}
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return nil, types.ErrInvalidAmount.Wrap("amount in must be positive")
	}
	if minAmountOut.IsNil() || minAmountOut.IsNegative() {
		return nil, types.ErrInvalidAmount.Wrap("min amount out cannot be negative")
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return nil, err
	}
	if !pool.Active {
		return nil, types.ErrPoolInactive.Wrapf("pool %d is deactivated", poolID)
	}

	pairMatches := (tokenIn == pool.TokenA && tokenOut == pool.TokenB) ||
		(tokenIn == pool.TokenB && tokenOut == pool.TokenA)
	if !pairMatches {
		return nil, types.ErrInvalidToken.Wrapf(
			"pair %s/%s does not match pool %d (%s/%s)", tokenIn, tokenOut, poolID, pool.TokenA, pool.TokenB)
	}

	amountOut, reserveIn, reserveOut, err := calcSwapOutput(pool, tokenIn, amountIn)
	if err != nil {
		return nil, err
	}
	if amountOut.LT(minAmountOut) {
		return nil, types.ErrSlippageTooHigh.Wrapf(
			"output %s below minimum %s", amountOut, minAmountOut)
	}

	impactBps, err := priceImpactBps(reserveIn, reserveOut, amountIn, amountOut)
	if err != nil {
		return nil, err
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, fmt.Errorf("ExecuteSwap: get params: %w", err)
	}

	// An empty recipient disables the protocol fee entirely
	protocolFee := math.ZeroInt()
	if params.FeeRecipient != "" {
		protocolFee = amountIn.Mul(math.NewInt(int64(params.ProtocolFeeBps))).Quo(bpsDenominator)
	}
	poolFee := amountIn.Mul(math.NewInt(int64(pool.FeeRateBps))).Quo(bpsDenominator)

	moduleAddr := k.GetModuleAddress()

	// Pull the full input into escrow first
	if err := k.bankKeeper.SendCoins(ctx, trader, moduleAddr, sdk.NewCoins(sdk.NewCoin(tokenIn, amountIn))); err != nil {
		return nil, types.ErrInsufficientBalance.Wrapf("failed to pull input: %v", err)
	}

	// Protocol fee leaves the pool entirely
	if protocolFee.IsPositive() {
		recipient, err := sdk.AccAddressFromBech32(params.FeeRecipient)
		if err != nil {
			return nil, types.ErrInvalidAddress.Wrapf("invalid fee recipient: %v", err)
		}
		if err := k.bankKeeper.SendCoins(ctx, moduleAddr, recipient, sdk.NewCoins(sdk.NewCoin(tokenIn, protocolFee))); err != nil {
			return nil, fmt.Errorf("ExecuteSwap: forward protocol fee: %w", err)
		}
	}

	// The pricing formula guarantees the product over the gross reserves
	// (full input in, output out) never decreases. The check runs before the
	// protocol fee slice is withdrawn; that withdrawal is an explicit
	// transfer out of the reserves, not part of the trade.
	oldProduct := reserveIn.Mul(reserveOut)
	grossProduct := reserveIn.Add(amountIn).Mul(reserveOut.Sub(amountOut))
	if grossProduct.LT(oldProduct) {
		return nil, types.ErrInvalidPoolState.Wrapf(
			"constant product decreased: %s -> %s", oldProduct, grossProduct)
	}

	newReserveIn := reserveIn.Add(amountIn).Sub(protocolFee)
	newReserveOut := reserveOut.Sub(amountOut)

	if tokenIn == pool.TokenA {
		pool.ReserveA = newReserveIn
		pool.ReserveB = newReserveOut
	} else {
		pool.ReserveA = newReserveOut
		pool.ReserveB = newReserveIn
	}
	if err := k.SetPool(ctx, pool); err != nil {
		return nil, fmt.Errorf("ExecuteSwap: save pool: %w", err)
	}

	if err := k.bankKeeper.SendCoins(ctx, moduleAddr, trader, sdk.NewCoins(sdk.NewCoin(tokenOut, amountOut))); err != nil {
		return nil, fmt.Errorf("ExecuteSwap: pay output: %w", err)
	}

	if err := k.RecordPoolFee(ctx, pool, tokenIn, poolFee); err != nil {
		return nil, fmt.Errorf("ExecuteSwap: record pool fee: %w", err)
	}
	if err := k.RecordProtocolFee(ctx, tokenIn, protocolFee); err != nil {
		return nil, fmt.Errorf("ExecuteSwap: record protocol fee: %w", err)
	}

	poolLabel := fmt.Sprintf("%d", poolID)
	k.metrics.SwapsTotal.WithLabelValues(poolLabel, tokenIn, tokenOut).Inc()
	k.metrics.SwapVolume.WithLabelValues(poolLabel, tokenIn).Add(float64(amountIn.Int64()))
	k.metrics.SwapFeesCollected.WithLabelValues(poolLabel, "pool").Add(float64(poolFee.Int64()))
	k.metrics.SwapFeesCollected.WithLabelValues(poolLabel, "protocol").Add(float64(protocolFee.Int64()))

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwap,
			sdk.NewAttribute(types.AttributeKeyPoolID, poolLabel),
			sdk.NewAttribute(types.AttributeKeyTrader, trader.String()),
			sdk.NewAttribute(types.AttributeKeyTokenIn, tokenIn),
			sdk.NewAttribute(types.AttributeKeyTokenOut, tokenOut),
			sdk.NewAttribute(types.AttributeKeyAmountIn, amountIn.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut, amountOut.String()),
			sdk.NewAttribute(types.AttributeKeyPoolFee, poolFee.String()),
			sdk.NewAttribute(types.AttributeKeyProtocolFee, protocolFee.String()),
			sdk.NewAttribute(types.AttributeKeyPriceImpact, impactBps.String()),
		),
	)

	return &types.SwapResult{
		AmountIn:       amountIn,
		AmountOut:      amountOut,
		ProtocolFee:    protocolFee,
		PoolFee:        poolFee,
		PriceImpactBps: impactBps,
	}, nil
}
