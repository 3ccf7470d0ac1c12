package types

import (
	"cosmossdk.io/math"
)

// Pool is a constant-product liquidity pool for one token pair.
// TokenA and TokenB are always stored in lexicographic order so that a pair
// maps to exactly one pool regardless of argument order at the call site.
// Records are serialized as JSON in the module store.
type Pool struct {
	Id             uint64   `json:"id"`
	TokenA         string   `json:"token_a"`
	TokenB         string   `json:"token_b"`
	ReserveA       math.Int `json:"reserve_a"`
	ReserveB       math.Int `json:"reserve_b"`
	TotalShares    math.Int `json:"total_shares"`
	FeeRateBps     uint32   `json:"fee_rate_bps"`
	CreatedAtBlock int64    `json:"created_at_block"`
	Active         bool     `json:"active"`
	Creator        string   `json:"creator"`
}

// Validate checks internal consistency of a pool record.
func (p Pool) Validate() error {
	if p.Id == 0 {
		return ErrInvalidPoolState.Wrap("pool id cannot be zero")
	}
	if p.TokenA == "" || p.TokenB == "" {
		return ErrInvalidToken.Wrap("token denoms cannot be empty")
	}
	if p.TokenA == p.TokenB {
		return ErrInvalidToken.Wrap("pool tokens must be different")
	}
	if p.TokenA > p.TokenB {
		return ErrInvalidPoolState.Wrapf("tokens not in canonical order: %s > %s", p.TokenA, p.TokenB)
	}
	if p.FeeRateBps > MaxFeeBps {
		return ErrInvalidFee.Wrapf("fee rate %d exceeds %d bps", p.FeeRateBps, MaxFeeBps)
	}
	if p.ReserveA.IsNil() || p.ReserveB.IsNil() || p.TotalShares.IsNil() {
		return ErrInvalidPoolState.Wrap("nil pool amounts")
	}
	if p.ReserveA.IsNegative() || p.ReserveB.IsNegative() || p.TotalShares.IsNegative() {
		return ErrInvalidPoolState.Wrap("negative pool amounts")
	}
	if p.Active && p.TotalShares.IsPositive() {
		if !p.ReserveA.IsPositive() || !p.ReserveB.IsPositive() {
			return ErrInvalidPoolState.Wrap("active pool with shares must hold both reserves")
		}
	}
	return nil
}

// FeeAccumulator tracks LP fees collected by a single pool, per side.
// Amounts only ever grow; they are recorded in the token the fee was paid in.
type FeeAccumulator struct {
	PoolId           uint64   `json:"pool_id"`
	TotalFeesA       math.Int `json:"total_fees_a"`
	TotalFeesB       math.Int `json:"total_fees_b"`
	LastUpdatedBlock int64    `json:"last_updated_block"`
}

// NewFeeAccumulator returns a zeroed accumulator for a pool.
func NewFeeAccumulator(poolID uint64) FeeAccumulator {
	return FeeAccumulator{
		PoolId:     poolID,
		TotalFeesA: math.ZeroInt(),
		TotalFeesB: math.ZeroInt(),
	}
}

// ProtocolFeeAccumulator tracks the protocol fee slice collected per token.
type ProtocolFeeAccumulator struct {
	Token            string   `json:"token"`
	TotalCollected   math.Int `json:"total_collected"`
	LastUpdatedBlock int64    `json:"last_updated_block"`
}

// NewProtocolFeeAccumulator returns a zeroed accumulator for a token.
func NewProtocolFeeAccumulator(token string) ProtocolFeeAccumulator {
	return ProtocolFeeAccumulator{
		Token:          token,
		TotalCollected: math.ZeroInt(),
	}
}

// Cross-chain swap lifecycle states. A swap starts Pending and ends in
// exactly one of Completed or Failed; both are terminal.
const (
	SwapStatusPending   = "pending"
	SwapStatusCompleted = "completed"
	SwapStatusFailed    = "failed"
)

// CrossChainSwap is the escrow record for one cross-chain swap.
// The source amount is held by the module account from initiation onward;
// completion only attests delivery on the target chain, it moves no funds.
type CrossChainSwap struct {
	Id                 uint64   `json:"id"`
	Initiator          string   `json:"initiator"`
	SourceToken        string   `json:"source_token"`
	TargetTokenAddress string   `json:"target_token_address"`
	SourceAmount       math.Int `json:"source_amount"`
	TargetAmount       math.Int `json:"target_amount"`
	TargetChain        string   `json:"target_chain"`
	TargetAddress      string   `json:"target_address"`
	Status             string   `json:"status"`
	CreatedAtBlock     int64    `json:"created_at_block"`
	ExpiresAtBlock     int64    `json:"expires_at_block"`
}

// Validate checks internal consistency of a cross-chain swap record.
func (s CrossChainSwap) Validate() error {
	if s.Id == 0 {
		return ErrInvalidState.Wrap("swap id cannot be zero")
	}
	if s.Initiator == "" {
		return ErrInvalidAddress.Wrap("initiator cannot be empty")
	}
	if s.SourceToken == "" || s.TargetTokenAddress == "" || s.TargetChain == "" || s.TargetAddress == "" {
		return ErrInvalidToken.Wrap("swap route fields cannot be empty")
	}
	if s.SourceAmount.IsNil() || !s.SourceAmount.IsPositive() {
		return ErrInvalidAmount.Wrap("source amount must be positive")
	}
	if s.TargetAmount.IsNil() || s.TargetAmount.IsNegative() {
		return ErrInvalidAmount.Wrap("target amount cannot be negative")
	}
	switch s.Status {
	case SwapStatusPending, SwapStatusCompleted, SwapStatusFailed:
	default:
		return ErrInvalidState.Wrapf("unknown swap status %q", s.Status)
	}
	if s.ExpiresAtBlock <= s.CreatedAtBlock {
		return ErrInvalidState.Wrap("expiry must be after creation")
	}
	return nil
}

// SwapResult is returned by a successful swap execution.
type SwapResult struct {
	AmountIn       math.Int `json:"amount_in"`
	AmountOut      math.Int `json:"amount_out"`
	ProtocolFee    math.Int `json:"protocol_fee"`
	PoolFee        math.Int `json:"pool_fee"`
	PriceImpactBps math.Int `json:"price_impact_bps"`
}

// AddLiquidityResult reports the amounts actually deposited and the shares minted.
type AddLiquidityResult struct {
	SharesMinted math.Int `json:"shares_minted"`
	AmountA      math.Int `json:"amount_a"`
	AmountB      math.Int `json:"amount_b"`
}

// RemoveLiquidityResult reports the amounts withdrawn for burned shares.
type RemoveLiquidityResult struct {
	AmountA math.Int `json:"amount_a"`
	AmountB math.Int `json:"amount_b"`
}

// PoolStats is the read-only summary returned by the pool stats query.
// Spot prices are scaled by PricePrecision.
type PoolStats struct {
	PoolId        uint64   `json:"pool_id"`
	TokenA        string   `json:"token_a"`
	TokenB        string   `json:"token_b"`
	ReserveA      math.Int `json:"reserve_a"`
	ReserveB      math.Int `json:"reserve_b"`
	TotalShares   math.Int `json:"total_shares"`
	FeeRateBps    uint32   `json:"fee_rate_bps"`
	SpotPriceAB   math.Int `json:"spot_price_a_b"`
	SpotPriceBA   math.Int `json:"spot_price_b_a"`
	TotalFeesA    math.Int `json:"total_fees_a"`
	TotalFeesB    math.Int `json:"total_fees_b"`
	Active        bool     `json:"active"`
	CreatedAtBlock int64   `json:"created_at_block"`
}

// PoolHealth summarizes whether a pool is in a usable state.
type PoolHealth struct {
	PoolId       uint64 `json:"pool_id"`
	Active       bool   `json:"active"`
	HasLiquidity bool   `json:"has_liquidity"`
	Balanced     bool   `json:"balanced"`
}

// ProtocolInfo is the read-only snapshot of global module state.
type ProtocolInfo struct {
	Params     Params `json:"params"`
	Paused     bool   `json:"paused"`
	NextPoolId uint64 `json:"next_pool_id"`
	NextSwapId uint64 `json:"next_swap_id"`
	TotalPools uint64 `json:"total_pools"`
}

// LiquidityPosition pairs a provider with its share balance in one pool.
type LiquidityPosition struct {
	PoolId   uint64   `json:"pool_id"`
	Provider string   `json:"provider"`
	Shares   math.Int `json:"shares"`
}
