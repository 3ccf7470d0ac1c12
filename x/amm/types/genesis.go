package types

import (
	"fmt"
)

// GenesisState holds the full module state for import/export.
type GenesisState struct {
	Params                  Params                   `json:"params"`
	Paused                  bool                     `json:"paused"`
	Pools                   []Pool                   `json:"pools"`
	LiquidityPositions      []LiquidityPosition      `json:"liquidity_positions"`
	FeeAccumulators         []FeeAccumulator         `json:"fee_accumulators"`
	ProtocolFeeAccumulators []ProtocolFeeAccumulator `json:"protocol_fee_accumulators"`
	CrossChainSwaps         []CrossChainSwap         `json:"cross_chain_swaps"`
	NextPoolId              uint64                   `json:"next_pool_id"`
	NextSwapId              uint64                   `json:"next_swap_id"`
}

// DefaultGenesis returns the default genesis state for the AMM module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:                  DefaultParams(),
		Paused:                  false,
		Pools:                   []Pool{},
		LiquidityPositions:      []LiquidityPosition{},
		FeeAccumulators:         []FeeAccumulator{},
		ProtocolFeeAccumulators: []ProtocolFeeAccumulator{},
		CrossChainSwaps:         []CrossChainSwap{},
		NextPoolId:              1,
		NextSwapId:              1,
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	if gs.NextPoolId == 0 {
		return fmt.Errorf("next pool id must be positive")
	}
	if gs.NextSwapId == 0 {
		return fmt.Errorf("next swap id must be positive")
	}

	poolIDs := make(map[uint64]bool, len(gs.Pools))
	for _, pool := range gs.Pools {
		if err := pool.Validate(); err != nil {
			return fmt.Errorf("invalid pool %d: %w", pool.Id, err)
		}
		if poolIDs[pool.Id] {
			return fmt.Errorf("duplicate pool id %d", pool.Id)
		}
		if pool.Id >= gs.NextPoolId {
			return fmt.Errorf("pool id %d not below next pool id %d", pool.Id, gs.NextPoolId)
		}
		poolIDs[pool.Id] = true
	}

	for _, pos := range gs.LiquidityPositions {
		if !poolIDs[pos.PoolId] {
			return fmt.Errorf("liquidity position references unknown pool %d", pos.PoolId)
		}
		if pos.Provider == "" {
			return fmt.Errorf("liquidity position for pool %d missing provider", pos.PoolId)
		}
		if pos.Shares.IsNil() || !pos.Shares.IsPositive() {
			return fmt.Errorf("liquidity position for pool %d must have positive shares", pos.PoolId)
		}
	}

	for _, acc := range gs.FeeAccumulators {
		if !poolIDs[acc.PoolId] {
			return fmt.Errorf("fee accumulator references unknown pool %d", acc.PoolId)
		}
		if acc.TotalFeesA.IsNil() || acc.TotalFeesA.IsNegative() ||
			acc.TotalFeesB.IsNil() || acc.TotalFeesB.IsNegative() {
			return fmt.Errorf("fee accumulator for pool %d has negative totals", acc.PoolId)
		}
	}

	seenTokens := make(map[string]bool, len(gs.ProtocolFeeAccumulators))
	for _, acc := range gs.ProtocolFeeAccumulators {
		if acc.Token == "" {
			return fmt.Errorf("protocol fee accumulator missing token")
		}
		if seenTokens[acc.Token] {
			return fmt.Errorf("duplicate protocol fee accumulator for token %s", acc.Token)
		}
		if acc.TotalCollected.IsNil() || acc.TotalCollected.IsNegative() {
			return fmt.Errorf("protocol fee accumulator for %s has negative total", acc.Token)
		}
		seenTokens[acc.Token] = true
	}

	swapIDs := make(map[uint64]bool, len(gs.CrossChainSwaps))
	for _, swap := range gs.CrossChainSwaps {
		if err := swap.Validate(); err != nil {
			return fmt.Errorf("invalid cross-chain swap %d: %w", swap.Id, err)
		}
		if swapIDs[swap.Id] {
			return fmt.Errorf("duplicate cross-chain swap id %d", swap.Id)
		}
		if swap.Id >= gs.NextSwapId {
			return fmt.Errorf("swap id %d not below next swap id %d", swap.Id, gs.NextSwapId)
		}
		swapIDs[swap.Id] = true
	}

	return nil
}
