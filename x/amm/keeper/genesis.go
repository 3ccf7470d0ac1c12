package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/amm/types"
)

// InitGenesis initializes the amm module's state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid genesis state: %w", err)
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("failed to set params: %w", err)
	}
	k.SetPaused(ctx, genState.Paused)

	k.SetNextPoolID(ctx, genState.NextPoolId)
	k.SetNextSwapID(ctx, genState.NextSwapId)

	for i := range genState.Pools {
		pool := genState.Pools[i]
		if err := k.SetPool(ctx, &pool); err != nil {
			return fmt.Errorf("failed to set pool %d: %w", pool.Id, err)
		}
		if err := k.SetPoolByTokens(ctx, pool.TokenA, pool.TokenB, pool.Id); err != nil {
			return fmt.Errorf("failed to index pool %d: %w", pool.Id, err)
		}
	}
	k.SetTotalPoolsCount(ctx, uint64(len(genState.Pools)))

	for _, pos := range genState.LiquidityPositions {
		provider, err := sdk.AccAddressFromBech32(pos.Provider)
		if err != nil {
			return fmt.Errorf("invalid liquidity provider address %s: %w", pos.Provider, err)
		}
		if err := k.SetLiquidity(ctx, pos.PoolId, provider, pos.Shares); err != nil {
			return fmt.Errorf("failed to set liquidity position for pool %d: %w", pos.PoolId, err)
		}
	}

	for _, acc := range genState.FeeAccumulators {
		if err := k.SetPoolFees(ctx, acc); err != nil {
			return fmt.Errorf("failed to set fee accumulator for pool %d: %w", acc.PoolId, err)
		}
	}
	for _, acc := range genState.ProtocolFeeAccumulators {
		if err := k.SetProtocolFees(ctx, acc); err != nil {
			return fmt.Errorf("failed to set protocol fee accumulator for %s: %w", acc.Token, err)
		}
	}

	for i := range genState.CrossChainSwaps {
		swap := genState.CrossChainSwaps[i]
		if err := k.SetCrossChainSwap(ctx, &swap); err != nil {
			return fmt.Errorf("failed to set cross-chain swap %d: %w", swap.Id, err)
		}
	}

	return nil
}

// ExportGenesis exports the amm module's state to a genesis state
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get params: %w", err)
	}

	pools, err := k.GetAllPools(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get pools: %w", err)
	}

	positions := []types.LiquidityPosition{}
	feeAccs := []types.FeeAccumulator{}
	for _, pool := range pools {
		if err := k.IterateLiquidityByPool(ctx, pool.Id, func(provider sdk.AccAddress, shares math.Int) bool {
			positions = append(positions, types.LiquidityPosition{
				PoolId:   pool.Id,
				Provider: provider.String(),
				Shares:   shares,
			})
			return false
		}); err != nil {
			return nil, fmt.Errorf("failed to iterate positions for pool %d: %w", pool.Id, err)
		}

		acc, err := k.GetPoolFees(ctx, pool.Id)
		if err != nil {
			return nil, err
		}
		if !acc.TotalFeesA.IsZero() || !acc.TotalFeesB.IsZero() {
			feeAccs = append(feeAccs, acc)
		}
	}

	protocolAccs := []types.ProtocolFeeAccumulator{}
	seen := map[string]bool{}
	for _, pool := range pools {
		for _, token := range []string{pool.TokenA, pool.TokenB} {
			if seen[token] {
				continue
			}
			seen[token] = true
			acc, err := k.GetProtocolFees(ctx, token)
			if err != nil {
				return nil, err
			}
			if !acc.TotalCollected.IsZero() {
				protocolAccs = append(protocolAccs, acc)
			}
		}
	}

	swaps := []types.CrossChainSwap{}
	if err := k.IterateCrossChainSwaps(ctx, func(swap types.CrossChainSwap) bool {
		swaps = append(swaps, swap)
		return false
	}); err != nil {
		return nil, fmt.Errorf("failed to iterate cross-chain swaps: %w", err)
	}

	return &types.GenesisState{
		Params:                  params,
		Paused:                  k.IsPaused(ctx),
		Pools:                   pools,
		LiquidityPositions:      positions,
		FeeAccumulators:         feeAccs,
		ProtocolFeeAccumulators: protocolAccs,
		CrossChainSwaps:         swaps,
		NextPoolId:              k.PeekNextPoolID(ctx),
		NextSwapId:              k.PeekNextSwapID(ctx),
	}, nil
}
