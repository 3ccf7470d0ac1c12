package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/amm/types"
)

// GetPoolFees returns the LP fee accumulator for a pool. Pools that never
// saw a swap return a zeroed record rather than an error.
func (k Keeper) GetPoolFees(ctx context.Context, poolID uint64) (types.FeeAccumulator, error) {
	store := k.getStore(ctx)
	bz := store.Get(PoolFeeKey(poolID))
	if bz == nil {
		return types.NewFeeAccumulator(poolID), nil
	}

	var acc types.FeeAccumulator
	if err := json.Unmarshal(bz, &acc); err != nil {
		return types.FeeAccumulator{}, fmt.Errorf("GetPoolFees: unmarshal pool %d: %w", poolID, err)
	}
	return acc, nil
}

// SetPoolFees writes a pool's LP fee accumulator
func (k Keeper) SetPoolFees(ctx context.Context, acc types.FeeAccumulator) error {
	store := k.getStore(ctx)
	bz, err := json.Marshal(acc)
	if err != nil {
		return fmt.Errorf("SetPoolFees: marshal pool %d: %w", acc.PoolId, err)
	}
	store.Set(PoolFeeKey(acc.PoolId), bz)
	return nil
}

// GetProtocolFees returns the protocol fee accumulator for a token, zeroed
// for tokens never used as swap input.
func (k Keeper) GetProtocolFees(ctx context.Context, token string) (types.ProtocolFeeAccumulator, error) {
	store := k.getStore(ctx)
	bz := store.Get(ProtocolFeeKey(token))
	if bz == nil {
		return types.NewProtocolFeeAccumulator(token), nil
	}

	var acc types.ProtocolFeeAccumulator
	if err := json.Unmarshal(bz, &acc); err != nil {
		return types.ProtocolFeeAccumulator{}, fmt.Errorf("GetProtocolFees: unmarshal token %s: %w", token, err)
	}
	return acc, nil
}

// SetProtocolFees writes a token's protocol fee accumulator
func (k Keeper) SetProtocolFees(ctx context.Context, acc types.ProtocolFeeAccumulator) error {
	store := k.getStore(ctx)
	bz, err := json.Marshal(acc)
	if err != nil {
		return fmt.Errorf("SetProtocolFees: marshal token %s: %w", acc.Token, err)
	}
	store.Set(ProtocolFeeKey(acc.Token), bz)
	return nil
}

// RecordPoolFee adds a swap's LP fee to the pool accumulator on the side
// the fee was paid in. Zero fees still bump LastUpdatedBlock.
func (k Keeper) RecordPoolFee(ctx context.Context, pool *types.Pool, tokenIn string, fee math.Int) error {
	acc, err := k.GetPoolFees(ctx, pool.Id)
	if err != nil {
		return err
	}

	switch tokenIn {
	case pool.TokenA:
		acc.TotalFeesA = acc.TotalFeesA.Add(fee)
	case pool.TokenB:
		acc.TotalFeesB = acc.TotalFeesB.Add(fee)
	default:
		return types.ErrInvalidToken.Wrapf("token %s is not part of pool %d", tokenIn, pool.Id)
	}
	acc.LastUpdatedBlock = sdk.UnwrapSDKContext(ctx).BlockHeight()

	return k.SetPoolFees(ctx, acc)
}

// RecordProtocolFee adds a swap's protocol fee slice to the per-token
// accumulator.
func (k Keeper) RecordProtocolFee(ctx context.Context, token string, fee math.Int) error {
	acc, err := k.GetProtocolFees(ctx, token)
	if err != nil {
		return err
	}

	acc.TotalCollected = acc.TotalCollected.Add(fee)
	acc.LastUpdatedBlock = sdk.UnwrapSDKContext(ctx).BlockHeight()

	return k.SetProtocolFees(ctx, acc)
}
