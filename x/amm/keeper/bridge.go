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

// GetNextSwapID returns the next cross-chain swap ID and increments the counter
func (k Keeper) GetNextSwapID(ctx context.Context) (uint64, error) {
	store := k.getStore(ctx)
	bz := store.Get(SwapCountKey)

	var swapID uint64
	if bz == nil {
		swapID = 1
	} else {
		swapID = binary.BigEndian.Uint64(bz)
	}

	nextBz := make([]byte, 8)
	binary.BigEndian.PutUint64(nextBz, swapID+1)
	store.Set(SwapCountKey, nextBz)

	return swapID, nil
}

// PeekNextSwapID returns the counter without incrementing it
func (k Keeper) PeekNextSwapID(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(SwapCountKey)
	if bz == nil {
		return 1
	}
	return binary.BigEndian.Uint64(bz)
}

// SetNextSwapID sets the next cross-chain swap ID counter
func (k Keeper) SetNextSwapID(ctx context.Context, swapID uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, swapID)
	store.Set(SwapCountKey, bz)
}

// GetCrossChainSwap retrieves a cross-chain swap by ID
func (k Keeper) GetCrossChainSwap(ctx context.Context, swapID uint64) (*types.CrossChainSwap, error) {
	store := k.getStore(ctx)
	bz := store.Get(CrossChainSwapKey(swapID))
	if bz == nil {
		return nil, types.ErrSwapNotFound.Wrapf("cross-chain swap %d not found", swapID)
	}

	var swap types.CrossChainSwap
	if err := json.Unmarshal(bz, &swap); err != nil {
		return nil, fmt.Errorf("GetCrossChainSwap: unmarshal swap %d: %w", swapID, err)
	}
	return &swap, nil
}

// SetCrossChainSwap saves a cross-chain swap record
func (k Keeper) SetCrossChainSwap(ctx context.Context, swap *types.CrossChainSwap) error {
	store := k.getStore(ctx)
	bz, err := json.Marshal(swap)
	if err != nil {
		return fmt.Errorf("SetCrossChainSwap: marshal swap %d: %w", swap.Id, err)
	}
	store.Set(CrossChainSwapKey(swap.Id), bz)
	return nil
}

// IterateCrossChainSwaps iterates over all cross-chain swaps in ID order
func (k Keeper) IterateCrossChainSwaps(ctx context.Context, cb func(swap types.CrossChainSwap) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, CrossChainSwapKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var swap types.CrossChainSwap
		if err := json.Unmarshal(iterator.Value(), &swap); err != nil {
			return fmt.Errorf("IterateCrossChainSwaps: unmarshal swap: %w", err)
		}
		if cb(swap) {
			break
		}
	}
	return nil
}

// InitiateSwap escrows amount of sourceToken and opens a Pending cross-chain
// swap. The escrow stays with the module until a terminal transition; neither
// Completed nor Failed moves it back.
func (k Keeper) InitiateSwap(ctx context.Context, initiator sdk.AccAddress, sourceToken, targetTokenAddress, targetChain string, amount math.Int, targetAddress string, expiresInBlocks int64) (uint64, error) {
	if err := k.RequireNotPaused(ctx); err != nil {
		return 0, err
	}
	if amount.IsNil() || !amount.IsPositive() {
		return 0, types.ErrInvalidAmount.Wrap("amount must be positive")
	}
	if expiresInBlocks <= 0 {
		return 0, types.ErrInvalidAmount.Wrap("expiry window must be positive")
	}
	if sourceToken == "" {
		return 0, types.ErrInvalidToken.Wrap("source token cannot be empty")
	}
	if targetTokenAddress == "" || targetChain == "" || targetAddress == "" {
		return 0, types.ErrInvalidToken.Wrap("target route fields cannot be empty")
	}

	if err := k.bankKeeper.SendCoins(ctx, initiator, k.GetModuleAddress(), sdk.NewCoins(sdk.NewCoin(sourceToken, amount))); err != nil {
		return 0, types.ErrInsufficientBalance.Wrapf("failed to escrow source amount: %v", err)
	}

	swapID, err := k.GetNextSwapID(ctx)
	if err != nil {
		return 0, fmt.Errorf("InitiateSwap: get next swap ID: %w", err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	height := sdkCtx.BlockHeight()

	swap := &types.CrossChainSwap{
		Id:                 swapID,
		Initiator:          initiator.String(),
		SourceToken:        sourceToken,
		TargetTokenAddress: targetTokenAddress,
		SourceAmount:       amount,
		TargetAmount:       math.ZeroInt(),
		TargetChain:        targetChain,
		TargetAddress:      targetAddress,
		Status:             types.SwapStatusPending,
		CreatedAtBlock:     height,
		ExpiresAtBlock:     height + expiresInBlocks,
	}
	if err := k.SetCrossChainSwap(ctx, swap); err != nil {
		return 0, err
	}

	k.metrics.BridgeSwapsInitiated.Inc()
	k.metrics.BridgeEscrowLocked.WithLabelValues(sourceToken, targetChain).Add(float64(amount.Int64()))

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCrossChainInitiated,
			sdk.NewAttribute(types.AttributeKeySwapID, fmt.Sprintf("%d", swapID)),
			sdk.NewAttribute(types.AttributeKeyInitiator, initiator.String()),
			sdk.NewAttribute(types.AttributeKeyToken, sourceToken),
			sdk.NewAttribute(types.AttributeKeyAmountIn, amount.String()),
			sdk.NewAttribute(types.AttributeKeyTargetChain, targetChain),
			sdk.NewAttribute(types.AttributeKeyExpiresAt, fmt.Sprintf("%d", swap.ExpiresAtBlock)),
		),
	)

	return swapID, nil
}

// CompleteSwap attests delivery on the target chain. Relayer-only, Pending
// only, strictly before expiry. Moves no funds; the escrow stays captured.
func (k Keeper) CompleteSwap(ctx context.Context, caller sdk.AccAddress, swapID uint64, targetAmount math.Int, proof string) error {
	if !k.relayer.IsRelayer(ctx, caller.String()) {
		return types.ErrUnauthorized.Wrapf("%s is not an authorized relayer", caller)
	}
	if targetAmount.IsNil() || !targetAmount.IsPositive() {
		return types.ErrInvalidAmount.Wrap("target amount must be positive")
	}

	swap, err := k.GetCrossChainSwap(ctx, swapID)
	if err != nil {
		return err
	}
	if swap.Status != types.SwapStatusPending {
		return types.ErrSwapNotPending.Wrapf("swap %d has status %s", swapID, swap.Status)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if sdkCtx.BlockHeight() >= swap.ExpiresAtBlock {
		return types.ErrSwapExpired.Wrapf(
			"swap %d expired at block %d (current %d)", swapID, swap.ExpiresAtBlock, sdkCtx.BlockHeight())
	}

	swap.TargetAmount = targetAmount
	swap.Status = types.SwapStatusCompleted
	if err := k.SetCrossChainSwap(ctx, swap); err != nil {
		return err
	}

	k.metrics.BridgeSwapsCompleted.Inc()
	k.Logger(ctx).Info("cross-chain swap completed",
		"swap_id", swapID, "relayer", caller.String(), "proof_len", len(proof))

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCrossChainCompleted,
			sdk.NewAttribute(types.AttributeKeySwapID, fmt.Sprintf("%d", swapID)),
			sdk.NewAttribute(types.AttributeKeyTargetAmount, targetAmount.String()),
			sdk.NewAttribute(types.AttributeKeyStatus, types.SwapStatusCompleted),
		),
	)

	return nil
}

// CancelSwap marks an expired Pending swap Failed. Callable by the initiator
// or the authority, only at or after expiry. The escrowed source amount is
// not refunded; recovery goes through EmergencyWithdraw while paused.
func (k Keeper) CancelSwap(ctx context.Context, caller sdk.AccAddress, swapID uint64) error {
	swap, err := k.GetCrossChainSwap(ctx, swapID)
	if err != nil {
		return err
	}

	callerStr := caller.String()
	if callerStr != swap.Initiator && callerStr != k.authority {
		return types.ErrUnauthorized.Wrapf("%s is neither initiator nor authority", callerStr)
	}
	if swap.Status != types.SwapStatusPending {
		return types.ErrSwapNotPending.Wrapf("swap %d has status %s", swapID, swap.Status)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if sdkCtx.BlockHeight() < swap.ExpiresAtBlock {
		return types.ErrSwapNotExpired.Wrapf(
			"swap %d expires at block %d (current %d)", swapID, swap.ExpiresAtBlock, sdkCtx.BlockHeight())
	}

	swap.Status = types.SwapStatusFailed
	if err := k.SetCrossChainSwap(ctx, swap); err != nil {
		return err
	}

	k.metrics.BridgeSwapsCancelled.Inc()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCrossChainCancelled,
			sdk.NewAttribute(types.AttributeKeySwapID, fmt.Sprintf("%d", swapID)),
			sdk.NewAttribute(types.AttributeKeyStatus, types.SwapStatusFailed),
		),
	)

	return nil
}
