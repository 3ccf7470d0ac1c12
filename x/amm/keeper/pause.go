package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/amm/types"
)

// IsPaused checks if the module is currently paused
func (k Keeper) IsPaused(ctx context.Context) bool {
	store := k.getStore(ctx)
	bz := store.Get(PausedKey)
	if bz == nil {
		return false
	}
	return bz[0] == 1
}

// SetPaused sets the paused state of the module
func (k Keeper) SetPaused(ctx context.Context, paused bool) {
	store := k.getStore(ctx)
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if paused {
		store.Set(PausedKey, []byte{1})
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeModulePaused,
				sdk.NewAttribute("module", types.ModuleName),
				sdk.NewAttribute("paused_at", fmt.Sprintf("%d", sdkCtx.BlockHeight())),
			),
		)
	} else {
		store.Set(PausedKey, []byte{0})
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeModuleUnpaused,
				sdk.NewAttribute("module", types.ModuleName),
				sdk.NewAttribute("unpaused_at", fmt.Sprintf("%d", sdkCtx.BlockHeight())),
			),
		)
	}
}

// PauseModule pauses the module. Idempotent pause attempts are rejected so
// operators notice a double-pause.
func (k Keeper) PauseModule(ctx context.Context, authority string) error {
	if authority != k.authority {
		return types.ErrUnauthorized.Wrapf("invalid authority; expected %s, got %s", k.authority, authority)
	}
	if k.IsPaused(ctx) {
		return types.ErrPaused.Wrap("module is already paused")
	}

	k.SetPaused(ctx, true)
	k.Logger(ctx).Info("amm module paused", "height", sdk.UnwrapSDKContext(ctx).BlockHeight())
	return nil
}

// UnpauseModule unpauses the module
func (k Keeper) UnpauseModule(ctx context.Context, authority string) error {
	if authority != k.authority {
		return types.ErrUnauthorized.Wrapf("invalid authority; expected %s, got %s", k.authority, authority)
	}
	if !k.IsPaused(ctx) {
		return types.ErrNotPaused.Wrap("module is not paused")
	}

	k.SetPaused(ctx, false)
	k.Logger(ctx).Info("amm module unpaused", "height", sdk.UnwrapSDKContext(ctx).BlockHeight())
	return nil
}

// RequireNotPaused returns an error if the module is paused
func (k Keeper) RequireNotPaused(ctx context.Context) error {
	if k.IsPaused(ctx) {
		return types.ErrPaused.Wrap("module operations are currently paused")
	}
	return nil
}
