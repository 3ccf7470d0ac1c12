package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/amm/types"
)

func (k Keeper) requireAuthority(authority string) error {
	if authority != k.authority {
		return types.ErrUnauthorized.Wrapf("invalid authority; expected %s, got %s", k.authority, authority)
	}
	return nil
}

// SetProtocolFee updates the global protocol fee rate
func (k Keeper) SetProtocolFee(ctx context.Context, authority string, feeBps uint32) error {
	if err := k.requireAuthority(authority); err != nil {
		return err
	}
	if feeBps > types.MaxFeeBps {
		return types.ErrInvalidFee.Wrapf("protocol fee %d exceeds %d bps", feeBps, types.MaxFeeBps)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}
	params.ProtocolFeeBps = feeBps
	if err := k.SetParams(ctx, params); err != nil {
		return err
	}

	k.emitParamsUpdated(ctx, "protocol_fee_bps", fmt.Sprintf("%d", feeBps))
	return nil
}

// SetFeeRecipient updates the account that receives protocol fees
func (k Keeper) SetFeeRecipient(ctx context.Context, authority, recipient string) error {
	if err := k.requireAuthority(authority); err != nil {
		return err
	}
	if _, err := sdk.AccAddressFromBech32(recipient); err != nil {
		return types.ErrInvalidAddress.Wrapf("invalid fee recipient: %v", err)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}
	params.FeeRecipient = recipient
	if err := k.SetParams(ctx, params); err != nil {
		return err
	}

	k.emitParamsUpdated(ctx, "fee_recipient", recipient)
	return nil
}

// DeactivatePool disables a pool. The record and its positions persist and
// stay queryable; only swaps and liquidity operations are blocked.
func (k Keeper) DeactivatePool(ctx context.Context, authority string, poolID uint64) error {
	if err := k.requireAuthority(authority); err != nil {
		return err
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return err
	}
	if !pool.Active {
		return types.ErrPoolInactive.Wrapf("pool %d is already deactivated", poolID)
	}

	pool.Active = false
	if err := k.SetPool(ctx, pool); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePoolDeactivated,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyAuthority, authority),
		),
	)

	return nil
}

// EmergencyWithdraw moves tokens out of module custody. Only allowed while
// the module is paused so it can never race live swaps.
func (k Keeper) EmergencyWithdraw(ctx context.Context, authority, token string, amount math.Int, recipient string) error {
	if err := k.requireAuthority(authority); err != nil {
		return err
	}
	if !k.IsPaused(ctx) {
		return types.ErrNotPaused.Wrap("emergency withdraw requires the module to be paused")
	}
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrap("amount must be positive")
	}

	recipientAddr, err := sdk.AccAddressFromBech32(recipient)
	if err != nil {
		return types.ErrInvalidAddress.Wrapf("invalid recipient: %v", err)
	}

	moduleAddr := k.GetModuleAddress()
	balance := k.bankKeeper.GetBalance(ctx, moduleAddr, token)
	if balance.Amount.LT(amount) {
		return types.ErrInsufficientBalance.Wrapf(
			"module holds %s %s, requested %s", balance.Amount, token, amount)
	}

	if err := k.bankKeeper.SendCoins(ctx, moduleAddr, recipientAddr, sdk.NewCoins(sdk.NewCoin(token, amount))); err != nil {
		return fmt.Errorf("EmergencyWithdraw: transfer: %w", err)
	}

	k.Logger(ctx).Info("emergency withdraw",
		"token", token, "amount", amount.String(), "recipient", recipient)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeEmergencyWithdraw,
			sdk.NewAttribute(types.AttributeKeyToken, token),
			sdk.NewAttribute(types.AttributeKeyAmountOut, amount.String()),
			sdk.NewAttribute(types.AttributeKeyRecipient, recipient),
			sdk.NewAttribute(types.AttributeKeyAuthority, authority),
		),
	)

	return nil
}

func (k Keeper) emitParamsUpdated(ctx context.Context, key, value string) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeParamsUpdated,
			sdk.NewAttribute(key, value),
		),
	)
}
