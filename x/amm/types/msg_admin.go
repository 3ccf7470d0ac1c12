package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgSetProtocolFee{}
	_ sdk.Msg = &MsgSetFeeRecipient{}
	_ sdk.Msg = &MsgSetPaused{}
	_ sdk.Msg = &MsgDeactivatePool{}
	_ sdk.Msg = &MsgEmergencyWithdraw{}
)

// adminSigners resolves the authority field shared by all admin messages.
func adminSigners(authority string) []sdk.AccAddress {
	addr, err := sdk.AccAddressFromBech32(authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{addr}
}

func validateAuthority(authority string) error {
	if _, err := sdk.AccAddressFromBech32(authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}
	return nil
}

// MsgSetProtocolFee updates the global protocol fee rate.
type MsgSetProtocolFee struct {
	Authority      string `json:"authority"`
	ProtocolFeeBps uint32 `json:"protocol_fee_bps"`
}

func (msg MsgSetProtocolFee) Route() string { return RouterKey }
func (msg MsgSetProtocolFee) Type() string  { return "set_protocol_fee" }

func (msg MsgSetProtocolFee) GetSigners() []sdk.AccAddress {
	return adminSigners(msg.Authority)
}

func (msg MsgSetProtocolFee) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

func (msg MsgSetProtocolFee) ValidateBasic() error {
	if err := validateAuthority(msg.Authority); err != nil {
		return err
	}
	if msg.ProtocolFeeBps > MaxFeeBps {
		return sdkerrors.Wrapf(ErrInvalidFee, "protocol fee %d exceeds %d bps", msg.ProtocolFeeBps, MaxFeeBps)
	}
	return nil
}

// MsgSetFeeRecipient updates the account that receives protocol fees.
type MsgSetFeeRecipient struct {
	Authority    string `json:"authority"`
	FeeRecipient string `json:"fee_recipient"`
}

func (msg MsgSetFeeRecipient) Route() string { return RouterKey }
func (msg MsgSetFeeRecipient) Type() string  { return "set_fee_recipient" }

func (msg MsgSetFeeRecipient) GetSigners() []sdk.AccAddress {
	return adminSigners(msg.Authority)
}

func (msg MsgSetFeeRecipient) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

func (msg MsgSetFeeRecipient) ValidateBasic() error {
	if err := validateAuthority(msg.Authority); err != nil {
		return err
	}
	if _, err := sdk.AccAddressFromBech32(msg.FeeRecipient); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid fee recipient: %s", err)
	}
	return nil
}

// MsgSetPaused flips the global pause flag.
type MsgSetPaused struct {
	Authority string `json:"authority"`
	Paused    bool   `json:"paused"`
}

func (msg MsgSetPaused) Route() string { return RouterKey }
func (msg MsgSetPaused) Type() string  { return "set_paused" }

func (msg MsgSetPaused) GetSigners() []sdk.AccAddress {
	return adminSigners(msg.Authority)
}

func (msg MsgSetPaused) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

func (msg MsgSetPaused) ValidateBasic() error {
	return validateAuthority(msg.Authority)
}

// MsgDeactivatePool disables swaps and liquidity operations on a pool.
// The pool record persists and remains queryable.
type MsgDeactivatePool struct {
	Authority string `json:"authority"`
	PoolId    uint64 `json:"pool_id"`
}

func (msg MsgDeactivatePool) Route() string { return RouterKey }
func (msg MsgDeactivatePool) Type() string  { return "deactivate_pool" }

func (msg MsgDeactivatePool) GetSigners() []sdk.AccAddress {
	return adminSigners(msg.Authority)
}

func (msg MsgDeactivatePool) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

func (msg MsgDeactivatePool) ValidateBasic() error {
	if err := validateAuthority(msg.Authority); err != nil {
		return err
	}
	if msg.PoolId == 0 {
		return sdkerrors.Wrap(ErrPoolNotFound, "pool id cannot be zero")
	}
	return nil
}

// MsgEmergencyWithdraw moves tokens out of module custody while the module
// is paused. The recovery path for stuck escrow.
type MsgEmergencyWithdraw struct {
	Authority string   `json:"authority"`
	Token     string   `json:"token"`
	Amount    math.Int `json:"amount"`
	Recipient string   `json:"recipient"`
}

func (msg MsgEmergencyWithdraw) Route() string { return RouterKey }
func (msg MsgEmergencyWithdraw) Type() string  { return "emergency_withdraw" }

func (msg MsgEmergencyWithdraw) GetSigners() []sdk.AccAddress {
	return adminSigners(msg.Authority)
}

func (msg MsgEmergencyWithdraw) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

func (msg MsgEmergencyWithdraw) ValidateBasic() error {
	if err := validateAuthority(msg.Authority); err != nil {
		return err
	}
	if err := sdk.ValidateDenom(msg.Token); err != nil {
		return sdkerrors.Wrapf(ErrInvalidToken, "invalid token: %s", err)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "amount must be positive")
	}
	if _, err := sdk.AccAddressFromBech32(msg.Recipient); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid recipient: %s", err)
	}
	return nil
}
