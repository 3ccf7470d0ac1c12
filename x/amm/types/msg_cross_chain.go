package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgInitiateCrossChainSwap{}
	_ sdk.Msg = &MsgCompleteCrossChainSwap{}
	_ sdk.Msg = &MsgCancelCrossChainSwap{}
)

// MsgInitiateCrossChainSwap escrows source tokens and opens a pending
// cross-chain swap.
type MsgInitiateCrossChainSwap struct {
	Initiator          string   `json:"initiator"`
	SourceToken        string   `json:"source_token"`
	TargetTokenAddress string   `json:"target_token_address"`
	TargetChain        string   `json:"target_chain"`
	Amount             math.Int `json:"amount"`
	TargetAddress      string   `json:"target_address"`
	ExpiresInBlocks    int64    `json:"expires_in_blocks"`
}

// Route implements the sdk.Msg interface
func (msg MsgInitiateCrossChainSwap) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgInitiateCrossChainSwap) Type() string {
	return "initiate_cross_chain_swap"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgInitiateCrossChainSwap) GetSigners() []sdk.AccAddress {
	initiator, err := sdk.AccAddressFromBech32(msg.Initiator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{initiator}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgInitiateCrossChainSwap) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgInitiateCrossChainSwap) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Initiator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid initiator address: %s", err)
	}

	if err := sdk.ValidateDenom(msg.SourceToken); err != nil {
		return sdkerrors.Wrapf(ErrInvalidToken, "invalid source token: %s", err)
	}

	if msg.TargetTokenAddress == "" {
		return sdkerrors.Wrap(ErrInvalidToken, "target token address cannot be empty")
	}

	if msg.TargetChain == "" {
		return sdkerrors.Wrap(ErrInvalidToken, "target chain cannot be empty")
	}

	if msg.TargetAddress == "" {
		return sdkerrors.Wrap(ErrInvalidAddress, "target address cannot be empty")
	}

	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "amount must be positive")
	}

	if msg.ExpiresInBlocks <= 0 {
		return sdkerrors.Wrap(ErrInvalidAmount, "expiry window must be positive")
	}

	return nil
}

// MsgCompleteCrossChainSwap attests that the target-chain leg of a pending
// swap was delivered. Relayer-only.
type MsgCompleteCrossChainSwap struct {
	Relayer      string   `json:"relayer"`
	SwapId       uint64   `json:"swap_id"`
	TargetAmount math.Int `json:"target_amount"`
	Proof        string   `json:"proof"`
}

// Route implements the sdk.Msg interface
func (msg MsgCompleteCrossChainSwap) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgCompleteCrossChainSwap) Type() string {
	return "complete_cross_chain_swap"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgCompleteCrossChainSwap) GetSigners() []sdk.AccAddress {
	relayer, err := sdk.AccAddressFromBech32(msg.Relayer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{relayer}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgCompleteCrossChainSwap) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgCompleteCrossChainSwap) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Relayer); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid relayer address: %s", err)
	}

	if msg.SwapId == 0 {
		return sdkerrors.Wrap(ErrSwapNotFound, "swap id cannot be zero")
	}

	if msg.TargetAmount.IsNil() || !msg.TargetAmount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "target amount must be positive")
	}

	return nil
}

// MsgCancelCrossChainSwap marks an expired pending swap as failed.
// Callable by the initiator or by the admin.
type MsgCancelCrossChainSwap struct {
	Sender string `json:"sender"`
	SwapId uint64 `json:"swap_id"`
}

// Route implements the sdk.Msg interface
func (msg MsgCancelCrossChainSwap) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgCancelCrossChainSwap) Type() string {
	return "cancel_cross_chain_swap"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgCancelCrossChainSwap) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgCancelCrossChainSwap) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgCancelCrossChainSwap) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid sender address: %s", err)
	}

	if msg.SwapId == 0 {
		return sdkerrors.Wrap(ErrSwapNotFound, "swap id cannot be zero")
	}

	return nil
}
