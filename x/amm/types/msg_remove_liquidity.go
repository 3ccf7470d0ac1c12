package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgRemoveLiquidity{}

// MsgRemoveLiquidity defines a message to withdraw liquidity from a pool
type MsgRemoveLiquidity struct {
	Provider   string   `json:"provider"`
	PoolId     uint64   `json:"pool_id"`
	Shares     math.Int `json:"shares"`
	MinAmountA math.Int `json:"min_amount_a"`
	MinAmountB math.Int `json:"min_amount_b"`
}

// NewMsgRemoveLiquidity creates a new MsgRemoveLiquidity instance
func NewMsgRemoveLiquidity(provider string, poolID uint64, shares, minAmountA, minAmountB math.Int) *MsgRemoveLiquidity {
	return &MsgRemoveLiquidity{
		Provider:   provider,
		PoolId:     poolID,
		Shares:     shares,
		MinAmountA: minAmountA,
		MinAmountB: minAmountB,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) Type() string {
	return "remove_liquidity"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}

	if msg.PoolId == 0 {
		return sdkerrors.Wrap(ErrPoolNotFound, "pool id cannot be zero")
	}

	if msg.Shares.IsNil() || !msg.Shares.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "shares must be positive")
	}

	if msg.MinAmountA.IsNil() || msg.MinAmountA.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "min amount A cannot be negative")
	}

	if msg.MinAmountB.IsNil() || msg.MinAmountB.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "min amount B cannot be negative")
	}

	return nil
}
