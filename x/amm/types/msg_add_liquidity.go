package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgAddLiquidity{}

// MsgAddLiquidity defines a message to add liquidity to an existing pool
type MsgAddLiquidity struct {
	Provider  string   `json:"provider"`
	PoolId    uint64   `json:"pool_id"`
	AmountA   math.Int `json:"amount_a"`
	AmountB   math.Int `json:"amount_b"`
	MinShares math.Int `json:"min_shares"`
}

// NewMsgAddLiquidity creates a new MsgAddLiquidity instance
func NewMsgAddLiquidity(provider string, poolID uint64, amountA, amountB, minShares math.Int) *MsgAddLiquidity {
	return &MsgAddLiquidity{
		Provider:  provider,
		PoolId:    poolID,
		AmountA:   amountA,
		AmountB:   amountB,
		MinShares: minShares,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgAddLiquidity) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgAddLiquidity) Type() string {
	return "add_liquidity"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgAddLiquidity) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgAddLiquidity) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgAddLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}

	if msg.PoolId == 0 {
		return sdkerrors.Wrap(ErrPoolNotFound, "pool id cannot be zero")
	}

	if msg.AmountA.IsNil() || !msg.AmountA.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "amount A must be positive")
	}

	if msg.AmountB.IsNil() || !msg.AmountB.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "amount B must be positive")
	}

	if msg.MinShares.IsNil() || msg.MinShares.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "min shares cannot be negative")
	}

	return nil
}
