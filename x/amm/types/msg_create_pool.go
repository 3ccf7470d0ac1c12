package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgCreatePool{}

// MsgCreatePool defines a message to create a new liquidity pool
type MsgCreatePool struct {
	Creator    string   `json:"creator"`
	TokenA     string   `json:"token_a"`
	TokenB     string   `json:"token_b"`
	AmountA    math.Int `json:"amount_a"`
	AmountB    math.Int `json:"amount_b"`
	FeeRateBps uint32   `json:"fee_rate_bps"`
}

// NewMsgCreatePool creates a new MsgCreatePool instance
func NewMsgCreatePool(creator, tokenA, tokenB string, amountA, amountB math.Int, feeRateBps uint32) *MsgCreatePool {
	return &MsgCreatePool{
		Creator:    creator,
		TokenA:     tokenA,
		TokenB:     tokenB,
		AmountA:    amountA,
		AmountB:    amountB,
		FeeRateBps: feeRateBps,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgCreatePool) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgCreatePool) Type() string {
	return "create_pool"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgCreatePool) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgCreatePool) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgCreatePool) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
	}

	if msg.TokenA == "" || msg.TokenB == "" {
		return sdkerrors.Wrap(ErrInvalidToken, "token denominations cannot be empty")
	}

	if msg.TokenA == msg.TokenB {
		return sdkerrors.Wrap(ErrInvalidToken, "token denominations must be different")
	}

	if err := sdk.ValidateDenom(msg.TokenA); err != nil {
		return sdkerrors.Wrapf(ErrInvalidToken, "invalid denom for token A: %s", err)
	}

	if err := sdk.ValidateDenom(msg.TokenB); err != nil {
		return sdkerrors.Wrapf(ErrInvalidToken, "invalid denom for token B: %s", err)
	}

	if msg.AmountA.IsNil() || !msg.AmountA.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "amount A must be positive")
	}

	if msg.AmountB.IsNil() || !msg.AmountB.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "amount B must be positive")
	}

	if msg.FeeRateBps > MaxFeeBps {
		return sdkerrors.Wrapf(ErrInvalidFee, "fee rate %d exceeds %d bps", msg.FeeRateBps, MaxFeeBps)
	}

	return nil
}
