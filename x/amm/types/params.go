package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Params holds the mutable protocol configuration. The admin identity itself
// is not a parameter; it is fixed at keeper construction.
type Params struct {
	// ProtocolFeeBps is the slice of every swap input forwarded to the fee
	// recipient, in basis points of amountIn.
	ProtocolFeeBps uint32 `json:"protocol_fee_bps"`

	// FeeRecipient receives the protocol fee slice. Empty disables the
	// protocol fee entirely.
	FeeRecipient string `json:"fee_recipient"`

	// MinInitialLiquidity is the minimum deposit per token at pool creation.
	// Blocks dust pools whose prices are trivial to manipulate.
	MinInitialLiquidity math.Int `json:"min_initial_liquidity"`
}

// DefaultParams returns default parameters for the amm module
func DefaultParams() Params {
	return Params{
		ProtocolFeeBps:      5, // 0.05%
		FeeRecipient:        "",
		MinInitialLiquidity: math.NewInt(1000),
	}
}

// Validate checks parameter bounds.
func (p Params) Validate() error {
	if p.ProtocolFeeBps > MaxFeeBps {
		return ErrInvalidFee.Wrapf("protocol fee %d exceeds %d bps", p.ProtocolFeeBps, MaxFeeBps)
	}
	if p.FeeRecipient != "" {
		if _, err := sdk.AccAddressFromBech32(p.FeeRecipient); err != nil {
			return ErrInvalidAddress.Wrapf("invalid fee recipient: %v", err)
		}
	}
	if p.MinInitialLiquidity.IsNil() || p.MinInitialLiquidity.IsNegative() {
		return ErrInvalidAmount.Wrap("min initial liquidity cannot be negative")
	}
	return nil
}
