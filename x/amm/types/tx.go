package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer defines the message server interface
type MsgServer interface {
	CreatePool(context.Context, *MsgCreatePool) (*MsgCreatePoolResponse, error)
	Swap(context.Context, *MsgSwap) (*MsgSwapResponse, error)
	AddLiquidity(context.Context, *MsgAddLiquidity) (*MsgAddLiquidityResponse, error)
	RemoveLiquidity(context.Context, *MsgRemoveLiquidity) (*MsgRemoveLiquidityResponse, error)
	InitiateCrossChainSwap(context.Context, *MsgInitiateCrossChainSwap) (*MsgInitiateCrossChainSwapResponse, error)
	CompleteCrossChainSwap(context.Context, *MsgCompleteCrossChainSwap) (*MsgCompleteCrossChainSwapResponse, error)
	CancelCrossChainSwap(context.Context, *MsgCancelCrossChainSwap) (*MsgCancelCrossChainSwapResponse, error)
	SetProtocolFee(context.Context, *MsgSetProtocolFee) (*MsgSetProtocolFeeResponse, error)
	SetFeeRecipient(context.Context, *MsgSetFeeRecipient) (*MsgSetFeeRecipientResponse, error)
	SetPaused(context.Context, *MsgSetPaused) (*MsgSetPausedResponse, error)
	DeactivatePool(context.Context, *MsgDeactivatePool) (*MsgDeactivatePoolResponse, error)
	EmergencyWithdraw(context.Context, *MsgEmergencyWithdraw) (*MsgEmergencyWithdrawResponse, error)
}

// Response types

// MsgCreatePoolResponse defines the response for CreatePool
type MsgCreatePoolResponse struct {
	PoolId uint64   `json:"pool_id"`
	Shares math.Int `json:"shares"`
}

// MsgSwapResponse defines the response for Swap
type MsgSwapResponse struct {
	AmountOut      math.Int `json:"amount_out"`
	ProtocolFee    math.Int `json:"protocol_fee"`
	PoolFee        math.Int `json:"pool_fee"`
	PriceImpactBps math.Int `json:"price_impact_bps"`
}

// MsgAddLiquidityResponse defines the response for AddLiquidity
type MsgAddLiquidityResponse struct {
	Shares  math.Int `json:"shares"`
	AmountA math.Int `json:"amount_a"`
	AmountB math.Int `json:"amount_b"`
}

// MsgRemoveLiquidityResponse defines the response for RemoveLiquidity
type MsgRemoveLiquidityResponse struct {
	AmountA math.Int `json:"amount_a"`
	AmountB math.Int `json:"amount_b"`
}

// MsgInitiateCrossChainSwapResponse defines the response for InitiateCrossChainSwap
type MsgInitiateCrossChainSwapResponse struct {
	SwapId uint64 `json:"swap_id"`
}

// MsgCompleteCrossChainSwapResponse defines the response for CompleteCrossChainSwap
type MsgCompleteCrossChainSwapResponse struct{}

// MsgCancelCrossChainSwapResponse defines the response for CancelCrossChainSwap
type MsgCancelCrossChainSwapResponse struct{}

// MsgSetProtocolFeeResponse defines the response for SetProtocolFee
type MsgSetProtocolFeeResponse struct{}

// MsgSetFeeRecipientResponse defines the response for SetFeeRecipient
type MsgSetFeeRecipientResponse struct{}

// MsgSetPausedResponse defines the response for SetPaused
type MsgSetPausedResponse struct{}

// MsgDeactivatePoolResponse defines the response for DeactivatePool
type MsgDeactivatePoolResponse struct{}

// MsgEmergencyWithdrawResponse defines the response for EmergencyWithdraw
type MsgEmergencyWithdrawResponse struct{}
