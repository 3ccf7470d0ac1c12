package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/amm/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the amm MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// CreatePool handles the creation of a new liquidity pool
func (ms msgServer) CreatePool(goCtx context.Context, msg *types.MsgCreatePool) (*types.MsgCreatePoolResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("CreatePool: validate: %w", err)
	}

	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, fmt.Errorf("CreatePool: invalid creator address: %w", err)
	}

	pool, err := ms.Keeper.CreatePool(goCtx, creator, msg.TokenA, msg.TokenB, msg.AmountA, msg.AmountB, msg.FeeRateBps)
	if err != nil {
		return nil, fmt.Errorf("CreatePool: %w", err)
	}

	return &types.MsgCreatePoolResponse{
		PoolId: pool.Id,
		Shares: pool.TotalShares,
	}, nil
}

// Swap handles a swap against a pool
func (ms msgServer) Swap(goCtx context.Context, msg *types.MsgSwap) (*types.MsgSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Swap: validate: %w", err)
	}

	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, fmt.Errorf("Swap: invalid trader address: %w", err)
	}

	result, err := ms.Keeper.ExecuteSwap(goCtx, trader, msg.PoolId, msg.TokenIn, msg.TokenOut, msg.AmountIn, msg.MinAmountOut)
	if err != nil {
		return nil, fmt.Errorf("Swap: %w", err)
	}

	return &types.MsgSwapResponse{
		AmountOut:      result.AmountOut,
		ProtocolFee:    result.ProtocolFee,
		PoolFee:        result.PoolFee,
		PriceImpactBps: result.PriceImpactBps,
	}, nil
}

// AddLiquidity handles adding liquidity to an existing pool
func (ms msgServer) AddLiquidity(goCtx context.Context, msg *types.MsgAddLiquidity) (*types.MsgAddLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("AddLiquidity: validate: %w", err)
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("AddLiquidity: invalid provider address: %w", err)
	}

	result, err := ms.Keeper.AddLiquidity(goCtx, provider, msg.PoolId, msg.AmountA, msg.AmountB, msg.MinShares)
	if err != nil {
		return nil, fmt.Errorf("AddLiquidity: %w", err)
	}

	return &types.MsgAddLiquidityResponse{
		Shares:  result.SharesMinted,
		AmountA: result.AmountA,
		AmountB: result.AmountB,
	}, nil
}

// RemoveLiquidity handles removing liquidity from a pool
func (ms msgServer) RemoveLiquidity(goCtx context.Context, msg *types.MsgRemoveLiquidity) (*types.MsgRemoveLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: validate: %w", err)
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: invalid provider address: %w", err)
	}

	result, err := ms.Keeper.RemoveLiquidity(goCtx, provider, msg.PoolId, msg.Shares, msg.MinAmountA, msg.MinAmountB)
	if err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: %w", err)
	}

	return &types.MsgRemoveLiquidityResponse{
		AmountA: result.AmountA,
		AmountB: result.AmountB,
	}, nil
}

// InitiateCrossChainSwap handles opening a cross-chain escrow swap
func (ms msgServer) InitiateCrossChainSwap(goCtx context.Context, msg *types.MsgInitiateCrossChainSwap) (*types.MsgInitiateCrossChainSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("InitiateCrossChainSwap: validate: %w", err)
	}

	initiator, err := sdk.AccAddressFromBech32(msg.Initiator)
	if err != nil {
		return nil, fmt.Errorf("InitiateCrossChainSwap: invalid initiator address: %w", err)
	}

	swapID, err := ms.Keeper.InitiateSwap(goCtx, initiator, msg.SourceToken, msg.TargetTokenAddress, msg.TargetChain, msg.Amount, msg.TargetAddress, msg.ExpiresInBlocks)
	if err != nil {
		return nil, fmt.Errorf("InitiateCrossChainSwap: %w", err)
	}

	return &types.MsgInitiateCrossChainSwapResponse{SwapId: swapID}, nil
}

// CompleteCrossChainSwap handles a relayer completion attestation
func (ms msgServer) CompleteCrossChainSwap(goCtx context.Context, msg *types.MsgCompleteCrossChainSwap) (*types.MsgCompleteCrossChainSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("CompleteCrossChainSwap: validate: %w", err)
	}

	relayer, err := sdk.AccAddressFromBech32(msg.Relayer)
	if err != nil {
		return nil, fmt.Errorf("CompleteCrossChainSwap: invalid relayer address: %w", err)
	}

	if err := ms.Keeper.CompleteSwap(goCtx, relayer, msg.SwapId, msg.TargetAmount, msg.Proof); err != nil {
		return nil, fmt.Errorf("CompleteCrossChainSwap: %w", err)
	}

	return &types.MsgCompleteCrossChainSwapResponse{}, nil
}

// CancelCrossChainSwap handles failing an expired swap
func (ms msgServer) CancelCrossChainSwap(goCtx context.Context, msg *types.MsgCancelCrossChainSwap) (*types.MsgCancelCrossChainSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("CancelCrossChainSwap: validate: %w", err)
	}

	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, fmt.Errorf("CancelCrossChainSwap: invalid sender address: %w", err)
	}

	if err := ms.Keeper.CancelSwap(goCtx, sender, msg.SwapId); err != nil {
		return nil, fmt.Errorf("CancelCrossChainSwap: %w", err)
	}

	return &types.MsgCancelCrossChainSwapResponse{}, nil
}

// SetProtocolFee handles a protocol fee update
func (ms msgServer) SetProtocolFee(goCtx context.Context, msg *types.MsgSetProtocolFee) (*types.MsgSetProtocolFeeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SetProtocolFee: validate: %w", err)
	}

	if err := ms.Keeper.SetProtocolFee(goCtx, msg.Authority, msg.ProtocolFeeBps); err != nil {
		return nil, fmt.Errorf("SetProtocolFee: %w", err)
	}

	return &types.MsgSetProtocolFeeResponse{}, nil
}

// SetFeeRecipient handles a fee recipient update
func (ms msgServer) SetFeeRecipient(goCtx context.Context, msg *types.MsgSetFeeRecipient) (*types.MsgSetFeeRecipientResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SetFeeRecipient: validate: %w", err)
	}

	if err := ms.Keeper.SetFeeRecipient(goCtx, msg.Authority, msg.FeeRecipient); err != nil {
		return nil, fmt.Errorf("SetFeeRecipient: %w", err)
	}

	return &types.MsgSetFeeRecipientResponse{}, nil
}

// SetPaused handles pausing and unpausing the module
func (ms msgServer) SetPaused(goCtx context.Context, msg *types.MsgSetPaused) (*types.MsgSetPausedResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SetPaused: validate: %w", err)
	}

	var err error
	if msg.Paused {
		err = ms.Keeper.PauseModule(goCtx, msg.Authority)
	} else {
		err = ms.Keeper.UnpauseModule(goCtx, msg.Authority)
	}
	if err != nil {
		return nil, fmt.Errorf("SetPaused: %w", err)
	}

	return &types.MsgSetPausedResponse{}, nil
}

// DeactivatePool handles disabling a pool
func (ms msgServer) DeactivatePool(goCtx context.Context, msg *types.MsgDeactivatePool) (*types.MsgDeactivatePoolResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("DeactivatePool: validate: %w", err)
	}

	if err := ms.Keeper.DeactivatePool(goCtx, msg.Authority, msg.PoolId); err != nil {
		return nil, fmt.Errorf("DeactivatePool: %w", err)
	}

	return &types.MsgDeactivatePoolResponse{}, nil
}

// EmergencyWithdraw handles an admin recovery transfer while paused
func (ms msgServer) EmergencyWithdraw(goCtx context.Context, msg *types.MsgEmergencyWithdraw) (*types.MsgEmergencyWithdrawResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("EmergencyWithdraw: validate: %w", err)
	}

	if err := ms.Keeper.EmergencyWithdraw(goCtx, msg.Authority, msg.Token, msg.Amount, msg.Recipient); err != nil {
		return nil, fmt.Errorf("EmergencyWithdraw: %w", err)
	}

	return &types.MsgEmergencyWithdrawResponse{}, nil
}
