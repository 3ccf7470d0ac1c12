package types

import (
	"cosmossdk.io/errors"
)

// AMM module sentinel errors
var (
	ErrUnauthorized          = errors.Register(ModuleName, 1, "unauthorized")
	ErrInsufficientBalance   = errors.Register(ModuleName, 2, "insufficient balance")
	ErrInsufficientLiquidity = errors.Register(ModuleName, 3, "insufficient liquidity in pool")
	ErrInvalidAmount         = errors.Register(ModuleName, 4, "invalid amount")
	ErrPoolNotFound          = errors.Register(ModuleName, 5, "pool not found")
	ErrSlippageTooHigh       = errors.Register(ModuleName, 6, "slippage exceeded tolerance")
	ErrSwapExpired           = errors.Register(ModuleName, 7, "cross-chain swap expired")
	ErrInvalidToken          = errors.Register(ModuleName, 8, "invalid token")
	ErrPaused                = errors.Register(ModuleName, 9, "module is paused")
	ErrAlreadyExists         = errors.Register(ModuleName, 10, "already exists")
	ErrInvalidFee            = errors.Register(ModuleName, 11, "invalid fee rate")

	ErrPoolInactive       = errors.Register(ModuleName, 12, "pool is not active")
	ErrInsufficientShares = errors.Register(ModuleName, 13, "insufficient liquidity shares")
	ErrSwapNotFound       = errors.Register(ModuleName, 14, "cross-chain swap not found")
	ErrSwapNotPending     = errors.Register(ModuleName, 15, "cross-chain swap is not pending")
	ErrSwapNotExpired     = errors.Register(ModuleName, 16, "cross-chain swap has not expired yet")
	ErrInvalidAddress     = errors.Register(ModuleName, 17, "invalid address")
	ErrInvalidPoolState   = errors.Register(ModuleName, 18, "invalid pool state")
	ErrInvalidState       = errors.Register(ModuleName, 19, "invalid store state")
	ErrNotPaused          = errors.Register(ModuleName, 20, "module is not paused")
)
