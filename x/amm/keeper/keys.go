package keeper

import (
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	// PoolKeyPrefix is the prefix for pool store keys
	PoolKeyPrefix = []byte{0x01}

	// PoolCountKey is the key for the next pool ID counter
	PoolCountKey = []byte{0x02}

	// PoolByTokensKeyPrefix is the prefix for indexing pools by token pair
	PoolByTokensKeyPrefix = []byte{0x03}

	// LiquidityKeyPrefix is the prefix for liquidity position store keys
	LiquidityKeyPrefix = []byte{0x04}

	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x05}

	// PausedKey is the key for the global pause flag
	PausedKey = []byte{0x06}

	// PoolFeeKeyPrefix is the prefix for per-pool LP fee accumulators
	PoolFeeKeyPrefix = []byte{0x07}

	// ProtocolFeeKeyPrefix is the prefix for per-token protocol fee accumulators
	ProtocolFeeKeyPrefix = []byte{0x08}

	// SwapCountKey is the key for the next cross-chain swap ID counter
	SwapCountKey = []byte{0x09}

	// CrossChainSwapKeyPrefix is the prefix for cross-chain swap records
	CrossChainSwapKeyPrefix = []byte{0x0A}

	// TotalPoolsKey is the key for the total pool count
	TotalPoolsKey = []byte{0x0B}
)

// PoolKey returns the store key for a pool by ID
func PoolKey(poolID uint64) []byte {
	poolIDBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(poolIDBytes, poolID)
	return append(PoolKeyPrefix, poolIDBytes...)
}

// PoolByTokensKey returns the store key for indexing a pool by its token pair
func PoolByTokensKey(tokenA, tokenB string) []byte {
	// Ensure consistent ordering: tokenA < tokenB lexicographically
	if tokenA > tokenB {
		tokenA, tokenB = tokenB, tokenA
	}
	key := append(PoolByTokensKeyPrefix, []byte(tokenA)...)
	key = append(key, []byte("/")...)
	key = append(key, []byte(tokenB)...)
	return key
}

// LiquidityKey returns the store key for a liquidity position
func LiquidityKey(poolID uint64, provider sdk.AccAddress) []byte {
	poolIDBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(poolIDBytes, poolID)
	key := append(LiquidityKeyPrefix, poolIDBytes...)
	key = append(key, provider.Bytes()...)
	return key
}

// LiquidityKeyByPoolPrefix returns the prefix for all liquidity positions in a pool
func LiquidityKeyByPoolPrefix(poolID uint64) []byte {
	poolIDBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(poolIDBytes, poolID)
	return append(LiquidityKeyPrefix, poolIDBytes...)
}

// PoolFeeKey returns the store key for a pool's LP fee accumulator
func PoolFeeKey(poolID uint64) []byte {
	poolIDBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(poolIDBytes, poolID)
	return append(PoolFeeKeyPrefix, poolIDBytes...)
}

// ProtocolFeeKey returns the store key for protocol fees for a token
func ProtocolFeeKey(token string) []byte {
	return append(ProtocolFeeKeyPrefix, []byte(token)...)
}

// CrossChainSwapKey returns the store key for a cross-chain swap by ID
func CrossChainSwapKey(swapID uint64) []byte {
	swapIDBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(swapIDBytes, swapID)
	return append(CrossChainSwapKeyPrefix, swapIDBytes...)
}
