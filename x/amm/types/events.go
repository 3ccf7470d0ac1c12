package types

// Event types for the AMM module
const (
	EventTypePoolCreated     = "amm_pool_created"
	EventTypePoolDeactivated = "amm_pool_deactivated"
	EventTypeSwap            = "amm_swap"
	EventTypeAddLiquidity    = "amm_add_liquidity"
	EventTypeRemoveLiquidity = "amm_remove_liquidity"
	EventTypeFeesCollected   = "amm_fees_collected"

	EventTypeCrossChainInitiated = "amm_cross_chain_initiated"
	EventTypeCrossChainCompleted = "amm_cross_chain_completed"
	EventTypeCrossChainCancelled = "amm_cross_chain_cancelled"

	EventTypeModulePaused       = "amm_module_paused"
	EventTypeModuleUnpaused     = "amm_module_unpaused"
	EventTypeParamsUpdated      = "amm_params_updated"
	EventTypeEmergencyWithdraw  = "amm_emergency_withdraw"
)

// Event attribute keys
const (
	AttributeKeyPoolID        = "pool_id"
	AttributeKeyCreator       = "creator"
	AttributeKeyTrader        = "trader"
	AttributeKeyProvider      = "provider"
	AttributeKeyTokenA        = "token_a"
	AttributeKeyTokenB        = "token_b"
	AttributeKeyTokenIn       = "token_in"
	AttributeKeyTokenOut      = "token_out"
	AttributeKeyAmountA       = "amount_a"
	AttributeKeyAmountB       = "amount_b"
	AttributeKeyAmountIn      = "amount_in"
	AttributeKeyAmountOut     = "amount_out"
	AttributeKeyShares        = "shares"
	AttributeKeyFeeRate       = "fee_rate_bps"
	AttributeKeyPoolFee       = "pool_fee"
	AttributeKeyProtocolFee   = "protocol_fee"
	AttributeKeyPriceImpact   = "price_impact_bps"
	AttributeKeySwapID        = "swap_id"
	AttributeKeyInitiator     = "initiator"
	AttributeKeyTargetChain   = "target_chain"
	AttributeKeyTargetAmount  = "target_amount"
	AttributeKeyExpiresAt     = "expires_at_block"
	AttributeKeyStatus        = "status"
	AttributeKeyToken         = "token"
	AttributeKeyRecipient     = "recipient"
	AttributeKeyAuthority     = "authority"
)
