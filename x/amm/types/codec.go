package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterCodec registers the necessary interfaces and concrete types
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgCreatePool{}, "amm/MsgCreatePool", nil)
	cdc.RegisterConcrete(&MsgSwap{}, "amm/MsgSwap", nil)
	cdc.RegisterConcrete(&MsgAddLiquidity{}, "amm/MsgAddLiquidity", nil)
	cdc.RegisterConcrete(&MsgRemoveLiquidity{}, "amm/MsgRemoveLiquidity", nil)
	cdc.RegisterConcrete(&MsgInitiateCrossChainSwap{}, "amm/MsgInitiateCrossChainSwap", nil)
	cdc.RegisterConcrete(&MsgCompleteCrossChainSwap{}, "amm/MsgCompleteCrossChainSwap", nil)
	cdc.RegisterConcrete(&MsgCancelCrossChainSwap{}, "amm/MsgCancelCrossChainSwap", nil)
	cdc.RegisterConcrete(&MsgSetProtocolFee{}, "amm/MsgSetProtocolFee", nil)
	cdc.RegisterConcrete(&MsgSetFeeRecipient{}, "amm/MsgSetFeeRecipient", nil)
	cdc.RegisterConcrete(&MsgSetPaused{}, "amm/MsgSetPaused", nil)
	cdc.RegisterConcrete(&MsgDeactivatePool{}, "amm/MsgDeactivatePool", nil)
	cdc.RegisterConcrete(&MsgEmergencyWithdraw{}, "amm/MsgEmergencyWithdraw", nil)
}

// RegisterInterfaces registers the module's interfaces with the interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgCreatePool{},
		&MsgSwap{},
		&MsgAddLiquidity{},
		&MsgRemoveLiquidity{},
		&MsgInitiateCrossChainSwap{},
		&MsgCompleteCrossChainSwap{},
		&MsgCancelCrossChainSwap{},
		&MsgSetProtocolFee{},
		&MsgSetFeeRecipient{},
		&MsgSetPaused{},
		&MsgDeactivatePool{},
		&MsgEmergencyWithdraw{},
	)
}

var (
	amino     = codec.NewLegacyAmino()
	ModuleCdc = codec.NewAminoCodec(amino)
)

func init() {
	RegisterCodec(amino)
	amino.Seal()
}
