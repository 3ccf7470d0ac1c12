package types

import "fmt"

// Minimal proto.Message conformance for the message types so they satisfy
// sdk.Msg and can be registered with the interface registry.

func (msg *MsgCreatePool) Reset()         { *msg = MsgCreatePool{} }
func (msg *MsgCreatePool) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgCreatePool) ProtoMessage()  {}

func (msg *MsgSwap) Reset()         { *msg = MsgSwap{} }
func (msg *MsgSwap) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgSwap) ProtoMessage()  {}

func (msg *MsgAddLiquidity) Reset()         { *msg = MsgAddLiquidity{} }
func (msg *MsgAddLiquidity) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgAddLiquidity) ProtoMessage()  {}

func (msg *MsgRemoveLiquidity) Reset()         { *msg = MsgRemoveLiquidity{} }
func (msg *MsgRemoveLiquidity) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgRemoveLiquidity) ProtoMessage()  {}

func (msg *MsgInitiateCrossChainSwap) Reset()         { *msg = MsgInitiateCrossChainSwap{} }
func (msg *MsgInitiateCrossChainSwap) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgInitiateCrossChainSwap) ProtoMessage()  {}

func (msg *MsgCompleteCrossChainSwap) Reset()         { *msg = MsgCompleteCrossChainSwap{} }
func (msg *MsgCompleteCrossChainSwap) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgCompleteCrossChainSwap) ProtoMessage()  {}

func (msg *MsgCancelCrossChainSwap) Reset()         { *msg = MsgCancelCrossChainSwap{} }
func (msg *MsgCancelCrossChainSwap) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgCancelCrossChainSwap) ProtoMessage()  {}

func (msg *MsgSetProtocolFee) Reset()         { *msg = MsgSetProtocolFee{} }
func (msg *MsgSetProtocolFee) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgSetProtocolFee) ProtoMessage()  {}

func (msg *MsgSetFeeRecipient) Reset()         { *msg = MsgSetFeeRecipient{} }
func (msg *MsgSetFeeRecipient) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgSetFeeRecipient) ProtoMessage()  {}

func (msg *MsgSetPaused) Reset()         { *msg = MsgSetPaused{} }
func (msg *MsgSetPaused) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgSetPaused) ProtoMessage()  {}

func (msg *MsgDeactivatePool) Reset()         { *msg = MsgDeactivatePool{} }
func (msg *MsgDeactivatePool) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgDeactivatePool) ProtoMessage()  {}

func (msg *MsgEmergencyWithdraw) Reset()         { *msg = MsgEmergencyWithdraw{} }
func (msg *MsgEmergencyWithdraw) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgEmergencyWithdraw) ProtoMessage()  {}
