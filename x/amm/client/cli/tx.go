package cli

import (
	"fmt"
	"strconv"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/meridian-chain/meridian/x/amm/types"
)

// GetTxCmd returns the transaction commands for the amm module
func GetTxCmd() *cobra.Command {
	ammTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "AMM transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	ammTxCmd.AddCommand(
		CmdCreatePool(),
		CmdAddLiquidity(),
		CmdRemoveLiquidity(),
		CmdSwap(),
		CmdInitiateCrossChainSwap(),
		CmdCompleteCrossChainSwap(),
		CmdCancelCrossChainSwap(),
		CmdSetProtocolFee(),
		CmdSetFeeRecipient(),
		CmdSetPaused(),
		CmdDeactivatePool(),
		CmdEmergencyWithdraw(),
	)

	return ammTxCmd
}

func parseInt(arg, name string) (math.Int, error) {
	amount, ok := math.NewIntFromString(arg)
	if !ok {
		return math.Int{}, fmt.Errorf("invalid %s: %s (must be integer)", name, arg)
	}
	return amount, nil
}

// CmdCreatePool returns a CLI command handler for creating a liquidity pool
func CmdCreatePool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-pool [token-a] [amount-a] [token-b] [amount-b] [fee-rate-bps]",
		Short: "Create a new liquidity pool",
		Long: `Create a new liquidity pool with an initial deposit of both tokens and a
per-pool swap fee in basis points.

Example:
  $ meridiand tx amm create-pool umer 1000000 uusdt 2000000 30 --from mykey`,
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			tokenA := args[0]
			tokenB := args[2]
			if tokenA == tokenB {
				return fmt.Errorf("tokens must be different")
			}

			amountA, err := parseInt(args[1], "amount-a")
			if err != nil {
				return err
			}
			amountB, err := parseInt(args[3], "amount-b")
			if err != nil {
				return err
			}

			feeRate, err := strconv.ParseUint(args[4], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid fee-rate-bps: %s", args[4])
			}

			msg := &types.MsgCreatePool{
				Creator:    clientCtx.GetFromAddress().String(),
				TokenA:     tokenA,
				TokenB:     tokenB,
				AmountA:    amountA,
				AmountB:    amountB,
				FeeRateBps: uint32(feeRate),
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdAddLiquidity returns a CLI command handler for adding liquidity to a pool
func CmdAddLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-liquidity [pool-id] [amount-a] [amount-b] [min-shares]",
		Short: "Add liquidity to an existing pool",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool-id: %s", args[0])
			}

			amountA, err := parseInt(args[1], "amount-a")
			if err != nil {
				return err
			}
			amountB, err := parseInt(args[2], "amount-b")
			if err != nil {
				return err
			}
			minShares, err := parseInt(args[3], "min-shares")
			if err != nil {
				return err
			}

			msg := &types.MsgAddLiquidity{
				Provider:  clientCtx.GetFromAddress().String(),
				PoolId:    poolID,
				AmountA:   amountA,
				AmountB:   amountB,
				MinShares: minShares,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRemoveLiquidity returns a CLI command handler for removing liquidity
func CmdRemoveLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-liquidity [pool-id] [shares] [min-amount-a] [min-amount-b]",
		Short: "Burn shares and withdraw both tokens",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool-id: %s", args[0])
			}

			shares, err := parseInt(args[1], "shares")
			if err != nil {
				return err
			}
			minA, err := parseInt(args[2], "min-amount-a")
			if err != nil {
				return err
			}
			minB, err := parseInt(args[3], "min-amount-b")
			if err != nil {
				return err
			}

			msg := &types.MsgRemoveLiquidity{
				Provider:   clientCtx.GetFromAddress().String(),
				PoolId:     poolID,
				Shares:     shares,
				MinAmountA: minA,
				MinAmountB: minB,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSwap returns a CLI command handler for swapping against a pool
func CmdSwap() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap [pool-id] [token-in] [token-out] [amount-in] [min-amount-out]",
		Short: "Swap tokens against a pool",
		Long: `Swap an exact input amount for at least min-amount-out of the other token.

Example:
  $ meridiand tx amm swap 1 umer uusdt 1000000 1950000 --from mykey`,
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool-id: %s", args[0])
			}

			amountIn, err := parseInt(args[3], "amount-in")
			if err != nil {
				return err
			}
			minOut, err := parseInt(args[4], "min-amount-out")
			if err != nil {
				return err
			}

			msg := &types.MsgSwap{
				Trader:       clientCtx.GetFromAddress().String(),
				PoolId:       poolID,
				TokenIn:      args[1],
				TokenOut:     args[2],
				AmountIn:     amountIn,
				MinAmountOut: minOut,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdInitiateCrossChainSwap returns a CLI command handler for opening a
// cross-chain escrow swap
func CmdInitiateCrossChainSwap() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "initiate-cross-chain-swap [source-token] [amount] [target-chain] [target-token-address] [target-address] [expires-in-blocks]",
		Short: "Lock tokens into escrow for a cross-chain swap",
		Args:  cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amount, err := parseInt(args[1], "amount")
			if err != nil {
				return err
			}

			expiresIn, err := strconv.ParseInt(args[5], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid expires-in-blocks: %s", args[5])
			}

			msg := &types.MsgInitiateCrossChainSwap{
				Initiator:          clientCtx.GetFromAddress().String(),
				SourceToken:        args[0],
				Amount:             amount,
				TargetChain:        args[2],
				TargetTokenAddress: args[3],
				TargetAddress:      args[4],
				ExpiresInBlocks:    expiresIn,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdCompleteCrossChainSwap returns a CLI command handler for attesting a
// cross-chain delivery
func CmdCompleteCrossChainSwap() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complete-cross-chain-swap [swap-id] [target-amount] [proof]",
		Short: "Attest delivery of a cross-chain swap (relayer only)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			swapID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid swap-id: %s", args[0])
			}

			targetAmount, err := parseInt(args[1], "target-amount")
			if err != nil {
				return err
			}

			msg := &types.MsgCompleteCrossChainSwap{
				Relayer:      clientCtx.GetFromAddress().String(),
				SwapId:       swapID,
				TargetAmount: targetAmount,
				Proof:        args[2],
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdCancelCrossChainSwap returns a CLI command handler for failing an
// expired swap
func CmdCancelCrossChainSwap() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel-cross-chain-swap [swap-id]",
		Short: "Mark an expired cross-chain swap as failed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			swapID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid swap-id: %s", args[0])
			}

			msg := &types.MsgCancelCrossChainSwap{
				Sender: clientCtx.GetFromAddress().String(),
				SwapId: swapID,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSetProtocolFee returns a CLI command handler for updating the protocol fee
func CmdSetProtocolFee() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-protocol-fee [fee-bps]",
		Short: "Update the protocol fee rate (authority only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			feeBps, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid fee-bps: %s", args[0])
			}

			msg := &types.MsgSetProtocolFee{
				Authority:      clientCtx.GetFromAddress().String(),
				ProtocolFeeBps: uint32(feeBps),
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSetFeeRecipient returns a CLI command handler for updating the fee recipient
func CmdSetFeeRecipient() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-fee-recipient [recipient]",
		Short: "Update the protocol fee recipient (authority only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgSetFeeRecipient{
				Authority:    clientCtx.GetFromAddress().String(),
				FeeRecipient: args[0],
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSetPaused returns a CLI command handler for pausing or unpausing the module
func CmdSetPaused() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-paused [true|false]",
		Short: "Pause or unpause the module (authority only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			paused, err := strconv.ParseBool(args[0])
			if err != nil {
				return fmt.Errorf("invalid paused flag: %s", args[0])
			}

			msg := &types.MsgSetPaused{
				Authority: clientCtx.GetFromAddress().String(),
				Paused:    paused,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdDeactivatePool returns a CLI command handler for disabling a pool
func CmdDeactivatePool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deactivate-pool [pool-id]",
		Short: "Deactivate a pool (authority only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool-id: %s", args[0])
			}

			msg := &types.MsgDeactivatePool{
				Authority: clientCtx.GetFromAddress().String(),
				PoolId:    poolID,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdEmergencyWithdraw returns a CLI command handler for the paused-only
// recovery transfer
func CmdEmergencyWithdraw() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emergency-withdraw [token] [amount] [recipient]",
		Short: "Withdraw tokens from module custody while paused (authority only)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amount, err := parseInt(args[1], "amount")
			if err != nil {
				return err
			}

			msg := &types.MsgEmergencyWithdraw{
				Authority: clientCtx.GetFromAddress().String(),
				Token:     args[0],
				Amount:    amount,
				Recipient: args[2],
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
