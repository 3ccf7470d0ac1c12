package cli

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strconv"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/amm/keeper"
	"github.com/meridian-chain/meridian/x/amm/types"
)

// GetQueryCmd returns the cli query commands for the amm module
func GetQueryCmd() *cobra.Command {
	ammQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the amm module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	ammQueryCmd.AddCommand(
		GetCmdQueryParams(),
		GetCmdQueryPool(),
		GetCmdQueryPoolByTokens(),
		GetCmdQueryPoolsRange(),
		GetCmdQueryLiquidity(),
		GetCmdQueryPoolFees(),
		GetCmdQueryProtocolFees(),
		GetCmdQueryCrossChainSwap(),
	)

	return ammQueryCmd
}

// queryStore reads a raw key from the amm module store. Records are plain
// JSON so the client decodes them without a query service.
func queryStore(clientCtx client.Context, key []byte) ([]byte, error) {
	bz, _, err := clientCtx.QueryStore(key, types.StoreKey)
	if err != nil {
		return nil, err
	}
	return bz, nil
}

func mustIntFromString(s string) math.Int {
	v, ok := math.NewIntFromString(s)
	if !ok {
		return math.ZeroInt()
	}
	return v
}

func printJSON(clientCtx client.Context, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return clientCtx.PrintString(string(out) + "\n")
}

// GetCmdQueryParams returns the command to query module parameters
func GetCmdQueryParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Query the current amm module parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, err := queryStore(clientCtx, keeper.ParamsKey)
			if err != nil {
				return err
			}

			params := types.DefaultParams()
			if len(bz) > 0 {
				if err := json.Unmarshal(bz, &params); err != nil {
					return err
				}
			}
			return printJSON(clientCtx, params)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryPool returns the command to query a pool by ID
func GetCmdQueryPool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool [pool-id]",
		Short: "Query liquidity pool by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}

			bz, err := queryStore(clientCtx, keeper.PoolKey(poolID))
			if err != nil {
				return err
			}
			if len(bz) == 0 {
				return fmt.Errorf("pool %d not found", poolID)
			}

			var pool types.Pool
			if err := json.Unmarshal(bz, &pool); err != nil {
				return err
			}
			return printJSON(clientCtx, pool)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryPoolByTokens returns the command to resolve a pool by its pair
func GetCmdQueryPoolByTokens() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool-by-tokens [token-a] [token-b]",
		Short: "Query a pool by its token pair (order-independent)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, err := queryStore(clientCtx, keeper.PoolByTokensKey(args[0], args[1]))
			if err != nil {
				return err
			}
			if len(bz) == 0 {
				return fmt.Errorf("pool not found for pair %s/%s", args[0], args[1])
			}

			poolID := binary.BigEndian.Uint64(bz)
			poolBz, err := queryStore(clientCtx, keeper.PoolKey(poolID))
			if err != nil {
				return err
			}
			if len(poolBz) == 0 {
				return fmt.Errorf("pool %d not found", poolID)
			}

			var pool types.Pool
			if err := json.Unmarshal(poolBz, &pool); err != nil {
				return err
			}
			return printJSON(clientCtx, pool)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryPoolsRange returns the command to list a window of pools
func GetCmdQueryPoolsRange() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pools-range [start-id] [end-id]",
		Short: fmt.Sprintf("Query pools with IDs in a range (at most %d)", types.PoolsRangeWindow),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			startID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid start ID: %w", err)
			}
			endID, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid end ID: %w", err)
			}
			if startID == 0 || endID < startID {
				return fmt.Errorf("invalid range [%d, %d]", startID, endID)
			}
			if endID-startID+1 > types.PoolsRangeWindow {
				endID = startID + types.PoolsRangeWindow - 1
			}

			pools := []types.Pool{}
			for id := startID; id <= endID; id++ {
				bz, err := queryStore(clientCtx, keeper.PoolKey(id))
				if err != nil {
					return err
				}
				if len(bz) == 0 {
					continue
				}
				var pool types.Pool
				if err := json.Unmarshal(bz, &pool); err != nil {
					return err
				}
				pools = append(pools, pool)
			}
			return printJSON(clientCtx, pools)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryLiquidity returns the command to query a provider's shares
func GetCmdQueryLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "liquidity [pool-id] [provider]",
		Short: "Query a provider's share balance in a pool",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}

			provider, err := sdk.AccAddressFromBech32(args[1])
			if err != nil {
				return fmt.Errorf("invalid provider address: %w", err)
			}

			bz, err := queryStore(clientCtx, keeper.LiquidityKey(poolID, provider))
			if err != nil {
				return err
			}

			shares := "0"
			if len(bz) > 0 {
				shares = string(bz)
			}
			return printJSON(clientCtx, types.LiquidityPosition{
				PoolId:   poolID,
				Provider: args[1],
				Shares:   mustIntFromString(shares),
			})
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryPoolFees returns the command to query a pool's LP fee totals
func GetCmdQueryPoolFees() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool-fees [pool-id]",
		Short: "Query accumulated LP fees for a pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}

			bz, err := queryStore(clientCtx, keeper.PoolFeeKey(poolID))
			if err != nil {
				return err
			}

			acc := types.NewFeeAccumulator(poolID)
			if len(bz) > 0 {
				if err := json.Unmarshal(bz, &acc); err != nil {
					return err
				}
			}
			return printJSON(clientCtx, acc)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryProtocolFees returns the command to query protocol fee totals
func GetCmdQueryProtocolFees() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "protocol-fees [token]",
		Short: "Query accumulated protocol fees for a token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, err := queryStore(clientCtx, keeper.ProtocolFeeKey(args[0]))
			if err != nil {
				return err
			}

			acc := types.NewProtocolFeeAccumulator(args[0])
			if len(bz) > 0 {
				if err := json.Unmarshal(bz, &acc); err != nil {
					return err
				}
			}
			return printJSON(clientCtx, acc)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryCrossChainSwap returns the command to query a bridge swap
func GetCmdQueryCrossChainSwap() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cross-chain-swap [swap-id]",
		Short: "Query a cross-chain swap record by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			swapID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid swap ID: %w", err)
			}

			bz, err := queryStore(clientCtx, keeper.CrossChainSwapKey(swapID))
			if err != nil {
				return err
			}
			if len(bz) == 0 {
				return fmt.Errorf("cross-chain swap %d not found", swapID)
			}

			var swap types.CrossChainSwap
			if err := json.Unmarshal(bz, &swap); err != nil {
				return err
			}
			return printJSON(clientCtx, swap)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
