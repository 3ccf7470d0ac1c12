package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/amm/types"
)

// RegisterInvariants registers all AMM invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "positive-reserves", PositiveReservesInvariant(k))
	ir.RegisterRoute(types.ModuleName, "pool-shares", PoolSharesInvariant(k))
	ir.RegisterRoute(types.ModuleName, "module-balance", ModuleBalanceInvariant(k))
}

// AllInvariants runs all invariants of the AMM module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := PositiveReservesInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		res, stop = PoolSharesInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		return ModuleBalanceInvariant(k)(ctx)
	}
}

// PositiveReservesInvariant checks that every pool with outstanding shares
// holds both reserves.
func PositiveReservesInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		pools, err := k.GetAllPools(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "positive-reserves",
				fmt.Sprintf("failed to load pools: %v", err)), true
		}

		for _, pool := range pools {
			if pool.TotalShares.IsPositive() {
				if !pool.ReserveA.IsPositive() || !pool.ReserveB.IsPositive() {
					count++
					msg += fmt.Sprintf("pool %d: shares %s outstanding but reserves %s/%s\n",
						pool.Id, pool.TotalShares, pool.ReserveA, pool.ReserveB)
				}
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "positive-reserves",
			fmt.Sprintf("found %d pools with shares but drained reserves\n%s", count, msg),
		), broken
	}
}

// PoolSharesInvariant checks that the sum of all positions equals each
// pool's TotalShares.
func PoolSharesInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		pools, err := k.GetAllPools(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "pool-shares",
				fmt.Sprintf("failed to load pools: %v", err)), true
		}

		for _, pool := range pools {
			sum := math.ZeroInt()
			if err := k.IterateLiquidityByPool(ctx, pool.Id, func(_ sdk.AccAddress, shares math.Int) bool {
				sum = sum.Add(shares)
				return false
			}); err != nil {
				return sdk.FormatInvariant(types.ModuleName, "pool-shares",
					fmt.Sprintf("failed to iterate positions for pool %d: %v", pool.Id, err)), true
			}

			if !sum.Equal(pool.TotalShares) {
				count++
				msg += fmt.Sprintf("pool %d: position sum %s != total shares %s\n",
					pool.Id, sum, pool.TotalShares)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "pool-shares",
			fmt.Sprintf("found %d pools with share mismatches\n%s", count, msg),
		), broken
	}
}

// ModuleBalanceInvariant checks that module custody covers pool reserves
// plus pending bridge escrow for every token.
func ModuleBalanceInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		required := make(map[string]math.Int)
		add := func(token string, amount math.Int) {
			cur, ok := required[token]
			if !ok {
				cur = math.ZeroInt()
			}
			required[token] = cur.Add(amount)
		}

		pools, err := k.GetAllPools(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "module-balance",
				fmt.Sprintf("failed to load pools: %v", err)), true
		}
		for _, pool := range pools {
			add(pool.TokenA, pool.ReserveA)
			add(pool.TokenB, pool.ReserveB)
		}

		if err := k.IterateCrossChainSwaps(ctx, func(swap types.CrossChainSwap) bool {
			if swap.Status == types.SwapStatusPending {
				add(swap.SourceToken, swap.SourceAmount)
			}
			return false
		}); err != nil {
			return sdk.FormatInvariant(types.ModuleName, "module-balance",
				fmt.Sprintf("failed to iterate cross-chain swaps: %v", err)), true
		}

		var (
			msg   string
			count int
		)
		moduleAddr := k.GetModuleAddress()
		for token, amount := range required {
			balance := k.bankKeeper.GetBalance(ctx, moduleAddr, token)
			if balance.Amount.LT(amount) {
				count++
				msg += fmt.Sprintf("token %s: module balance %s < required %s\n",
					token, balance.Amount, amount)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "module-balance",
			fmt.Sprintf("found %d tokens with custody shortfall\n%s", count, msg),
		), broken
	}
}
