// Package keeper implements the AMM module keeper.
//
// The AMM module provides a constant-product automated market maker with a
// cross-chain escrow bridge. Users create liquidity pools, swap tokens, and
// lock funds into escrow for swaps settling on remote chains.
//
// # Core Functionality
//
// Liquidity Pools: dual-token constant-product pools with per-pool fee
// rates, geometric-mean share bootstrap, and proportional add/remove.
//
// Token Swaps: constant-product pricing (x * y = k) with a pool fee that
// stays in the reserves and a protocol fee forwarded to the fee recipient.
// Quote and execution share one pricing function.
//
// Cross-Chain Bridge: escrow-based swap records with a Pending ->
// {Completed, Failed} state machine driven by block height expiry. An
// authorized relayer attests delivery; expired swaps can only be failed.
//
// Admin Surface: protocol fee and recipient updates, a global pause flag,
// pool deactivation, and paused-only emergency withdrawal, all gated on the
// authority fixed at keeper construction.
//
// # Metrics
//
// The keeper exposes Prometheus metrics for swaps, liquidity flows, pool
// counts, and bridge lifecycle via Metrics.
package keeper
