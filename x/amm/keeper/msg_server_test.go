package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/meridian-chain/meridian/testutil/keeper"
	"github.com/meridian-chain/meridian/x/amm/keeper"
	"github.com/meridian-chain/meridian/x/amm/types"
)

func setupMsgServer(t *testing.T) (types.MsgServer, keeper.Keeper, sdk.Context, *keepertest.MockBankKeeper) {
	t.Helper()
	k, ctx, bank := keepertest.AmmKeeper(t)
	return keeper.NewMsgServerImpl(k), k, ctx, bank
}

func TestMsgServerFullFlow(t *testing.T) {
	ms, k, ctx, bank := setupMsgServer(t)

	bank.FundAccount(creator, sdk.NewCoins(
		sdk.NewCoin(denomA, math.NewInt(1_000_000_000)),
		sdk.NewCoin(denomB, math.NewInt(1_000_000_000)),
	))
	bank.FundAccount(trader, sdk.NewCoins(sdk.NewCoin(denomA, math.NewInt(20_000_000))))

	created, err := ms.CreatePool(ctx, types.NewMsgCreatePool(
		creator.String(), denomA, denomB,
		math.NewInt(100_000_000), math.NewInt(200_000_000), 300))
	require.NoError(t, err)
	require.Equal(t, uint64(1), created.PoolId)
	require.Equal(t, math.NewInt(141_421_356), created.Shares)

	swapped, err := ms.Swap(ctx, types.NewMsgSwap(
		trader.String(), created.PoolId, denomA, denomB,
		math.NewInt(10_000_000), math.ZeroInt()))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(17_684_594), swapped.AmountOut)

	added, err := ms.AddLiquidity(ctx, types.NewMsgAddLiquidity(
		creator.String(), created.PoolId,
		math.NewInt(11_000_000), math.NewInt(40_000_000), math.ZeroInt()))
	require.NoError(t, err)
	require.True(t, added.Shares.IsPositive())

	removed, err := ms.RemoveLiquidity(ctx, types.NewMsgRemoveLiquidity(
		creator.String(), created.PoolId,
		added.Shares, math.ZeroInt(), math.ZeroInt()))
	require.NoError(t, err)
	require.True(t, removed.AmountA.IsPositive())
	require.True(t, removed.AmountB.IsPositive())

	msg, broken := keeper.AllInvariants(k)(ctx)
	require.False(t, broken, msg)
}

func TestMsgServerCrossChainFlow(t *testing.T) {
	ms, _, ctx, bank := setupMsgServer(t)

	ctx = ctx.WithBlockHeight(100)
	bank.FundAccount(trader, sdk.NewCoins(sdk.NewCoin(denomA, math.NewInt(5_000_000))))

	initiated, err := ms.InitiateCrossChainSwap(ctx, &types.MsgInitiateCrossChainSwap{
		Initiator:          trader.String(),
		SourceToken:        denomA,
		TargetTokenAddress: targetToken,
		TargetChain:        targetChain,
		Amount:             math.NewInt(5_000_000),
		TargetAddress:      targetAddress,
		ExpiresInBlocks:    144,
	})
	require.NoError(t, err)
	require.Equal(t, uint64(1), initiated.SwapId)

	_, err = ms.CompleteCrossChainSwap(ctx.WithBlockHeight(150), &types.MsgCompleteCrossChainSwap{
		Relayer:      keepertest.Authority.String(),
		SwapId:       initiated.SwapId,
		TargetAmount: math.NewInt(4_950_000),
		Proof:        "attestation",
	})
	require.NoError(t, err)

	_, err = ms.CancelCrossChainSwap(ctx.WithBlockHeight(300), &types.MsgCancelCrossChainSwap{
		Sender: trader.String(),
		SwapId: initiated.SwapId,
	})
	require.ErrorIs(t, err, types.ErrSwapNotPending)
}

func TestMsgServerAdminFlow(t *testing.T) {
	ms, k, ctx, bank := setupMsgServer(t)
	poolID := fundAndCreatePool(t, k, ctx, bank)

	authority := keepertest.Authority.String()

	_, err := ms.SetProtocolFee(ctx, &types.MsgSetProtocolFee{
		Authority: authority, ProtocolFeeBps: 10})
	require.NoError(t, err)

	recipient := keepertest.TestAddress(9)
	_, err = ms.SetFeeRecipient(ctx, &types.MsgSetFeeRecipient{
		Authority: authority, FeeRecipient: recipient.String()})
	require.NoError(t, err)

	params, err := k.GetParams(ctx)
	require.NoError(t, err)
	require.Equal(t, uint32(10), params.ProtocolFeeBps)
	require.Equal(t, recipient.String(), params.FeeRecipient)

	_, err = ms.SetPaused(ctx, &types.MsgSetPaused{Authority: authority, Paused: true})
	require.NoError(t, err)
	require.True(t, k.IsPaused(ctx))

	_, err = ms.EmergencyWithdraw(ctx, &types.MsgEmergencyWithdraw{
		Authority: authority,
		Token:     denomA,
		Amount:    math.NewInt(1_000),
		Recipient: recipient.String(),
	})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000), bank.BalanceOf(recipient, denomA))

	_, err = ms.SetPaused(ctx, &types.MsgSetPaused{Authority: authority, Paused: false})
	require.NoError(t, err)

	_, err = ms.DeactivatePool(ctx, &types.MsgDeactivatePool{
		Authority: authority, PoolId: poolID})
	require.NoError(t, err)

	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	require.False(t, pool.Active)

	// non-authority caller passes stateless validation but fails in the keeper
	_, err = ms.SetPaused(ctx, &types.MsgSetPaused{Authority: trader.String(), Paused: true})
	require.ErrorIs(t, err, types.ErrUnauthorized)
}
