package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MockBankKeeper is an in-memory bank for keeper tests. Transfers fail with
// an error on insufficient balance, matching the real bank keeper, so the
// abort-and-rollback paths are exercisable.
type MockBankKeeper struct {
	balances map[string]sdk.Coins
}

// NewMockBankKeeper returns an empty in-memory bank
func NewMockBankKeeper() *MockBankKeeper {
	return &MockBankKeeper{balances: make(map[string]sdk.Coins)}
}

// FundAccount credits coins to an account out of thin air
func (m *MockBankKeeper) FundAccount(addr sdk.AccAddress, coins sdk.Coins) {
	m.balances[addr.String()] = m.balances[addr.String()].Add(coins...)
}

// SendCoins moves coins between accounts, failing when the sender lacks funds
func (m *MockBankKeeper) SendCoins(_ context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	from := m.balances[fromAddr.String()]
	newFrom, negative := from.SafeSub(amt...)
	if negative {
		return fmt.Errorf("insufficient funds: %s has %s, needs %s", fromAddr, from, amt)
	}
	m.balances[fromAddr.String()] = newFrom
	m.balances[toAddr.String()] = m.balances[toAddr.String()].Add(amt...)
	return nil
}

// GetBalance returns the balance of a single denom
func (m *MockBankKeeper) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	amount := m.balances[addr.String()].AmountOf(denom)
	return sdk.Coin{Denom: denom, Amount: amount}
}

// SpendableCoins returns all coins held by an account
func (m *MockBankKeeper) SpendableCoins(_ context.Context, addr sdk.AccAddress) sdk.Coins {
	return m.balances[addr.String()]
}

// BalanceOf is a test convenience accessor
func (m *MockBankKeeper) BalanceOf(addr sdk.AccAddress, denom string) math.Int {
	return m.balances[addr.String()].AmountOf(denom)
}
