package tellerxgo_test

import (
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/arhyth/tellerxgo"
	"github.com/arhyth/tellerxgo/mocks"
)

// movableClock returns a clock that always reports *now, so tests can move time
// by reassigning the variable.
func movableClock(t *testing.T, now *time.Time) *mocks.MockClock {
	ctrl := gomock.NewController(t)
	clk := mocks.NewMockClock(ctrl)
	clk.EXPECT().
		Now().
		DoAndReturn(func() time.Time { return *now }).
		AnyTimes()
	return clk
}

func checkingRules() tellerxgo.AccountRules {
	return tellerxgo.AccountRules{
		WithdrawalLimit: decimal.NewFromInt(500),
		MaxWithdrawals:  3,
	}
}

func newLedger(t *testing.T, clk tellerxgo.Clock) *tellerxgo.Ledger {
	node, err := snowflake.NewNode(1)
	require.Nil(t, err)
	return tellerxgo.NewLedger(node, clk)
}

func newCheckingAccount(t *testing.T, clk tellerxgo.Clock) (*tellerxgo.Customer, *tellerxgo.Account) {
	owner := tellerxgo.NewCustomer("111.222.333-44", "Ana", "01-01-1990", "Rua A, 10", 2)
	acct := tellerxgo.NewCheckingAccount(1, "0001", owner, newLedger(t, clk), checkingRules())
	owner.AddAccount(acct)
	return owner, acct
}

func newBank(t *testing.T, clk tellerxgo.Clock) *tellerxgo.Bank {
	log := zerolog.Nop()
	bank, err := tellerxgo.NewBank(tellerxgo.DefaultConfig(), clk, &log)
	require.Nil(t, err)
	return bank
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
