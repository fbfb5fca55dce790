package tellerxgo_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arhyth/tellerxgo"
)

func TestCustomerExecute(t *testing.T) {
	t.Run("third transaction of the day on the same account is rejected", func(tt *testing.T) {
		as := assert.New(tt)
		now := time.Date(2026, 10, 15, 10, 0, 0, 0, time.Local)
		cust, acct := newCheckingAccount(tt, movableClock(tt, &now))

		as.Nil(cust.Execute(acct, tellerxgo.NewDeposit(dec("100"))))
		as.Nil(cust.Execute(acct, tellerxgo.NewDeposit(dec("100"))))

		as.ErrorIs(cust.Execute(acct, tellerxgo.NewWithdrawal(dec("10"))), tellerxgo.ErrDailyLimit)
		as.ErrorIs(cust.Execute(acct, tellerxgo.NewDeposit(dec("10"))), tellerxgo.ErrDailyLimit)
		as.True(acct.Balance().Equal(dec("200")))
		as.Equal(2, acct.Ledger().Len())
	})

	t.Run("rejected transactions do not count towards the daily cap", func(tt *testing.T) {
		as := assert.New(tt)
		now := time.Date(2026, 10, 15, 10, 0, 0, 0, time.Local)
		cust, acct := newCheckingAccount(tt, movableClock(tt, &now))

		as.ErrorIs(cust.Execute(acct, tellerxgo.NewWithdrawal(dec("10"))), tellerxgo.ErrInsufficientBalance)
		as.Nil(cust.Execute(acct, tellerxgo.NewDeposit(dec("100"))))
		as.Nil(cust.Execute(acct, tellerxgo.NewWithdrawal(dec("10"))))
	})

	t.Run("cap resets on the next calendar day", func(tt *testing.T) {
		as := assert.New(tt)
		now := time.Date(2026, 10, 15, 23, 0, 0, 0, time.Local)
		cust, acct := newCheckingAccount(tt, movableClock(tt, &now))

		as.Nil(cust.Execute(acct, tellerxgo.NewDeposit(dec("100"))))
		as.Nil(cust.Execute(acct, tellerxgo.NewDeposit(dec("100"))))
		as.ErrorIs(cust.Execute(acct, tellerxgo.NewDeposit(dec("100"))), tellerxgo.ErrDailyLimit)

		now = now.Add(2 * time.Hour)
		as.Nil(cust.Execute(acct, tellerxgo.NewDeposit(dec("100"))))
		as.True(acct.Balance().Equal(dec("300")))
	})

	t.Run("cap is scoped to the target account", func(tt *testing.T) {
		as := assert.New(tt)
		now := time.Date(2026, 10, 15, 10, 0, 0, 0, time.Local)
		clk := movableClock(tt, &now)
		cust, first := newCheckingAccount(tt, clk)
		second := tellerxgo.NewCheckingAccount(2, "0001", cust, newLedger(tt, clk), checkingRules())
		cust.AddAccount(second)

		as.Nil(cust.Execute(first, tellerxgo.NewDeposit(dec("1"))))
		as.Nil(cust.Execute(first, tellerxgo.NewDeposit(dec("1"))))
		as.Nil(cust.Execute(second, tellerxgo.NewDeposit(dec("1"))))
	})
}

func TestCustomerAccounts(t *testing.T) {
	t.Run("first account is the console target", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		now := time.Date(2026, 10, 15, 10, 0, 0, 0, time.Local)
		clk := movableClock(tt, &now)
		cust, first := newCheckingAccount(tt, clk)
		cust.AddAccount(tellerxgo.NewBasicAccount(2, "0001", cust, newLedger(tt, clk)))

		acct, err := cust.FirstAccount()
		reqrd.Nil(err)
		as.Same(first, acct)

		var numbers []int
		for a := range cust.Accounts() {
			numbers = append(numbers, a.Number)
		}
		as.Equal([]int{1, 2}, numbers)
	})

	t.Run("customer without accounts", func(tt *testing.T) {
		as := assert.New(tt)
		cust := tellerxgo.NewCustomer("1", "Bia", "", "", 2)
		acct, err := cust.FirstAccount()
		as.ErrorIs(err, tellerxgo.ErrNoAccount)
		as.Nil(acct)
	})
}
