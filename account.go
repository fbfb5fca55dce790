package tellerxgo

import (
	"github.com/shopspring/decimal"
)

type AccountKind string

const (
	KindBasic    AccountKind = "basic"
	KindChecking AccountKind = "checking"
)

// AccountRules holds the withdrawal restrictions of a checking account.
// MaxWithdrawals counts every withdrawal ever recorded in the ledger, not a daily window.
type AccountRules struct {
	WithdrawalLimit decimal.Decimal
	MaxWithdrawals  int
}

type Account struct {
	Number   int
	Branch   string
	Kind     AccountKind
	Rules    AccountRules
	customer *Customer
	balance  decimal.Decimal
	ledger   *Ledger
}

func NewBasicAccount(number int, branch string, owner *Customer, ledger *Ledger) *Account {
	return &Account{
		Number:   number,
		Branch:   branch,
		Kind:     KindBasic,
		customer: owner,
		ledger:   ledger,
	}
}

func NewCheckingAccount(number int, branch string, owner *Customer, ledger *Ledger, rules AccountRules) *Account {
	return &Account{
		Number:   number,
		Branch:   branch,
		Kind:     KindChecking,
		Rules:    rules,
		customer: owner,
		ledger:   ledger,
	}
}

func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

func (a *Account) Customer() *Customer {
	return a.customer
}

func (a *Account) Ledger() *Ledger {
	return a.ledger
}

// withdraw checks the kind specific rules first so the most specific failure is
// reported before the shared amount and balance checks.
func (a *Account) withdraw(amount decimal.Decimal) error {
	if a.Kind == KindChecking {
		if amount.GreaterThan(a.Rules.WithdrawalLimit) {
			return ErrWithdrawalLimit
		}
		if a.ledger.Count(Withdrawal) >= a.Rules.MaxWithdrawals {
			return ErrWithdrawalCount
		}
	}

	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(a.balance) {
		return ErrInsufficientBalance
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

func (a *Account) deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	a.balance = a.balance.Add(amount)
	return nil
}
