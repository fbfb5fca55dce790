package tellerxgo

import (
	"iter"
	"slices"
)

type Customer struct {
	ID        string
	Name      string
	BirthDate string
	Address   string

	dailyLimit int
	accounts   []*Account
}

// NewCustomer registers a customer who may execute at most dailyLimit transactions
// per account per calendar day.
func NewCustomer(id, name, birthDate, address string, dailyLimit int) *Customer {
	return &Customer{
		ID:         id,
		Name:       name,
		BirthDate:  birthDate,
		Address:    address,
		dailyLimit: dailyLimit,
	}
}

// Execute applies t to acct unless the account ledger already holds dailyLimit
// entries dated today.
func (c *Customer) Execute(acct *Account, t Transaction) error {
	if len(acct.Ledger().EntriesToday()) >= c.dailyLimit {
		return ErrDailyLimit
	}
	return t.Apply(acct)
}

func (c *Customer) AddAccount(acct *Account) {
	c.accounts = append(c.accounts, acct)
}

func (c *Customer) Accounts() iter.Seq[*Account] {
	return slices.Values(c.accounts)
}

// FirstAccount returns the account the console operates on.
func (c *Customer) FirstAccount() (*Account, error) {
	if len(c.accounts) == 0 {
		return nil, ErrNoAccount
	}
	return c.accounts[0], nil
}
