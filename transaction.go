package tellerxgo

import (
	"github.com/shopspring/decimal"
)

type TxKind string

const (
	Withdrawal TxKind = "Withdrawal"
	Deposit    TxKind = "Deposit"
)

// Transaction is a request to move money in or out of a single account.
type Transaction struct {
	Kind   TxKind
	Amount decimal.Decimal
}

func NewWithdrawal(amount decimal.Decimal) Transaction {
	return Transaction{Kind: Withdrawal, Amount: amount}
}

func NewDeposit(amount decimal.Decimal) Transaction {
	return Transaction{Kind: Deposit, Amount: amount}
}

// Apply runs the transaction against acct and records it in the account ledger.
// Nothing is recorded when the account rejects the amount.
func (t Transaction) Apply(acct *Account) error {
	var err error
	switch t.Kind {
	case Withdrawal:
		err = acct.withdraw(t.Amount)
	case Deposit:
		err = acct.deposit(t.Amount)
	default:
		err = ErrUnknownTransaction
	}
	if err != nil {
		return err
	}

	acct.ledger.append(t)
	return nil
}
