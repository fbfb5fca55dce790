package tellerxgo

import (
	"io"
	"iter"
	"slices"

	"github.com/bwmarrin/snowflake"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type ChargeReq struct {
	CustomerID string
	Amount     decimal.Decimal
}

type StatementReq struct {
	CustomerID string
	Kind       string
}

type CreateAccountReq struct {
	CustomerID string
}

type CreateCustomerReq struct {
	ID        string
	Name      string
	BirthDate string
	Address   string
}

type Service interface {
	CreateCustomer(CreateCustomerReq) (*Customer, error)
	CreateAccount(CreateAccountReq) (*Account, error)
	Deposit(ChargeReq) (*decimal.Decimal, error)
	Withdraw(ChargeReq) (*decimal.Decimal, error)
	Statement(io.Writer, StatementReq) error
	ExportStatement(io.Writer, StatementReq) error
	Accounts() iter.Seq[*Account]
}

var (
	_ Service = (*Bank)(nil)
)

// Bank owns every customer and account of a session. State lives for the lifetime
// of the process and is never persisted.
type Bank struct {
	cfg       *Config
	clock     Clock
	node      *snowflake.Node
	log       *zerolog.Logger
	customers []*Customer
	accounts  []*Account
}

func NewBank(cfg *Config, clock Clock, log *zerolog.Logger) (*Bank, error) {
	node, err := snowflake.NewNode(cfg.NodeID)
	if err != nil {
		return nil, err
	}
	return &Bank{
		cfg:   cfg,
		clock: clock,
		node:  node,
		log:   log,
	}, nil
}

// Customer does a linear scan over the registered customers.
func (b *Bank) Customer(id string) (*Customer, error) {
	for _, c := range b.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, ErrNotFound{Resource: "customer", ID: id}
}

func (b *Bank) CreateCustomer(req CreateCustomerReq) (*Customer, error) {
	if _, err := b.Customer(req.ID); err == nil {
		return nil, ErrCustomerExists
	}
	c := NewCustomer(req.ID, req.Name, req.BirthDate, req.Address, b.cfg.DailyTransactionLimit)
	b.customers = append(b.customers, c)
	b.log.Info().Str("customer", c.ID).Msg("customer registered")
	return c, nil
}

// CreateAccount opens a checking account numbered after the accounts opened so far.
func (b *Bank) CreateAccount(req CreateAccountReq) (*Account, error) {
	c, err := b.Customer(req.CustomerID)
	if err != nil {
		return nil, err
	}
	acct := NewCheckingAccount(
		len(b.accounts)+1,
		b.cfg.Branch,
		c,
		NewLedger(b.node, b.clock),
		b.cfg.CheckingRules(),
	)
	b.accounts = append(b.accounts, acct)
	c.AddAccount(acct)
	b.log.Info().
		Str("customer", c.ID).
		Int("account", acct.Number).
		Msg("account opened")
	return acct, nil
}

func (b *Bank) Deposit(req ChargeReq) (*decimal.Decimal, error) {
	return b.execute(req.CustomerID, NewDeposit(req.Amount))
}

func (b *Bank) Withdraw(req ChargeReq) (*decimal.Decimal, error) {
	return b.execute(req.CustomerID, NewWithdrawal(req.Amount))
}

func (b *Bank) execute(customerID string, t Transaction) (*decimal.Decimal, error) {
	c, acct, err := b.customerAccount(customerID)
	if err != nil {
		return nil, err
	}
	if err = c.Execute(acct, t); err != nil {
		return nil, err
	}
	bal := acct.Balance()
	return &bal, nil
}

func (b *Bank) Statement(w io.Writer, req StatementReq) error {
	_, acct, err := b.customerAccount(req.CustomerID)
	if err != nil {
		return err
	}
	return WriteStatement(w, acct, req.Kind, b.cfg.CurrencySymbol)
}

func (b *Bank) ExportStatement(w io.Writer, req StatementReq) error {
	_, acct, err := b.customerAccount(req.CustomerID)
	if err != nil {
		return err
	}
	return WriteStatementPDF(w, acct, req.Kind, b.cfg.CurrencySymbol)
}

// Accounts yields every account in the order it was opened.
func (b *Bank) Accounts() iter.Seq[*Account] {
	return slices.Values(b.accounts)
}

func (b *Bank) customerAccount(customerID string) (*Customer, *Account, error) {
	c, err := b.Customer(customerID)
	if err != nil {
		return nil, nil, err
	}
	acct, err := c.FirstAccount()
	if err != nil {
		return nil, nil, err
	}
	return c, acct, nil
}
