package tellerxgo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const menuText = `
================ MENU ================
[d]  Deposit
[s]  Withdraw
[e]  Statement
[nc] New account
[lc] List accounts
[nu] New customer
[q]  Quit
=> `

// Session is the console teller. It reads menu choices and prompts from in and
// writes every user-facing message to out.
type Session struct {
	svc Service
	cfg *Config
	in  *bufio.Scanner
	out io.Writer
	log *zerolog.Logger
}

func NewSession(svc Service, cfg *Config, in io.Reader, out io.Writer, log *zerolog.Logger) *Session {
	return &Session{
		svc: svc,
		cfg: cfg,
		in:  bufio.NewScanner(in),
		out: out,
		log: log,
	}
}

// Run loops until the user quits or the input is exhausted. Failed operations are
// reported to the user and never end the loop.
func (s *Session) Run() error {
	for {
		fmt.Fprint(s.out, menuText)
		choice, ok := s.readLine()
		if !ok {
			return s.in.Err()
		}
		switch choice {
		case "d":
			s.deposit()
		case "s":
			s.withdraw()
		case "e":
			s.statement()
		case "nc":
			s.newAccount()
		case "lc":
			s.listAccounts()
		case "nu":
			s.newCustomer()
		case "q":
			return nil
		default:
			s.fail("Invalid option, please select again.")
		}
	}
}

func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Session) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	return s.readLine()
}

func (s *Session) fail(msg string) {
	fmt.Fprintf(s.out, "\n@@@ %s @@@\n", msg)
}

func (s *Session) succeed(msg string) {
	fmt.Fprintf(s.out, "\n=== %s ===\n", msg)
}

func (s *Session) report(err error) {
	var (
		nf ErrNotFound
		br ErrBadRequest
	)
	switch {
	case errors.As(err, &nf):
		s.fail("Customer not found!")
	case errors.As(err, &br):
		s.fail(fmt.Sprintf("Invalid input: %v", br.Fields))
	case errors.Is(err, ErrNoAccount):
		s.fail("Customer has no account!")
	case errors.Is(err, ErrInvalidAmount):
		s.fail("Invalid amount!")
	case errors.Is(err, ErrInsufficientBalance):
		s.fail("Insufficient balance!")
	case errors.Is(err, ErrWithdrawalLimit):
		s.fail("Withdrawal limit exceeded!")
	case errors.Is(err, ErrWithdrawalCount):
		s.fail("Maximum number of withdrawals exceeded!")
	case errors.Is(err, ErrDailyLimit):
		s.fail("Daily transaction limit exceeded!")
	case errors.Is(err, ErrCustomerExists):
		s.fail("Customer already exists!")
	default:
		s.log.Error().Err(err).Msg("unexpected teller error")
		s.fail("Operation failed!")
	}
}

func (s *Session) chargeReq(label string) (ChargeReq, bool) {
	id, ok := s.prompt("Customer ID: ")
	if !ok {
		return ChargeReq{}, false
	}
	raw, ok := s.prompt(label)
	if !ok {
		return ChargeReq{}, false
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		s.log.Debug().Err(err).Str("input", raw).Msg("malformed amount")
		s.fail("Invalid amount!")
		return ChargeReq{}, false
	}
	return ChargeReq{CustomerID: id, Amount: amount}, true
}

func (s *Session) deposit() {
	req, ok := s.chargeReq("Deposit amount: ")
	if !ok {
		return
	}
	if _, err := s.svc.Deposit(req); err != nil {
		s.report(err)
		return
	}
	s.succeed("Deposit completed successfully!")
}

func (s *Session) withdraw() {
	req, ok := s.chargeReq("Withdrawal amount: ")
	if !ok {
		return
	}
	if _, err := s.svc.Withdraw(req); err != nil {
		s.report(err)
		return
	}
	s.succeed("Withdrawal completed successfully!")
}

func (s *Session) statement() {
	id, ok := s.prompt("Customer ID: ")
	if !ok {
		return
	}
	req := StatementReq{CustomerID: id}
	if err := s.svc.Statement(s.out, req); err != nil {
		s.report(err)
		return
	}
	if s.cfg.Statement.PDFDir == "" {
		return
	}

	path, err := s.exportStatement(req)
	if err != nil {
		s.report(err)
		return
	}
	s.succeed("Statement exported to " + path)
}

func (s *Session) exportStatement(req StatementReq) (string, error) {
	if err := os.MkdirAll(s.cfg.Statement.PDFDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(s.cfg.Statement.PDFDir, fmt.Sprintf("statement_%s.pdf", fileSafe(req.CustomerID)))
	fl, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer fl.Close()

	if err = s.svc.ExportStatement(fl, req); err != nil {
		return "", err
	}
	return path, nil
}

func fileSafe(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' {
			return r
		}
		return '_'
	}, s)
}

func (s *Session) newAccount() {
	id, ok := s.prompt("Customer ID: ")
	if !ok {
		return
	}
	if _, err := s.svc.CreateAccount(CreateAccountReq{CustomerID: id}); err != nil {
		s.report(err)
		return
	}
	s.succeed("Account created successfully!")
}

func (s *Session) listAccounts() {
	n := 0
	for acct := range s.svc.Accounts() {
		if err := WriteAccount(s.out, acct, s.cfg.CurrencySymbol); err != nil {
			s.log.Err(err).Msg("error writing account listing")
			return
		}
		n++
	}
	if n == 0 {
		fmt.Fprintln(s.out, "\nNo accounts registered.")
	}
}

func (s *Session) newCustomer() {
	var req CreateCustomerReq
	fields := []struct {
		label string
		dst   *string
	}{
		{"Customer ID: ", &req.ID},
		{"Name: ", &req.Name},
		{"Birth date: ", &req.BirthDate},
		{"Address: ", &req.Address},
	}
	for _, f := range fields {
		v, ok := s.prompt(f.label)
		if !ok {
			return
		}
		*f.dst = v
	}
	if _, err := s.svc.CreateCustomer(req); err != nil {
		s.report(err)
		return
	}
	s.succeed("Customer created successfully!")
}
