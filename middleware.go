package tellerxgo

import (
	"io"
	"iter"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type Middleware func(Service) Service

// Chain wraps svc so that the first middleware is the outermost.
func Chain(svc Service, mws ...Middleware) Service {
	for i := len(mws) - 1; i >= 0; i-- {
		svc = mws[i](svc)
	}
	return svc
}

var (
	_ Service = (*validationMiddleware)(nil)
)

type validationMiddleware struct {
	next Service
}

func NewValidationMiddleware() Middleware {
	return func(svc Service) Service {
		return &validationMiddleware{
			next: svc,
		}
	}
}

func requireCustomerID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrBadRequest{Fields: map[string]string{"customer": "missing identifier"}}
	}
	return nil
}

func (v *validationMiddleware) CreateCustomer(req CreateCustomerReq) (*Customer, error) {
	fields := map[string]string{}
	if strings.TrimSpace(req.ID) == "" {
		fields["customer"] = "missing identifier"
	}
	if strings.TrimSpace(req.Name) == "" {
		fields["name"] = "missing name"
	}
	if len(fields) > 0 {
		return nil, ErrBadRequest{Fields: fields}
	}
	return v.next.CreateCustomer(req)
}

func (v *validationMiddleware) CreateAccount(req CreateAccountReq) (*Account, error) {
	if err := requireCustomerID(req.CustomerID); err != nil {
		return nil, err
	}
	return v.next.CreateAccount(req)
}

func (v *validationMiddleware) Deposit(req ChargeReq) (*decimal.Decimal, error) {
	if err := requireCustomerID(req.CustomerID); err != nil {
		return nil, err
	}
	return v.next.Deposit(req)
}

func (v *validationMiddleware) Withdraw(req ChargeReq) (*decimal.Decimal, error) {
	if err := requireCustomerID(req.CustomerID); err != nil {
		return nil, err
	}
	return v.next.Withdraw(req)
}

func (v *validationMiddleware) Statement(w io.Writer, req StatementReq) error {
	if err := requireCustomerID(req.CustomerID); err != nil {
		return err
	}
	return v.next.Statement(w, req)
}

func (v *validationMiddleware) ExportStatement(w io.Writer, req StatementReq) error {
	if err := requireCustomerID(req.CustomerID); err != nil {
		return err
	}
	return v.next.ExportStatement(w, req)
}

func (v *validationMiddleware) Accounts() iter.Seq[*Account] {
	return v.next.Accounts()
}

//
// Audit and logging middlewares
//

// auditMiddleware records every state changing or reporting action to an Auditor
// after the wrapped call returns. A failing Auditor never changes the outcome of
// the call; the failure is only logged.
type auditMiddleware struct {
	next    Service
	auditor Auditor
	log     *zerolog.Logger
}

var (
	_ Service = (*auditMiddleware)(nil)
)

func NewAuditMiddleware(auditor Auditor, log *zerolog.Logger) Middleware {
	return func(next Service) Service {
		return &auditMiddleware{
			next:    next,
			auditor: auditor,
			log:     log,
		}
	}
}

func auditResult(val any, err error) any {
	if err != nil {
		return "error: " + err.Error()
	}
	return val
}

func (a *auditMiddleware) record(name string, req any, result any) {
	if err := a.auditor.Record(name, []any{req}, nil, result); err != nil {
		a.log.Warn().Err(err).Str("method", name).Msg("audit record failed")
	}
}

func (a *auditMiddleware) CreateCustomer(req CreateCustomerReq) (*Customer, error) {
	c, err := a.next.CreateCustomer(req)
	var val any
	if c != nil {
		val = c.ID
	}
	a.record("create_customer", req, auditResult(val, err))
	return c, err
}

func (a *auditMiddleware) CreateAccount(req CreateAccountReq) (*Account, error) {
	acct, err := a.next.CreateAccount(req)
	var val any
	if acct != nil {
		val = acct.Number
	}
	a.record("create_account", req, auditResult(val, err))
	return acct, err
}

func (a *auditMiddleware) Deposit(req ChargeReq) (*decimal.Decimal, error) {
	bal, err := a.next.Deposit(req)
	var val any
	if bal != nil {
		val = bal.StringFixed(2)
	}
	a.record("deposit", req, auditResult(val, err))
	return bal, err
}

func (a *auditMiddleware) Withdraw(req ChargeReq) (*decimal.Decimal, error) {
	bal, err := a.next.Withdraw(req)
	var val any
	if bal != nil {
		val = bal.StringFixed(2)
	}
	a.record("withdraw", req, auditResult(val, err))
	return bal, err
}

func (a *auditMiddleware) Statement(w io.Writer, req StatementReq) error {
	err := a.next.Statement(w, req)
	a.record("statement", req, auditResult(nil, err))
	return err
}

func (a *auditMiddleware) ExportStatement(w io.Writer, req StatementReq) error {
	err := a.next.ExportStatement(w, req)
	a.record("export_statement", req, auditResult(nil, err))
	return err
}

func (a *auditMiddleware) Accounts() iter.Seq[*Account] {
	return a.next.Accounts()
}

type loggingMiddleware struct {
	next Service
	log  *zerolog.Logger
}

var (
	_ Service = (*loggingMiddleware)(nil)
)

func NewLoggingMiddleware(log *zerolog.Logger) Middleware {
	return func(next Service) Service {
		return &loggingMiddleware{
			next: next,
			log:  log,
		}
	}
}

func (l *loggingMiddleware) done(method, customer string, err error) {
	evt := l.log.Debug()
	if err != nil {
		evt = evt.Err(err)
	}
	evt.Str("method", method).Str("customer", customer).Msg("service call")
}

func (l *loggingMiddleware) CreateCustomer(req CreateCustomerReq) (*Customer, error) {
	c, err := l.next.CreateCustomer(req)
	l.done("create_customer", req.ID, err)
	return c, err
}

func (l *loggingMiddleware) CreateAccount(req CreateAccountReq) (*Account, error) {
	acct, err := l.next.CreateAccount(req)
	l.done("create_account", req.CustomerID, err)
	return acct, err
}

func (l *loggingMiddleware) Deposit(req ChargeReq) (*decimal.Decimal, error) {
	bal, err := l.next.Deposit(req)
	l.done("deposit", req.CustomerID, err)
	return bal, err
}

func (l *loggingMiddleware) Withdraw(req ChargeReq) (*decimal.Decimal, error) {
	bal, err := l.next.Withdraw(req)
	l.done("withdraw", req.CustomerID, err)
	return bal, err
}

func (l *loggingMiddleware) Statement(w io.Writer, req StatementReq) error {
	err := l.next.Statement(w, req)
	l.done("statement", req.CustomerID, err)
	return err
}

func (l *loggingMiddleware) ExportStatement(w io.Writer, req StatementReq) error {
	err := l.next.ExportStatement(w, req)
	l.done("export_statement", req.CustomerID, err)
	return err
}

func (l *loggingMiddleware) Accounts() iter.Seq[*Account] {
	return l.next.Accounts()
}
