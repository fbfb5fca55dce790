package tellerxgo_test

import (
	"bytes"
	"errors"
	"slices"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/arhyth/tellerxgo"
	"github.com/arhyth/tellerxgo/mocks"
)

func TestValidationMW(t *testing.T) {
	t.Run("rejects a customer without identifier or name", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		v := tellerxgo.NewValidationMiddleware()(svc)

		c, err := v.CreateCustomer(tellerxgo.CreateCustomerReq{ID: "  "})
		br := tellerxgo.ErrBadRequest{}
		as.ErrorAs(err, &br)
		as.Contains(br.Fields, "customer")
		as.Contains(br.Fields, "name")
		as.Nil(c)
	})

	t.Run("rejects empty customer identifiers", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		v := tellerxgo.NewValidationMiddleware()(svc)

		bal, err := v.Deposit(tellerxgo.ChargeReq{Amount: dec("10")})
		as.ErrorAs(err, &tellerxgo.ErrBadRequest{})
		as.Nil(bal)
		bal, err = v.Withdraw(tellerxgo.ChargeReq{Amount: dec("10")})
		as.ErrorAs(err, &tellerxgo.ErrBadRequest{})
		as.Nil(bal)
		acct, err := v.CreateAccount(tellerxgo.CreateAccountReq{})
		as.ErrorAs(err, &tellerxgo.ErrBadRequest{})
		as.Nil(acct)
		as.ErrorAs(v.Statement(&bytes.Buffer{}, tellerxgo.StatementReq{}), &tellerxgo.ErrBadRequest{})
		as.ErrorAs(v.ExportStatement(&bytes.Buffer{}, tellerxgo.StatementReq{}), &tellerxgo.ErrBadRequest{})
	})

	t.Run("passes valid requests through", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		req := tellerxgo.ChargeReq{CustomerID: "1", Amount: dec("10")}
		bal := dec("10")
		svc.EXPECT().
			Deposit(req).
			Return(&bal, nil).
			Times(1)
		v := tellerxgo.NewValidationMiddleware()(svc)

		got, err := v.Deposit(req)
		as.Nil(err)
		as.Same(&bal, got)
	})
}

func TestAuditMW(t *testing.T) {
	nooplog := zerolog.Nop()

	t.Run("records a successful deposit with its balance", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		auditor := mocks.NewMockAuditor(ctrl)
		req := tellerxgo.ChargeReq{CustomerID: "1", Amount: dec("1000")}
		bal := dec("1000")
		svc.EXPECT().
			Deposit(req).
			Return(&bal, nil).
			Times(1)
		auditor.EXPECT().
			Record("deposit", []any{req}, gomock.Nil(), "1000.00").
			Return(nil).
			Times(1)

		a := tellerxgo.NewAuditMiddleware(auditor, &nooplog)(svc)
		got, err := a.Deposit(req)
		as.Nil(err)
		as.True(got.Equal(bal))
	})

	t.Run("records failures with the error message", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		auditor := mocks.NewMockAuditor(ctrl)
		req := tellerxgo.ChargeReq{CustomerID: "1", Amount: dec("1500")}
		svc.EXPECT().
			Withdraw(req).
			Return(nil, tellerxgo.ErrWithdrawalLimit).
			Times(1)
		auditor.EXPECT().
			Record("withdraw", []any{req}, gomock.Nil(), "error: withdrawal limit exceeded").
			Return(nil).
			Times(1)

		a := tellerxgo.NewAuditMiddleware(auditor, &nooplog)(svc)
		bal, err := a.Withdraw(req)
		as.ErrorIs(err, tellerxgo.ErrWithdrawalLimit)
		as.Nil(bal)
	})

	t.Run("an auditor failure does not change the outcome", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		auditor := mocks.NewMockAuditor(ctrl)
		req := tellerxgo.CreateAccountReq{CustomerID: "1"}
		acct := &tellerxgo.Account{Number: 7}
		svc.EXPECT().
			CreateAccount(req).
			Return(acct, nil).
			Times(1)
		auditor.EXPECT().
			Record("create_account", []any{req}, gomock.Nil(), 7).
			Return(errors.New("disk full")).
			Times(1)

		a := tellerxgo.NewAuditMiddleware(auditor, &nooplog)(svc)
		got, err := a.CreateAccount(req)
		as.Nil(err)
		as.Same(acct, got)
	})

	t.Run("account listing is not audited", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		auditor := mocks.NewMockAuditor(ctrl)
		svc.EXPECT().
			Accounts().
			Return(slices.Values([]*tellerxgo.Account{})).
			Times(1)

		a := tellerxgo.NewAuditMiddleware(auditor, &nooplog)(svc)
		n := 0
		for range a.Accounts() {
			n++
		}
		as.Zero(n)
	})
}

func TestChain(t *testing.T) {
	t.Run("first middleware is outermost", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		auditor := mocks.NewMockAuditor(ctrl)
		nooplog := zerolog.Nop()
		req := tellerxgo.ChargeReq{Amount: dec("10")}
		auditor.EXPECT().
			Record("deposit", []any{req}, gomock.Nil(), gomock.Any()).
			Return(nil).
			Times(1)

		chained := tellerxgo.Chain(svc,
			tellerxgo.NewAuditMiddleware(auditor, &nooplog),
			tellerxgo.NewValidationMiddleware(),
			tellerxgo.NewLoggingMiddleware(&nooplog),
		)
		_, err := chained.Deposit(req)
		as.ErrorAs(err, &tellerxgo.ErrBadRequest{})
	})
}
