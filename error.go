package tellerxgo

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrWithdrawalLimit     = errors.New("withdrawal limit exceeded")
	ErrWithdrawalCount     = errors.New("maximum number of withdrawals exceeded")
	ErrDailyLimit          = errors.New("daily transaction limit exceeded")
	ErrNoAccount           = errors.New("customer has no account")
	ErrCustomerExists      = errors.New("customer already exists")
	ErrUnknownTransaction  = errors.New("unknown transaction kind")
)

type ErrBadRequest struct {
	Fields map[string]string
}

func (e ErrBadRequest) Error() string {
	return fmt.Sprintf("missing/invalid params: %v", e.Fields)
}

type ErrNotFound struct {
	Resource string `json:"resource"`
	ID       string `json:"id"`
}

func (e ErrNotFound) Error() string {
	if e.Resource == "" {
		return "record not found"
	}
	return e.Resource + " not found"
}
