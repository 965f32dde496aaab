package repositories

import "errors"

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrDebtsNotFound   = errors.New("no debts recorded for account")
	ErrDebtNotFound    = errors.New("debt not found")
)
