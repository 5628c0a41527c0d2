package ledger

import "errors"

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("invalid transaction amount")
	ErrInsufficientBalance    = errors.New("insufficient balance")
)
