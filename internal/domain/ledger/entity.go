package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one append-only ledger entry. Rows are never updated or
// deleted once written.
type Transaction struct {
	ID              string
	EmployeeID      string
	Type            TransactionType
	Amount          decimal.Decimal
	Description     *string
	TransactionDate time.Time
	CreatedBy       string
	CreatedAt       time.Time
}

type TransactionType string

const (
	TypeWithdrawal    TransactionType = "withdrawal"
	TypeDeduction     TransactionType = "deduction"
	TypeBonus         TransactionType = "bonus"
	TypeSalaryPayment TransactionType = "salary_payment"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TypeWithdrawal, TypeDeduction, TypeBonus, TypeSalaryPayment:
		return true
	}
	return false
}
