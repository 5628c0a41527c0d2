package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Delta is the effect of a single transaction on an employee's running
// balance and totals.
type Delta struct {
	Balance    decimal.Decimal
	Bonuses    decimal.Decimal
	Deductions decimal.Decimal
	MarksPaid  bool
}

// ComputeDelta maps a transaction request onto the signed deltas it applies:
//
//	withdrawal      balance -amount            requires balance >= amount
//	salary_payment  balance -amount, marks paid, requires balance >= amount
//	deduction       balance -amount, deductions +amount
//	bonus           balance +amount, bonuses +amount
//
// The function is total over the closed TransactionType set: any other value
// is an error, never a zero-delta no-op.
func ComputeDelta(txType TransactionType, amount, currentBalance decimal.Decimal) (Delta, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return Delta{}, fmt.Errorf("%w: amount must be greater than zero, got %s", ErrInvalidAmount, amount)
	}

	switch txType {
	case TypeWithdrawal, TypeSalaryPayment:
		if currentBalance.LessThan(amount) {
			return Delta{}, fmt.Errorf("%w: current balance %s is less than requested amount %s",
				ErrInsufficientBalance, currentBalance, amount)
		}
		return Delta{Balance: amount.Neg(), MarksPaid: txType == TypeSalaryPayment}, nil
	case TypeDeduction:
		return Delta{Balance: amount.Neg(), Deductions: amount}, nil
	case TypeBonus:
		return Delta{Balance: amount, Bonuses: amount}, nil
	default:
		return Delta{}, fmt.Errorf("%w: %q", ErrInvalidTransactionType, txType)
	}
}
