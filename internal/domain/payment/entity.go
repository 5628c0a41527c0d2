package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryPayment is the immutable record written by the settlement workflow.
// The totals are snapshots of the employee's running totals at settlement
// time, not live references.
type SalaryPayment struct {
	ID               string
	EmployeeID       string
	PaymentDate      time.Time
	DailyWage        decimal.Decimal
	DaysWorked       int
	TotalWage        decimal.Decimal
	TotalBonuses     decimal.Decimal
	TotalDeductions  decimal.Decimal
	TotalWithdrawals decimal.Decimal
	NetPayment       decimal.Decimal
	PaymentMethod    string
	Notes            *string
	CreatedAt        time.Time
}
