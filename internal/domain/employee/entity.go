package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID              string
	Name            string
	Position        string
	Phone           *string
	DailyWage       decimal.Decimal
	CurrentBalance  decimal.Decimal
	TotalBonuses    decimal.Decimal
	TotalDeductions decimal.Decimal
	PaymentStatus   PaymentStatus
	IsActive        bool
	HireDate        time.Time
	LastPaymentDate *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusDeferred PaymentStatus = "deferred"
)

// BalanceUpdate is the signed effect of one ledger transaction on the
// employee row. Totals only ever grow; the balance delta may be negative.
type BalanceUpdate struct {
	BalanceDelta   decimal.Decimal
	BonusDelta     decimal.Decimal
	DeductionDelta decimal.Decimal
	MarkPaid       bool
}

// EnrichedEmployee is an employee plus the derived per-day fields computed
// at read time: that day's attendance status and the transaction sums
// grouped by type. Nothing here is stored.
type EnrichedEmployee struct {
	Employee
	TodayAttendance  string
	TodayWithdrawals decimal.Decimal
	TodayBonuses     decimal.Decimal
	TodayDeductions  decimal.Decimal
	TodayPayments    decimal.Decimal
}
