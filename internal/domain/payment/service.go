package payment

import "context"

type SettlementService interface {
	// Settle pays out the employee's outstanding balance: it writes the
	// salary payment record, the matching ledger entry, and zeroes the
	// balance as a single atomic unit.
	Settle(ctx context.Context, employeeID string) (SettlementResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]SalaryPaymentResponse, error)
}
