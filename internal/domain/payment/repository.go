package payment

import "context"

type SalaryPaymentRepository interface {
	Create(ctx context.Context, newPayment SalaryPayment) (SalaryPayment, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]SalaryPayment, error)
}
