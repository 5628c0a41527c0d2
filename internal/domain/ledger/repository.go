package ledger

import "context"

type TransactionRepository interface {
	Create(ctx context.Context, newTransaction Transaction) (Transaction, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Transaction, error)
}
