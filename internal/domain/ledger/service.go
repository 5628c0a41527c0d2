package ledger

import "context"

type LedgerService interface {
	// Apply creates the ledger entry and applies its balance effect to the
	// employee as a single atomic unit.
	Apply(ctx context.Context, employeeID string, req CreateTransactionRequest) (ApplyTransactionResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]TransactionResponse, error)
}
