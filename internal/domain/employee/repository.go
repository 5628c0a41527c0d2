package employee

import (
	"context"
	"time"
)

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	// GetByIDForUpdate locks the employee row for the duration of the
	// surrounding transaction. Every balance mutation goes through this so
	// concurrent writes against the same employee serialize.
	GetByIDForUpdate(ctx context.Context, id string) (Employee, error)
	ListActiveEnriched(ctx context.Context, day time.Time) ([]EnrichedEmployee, error)
	GetEnrichedByID(ctx context.Context, id string, day time.Time) (EnrichedEmployee, error)
	ApplyBalanceUpdate(ctx context.Context, id string, update BalanceUpdate) (Employee, error)
	SettleBalance(ctx context.Context, id string) (Employee, error)
	Deactivate(ctx context.Context, id string) error
}
