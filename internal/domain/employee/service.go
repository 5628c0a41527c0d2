package employee

import "context"

type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	List(ctx context.Context) ([]EnrichedEmployeeResponse, error)
	Get(ctx context.Context, id string) (EnrichedEmployeeResponse, error)
	Deactivate(ctx context.Context, id string) error
}
