package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/wagebook/wagebook-backend-go/internal/domain/employee"
	"github.com/wagebook/wagebook-backend-go/internal/pkg/database"
)

type EmployeeServiceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(db *database.DB, employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
	}
}

// Create implements employee.EmployeeService. A new hire starts with one
// day's wage already on the balance.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		Name:           req.Name,
		Position:       req.Position,
		Phone:          req.Phone,
		DailyWage:      *req.DailyWage,
		CurrentBalance: *req.DailyWage,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("create employee: %w", err)
	}

	return employee.ToResponse(created), nil
}

// List implements employee.EmployeeService. Enrichment is recomputed from
// scratch on every read; the window is always "today" so staleness is not
// a concern.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EnrichedEmployeeResponse, error) {
	today := time.Now().UTC()

	employees, err := s.employeeRepo.ListActiveEnriched(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	responses := make([]employee.EnrichedEmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToEnrichedResponse(emp))
	}
	return responses, nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EnrichedEmployeeResponse, error) {
	today := time.Now().UTC()

	enriched, err := s.employeeRepo.GetEnrichedByID(ctx, id, today)
	if err != nil {
		return employee.EnrichedEmployeeResponse{}, err
	}

	return employee.ToEnrichedResponse(enriched), nil
}

// Deactivate implements employee.EmployeeService. Employees are soft
// deleted; the ledger and payment history stay behind them.
func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, id string) error {
	return s.employeeRepo.Deactivate(ctx, id)
}
