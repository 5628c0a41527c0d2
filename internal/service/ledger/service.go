package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/wagebook/wagebook-backend-go/internal/domain/employee"
	"github.com/wagebook/wagebook-backend-go/internal/domain/ledger"
	"github.com/wagebook/wagebook-backend-go/internal/pkg/database"
	"github.com/wagebook/wagebook-backend-go/internal/repository/postgresql"
)

// DefaultCreatedBy is recorded on ledger entries when the request does not
// name an author.
const DefaultCreatedBy = "admin"

type LedgerServiceImpl struct {
	db              *database.DB
	transactionRepo ledger.TransactionRepository
	employeeRepo    employee.EmployeeRepository
}

func NewLedgerService(
	db *database.DB,
	transactionRepo ledger.TransactionRepository,
	employeeRepo employee.EmployeeRepository,
) ledger.LedgerService {
	return &LedgerServiceImpl{
		db:              db,
		transactionRepo: transactionRepo,
		employeeRepo:    employeeRepo,
	}
}

// Apply implements ledger.LedgerService. The employee row is locked for
// the duration of the transaction, so the precondition check, the ledger
// insert, and the balance update are one atomic unit: no reader can see
// one without the other, and concurrent requests against the same employee
// serialize on the row lock.
func (s *LedgerServiceImpl) Apply(ctx context.Context, employeeID string, req ledger.CreateTransactionRequest) (ledger.ApplyTransactionResponse, error) {
	if err := req.Validate(); err != nil {
		return ledger.ApplyTransactionResponse{}, err
	}

	createdBy := req.CreatedBy
	if createdBy == "" {
		createdBy = DefaultCreatedBy
	}
	now := time.Now().UTC()

	var (
		createdTxn ledger.Transaction
		updatedEmp employee.Employee
	)
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		current, err := s.employeeRepo.GetByIDForUpdate(txCtx, employeeID)
		if err != nil {
			return err
		}
		if !current.IsActive {
			return employee.ErrEmployeeNotFound
		}

		delta, err := ledger.ComputeDelta(req.Type(), *req.Amount, current.CurrentBalance)
		if err != nil {
			return err
		}

		createdTxn, err = s.transactionRepo.Create(txCtx, ledger.Transaction{
			EmployeeID:      employeeID,
			Type:            req.Type(),
			Amount:          *req.Amount,
			Description:     req.Description,
			TransactionDate: now,
			CreatedBy:       createdBy,
		})
		if err != nil {
			return fmt.Errorf("create ledger entry: %w", err)
		}

		updatedEmp, err = s.employeeRepo.ApplyBalanceUpdate(txCtx, employeeID, employee.BalanceUpdate{
			BalanceDelta:   delta.Balance,
			BonusDelta:     delta.Bonuses,
			DeductionDelta: delta.Deductions,
			MarkPaid:       delta.MarksPaid,
		})
		return err
	})
	if err != nil {
		return ledger.ApplyTransactionResponse{}, err
	}

	return ledger.ApplyTransactionResponse{
		Transaction: ledger.ToResponse(createdTxn),
		Employee:    employee.ToResponse(updatedEmp),
	}, nil
}

// ListByEmployee implements ledger.LedgerService.
func (s *LedgerServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]ledger.TransactionResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !emp.IsActive {
		return nil, employee.ErrEmployeeNotFound
	}

	transactions, err := s.transactionRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	responses := make([]ledger.TransactionResponse, 0, len(transactions))
	for _, txn := range transactions {
		responses = append(responses, ledger.ToResponse(txn))
	}
	return responses, nil
}
