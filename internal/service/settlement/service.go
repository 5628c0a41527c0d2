package settlement

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/wagebook/wagebook-backend-go/internal/domain/employee"
	"github.com/wagebook/wagebook-backend-go/internal/domain/ledger"
	"github.com/wagebook/wagebook-backend-go/internal/domain/payment"
	"github.com/wagebook/wagebook-backend-go/internal/pkg/database"
	"github.com/wagebook/wagebook-backend-go/internal/repository/postgresql"
)

const settlementNote = "Account settlement - payment of outstanding balance"

type SettlementServiceImpl struct {
	db              *database.DB
	paymentRepo     payment.SalaryPaymentRepository
	transactionRepo ledger.TransactionRepository
	employeeRepo    employee.EmployeeRepository
}

func NewSettlementService(
	db *database.DB,
	paymentRepo payment.SalaryPaymentRepository,
	transactionRepo ledger.TransactionRepository,
	employeeRepo employee.EmployeeRepository,
) payment.SettlementService {
	return &SettlementServiceImpl{
		db:              db,
		paymentRepo:     paymentRepo,
		transactionRepo: transactionRepo,
		employeeRepo:    employeeRepo,
	}
}

// Settle implements payment.SettlementService. The row lock taken by
// GetByIDForUpdate keeps the balance read and the zeroing write consistent:
// no other ledger mutation can slip in between.
func (s *SettlementServiceImpl) Settle(ctx context.Context, employeeID string) (payment.SettlementResponse, error) {
	now := time.Now().UTC()

	var (
		amount      decimal.Decimal
		salaryPay   payment.SalaryPayment
		settledEmp  employee.Employee
		description = settlementNote
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

		amount = current.CurrentBalance
		if amount.LessThanOrEqual(decimal.Zero) {
			return payment.ErrNothingToSettle
		}

		salaryPay, err = s.paymentRepo.Create(txCtx, payment.SalaryPayment{
			EmployeeID:       employeeID,
			PaymentDate:      now,
			DailyWage:        current.DailyWage,
			DaysWorked:       1,
			TotalWage:        current.DailyWage,
			TotalBonuses:     current.TotalBonuses,
			TotalDeductions:  current.TotalDeductions,
			TotalWithdrawals: amount,
			NetPayment:       amount,
			PaymentMethod:    "cash",
			Notes:            &description,
		})
		if err != nil {
			return fmt.Errorf("create salary payment: %w", err)
		}

		if _, err = s.transactionRepo.Create(txCtx, ledger.Transaction{
			EmployeeID:      employeeID,
			Type:            ledger.TypeSalaryPayment,
			Amount:          amount,
			Description:     &description,
			TransactionDate: now,
			CreatedBy:       "system",
		}); err != nil {
			return fmt.Errorf("create settlement ledger entry: %w", err)
		}

		settledEmp, err = s.employeeRepo.SettleBalance(txCtx, employeeID)
		return err
	})
	if err != nil {
		return payment.SettlementResponse{}, err
	}

	return payment.SettlementResponse{
		SettlementAmount: amount,
		SalaryPayment:    payment.ToResponse(salaryPay),
		Employee:         employee.ToResponse(settledEmp),
	}, nil
}

// ListByEmployee implements payment.SettlementService.
func (s *SettlementServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]payment.SalaryPaymentResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !emp.IsActive {
		return nil, employee.ErrEmployeeNotFound
	}

	payments, err := s.paymentRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list salary payments: %w", err)
	}

	responses := make([]payment.SalaryPaymentResponse, 0, len(payments))
	for _, p := range payments {
		responses = append(responses, payment.ToResponse(p))
	}
	return responses, nil
}
