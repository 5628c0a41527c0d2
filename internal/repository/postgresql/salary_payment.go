package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wagebook/wagebook-backend-go/internal/domain/payment"
	"github.com/wagebook/wagebook-backend-go/internal/pkg/database"
)

type salaryPaymentRepositoryImpl struct {
	db *database.DB
}

func NewSalaryPaymentRepository(db *database.DB) payment.SalaryPaymentRepository {
	return &salaryPaymentRepositoryImpl{db: db}
}

// Create implements payment.SalaryPaymentRepository.
func (s *salaryPaymentRepositoryImpl) Create(ctx context.Context, newPayment payment.SalaryPayment) (payment.SalaryPayment, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO salary_payments (
			id, employee_id, payment_date, daily_wage, days_worked, total_wage,
			total_bonuses, total_deductions, total_withdrawals, net_payment,
			payment_method, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		)
		RETURNING id, employee_id, payment_date, daily_wage, days_worked, total_wage,
			total_bonuses, total_deductions, total_withdrawals, net_payment,
			payment_method, notes, created_at
	`

	var created payment.SalaryPayment
	err := q.QueryRow(ctx, query,
		uuid.Must(uuid.NewV7()).String(),
		newPayment.EmployeeID,
		newPayment.PaymentDate,
		newPayment.DailyWage,
		newPayment.DaysWorked,
		newPayment.TotalWage,
		newPayment.TotalBonuses,
		newPayment.TotalDeductions,
		newPayment.TotalWithdrawals,
		newPayment.NetPayment,
		newPayment.PaymentMethod,
		newPayment.Notes,
	).Scan(
		&created.ID, &created.EmployeeID, &created.PaymentDate, &created.DailyWage,
		&created.DaysWorked, &created.TotalWage, &created.TotalBonuses,
		&created.TotalDeductions, &created.TotalWithdrawals, &created.NetPayment,
		&created.PaymentMethod, &created.Notes, &created.CreatedAt,
	)
	if err != nil {
		return payment.SalaryPayment{}, fmt.Errorf("failed to create salary payment: %w", err)
	}
	return created, nil
}

// ListByEmployee implements payment.SalaryPaymentRepository.
func (s *salaryPaymentRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]payment.SalaryPayment, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, employee_id, payment_date, daily_wage, days_worked, total_wage,
			total_bonuses, total_deductions, total_withdrawals, net_payment,
			payment_method, notes, created_at
		FROM salary_payments
		WHERE employee_id = $1
		ORDER BY payment_date DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary payments: %w", err)
	}
	defer rows.Close()

	var payments []payment.SalaryPayment
	for rows.Next() {
		var p payment.SalaryPayment
		err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.PaymentDate, &p.DailyWage,
			&p.DaysWorked, &p.TotalWage, &p.TotalBonuses,
			&p.TotalDeductions, &p.TotalWithdrawals, &p.NetPayment,
			&p.PaymentMethod, &p.Notes, &p.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}
