package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/wagebook/wagebook-backend-go/internal/domain/employee"
	"github.com/wagebook/wagebook-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, name, position, phone, daily_wage, current_balance,
		total_bonuses, total_deductions, payment_status, is_active,
		hire_date, last_payment_date, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.Name, &emp.Position, &emp.Phone, &emp.DailyWage, &emp.CurrentBalance,
		&emp.TotalBonuses, &emp.TotalDeductions, &emp.PaymentStatus, &emp.IsActive,
		&emp.HireDate, &emp.LastPaymentDate, &emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (
			id, name, position, phone, daily_wage, current_balance, payment_status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		uuid.Must(uuid.NewV7()).String(),
		newEmployee.Name,
		newEmployee.Position,
		newEmployee.Phone,
		newEmployee.DailyWage,
		newEmployee.CurrentBalance,
		employee.PaymentStatusPending,
	))
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	found, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}
	return found, nil
}

// GetByIDForUpdate implements employee.EmployeeRepository. Must run inside
// a transaction; the row lock is held until commit or rollback.
func (e *employeeRepositoryImpl) GetByIDForUpdate(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1 FOR UPDATE`

	found, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to lock employee row: %w", err)
	}
	return found, nil
}

// ListActiveEnriched implements employee.EmployeeRepository. One query
// joins the day's attendance and aggregates the day's transactions by type;
// nothing derived is stored.
func (e *employeeRepositoryImpl) ListActiveEnriched(ctx context.Context, day time.Time) ([]employee.EnrichedEmployee, error) {
	q := GetQuerier(ctx, e.db)

	query := enrichedSelect + `
		WHERE e.is_active
		ORDER BY e.name ASC`

	rows, err := q.Query(ctx, query, day.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.EnrichedEmployee
	for rows.Next() {
		enriched, err := scanEnrichedEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, enriched)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// GetEnrichedByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetEnrichedByID(ctx context.Context, id string, day time.Time) (employee.EnrichedEmployee, error) {
	q := GetQuerier(ctx, e.db)

	query := enrichedSelect + `
		WHERE e.id = $2 AND e.is_active`

	enriched, err := scanEnrichedEmployee(q.QueryRow(ctx, query, day.Format("2006-01-02"), id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.EnrichedEmployee{}, employee.ErrEmployeeNotFound
		}
		return employee.EnrichedEmployee{}, fmt.Errorf("failed to get enriched employee: %w", err)
	}
	return enriched, nil
}

const enrichedSelect = `
	SELECT e.id, e.name, e.position, e.phone, e.daily_wage, e.current_balance,
		e.total_bonuses, e.total_deductions, e.payment_status, e.is_active,
		e.hire_date, e.last_payment_date, e.created_at, e.updated_at,
		COALESCE(a.status, 'absent') AS today_attendance,
		COALESCE(t.withdrawals, 0) AS today_withdrawals,
		COALESCE(t.bonuses, 0) AS today_bonuses,
		COALESCE(t.deductions, 0) AS today_deductions,
		COALESCE(t.payments, 0) AS today_payments
	FROM employees e
	LEFT JOIN attendances a
		ON a.employee_id = e.id AND a.attendance_date = $1::date
	LEFT JOIN (
		SELECT employee_id,
			COALESCE(SUM(amount) FILTER (WHERE transaction_type = 'withdrawal'), 0) AS withdrawals,
			COALESCE(SUM(amount) FILTER (WHERE transaction_type = 'bonus'), 0) AS bonuses,
			COALESCE(SUM(amount) FILTER (WHERE transaction_type = 'deduction'), 0) AS deductions,
			COALESCE(SUM(amount) FILTER (WHERE transaction_type = 'salary_payment'), 0) AS payments
		FROM financial_transactions
		WHERE transaction_date = $1::date
		GROUP BY employee_id
	) t ON t.employee_id = e.id`

func scanEnrichedEmployee(row pgx.Row) (employee.EnrichedEmployee, error) {
	var enriched employee.EnrichedEmployee
	err := row.Scan(
		&enriched.ID, &enriched.Name, &enriched.Position, &enriched.Phone,
		&enriched.DailyWage, &enriched.CurrentBalance,
		&enriched.TotalBonuses, &enriched.TotalDeductions,
		&enriched.PaymentStatus, &enriched.IsActive,
		&enriched.HireDate, &enriched.LastPaymentDate,
		&enriched.CreatedAt, &enriched.UpdatedAt,
		&enriched.TodayAttendance,
		&enriched.TodayWithdrawals, &enriched.TodayBonuses,
		&enriched.TodayDeductions, &enriched.TodayPayments,
	)
	return enriched, err
}

// ApplyBalanceUpdate implements employee.EmployeeRepository. The caller is
// expected to hold the row lock via GetByIDForUpdate in the same
// transaction.
func (e *employeeRepositoryImpl) ApplyBalanceUpdate(ctx context.Context, id string, update employee.BalanceUpdate) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET current_balance = current_balance + $1,
			total_bonuses = total_bonuses + $2,
			total_deductions = total_deductions + $3,
			payment_status = CASE WHEN $4 THEN 'paid' ELSE payment_status END,
			last_payment_date = CASE WHEN $4 THEN NOW() ELSE last_payment_date END,
			updated_at = NOW()
		WHERE id = $5
		RETURNING ` + employeeColumns

	updated, err := scanEmployee(q.QueryRow(ctx, query,
		update.BalanceDelta, update.BonusDelta, update.DeductionDelta, update.MarkPaid, id,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to apply balance update: %w", err)
	}
	return updated, nil
}

// SettleBalance implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) SettleBalance(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET current_balance = 0,
			payment_status = 'paid',
			last_payment_date = NOW(),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + employeeColumns

	settled, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to settle balance: %w", err)
	}
	return settled, nil
}

// Deactivate implements employee.EmployeeRepository. Employees are never
// physically deleted.
func (e *employeeRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND is_active
		RETURNING id
	`

	var deactivatedID string
	if err := q.QueryRow(ctx, query, id).Scan(&deactivatedID); err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}
	return nil
}
