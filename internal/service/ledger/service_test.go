package ledger

import (
	"context"
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wagebook/wagebook-backend-go/internal/domain/employee"
	"github.com/wagebook/wagebook-backend-go/internal/domain/ledger"
	"github.com/wagebook/wagebook-backend-go/internal/pkg/database"
	"github.com/wagebook/wagebook-backend-go/internal/repository/postgresql"
)

var testLedgerDB *database.DB

func ledgerTestInit(t *testing.T) {
	if testLedgerDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	var err error
	testLedgerDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatal("Failed to connect to test database: " + err.Error())
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func createTestEmployee(t *testing.T, ctx context.Context, dailyWage string) employee.Employee {
	repo := postgresql.NewEmployeeRepository(testLedgerDB)
	created, err := repo.Create(ctx, employee.Employee{
		Name:           "Test Employee",
		Position:       "Cashier",
		DailyWage:      dec(dailyWage),
		CurrentBalance: dec(dailyWage),
	})
	require.NoError(t, err)
	return created
}

func newLedgerService() ledger.LedgerService {
	return NewLedgerService(
		testLedgerDB,
		postgresql.NewTransactionRepository(testLedgerDB),
		postgresql.NewEmployeeRepository(testLedgerDB),
	)
}

func applyReq(txType string, amount string) ledger.CreateTransactionRequest {
	a := dec(amount)
	return ledger.CreateTransactionRequest{
		TransactionType: txType,
		Amount:          &a,
	}
}

func TestLedgerService_Bonus(t *testing.T) {
	ledgerTestInit(t)
	ctx := context.Background()

	emp := createTestEmployee(t, ctx, "100")
	svc := newLedgerService()

	result, err := svc.Apply(ctx, emp.ID, applyReq("bonus", "20"))

	require.NoError(t, err)
	assert.True(t, result.Employee.CurrentBalance.Equal(dec("120")),
		"balance = %s", result.Employee.CurrentBalance)
	assert.True(t, result.Employee.TotalBonuses.Equal(dec("20")))
	assert.True(t, result.Transaction.Amount.Equal(dec("20")))
	assert.Equal(t, ledger.TypeBonus, result.Transaction.TransactionType)
}

func TestLedgerService_Deduction(t *testing.T) {
	ledgerTestInit(t)
	ctx := context.Background()

	emp := createTestEmployee(t, ctx, "100")
	svc := newLedgerService()

	result, err := svc.Apply(ctx, emp.ID, applyReq("deduction", "30"))

	require.NoError(t, err)
	assert.True(t, result.Employee.CurrentBalance.Equal(dec("70")))
	assert.True(t, result.Employee.TotalDeductions.Equal(dec("30")))
}

func TestLedgerService_Withdrawal(t *testing.T) {
	ledgerTestInit(t)
	ctx := context.Background()

	emp := createTestEmployee(t, ctx, "100")
	svc := newLedgerService()

	result, err := svc.Apply(ctx, emp.ID, applyReq("withdrawal", "50"))

	require.NoError(t, err)
	assert.True(t, result.Employee.CurrentBalance.Equal(dec("50")))
	assert.True(t, result.Employee.TotalBonuses.IsZero())
	assert.True(t, result.Employee.TotalDeductions.IsZero())
}

func TestLedgerService_WithdrawalInsufficientBalanceLeavesStateUnchanged(t *testing.T) {
	ledgerTestInit(t)
	ctx := context.Background()

	emp := createTestEmployee(t, ctx, "30")
	svc := newLedgerService()

	_, err := svc.Apply(ctx, emp.ID, applyReq("withdrawal", "50"))
	require.ErrorIs(t, err, ledger.ErrInsufficientBalance)

	// Balance untouched, no ledger entry written.
	empRepo := postgresql.NewEmployeeRepository(testLedgerDB)
	after, err := empRepo.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.True(t, after.CurrentBalance.Equal(dec("30")))

	txns, err := svc.ListByEmployee(ctx, emp.ID)
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestLedgerService_SalaryPaymentMarksPaid(t *testing.T) {
	ledgerTestInit(t)
	ctx := context.Background()

	emp := createTestEmployee(t, ctx, "100")
	svc := newLedgerService()

	result, err := svc.Apply(ctx, emp.ID, applyReq("salary_payment", "100"))

	require.NoError(t, err)
	assert.True(t, result.Employee.CurrentBalance.IsZero())
	assert.Equal(t, employee.PaymentStatusPaid, result.Employee.PaymentStatus)
	assert.NotNil(t, result.Employee.LastPaymentDate)
}

func TestLedgerService_UnknownEmployee(t *testing.T) {
	ledgerTestInit(t)
	ctx := context.Background()

	svc := newLedgerService()

	_, err := svc.Apply(ctx, "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", applyReq("bonus", "10"))

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestLedgerService_InactiveEmployeeIsNotFound(t *testing.T) {
	ledgerTestInit(t)
	ctx := context.Background()

	emp := createTestEmployee(t, ctx, "100")
	empRepo := postgresql.NewEmployeeRepository(testLedgerDB)
	require.NoError(t, empRepo.Deactivate(ctx, emp.ID))

	svc := newLedgerService()
	_, err := svc.Apply(ctx, emp.ID, applyReq("bonus", "10"))

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestLedgerService_ListForInactiveEmployeeIsNotFound(t *testing.T) {
	ledgerTestInit(t)
	ctx := context.Background()

	emp := createTestEmployee(t, ctx, "100")
	svc := newLedgerService()

	_, err := svc.Apply(ctx, emp.ID, applyReq("bonus", "10"))
	require.NoError(t, err)

	empRepo := postgresql.NewEmployeeRepository(testLedgerDB)
	require.NoError(t, empRepo.Deactivate(ctx, emp.ID))

	// History is hidden once the employee is deactivated, same as every
	// other read on the employee.
	_, err = svc.ListByEmployee(ctx, emp.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestLedgerService_ValidationRejectsUnknownType(t *testing.T) {
	ledgerTestInit(t)
	ctx := context.Background()

	emp := createTestEmployee(t, ctx, "100")
	svc := newLedgerService()

	_, err := svc.Apply(ctx, emp.ID, applyReq("loan", "10"))

	require.Error(t, err)

	// Nothing was written.
	txns, listErr := svc.ListByEmployee(ctx, emp.ID)
	require.NoError(t, listErr)
	assert.Empty(t, txns)
}
