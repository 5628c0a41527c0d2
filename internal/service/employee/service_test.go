package employee

import (
	"context"
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wagebook/wagebook-backend-go/internal/domain/employee"
	"github.com/wagebook/wagebook-backend-go/internal/pkg/database"
	"github.com/wagebook/wagebook-backend-go/internal/pkg/validator"
	"github.com/wagebook/wagebook-backend-go/internal/repository/postgresql"
)

var testEmployeeDB *database.DB

func employeeTestInit(t *testing.T) {
	if testEmployeeDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	var err error
	testEmployeeDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatal("Failed to connect to test database: " + err.Error())
	}
}

func newEmployeeService() employee.EmployeeService {
	return NewEmployeeService(testEmployeeDB, postgresql.NewEmployeeRepository(testEmployeeDB))
}

func TestEmployeeService_CreateInitializesBalanceToDailyWage(t *testing.T) {
	employeeTestInit(t)
	ctx := context.Background()

	svc := newEmployeeService()
	wage := decimal.RequireFromString("150.50")

	created, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		Name:      "Test Employee",
		Position:  "Cook",
		DailyWage: &wage,
	})

	require.NoError(t, err)
	assert.True(t, created.DailyWage.Equal(wage))
	assert.True(t, created.CurrentBalance.Equal(wage),
		"balance = %s, want one day's wage", created.CurrentBalance)
	assert.Equal(t, employee.PaymentStatusPending, created.PaymentStatus)
	assert.True(t, created.IsActive)
}

func TestEmployeeService_CreateValidation(t *testing.T) {
	employeeTestInit(t)
	ctx := context.Background()

	svc := newEmployeeService()
	negative := decimal.RequireFromString("-1")

	cases := []struct {
		name      string
		req       employee.CreateEmployeeRequest
		wantField string
	}{
		{
			name:      "missing name",
			req:       employee.CreateEmployeeRequest{Position: "Cook"},
			wantField: "name",
		},
		{
			name:      "missing wage",
			req:       employee.CreateEmployeeRequest{Name: "Test", Position: "Cook"},
			wantField: "daily_wage",
		},
		{
			name: "negative wage",
			req: employee.CreateEmployeeRequest{
				Name: "Test", Position: "Cook", DailyWage: &negative,
			},
			wantField: "daily_wage",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := svc.Create(ctx, c.req)

			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), c.wantField)
		})
	}
}

func TestEmployeeService_DeactivateThenGetIsNotFound(t *testing.T) {
	employeeTestInit(t)
	ctx := context.Background()

	svc := newEmployeeService()
	wage := decimal.RequireFromString("100")

	created, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		Name:      "Test Employee",
		Position:  "Cook",
		DailyWage: &wage,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	// Deactivating again reports not-found as well.
	err = svc.Deactivate(ctx, created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
