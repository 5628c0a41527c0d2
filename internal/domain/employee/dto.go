package employee

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wagebook/wagebook-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name      string           `json:"name"`
	Position  string           `json:"position"`
	Phone     *string          `json:"phone,omitempty"`
	DailyWage *decimal.Decimal `json:"daily_wage"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position is required",
		})
	}

	if r.DailyWage == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "daily_wage",
			Message: "daily_wage is required",
		})
	} else if r.DailyWage.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "daily_wage",
			Message: "daily_wage must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Position        string          `json:"position"`
	Phone           *string         `json:"phone,omitempty"`
	DailyWage       decimal.Decimal `json:"daily_wage"`
	CurrentBalance  decimal.Decimal `json:"current_balance"`
	TotalBonuses    decimal.Decimal `json:"total_bonuses"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	PaymentStatus   PaymentStatus   `json:"payment_status"`
	IsActive        bool            `json:"is_active"`
	HireDate        time.Time       `json:"hire_date"`
	LastPaymentDate *time.Time      `json:"last_payment_date,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type EnrichedEmployeeResponse struct {
	EmployeeResponse
	TodayAttendance  string          `json:"today_attendance"`
	TodayWithdrawals decimal.Decimal `json:"today_withdrawals"`
	TodayBonuses     decimal.Decimal `json:"today_bonuses"`
	TodayDeductions  decimal.Decimal `json:"today_deductions"`
	TodayPayments    decimal.Decimal `json:"today_payments"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:              e.ID,
		Name:            e.Name,
		Position:        e.Position,
		Phone:           e.Phone,
		DailyWage:       e.DailyWage,
		CurrentBalance:  e.CurrentBalance,
		TotalBonuses:    e.TotalBonuses,
		TotalDeductions: e.TotalDeductions,
		PaymentStatus:   e.PaymentStatus,
		IsActive:        e.IsActive,
		HireDate:        e.HireDate,
		LastPaymentDate: e.LastPaymentDate,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func ToEnrichedResponse(e EnrichedEmployee) EnrichedEmployeeResponse {
	return EnrichedEmployeeResponse{
		EmployeeResponse: ToResponse(e.Employee),
		TodayAttendance:  e.TodayAttendance,
		TodayWithdrawals: e.TodayWithdrawals,
		TodayBonuses:     e.TodayBonuses,
		TodayDeductions:  e.TodayDeductions,
		TodayPayments:    e.TodayPayments,
	}
}
