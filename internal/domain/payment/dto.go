package payment

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wagebook/wagebook-backend-go/internal/domain/employee"
)

type SalaryPaymentResponse struct {
	ID               string          `json:"id"`
	EmployeeID       string          `json:"employee_id"`
	PaymentDate      time.Time       `json:"payment_date"`
	DailyWage        decimal.Decimal `json:"daily_wage"`
	DaysWorked       int             `json:"days_worked"`
	TotalWage        decimal.Decimal `json:"total_wage"`
	TotalBonuses     decimal.Decimal `json:"total_bonuses"`
	TotalDeductions  decimal.Decimal `json:"total_deductions"`
	TotalWithdrawals decimal.Decimal `json:"total_withdrawals"`
	NetPayment       decimal.Decimal `json:"net_payment"`
	PaymentMethod    string          `json:"payment_method"`
	Notes            *string         `json:"notes,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

type SettlementResponse struct {
	SettlementAmount decimal.Decimal           `json:"settlement_amount"`
	SalaryPayment    SalaryPaymentResponse     `json:"salary_payment"`
	Employee         employee.EmployeeResponse `json:"employee"`
}

func ToResponse(p SalaryPayment) SalaryPaymentResponse {
	return SalaryPaymentResponse{
		ID:               p.ID,
		EmployeeID:       p.EmployeeID,
		PaymentDate:      p.PaymentDate,
		DailyWage:        p.DailyWage,
		DaysWorked:       p.DaysWorked,
		TotalWage:        p.TotalWage,
		TotalBonuses:     p.TotalBonuses,
		TotalDeductions:  p.TotalDeductions,
		TotalWithdrawals: p.TotalWithdrawals,
		NetPayment:       p.NetPayment,
		PaymentMethod:    p.PaymentMethod,
		Notes:            p.Notes,
		CreatedAt:        p.CreatedAt,
	}
}
