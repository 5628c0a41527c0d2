package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wagebook/wagebook-backend-go/internal/domain/employee"
	"github.com/wagebook/wagebook-backend-go/internal/pkg/validator"
)

type CreateTransactionRequest struct {
	TransactionType string           `json:"transaction_type"`
	Amount          *decimal.Decimal `json:"amount"`
	Description     *string          `json:"description,omitempty"`
	CreatedBy       string           `json:"created_by,omitempty"`
}

func (r *CreateTransactionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TransactionType) {
		errs = append(errs, validator.ValidationError{
			Field:   "transaction_type",
			Message: "transaction_type is required",
		})
	} else if !TransactionType(r.TransactionType).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "transaction_type",
			Message: fmt.Sprintf("transaction_type must be one of withdrawal, deduction, bonus, salary_payment, got %q", r.TransactionType),
		})
	}

	if r.Amount == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount is required",
		})
	} else if r.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be greater than zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Type returns the request's transaction type as the domain enum. Only
// meaningful after Validate has passed.
func (r *CreateTransactionRequest) Type() TransactionType {
	return TransactionType(r.TransactionType)
}

type TransactionResponse struct {
	ID              string          `json:"id"`
	EmployeeID      string          `json:"employee_id"`
	TransactionType TransactionType `json:"transaction_type"`
	Amount          decimal.Decimal `json:"amount"`
	Description     *string         `json:"description,omitempty"`
	TransactionDate string          `json:"transaction_date"`
	CreatedBy       string          `json:"created_by"`
	CreatedAt       time.Time       `json:"created_at"`
}

// ApplyTransactionResponse pairs the created ledger entry with the employee
// snapshot after its effect was applied.
type ApplyTransactionResponse struct {
	Transaction TransactionResponse       `json:"transaction"`
	Employee    employee.EmployeeResponse `json:"employee"`
}

func ToResponse(t Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              t.ID,
		EmployeeID:      t.EmployeeID,
		TransactionType: t.Type,
		Amount:          t.Amount,
		Description:     t.Description,
		TransactionDate: t.TransactionDate.Format("2006-01-02"),
		CreatedBy:       t.CreatedBy,
		CreatedAt:       t.CreatedAt,
	}
}
