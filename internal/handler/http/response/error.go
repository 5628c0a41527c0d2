package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/wagebook/wagebook-backend-go/internal/domain/employee"
	"github.com/wagebook/wagebook-backend-go/internal/domain/ledger"
	"github.com/wagebook/wagebook-backend-go/internal/domain/payment"
	"github.com/wagebook/wagebook-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors. An inactive employee is reported the same as
	// a missing one.
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Ledger business-rule violations
	case errors.Is(err, ledger.ErrInsufficientBalance),
		errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrInvalidTransactionType):
		BadRequest(w, err.Error(), nil)

	// Settlement
	case errors.Is(err, payment.ErrNothingToSettle):
		BadRequest(w, "No balance to settle", nil)

	// Default: full detail stays server-side, clients get a generic body
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
