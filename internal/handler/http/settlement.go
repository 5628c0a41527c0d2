package http

import (
	"net/http"

	"github.com/wagebook/wagebook-backend-go/internal/domain/payment"
	"github.com/wagebook/wagebook-backend-go/internal/handler/http/response"
)

type SettlementHandler interface {
	Settle(w http.ResponseWriter, r *http.Request)
	ListPayments(w http.ResponseWriter, r *http.Request)
}

type settlementHandlerImpl struct {
	settlementService payment.SettlementService
}

func NewSettlementHandler(settlementService payment.SettlementService) SettlementHandler {
	return &settlementHandlerImpl{
		settlementService: settlementService,
	}
}

// Settle implements SettlementHandler.
func (h *settlementHandlerImpl) Settle(w http.ResponseWriter, r *http.Request) {
	id, ok := employeeIDParam(w, r)
	if !ok {
		return
	}

	result, err := h.settlementService.Settle(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Account settled successfully", result)
}

// ListPayments implements SettlementHandler.
func (h *settlementHandlerImpl) ListPayments(w http.ResponseWriter, r *http.Request) {
	id, ok := employeeIDParam(w, r)
	if !ok {
		return
	}

	result, err := h.settlementService.ListByEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
