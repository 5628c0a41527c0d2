package http

import (
	"encoding/json"
	"net/http"

	"github.com/wagebook/wagebook-backend-go/internal/domain/ledger"
	"github.com/wagebook/wagebook-backend-go/internal/handler/http/response"
)

type TransactionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type transactionHandlerImpl struct {
	ledgerService ledger.LedgerService
}

func NewTransactionHandler(ledgerService ledger.LedgerService) TransactionHandler {
	return &transactionHandlerImpl{
		ledgerService: ledgerService,
	}
}

// Create implements TransactionHandler. Posting the same transaction twice
// applies it twice; ledger entries are not idempotent and callers are
// responsible for not double-submitting.
func (h *transactionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	id, ok := employeeIDParam(w, r)
	if !ok {
		return
	}

	var req ledger.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.ledgerService.Apply(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Transaction recorded", result)
}

// List implements TransactionHandler.
func (h *transactionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	id, ok := employeeIDParam(w, r)
	if !ok {
		return
	}

	result, err := h.ledgerService.ListByEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
