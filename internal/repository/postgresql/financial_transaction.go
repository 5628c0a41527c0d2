package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wagebook/wagebook-backend-go/internal/domain/ledger"
	"github.com/wagebook/wagebook-backend-go/internal/pkg/database"
)

type transactionRepositoryImpl struct {
	db *database.DB
}

func NewTransactionRepository(db *database.DB) ledger.TransactionRepository {
	return &transactionRepositoryImpl{db: db}
}

// Create implements ledger.TransactionRepository. Entries are append-only;
// there is no update or delete.
func (t *transactionRepositoryImpl) Create(ctx context.Context, newTransaction ledger.Transaction) (ledger.Transaction, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		INSERT INTO financial_transactions (
			id, employee_id, transaction_type, amount, description, transaction_date, created_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
		RETURNING id, employee_id, transaction_type, amount, description, transaction_date, created_by, created_at
	`

	var created ledger.Transaction
	err := q.QueryRow(ctx, query,
		uuid.Must(uuid.NewV7()).String(),
		newTransaction.EmployeeID,
		newTransaction.Type,
		newTransaction.Amount,
		newTransaction.Description,
		newTransaction.TransactionDate,
		newTransaction.CreatedBy,
	).Scan(
		&created.ID, &created.EmployeeID, &created.Type, &created.Amount,
		&created.Description, &created.TransactionDate, &created.CreatedBy, &created.CreatedAt,
	)
	if err != nil {
		return ledger.Transaction{}, fmt.Errorf("failed to create financial transaction: %w", err)
	}
	return created, nil
}

// ListByEmployee implements ledger.TransactionRepository.
func (t *transactionRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]ledger.Transaction, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT id, employee_id, transaction_type, amount, description, transaction_date, created_by, created_at
		FROM financial_transactions
		WHERE employee_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list financial transactions: %w", err)
	}
	defer rows.Close()

	var transactions []ledger.Transaction
	for rows.Next() {
		var txn ledger.Transaction
		err := rows.Scan(
			&txn.ID, &txn.EmployeeID, &txn.Type, &txn.Amount,
			&txn.Description, &txn.TransactionDate, &txn.CreatedBy, &txn.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, txn)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return transactions, nil
}
