package ledger

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRepository_SumBalance_DebitsMinusCredits(t *testing.T) {
	gdb, mock := newTestDB(t)
	repo := NewRepository(gdb)
	customerID := uuid.New().String()

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(CASE WHEN direction = \$1 THEN amount ELSE -amount END\), 0\)`).
		WithArgs(string(DirectionDebit), customerID).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("125.50"))

	balance, err := repo.SumBalance(context.Background(), customerID)

	assert.NoError(t, err)
	assert.Equal(t, "125.5", balance.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindAllByCustomer_NewestFirst(t *testing.T) {
	gdb, mock := newTestDB(t)
	repo := NewRepository(gdb)
	customerID := uuid.New().String()

	mock.ExpectQuery(`SELECT \* FROM "ledger_entries" WHERE customer_id = \$1 ORDER BY created_at DESC`).
		WithArgs(customerID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "customer_id", "direction", "amount"}).
			AddRow(uuid.New().String(), customerID, "CREDIT", "30").
			AddRow(uuid.New().String(), customerID, "DEBIT", "90"))

	entries, err := repo.FindAllByCustomer(context.Background(), customerID)

	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, DirectionCredit, entries[0].Direction)
	assert.NoError(t, mock.ExpectationsWereMet())
}
